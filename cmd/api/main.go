package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/timetrackhq/timetrack-backend-go/internal/config"
	appHTTP "github.com/timetrackhq/timetrack-backend-go/internal/handler/http"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/database"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/jwt"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/storage"
	"github.com/timetrackhq/timetrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timetrackhq/timetrack-backend-go/internal/service/attendance"
	authService "github.com/timetrackhq/timetrack-backend-go/internal/service/auth"
	dashboardService "github.com/timetrackhq/timetrack-backend-go/internal/service/dashboard"
	employeeService "github.com/timetrackhq/timetrack-backend-go/internal/service/employee"
	exportService "github.com/timetrackhq/timetrack-backend-go/internal/service/export"
	photoService "github.com/timetrackhq/timetrack-backend-go/internal/service/photo"
	reportService "github.com/timetrackhq/timetrack-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	runTx := func(ctx context.Context, fn func(ctx context.Context) error) error {
		return postgresql.WithTransaction(ctx, db, fn)
	}

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Error initializing storage: ", err)
	}

	attendanceSvc := attendanceService.NewAttendanceService(runTx, attendanceRepo, employeeRepo, nil)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	photoSvc := photoService.NewPhotoService(employeeRepo, fileStorage)
	authSvc := authService.NewAuthService(staffRepo, jwtService)
	reportSvc := reportService.NewReportService(reportRepo, nil)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, nil)
	exportSvc := exportService.NewExportService(reportSvc, nil)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc, jwtService),
		appHTTP.NewEmployeeHandler(employeeSvc, photoSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewReportHandler(reportSvc, exportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
