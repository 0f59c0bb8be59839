package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/timetrackhq/timetrack-backend-go/internal/config"
	"github.com/timetrackhq/timetrack-backend-go/internal/handler/http/middleware"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timetrack-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/status/{id}", attendanceHandler.TodayStatus)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/search", employeeHandler.Search)
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
					r.Post("/{id}/photo", employeeHandler.UploadPhoto)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/today", dashboardHandler.TodayRows)
				r.Get("/stats", dashboardHandler.TodayStats)
				r.Get("/snapshot", dashboardHandler.Snapshot)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/employees/{id}", reportHandler.EmployeeDetails)
				r.Get("/employees/{id}/monthly", reportHandler.EmployeeMonthlyHours)
				r.Get("/employees/{id}/yearly", reportHandler.EmployeeYearlyHours)
				r.Get("/hours/monthly", reportHandler.AllEmployeesMonthlyHours)
				r.Get("/hours/yearly", reportHandler.AllEmployeesYearlyHours)
				r.Get("/departments", reportHandler.DepartmentAttendance)
				r.Get("/departments/export/xlsx", reportHandler.ExportDepartmentXLSX)
				r.Get("/departments/export/pdf", reportHandler.ExportDepartmentPDF)
			})

			// Staff account management, admin only
			r.Route("/staff", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", authHandler.ListStaff)
				r.Post("/", authHandler.CreateStaff)
				r.Put("/{username}", authHandler.UpdateStaff)
				r.Delete("/{username}", authHandler.DeactivateStaff)
			})
		})
	})

	// Employee photos are served straight off the storage directory.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath))))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
