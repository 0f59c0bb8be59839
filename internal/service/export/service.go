package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

var departmentHeaders = []string{"Department", "Total Employees", "Present", "Late", "Absent"}

type ExportServiceImpl struct {
	reportService report.ReportService
	now           func() time.Time
}

func NewExportService(reportService report.ReportService, now func() time.Time) report.ExportService {
	if now == nil {
		now = time.Now
	}
	return &ExportServiceImpl{reportService: reportService, now: now}
}

// DepartmentXLSX implements report.ExportService.
func (s *ExportServiceImpl) DepartmentXLSX(ctx context.Context, period report.Period) ([]byte, string, error) {
	rows, err := s.reportService.GetDepartmentAttendance(ctx, period)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Department Attendance"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("Department Attendance - %s", period.Label()))
	for i, header := range departmentHeaders {
		cell := fmt.Sprintf("%c2", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 3
	for _, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.Department)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.TotalEmployees)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.Present)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.Late)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.Absent)
		rowNum++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), s.filename(period, "xlsx"), nil
}

// DepartmentPDF implements report.ExportService.
func (s *ExportServiceImpl) DepartmentPDF(ctx context.Context, period report.Period) ([]byte, string, error) {
	rows, err := s.reportService.GetDepartmentAttendance(ctx, period)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Department Attendance - %s", period.Label()), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+s.now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{60, 35, 30, 30, 30}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range departmentHeaders {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 8, row.Department, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 8, fmt.Sprintf("%d", row.TotalEmployees), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("%d", row.Present), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%d", row.Late), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("%d", row.Absent), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), s.filename(period, "pdf"), nil
}

func (s *ExportServiceImpl) filename(period report.Period, ext string) string {
	return fmt.Sprintf("department_attendance_%s_%s.%s", period, s.now().Format("20060102"), ext)
}
