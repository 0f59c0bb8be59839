package report

import "context"

// ExportService renders the department rollup as a downloadable file.
type ExportService interface {
	// DepartmentXLSX returns the rollup as an xlsx workbook plus a
	// suggested filename.
	DepartmentXLSX(ctx context.Context, period Period) ([]byte, string, error)

	// DepartmentPDF is the PDF variant.
	DepartmentPDF(ctx context.Context, period Period) ([]byte, string, error)
}
