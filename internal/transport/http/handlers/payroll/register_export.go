package payrollhandler

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jung-kurt/gofpdf"

	"farmops/internal/domain/payroll"
)

func writeRegisterCSV(w http.ResponseWriter, period string, rows []payroll.RegisterRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payroll-register-%s.csv"`, period))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"employee_id", "employee_name", "base_pay", "allowances", "deductions", "net_pay"})
	for _, row := range rows {
		_ = cw.Write([]string{
			row.EmployeeID,
			row.EmployeeName,
			row.BasePay.StringFixed(2),
			row.Allowances.StringFixed(2),
			row.Deductions.StringFixed(2),
			row.NetPay.StringFixed(2),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Warn("register csv write failed", "period", period, "err", err)
	}
}

func writeRegisterPDF(w http.ResponseWriter, period string, rows []payroll.RegisterRow) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Register")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s", period))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{90, 40, 40, 40, 40}
	headers := []string{"Employee", "Base pay", "Allowances", "Deductions", "Net pay"}
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 7, row.EmployeeName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, row.BasePay.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, row.Allowances.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, row.Deductions.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, row.NetPay.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payroll-register-%s.pdf"`, period))
	if err := pdf.Output(w); err != nil {
		slog.Warn("register pdf write failed", "period", period, "err", err)
	}
}
