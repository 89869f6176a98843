package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/karyahr/ess-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func formatIDR(amount decimal.Decimal) string {
	return "Rp " + amount.StringFixed(2)
}

// renderPayslip lays out one payroll record as an A4 payslip.
func renderPayslip(p payroll.Payroll) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	if p.UserName != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", *p.UserName))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", monthNames[p.Month], p.Year))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", p.Status))
	if p.PaymentDate != nil {
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("Payment date: %s", p.PaymentDate.Format("2006-01-02")))
	}
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Basic salary: %s", formatIDR(p.BasicSalary)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %s", formatIDR(p.Allowances)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Overtime: %s", formatIDR(p.Overtime)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Attendance deductions: %s", formatIDR(p.Deductions)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("BPJS Kesehatan: %s", formatIDR(p.BPJSKesehatan)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("BPJS Ketenagakerjaan: %s", formatIDR(p.BPJSKetenagakerjaan)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("PPh 21: %s", formatIDR(p.PPh21)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total earnings: %s", formatIDR(p.TotalEarnings)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s", formatIDR(p.TotalDeductions)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %s", formatIDR(p.NetSalary)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}

	return buf.Bytes(), nil
}
