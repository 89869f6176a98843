package payroll

import (
	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Statutory rates. BPJS contributions are the employee's share; PPh21 uses
// the progressive annual brackets with the bracket rate applied flat to the
// monthly basic salary.
var (
	lateDeductionRate    = decimal.NewFromFloat(0.005) // per late day
	absentDeductionRate  = decimal.NewFromFloat(0.05)  // per absent day
	halfDayDeductionRate = decimal.NewFromFloat(0.025) // per half day

	bpjsKesehatanRate       = decimal.NewFromFloat(0.01)
	bpjsKetenagakerjaanRate = decimal.NewFromFloat(0.02)

	twelve = decimal.NewFromInt(12)
)

// pph21Brackets holds the upper bound of annual taxable income per rate.
var pph21Brackets = []struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}{
	{decimal.NewFromInt(50_000_000), decimal.NewFromFloat(0.05)},
	{decimal.NewFromInt(250_000_000), decimal.NewFromFloat(0.15)},
	{decimal.NewFromInt(500_000_000), decimal.NewFromFloat(0.25)},
}

var pph21TopRate = decimal.NewFromFloat(0.30)

// CalculationResult is the full monetary breakdown for one month.
type CalculationResult struct {
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Overtime    decimal.Decimal

	Deductions          decimal.Decimal
	BPJSKesehatan       decimal.Decimal
	BPJSKetenagakerjaan decimal.Decimal
	PPh21               decimal.Decimal

	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	LateCount    int
	AbsentCount  int
	HalfDayCount int
}

// pph21MonthlyRate finds the bracket rate for an annualized basic salary.
func pph21MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	for _, bracket := range pph21Brackets {
		if annual.LessThanOrEqual(bracket.upTo) {
			return bracket.rate
		}
	}
	return pph21TopRate
}

// Calculate derives the payroll breakdown from salary inputs and the month's
// attendance counts. Overtime is zero at calculation time and adjusted later
// by HRD if needed.
func Calculate(basicSalary, allowances decimal.Decimal, counts map[attendance.Status]int) CalculationResult {
	lateCount := counts[attendance.StatusLate]
	absentCount := counts[attendance.StatusAbsent]
	halfDayCount := counts[attendance.StatusHalfDay]

	deductions := basicSalary.Mul(lateDeductionRate).Mul(decimal.NewFromInt(int64(lateCount))).
		Add(basicSalary.Mul(absentDeductionRate).Mul(decimal.NewFromInt(int64(absentCount)))).
		Add(basicSalary.Mul(halfDayDeductionRate).Mul(decimal.NewFromInt(int64(halfDayCount))))

	bpjsKesehatan := basicSalary.Mul(bpjsKesehatanRate)
	bpjsKetenagakerjaan := basicSalary.Mul(bpjsKetenagakerjaanRate)

	annual := basicSalary.Mul(twelve)
	pph21 := basicSalary.Mul(pph21MonthlyRate(annual)).Div(twelve)

	overtime := decimal.Zero
	totalEarnings := basicSalary.Add(allowances).Add(overtime)
	totalDeductions := deductions.Add(bpjsKesehatan).Add(bpjsKetenagakerjaan).Add(pph21)

	return CalculationResult{
		BasicSalary:         basicSalary,
		Allowances:          allowances,
		Overtime:            overtime,
		Deductions:          deductions,
		BPJSKesehatan:       bpjsKesehatan,
		BPJSKetenagakerjaan: bpjsKetenagakerjaan,
		PPh21:               pph21,
		TotalEarnings:       totalEarnings,
		TotalDeductions:     totalDeductions,
		NetSalary:           totalEarnings.Sub(totalDeductions),
		LateCount:           lateCount,
		AbsentCount:         absentCount,
		HalfDayCount:        halfDayCount,
	}
}
