package payroll

import (
	"testing"

	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculate_FullBreakdown(t *testing.T) {
	t.Parallel()

	basic := decimal.NewFromInt(8_000_000)
	allowances := decimal.NewFromInt(1_500_000)
	counts := map[attendance.Status]int{
		attendance.StatusLate:   2,
		attendance.StatusAbsent: 1,
	}

	result := Calculate(basic, allowances, counts)

	// 2 late days at 0.5% plus 1 absent day at 5% of basic.
	assert.True(t, decimal.NewFromInt(480_000).Equal(result.Deductions),
		"attendance deductions: got %s", result.Deductions)
	assert.True(t, decimal.NewFromInt(80_000).Equal(result.BPJSKesehatan))
	assert.True(t, decimal.NewFromInt(160_000).Equal(result.BPJSKetenagakerjaan))

	// Annualized 96M lands in the 15% bracket: 8M * 0.15 / 12 = 100,000.
	assert.True(t, decimal.NewFromInt(100_000).Equal(result.PPh21),
		"pph21: got %s", result.PPh21)

	assert.True(t, decimal.NewFromInt(9_500_000).Equal(result.TotalEarnings))
	assert.True(t, decimal.NewFromInt(820_000).Equal(result.TotalDeductions))
	assert.True(t, decimal.NewFromInt(8_680_000).Equal(result.NetSalary),
		"net salary: got %s", result.NetSalary)

	assert.Equal(t, 2, result.LateCount)
	assert.Equal(t, 1, result.AbsentCount)
	assert.Equal(t, 0, result.HalfDayCount)
	assert.True(t, result.Overtime.IsZero())
}

func TestCalculate_PerfectAttendance(t *testing.T) {
	t.Parallel()

	basic := decimal.NewFromInt(4_000_000)
	result := Calculate(basic, decimal.Zero, map[attendance.Status]int{
		attendance.StatusPresent: 22,
	})

	assert.True(t, result.Deductions.IsZero())
	// 48M annual stays inside the 5% bracket.
	expectedTax := basic.Mul(decimal.NewFromFloat(0.05)).Div(decimal.NewFromInt(12))
	assert.True(t, expectedTax.Equal(result.PPh21))
	assert.True(t, basic.Equal(result.TotalEarnings))
}

func TestCalculate_TaxAboveLowestBracket(t *testing.T) {
	t.Parallel()

	// 4.6M monthly annualizes to 55.2M, past the 50M bound, so the 15%
	// rate applies: 4,600,000 * 0.15 / 12 = 57,500.
	result := Calculate(decimal.NewFromInt(4_600_000), decimal.Zero, nil)

	assert.True(t, decimal.NewFromInt(57_500).Equal(result.PPh21),
		"pph21: got %s", result.PPh21)
}

func TestCalculate_HalfDayDeduction(t *testing.T) {
	t.Parallel()

	basic := decimal.NewFromInt(10_000_000)
	result := Calculate(basic, decimal.Zero, map[attendance.Status]int{
		attendance.StatusHalfDay: 2,
	})

	// 2 half days at 2.5% of basic each.
	assert.True(t, decimal.NewFromInt(500_000).Equal(result.Deductions))
	assert.Equal(t, 2, result.HalfDayCount)
}

func TestPPh21MonthlyRate_Brackets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		annual int64
		rate   float64
	}{
		{"lowest bracket", 40_000_000, 0.05},
		{"boundary of lowest bracket", 50_000_000, 0.05},
		{"just above lowest bracket", 55_200_000, 0.15},
		{"second bracket", 96_000_000, 0.15},
		{"third bracket", 400_000_000, 0.25},
		{"top rate", 600_000_000, 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pph21MonthlyRate(decimal.NewFromInt(tt.annual))
			assert.True(t, decimal.NewFromFloat(tt.rate).Equal(got),
				"annual %d: got rate %s", tt.annual, got)
		})
	}
}
