package payroll

import (
	"testing"
	"time"

	"github.com/karyahr/ess-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPayslip(t *testing.T) {
	t.Parallel()

	name := "Siti Rahma"
	paid := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	p := payroll.Payroll{
		ID:                  "pr-1",
		UserID:              "u-1",
		UserName:            &name,
		Month:               3,
		Year:                2025,
		BasicSalary:         decimal.NewFromInt(8_000_000),
		Allowances:          decimal.NewFromInt(1_500_000),
		Overtime:            decimal.Zero,
		Deductions:          decimal.NewFromInt(480_000),
		BPJSKesehatan:       decimal.NewFromInt(80_000),
		BPJSKetenagakerjaan: decimal.NewFromInt(160_000),
		PPh21:               decimal.NewFromInt(100_000),
		TotalEarnings:       decimal.NewFromInt(9_500_000),
		TotalDeductions:     decimal.NewFromInt(820_000),
		NetSalary:           decimal.NewFromInt(8_680_000),
		Status:              payroll.StatusPaid,
		PaymentDate:         &paid,
	}

	data, err := renderPayslip(p)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Greater(t, len(data), 500)
}

func TestRenderPayslip_NoNameNoPaymentDate(t *testing.T) {
	t.Parallel()

	p := payroll.Payroll{
		Month:  1,
		Year:   2025,
		Status: payroll.StatusDraft,
	}

	data, err := renderPayslip(p)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestFormatIDR(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Rp 8000000.00", formatIDR(decimal.NewFromInt(8_000_000)))
	assert.Equal(t, "Rp 0.00", formatIDR(decimal.Zero))
}
