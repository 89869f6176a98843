package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanProcess(t *testing.T) {
	t.Parallel()

	p := Payroll{Status: StatusDraft}
	assert.NoError(t, p.CanProcess())

	for _, status := range []Status{StatusProcessed, StatusPaid} {
		p := Payroll{Status: status}
		assert.ErrorIs(t, p.CanProcess(), ErrNotDraft, "status %s", status)
	}
}

func TestCanMarkAsPaid(t *testing.T) {
	t.Parallel()

	p := Payroll{Status: StatusProcessed}
	assert.NoError(t, p.CanMarkAsPaid())

	for _, status := range []Status{StatusDraft, StatusPaid} {
		p := Payroll{Status: status}
		assert.ErrorIs(t, p.CanMarkAsPaid(), ErrNotProcessed, "status %s", status)
	}
}
