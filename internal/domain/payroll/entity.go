package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
)

// Payroll is one employee's computed salary for a calendar month.
// Status only moves forward: draft -> processed -> paid.
type Payroll struct {
	ID     string
	UserID string
	Month  int
	Year   int

	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Overtime    decimal.Decimal

	Deductions          decimal.Decimal // attendance-based deductions
	BPJSKesehatan       decimal.Decimal
	BPJSKetenagakerjaan decimal.Decimal
	PPh21               decimal.Decimal

	TotalEarnings   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	Status      Status
	PaymentDate *time.Time
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / join
	UserName *string
}

// CanProcess guards the draft -> processed transition.
func (p *Payroll) CanProcess() error {
	if p.Status != StatusDraft {
		return ErrNotDraft
	}
	return nil
}

// CanMarkAsPaid guards the processed -> paid transition.
func (p *Payroll) CanMarkAsPaid() error {
	if p.Status != StatusProcessed {
		return ErrNotProcessed
	}
	return nil
}
