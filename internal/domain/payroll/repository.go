package payroll

import (
	"context"
)

// PayrollRepository defines data access for payroll records.
type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)
	GetByID(ctx context.Context, id string) (Payroll, error)

	// ExistsForPeriod enforces the one-payroll-per-(user, month, year) rule.
	ExistsForPeriod(ctx context.Context, userID string, month, year int) (bool, error)

	// Update persists status, payment date, and notes.
	Update(ctx context.Context, p Payroll) error

	List(ctx context.Context, filter PayrollFilter) ([]Payroll, int64, error)
	ListByUser(ctx context.Context, userID string, filter PayrollFilter) ([]Payroll, int64, error)
}
