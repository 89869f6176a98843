package payroll

import (
	"context"
)

// PayrollService computes and advances monthly payroll records.
type PayrollService interface {
	// Calculate derives one payroll from the month's attendance and the
	// salary inputs, persisting it as a draft. A second calculation for
	// the same (user, month, year) is rejected.
	Calculate(ctx context.Context, req CalculateRequest) (PayrollResponse, error)

	// Process moves draft -> processed and notifies the employee.
	Process(ctx context.Context, id string) (PayrollResponse, error)

	// MarkAsPaid moves processed -> paid, recording the payment date
	// (defaults to now) and notifying the employee.
	MarkAsPaid(ctx context.Context, req MarkAsPaidRequest) (PayrollResponse, error)

	// Get returns one payroll; non-privileged callers only see their own.
	Get(ctx context.Context, id string) (PayrollResponse, error)

	// GetMy lists the caller's own payrolls.
	GetMy(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// List is the privileged view across users.
	List(ctx context.Context, filter PayrollFilter) (ListPayrollResponse, error)

	// GeneratePayslipPDF renders a payslip for a processed or paid payroll.
	GeneratePayslipPDF(ctx context.Context, id string) ([]byte, error)
}
