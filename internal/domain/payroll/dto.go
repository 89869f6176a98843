package payroll

import (
	"time"

	"github.com/karyahr/ess-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculateRequest struct {
	UserID string `json:"user_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`

	// Optional overrides; the user's stored salary fields are used when
	// these are not supplied.
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Allowances  *decimal.Decimal `json:"allowances,omitempty"`
}

func (r *CalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "basic_salary",
			Message: "basic_salary must not be negative",
		})
	}

	if r.Allowances != nil && r.Allowances.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "allowances",
			Message: "allowances must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkAsPaidRequest struct {
	ID          string  `json:"-"`
	PaymentDate *string `json:"payment_date,omitempty"`
}

func (r *MarkAsPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "payroll id is required",
		})
	}

	if r.PaymentDate != nil {
		if _, ok := validator.IsValidDate(*r.PaymentDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_date",
				Message: "payment_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PayrollFilter narrows payroll listing.
type PayrollFilter struct {
	UserID *string
	Month  *int
	Year   *int
	Status *string
	Page   int
	Limit  int
}

type PayrollResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	UserName            *string         `json:"user_name,omitempty"`
	Month               int             `json:"month"`
	Year                int             `json:"year"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	Allowances          decimal.Decimal `json:"allowances"`
	Overtime            decimal.Decimal `json:"overtime"`
	Deductions          decimal.Decimal `json:"deductions"`
	BPJSKesehatan       decimal.Decimal `json:"bpjs_kesehatan"`
	BPJSKetenagakerjaan decimal.Decimal `json:"bpjs_ketenagakerjaan"`
	PPh21               decimal.Decimal `json:"pph21"`
	TotalEarnings       decimal.Decimal `json:"total_earnings"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetSalary           decimal.Decimal `json:"net_salary"`
	Status              string          `json:"status"`
	PaymentDate         *string         `json:"payment_date,omitempty"`
	Notes               *string         `json:"notes,omitempty"`
	CreatedAt           string          `json:"created_at"`
}

// ToResponse maps a stored payroll to its API shape.
func ToResponse(p Payroll) PayrollResponse {
	var paymentDate *string
	if p.PaymentDate != nil {
		s := p.PaymentDate.Format("2006-01-02")
		paymentDate = &s
	}

	return PayrollResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		UserName:            p.UserName,
		Month:               p.Month,
		Year:                p.Year,
		BasicSalary:         p.BasicSalary,
		Allowances:          p.Allowances,
		Overtime:            p.Overtime,
		Deductions:          p.Deductions,
		BPJSKesehatan:       p.BPJSKesehatan,
		BPJSKetenagakerjaan: p.BPJSKetenagakerjaan,
		PPh21:               p.PPh21,
		TotalEarnings:       p.TotalEarnings,
		TotalDeductions:     p.TotalDeductions,
		NetSalary:           p.NetSalary,
		Status:              string(p.Status),
		PaymentDate:         paymentDate,
		Notes:               p.Notes,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
	}
}

type ListPayrollResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Payrolls   []PayrollResponse `json:"payrolls"`
}
