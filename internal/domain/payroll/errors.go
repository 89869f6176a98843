package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrPayrollExists   = errors.New("payroll for this user and period already exists")
	ErrInvalidPeriod   = errors.New("invalid payroll period")

	// Status progression guards
	ErrNotDraft     = errors.New("only a draft payroll can be processed")
	ErrNotProcessed = errors.New("only a processed payroll can be marked as paid")

	ErrPayslipNotReady = errors.New("payslip is only available once the payroll is processed")
)
