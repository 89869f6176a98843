package permission

import (
	"errors"
	"fmt"
)

// Permission domain errors
var (
	ErrPermissionNotFound = errors.New("permission request not found")
	ErrConfigNotFound     = errors.New("no active configuration for this permission type")
	ErrConfigTypeExists   = errors.New("an active configuration for this type already exists")
	ErrInvalidType        = errors.New("invalid permission type")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")

	// State machine guards
	ErrNotAwaitingApproval = errors.New("permission is not awaiting first-stage approval")
	ErrNotAwaitingHRD      = errors.New("permission is not awaiting HRD approval")
	ErrAlreadyFinalized    = errors.New("permission has already been canceled or rejected")
	ErrNotPending          = errors.New("only pending permissions can be modified")

	// Actor requirements
	ErrNotOwner                = errors.New("you do not own this permission request")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrCancelReasonRequired    = errors.New("cancel reason is required")
)

// QuotaExceededError is returned when a new request would exceed the monthly
// cap for its type. It carries the configured limit for the client message.
type QuotaExceededError struct {
	Type  Type
	Limit int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("monthly quota for %s exceeded (max %d per month)", e.Type, e.Limit)
}

// DurationExceededError is returned when the requested range is longer than
// the configured maximum for its type.
type DurationExceededError struct {
	Type  Type
	Limit int
}

func (e *DurationExceededError) Error() string {
	return fmt.Sprintf("duration for %s exceeds the maximum of %d days", e.Type, e.Limit)
}
