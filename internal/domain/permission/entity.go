package permission

import (
	"time"
)

// Type enumerates the kinds of requests an employee can file.
type Type string

const (
	TypeShortLeave Type = "short_leave" // izin singkat, a few hours or a day
	TypeCuti       Type = "cuti"        // annual leave
	TypeVisit      Type = "visit"       // client/site visit
	TypeDinas      Type = "dinas"       // business trip
)

func IsValidType(t string) bool {
	switch Type(t) {
	case TypeShortLeave, TypeCuti, TypeVisit, TypeDinas:
		return true
	}
	return false
}

type Status string

const (
	StatusPending            Status = "pending"
	StatusApprovedByApproval Status = "approved_by_approval"
	StatusApproved           Status = "approved"
	StatusRejected           Status = "rejected"
	StatusCanceled           Status = "canceled"
)

// Permission is a single leave/visit/business-trip request.
type Permission struct {
	ID        string
	UserID    string
	Type      Type
	StartDate time.Time
	EndDate   time.Time
	Reason    string
	Status    Status

	// First-stage review
	ApprovalID   *string
	ApprovalDate *time.Time
	ApprovalNote *string

	// Second-stage (HRD) review
	HRDID   *string
	HRDDate *time.Time
	HRDNote *string

	RejectionReason *string

	// Cancellation by owner
	CancelReason *string
	CanceledAt   *time.Time
	CanceledBy   *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / join
	UserName *string
}

// Config is the admin-managed rule set for one permission type.
// Exactly one active config exists per type.
type Config struct {
	ID              string
	Type            Type
	Label           string
	MaxPerMonth     int
	MaxDurationDays int
	Description     *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DurationDays returns the inclusive day count of the requested range.
func (p *Permission) DurationDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours()/24) + 1
}

// IsTerminal reports whether no further transition is possible.
func (p *Permission) IsTerminal() bool {
	switch p.Status {
	case StatusApproved, StatusRejected, StatusCanceled:
		return true
	}
	return false
}

// CountsAgainstQuota reports whether this request consumes monthly quota.
// Rejected and canceled requests give the slot back.
func (p *Permission) CountsAgainstQuota() bool {
	switch p.Status {
	case StatusPending, StatusApprovedByApproval, StatusApproved:
		return true
	}
	return false
}

// CanApproveStage1 guards the pending -> approved_by_approval transition.
func (p *Permission) CanApproveStage1() error {
	if p.Status != StatusPending {
		return ErrNotAwaitingApproval
	}
	return nil
}

// CanRejectStage1 guards the pending -> rejected transition.
func (p *Permission) CanRejectStage1() error {
	if p.Status != StatusPending {
		return ErrNotAwaitingApproval
	}
	return nil
}

// CanApproveStage2 guards the approved_by_approval -> approved transition.
func (p *Permission) CanApproveStage2() error {
	if p.Status != StatusApprovedByApproval {
		return ErrNotAwaitingHRD
	}
	return nil
}

// CanRejectStage2 guards the approved_by_approval -> rejected transition.
func (p *Permission) CanRejectStage2() error {
	if p.Status != StatusApprovedByApproval {
		return ErrNotAwaitingHRD
	}
	return nil
}

// CanCancel guards cancellation by the owner. Only requests already
// canceled or rejected are blocked; a fully approved request can still
// be canceled, since plans change after approval and the quota count
// releases either way.
func (p *Permission) CanCancel() error {
	if p.Status == StatusCanceled || p.Status == StatusRejected {
		return ErrAlreadyFinalized
	}
	return nil
}

// CanEdit guards owner update/delete, which are pending-only.
func (p *Permission) CanEdit() error {
	if p.Status != StatusPending {
		return ErrNotPending
	}
	return nil
}
