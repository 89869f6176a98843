package permission

import (
	"time"

	"github.com/karyahr/ess-backend-go/internal/pkg/validator"
)

type CreatePermissionRequest struct {
	Type      string `json:"type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: short_leave, cuti, visit, dinas",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date (YYYY-MM-DD)",
		})
	}

	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdatePermissionRequest struct {
	ID        string  `json:"-"`
	Type      *string `json:"type,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdatePermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "permission id is required",
		})
	}

	if r.Type != nil && !IsValidType(*r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: short_leave, cuti, visit, dinas",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.Reason != nil && validator.IsEmpty(*r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveRequest struct {
	ID   string  `json:"-"`
	Note *string `json:"note,omitempty"`
}

type RejectRequest struct {
	ID              string `json:"-"`
	RejectionReason string `json:"rejection_reason"`
}

func (r *RejectRequest) Validate() error {
	if validator.IsEmpty(r.RejectionReason) {
		return ErrRejectionReasonRequired
	}
	return nil
}

type CancelRequest struct {
	ID           string `json:"-"`
	CancelReason string `json:"cancel_reason"`
}

func (r *CancelRequest) Validate() error {
	if validator.IsEmpty(r.CancelReason) {
		return ErrCancelReasonRequired
	}
	return nil
}

type CreateConfigRequest struct {
	Type            string  `json:"type"`
	Label           string  `json:"label"`
	MaxPerMonth     int     `json:"max_per_month"`
	MaxDurationDays int     `json:"max_duration_days"`
	Description     *string `json:"description,omitempty"`
}

func (r *CreateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: short_leave, cuti, visit, dinas",
		})
	}

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if r.MaxPerMonth < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_per_month",
			Message: "max_per_month must be at least 1",
		})
	}

	if r.MaxDurationDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_duration_days",
			Message: "max_duration_days must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateConfigRequest struct {
	ID              string  `json:"-"`
	Label           *string `json:"label,omitempty"`
	MaxPerMonth     *int    `json:"max_per_month,omitempty"`
	MaxDurationDays *int    `json:"max_duration_days,omitempty"`
	Description     *string `json:"description,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "config id is required",
		})
	}

	if r.Label != nil && validator.IsEmpty(*r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label must not be empty",
		})
	}

	if r.MaxPerMonth != nil && *r.MaxPerMonth < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_per_month",
			Message: "max_per_month must be at least 1",
		})
	}

	if r.MaxDurationDays != nil && *r.MaxDurationDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_duration_days",
			Message: "max_duration_days must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PermissionFilter narrows privileged listing.
type PermissionFilter struct {
	UserID *string
	Status *string
	Type   *string
	Month  *int
	Year   *int
	Page   int
	Limit  int
}

type PermissionResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	UserName        *string `json:"user_name,omitempty"`
	Type            string  `json:"type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DurationDays    int     `json:"duration_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApprovalID      *string `json:"approval_id,omitempty"`
	ApprovalDate    *string `json:"approval_date,omitempty"`
	ApprovalNote    *string `json:"approval_note,omitempty"`
	HRDID           *string `json:"hrd_id,omitempty"`
	HRDDate         *string `json:"hrd_date,omitempty"`
	HRDNote         *string `json:"hrd_note,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	CancelReason    *string `json:"cancel_reason,omitempty"`
	CanceledAt      *string `json:"canceled_at,omitempty"`
	CanceledBy      *string `json:"canceled_by,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func formatTimePtr(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}

// ToResponse maps a stored permission to its API shape.
func ToResponse(p Permission) PermissionResponse {
	return PermissionResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		UserName:        p.UserName,
		Type:            string(p.Type),
		StartDate:       p.StartDate.Format("2006-01-02"),
		EndDate:         p.EndDate.Format("2006-01-02"),
		DurationDays:    p.DurationDays(),
		Reason:          p.Reason,
		Status:          string(p.Status),
		ApprovalID:      p.ApprovalID,
		ApprovalDate:    formatTimePtr(p.ApprovalDate, time.RFC3339),
		ApprovalNote:    p.ApprovalNote,
		HRDID:           p.HRDID,
		HRDDate:         formatTimePtr(p.HRDDate, time.RFC3339),
		HRDNote:         p.HRDNote,
		RejectionReason: p.RejectionReason,
		CancelReason:    p.CancelReason,
		CanceledAt:      formatTimePtr(p.CanceledAt, time.RFC3339),
		CanceledBy:      p.CanceledBy,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

// ConfigToResponse maps a stored config to its API shape.
func ConfigToResponse(cfg Config) ConfigResponse {
	return ConfigResponse{
		ID:              cfg.ID,
		Type:            string(cfg.Type),
		Label:           cfg.Label,
		MaxPerMonth:     cfg.MaxPerMonth,
		MaxDurationDays: cfg.MaxDurationDays,
		Description:     cfg.Description,
		IsActive:        cfg.IsActive,
	}
}

type ListPermissionResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Permissions []PermissionResponse `json:"permissions"`
}

type ConfigResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Label           string  `json:"label"`
	MaxPerMonth     int     `json:"max_per_month"`
	MaxDurationDays int     `json:"max_duration_days"`
	Description     *string `json:"description,omitempty"`
	IsActive        bool    `json:"is_active"`
}

// QuotaResponse is the read-only remaining-quota view for one type.
// Remaining may go negative when an admin lowers max_per_month after
// requests were filed; it is reported as-is.
type QuotaResponse struct {
	Type            string `json:"type"`
	Label           string `json:"label"`
	MaxPerMonth     int    `json:"max_per_month"`
	Used            int    `json:"used"`
	Remaining       int    `json:"remaining"`
	MaxDurationDays int    `json:"max_duration_days"`
}
