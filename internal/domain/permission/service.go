package permission

import (
	"context"
)

// PermissionService governs the request lifecycle: creation through dual
// approval, rejection, or cancellation.
type PermissionService interface {
	// Create admits a new request after quota and duration checks.
	Create(ctx context.Context, req CreatePermissionRequest) (PermissionResponse, error)

	// Get returns one request; non-privileged callers only see their own.
	Get(ctx context.Context, id string) (PermissionResponse, error)

	// GetMy lists the caller's own requests.
	GetMy(ctx context.Context, filter PermissionFilter) (ListPermissionResponse, error)

	// List is the privileged view across users.
	List(ctx context.Context, filter PermissionFilter) (ListPermissionResponse, error)

	// ApproveStage1 moves pending -> approved_by_approval (approval role).
	ApproveStage1(ctx context.Context, req ApproveRequest) (PermissionResponse, error)

	// RejectStage1 moves pending -> rejected (approval role).
	RejectStage1(ctx context.Context, req RejectRequest) (PermissionResponse, error)

	// ApproveStage2 moves approved_by_approval -> approved (HRD).
	ApproveStage2(ctx context.Context, req ApproveRequest) (PermissionResponse, error)

	// RejectStage2 moves approved_by_approval -> rejected (HRD).
	RejectStage2(ctx context.Context, req RejectRequest) (PermissionResponse, error)

	// Cancel is owner-only and blocked only for canceled/rejected requests.
	Cancel(ctx context.Context, req CancelRequest) (PermissionResponse, error)

	// Update replaces supplied fields on a pending request (owner only).
	Update(ctx context.Context, req UpdatePermissionRequest) (PermissionResponse, error)

	// Delete removes a request: owner while pending, admin in any status.
	Delete(ctx context.Context, id string) error

	// GetQuotas returns the caller's per-type usage for the current month.
	GetQuotas(ctx context.Context) ([]QuotaResponse, error)
}

// ConfigService manages the admin-maintained per-type rules.
type ConfigService interface {
	CreateConfig(ctx context.Context, req CreateConfigRequest) (ConfigResponse, error)
	GetConfig(ctx context.Context, id string) (ConfigResponse, error)
	ListConfigs(ctx context.Context, activeOnly bool) ([]ConfigResponse, error)
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
	DeleteConfig(ctx context.Context, id string) error
}
