package permission

import (
	"context"
	"time"
)

// PermissionRepository defines data access for permission requests.
type PermissionRepository interface {
	Create(ctx context.Context, p Permission) (Permission, error)
	GetByID(ctx context.Context, id string) (Permission, error)

	// Update persists the full mutable field set of p.
	Update(ctx context.Context, p Permission) error
	Delete(ctx context.Context, id string) error

	List(ctx context.Context, filter PermissionFilter) ([]Permission, int64, error)
	ListByUser(ctx context.Context, userID string, filter PermissionFilter) ([]Permission, int64, error)

	// CountActiveInMonth counts requests of the given type whose start date
	// falls in [from, to] and whose status still consumes quota.
	CountActiveInMonth(ctx context.Context, userID string, permissionType Type, from, to time.Time) (int, error)
}

// ConfigRepository defines data access for per-type permission rules.
type ConfigRepository interface {
	Create(ctx context.Context, cfg Config) (Config, error)
	GetByID(ctx context.Context, id string) (Config, error)
	GetActiveByType(ctx context.Context, permissionType Type) (Config, error)
	HasActiveByType(ctx context.Context, permissionType Type, excludeID *string) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]Config, error)
	Update(ctx context.Context, cfg Config) error
	Delete(ctx context.Context, id string) error
}
