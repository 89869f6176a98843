package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
)

type permissionConfigRepositoryImpl struct {
	db *database.DB
}

func NewPermissionConfigRepository(db *database.DB) permission.ConfigRepository {
	return &permissionConfigRepositoryImpl{db: db}
}

const permissionConfigColumns = `id, type, label, max_per_month, max_duration_days, description, is_active, created_at, updated_at`

func scanPermissionConfig(row pgx.Row) (permission.Config, error) {
	var cfg permission.Config
	err := row.Scan(
		&cfg.ID, &cfg.Type, &cfg.Label, &cfg.MaxPerMonth, &cfg.MaxDurationDays,
		&cfg.Description, &cfg.IsActive, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}

func (r *permissionConfigRepositoryImpl) Create(ctx context.Context, cfg permission.Config) (permission.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO permission_configs (
			id, type, label, max_per_month, max_duration_days, description, is_active, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING %s
	`, permissionConfigColumns)

	created, err := scanPermissionConfig(q.QueryRow(ctx, query,
		cfg.Type, cfg.Label, cfg.MaxPerMonth, cfg.MaxDurationDays, cfg.Description, cfg.IsActive,
	))
	if err != nil {
		if strings.Contains(err.Error(), "permission_configs_type_active_key") {
			return permission.Config{}, permission.ErrConfigTypeExists
		}
		return permission.Config{}, fmt.Errorf("failed to create permission config: %w", err)
	}

	return created, nil
}

func (r *permissionConfigRepositoryImpl) GetByID(ctx context.Context, id string) (permission.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM permission_configs WHERE id = $1`, permissionConfigColumns)

	cfg, err := scanPermissionConfig(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return permission.Config{}, permission.ErrConfigNotFound
		}
		return permission.Config{}, fmt.Errorf("failed to get permission config by ID: %w", err)
	}

	return cfg, nil
}

func (r *permissionConfigRepositoryImpl) GetActiveByType(ctx context.Context, permissionType permission.Type) (permission.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM permission_configs
		WHERE type = $1 AND is_active = TRUE
		ORDER BY updated_at DESC
		LIMIT 1
	`, permissionConfigColumns)

	cfg, err := scanPermissionConfig(q.QueryRow(ctx, query, permissionType))
	if err != nil {
		if err == pgx.ErrNoRows {
			return permission.Config{}, permission.ErrConfigNotFound
		}
		return permission.Config{}, fmt.Errorf("failed to get active permission config: %w", err)
	}

	return cfg, nil
}

func (r *permissionConfigRepositoryImpl) HasActiveByType(ctx context.Context, permissionType permission.Type, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM permission_configs WHERE type = $1 AND is_active = TRUE`
	args := []interface{}{permissionType}
	if excludeID != nil {
		query += ` AND id != $2`
		args = append(args, *excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check permission config existence: %w", err)
	}

	return exists, nil
}

func (r *permissionConfigRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]permission.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM permission_configs`, permissionConfigColumns)
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY type ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query permission configs: %w", err)
	}
	defer rows.Close()

	var configs []permission.Config
	for rows.Next() {
		cfg, err := scanPermissionConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *permissionConfigRepositoryImpl) Update(ctx context.Context, cfg permission.Config) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE permission_configs SET
			type = $1, label = $2, max_per_month = $3, max_duration_days = $4,
			description = $5, is_active = $6, updated_at = NOW()
		WHERE id = $7
	`

	commandTag, err := q.Exec(ctx, query,
		cfg.Type, cfg.Label, cfg.MaxPerMonth, cfg.MaxDurationDays,
		cfg.Description, cfg.IsActive, cfg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update permission config: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return permission.ErrConfigNotFound
	}

	return nil
}

func (r *permissionConfigRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM permission_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete permission config: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return permission.ErrConfigNotFound
	}

	return nil
}
