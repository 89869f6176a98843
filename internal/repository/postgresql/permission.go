package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
)

type permissionRepositoryImpl struct {
	db *database.DB
}

func NewPermissionRepository(db *database.DB) permission.PermissionRepository {
	return &permissionRepositoryImpl{db: db}
}

const permissionColumns = `p.id, p.user_id, p.type, p.start_date, p.end_date, p.reason, p.status,
	p.approval_id, p.approval_date, p.approval_note,
	p.hrd_id, p.hrd_date, p.hrd_note,
	p.rejection_reason, p.cancel_reason, p.canceled_at, p.canceled_by,
	p.created_at, p.updated_at`

func scanPermission(row pgx.Row, withUserName bool) (permission.Permission, error) {
	var p permission.Permission
	dest := []interface{}{
		&p.ID, &p.UserID, &p.Type, &p.StartDate, &p.EndDate, &p.Reason, &p.Status,
		&p.ApprovalID, &p.ApprovalDate, &p.ApprovalNote,
		&p.HRDID, &p.HRDDate, &p.HRDNote,
		&p.RejectionReason, &p.CancelReason, &p.CanceledAt, &p.CanceledBy,
		&p.CreatedAt, &p.UpdatedAt,
	}
	if withUserName {
		dest = append(dest, &p.UserName)
	}
	err := row.Scan(dest...)
	return p, err
}

func (r *permissionRepositoryImpl) Create(ctx context.Context, p permission.Permission) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO permissions (
			id, user_id, type, start_date, end_date, reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW()
		) RETURNING %s
	`, strings.ReplaceAll(permissionColumns, "p.", ""))

	created, err := scanPermission(q.QueryRow(ctx, query,
		p.UserID, p.Type, p.StartDate, p.EndDate, p.Reason, p.Status,
	), false)
	if err != nil {
		return permission.Permission{}, fmt.Errorf("failed to create permission: %w", err)
	}

	return created, nil
}

func (r *permissionRepositoryImpl) GetByID(ctx context.Context, id string) (permission.Permission, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.name AS user_name
		FROM permissions p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`, permissionColumns)

	p, err := scanPermission(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return permission.Permission{}, permission.ErrPermissionNotFound
		}
		return permission.Permission{}, fmt.Errorf("failed to get permission by ID: %w", err)
	}

	return p, nil
}

func (r *permissionRepositoryImpl) Update(ctx context.Context, p permission.Permission) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE permissions SET
			type = $1, start_date = $2, end_date = $3, reason = $4, status = $5,
			approval_id = $6, approval_date = $7, approval_note = $8,
			hrd_id = $9, hrd_date = $10, hrd_note = $11,
			rejection_reason = $12, cancel_reason = $13, canceled_at = $14, canceled_by = $15,
			updated_at = NOW()
		WHERE id = $16
	`

	commandTag, err := q.Exec(ctx, query,
		p.Type, p.StartDate, p.EndDate, p.Reason, p.Status,
		p.ApprovalID, p.ApprovalDate, p.ApprovalNote,
		p.HRDID, p.HRDDate, p.HRDNote,
		p.RejectionReason, p.CancelReason, p.CanceledAt, p.CanceledBy,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update permission: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return permission.ErrPermissionNotFound
	}

	return nil
}

func (r *permissionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return permission.ErrPermissionNotFound
	}

	return nil
}

func buildPermissionWhere(filter permission.PermissionFilter, startIdx int) (string, []interface{}, int) {
	where := "1=1"
	args := []interface{}{}
	argIdx := startIdx

	if filter.UserID != nil && *filter.UserID != "" {
		where += fmt.Sprintf(" AND p.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		where += fmt.Sprintf(" AND p.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.Month != nil && filter.Year != nil {
		where += fmt.Sprintf(" AND EXTRACT(MONTH FROM p.start_date) = $%d AND EXTRACT(YEAR FROM p.start_date) = $%d", argIdx, argIdx+1)
		args = append(args, *filter.Month, *filter.Year)
		argIdx += 2
	}

	return where, args, argIdx
}

func (r *permissionRepositoryImpl) List(ctx context.Context, filter permission.PermissionFilter) ([]permission.Permission, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args, argIdx := buildPermissionWhere(filter, 1)

	countQuery := "SELECT COUNT(*) FROM permissions p WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count permissions: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	offset := (page - 1) * limit

	selectQuery := fmt.Sprintf(`
		SELECT %s, u.name AS user_name
		FROM permissions p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, permissionColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	var permissions []permission.Permission
	for rows.Next() {
		p, err := scanPermission(rows, true)
		if err != nil {
			return nil, 0, err
		}
		permissions = append(permissions, p)
	}

	return permissions, total, rows.Err()
}

func (r *permissionRepositoryImpl) ListByUser(ctx context.Context, userID string, filter permission.PermissionFilter) ([]permission.Permission, int64, error) {
	filter.UserID = &userID
	return r.List(ctx, filter)
}

func (r *permissionRepositoryImpl) CountActiveInMonth(ctx context.Context, userID string, permissionType permission.Type, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM permissions
		WHERE user_id = $1
		  AND type = $2
		  AND start_date >= $3 AND start_date <= $4
		  AND status IN ('pending', 'approved_by_approval', 'approved')
	`

	var count int
	if err := q.QueryRow(ctx, query, userID, permissionType, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count permissions in month: %w", err)
	}

	return count, nil
}
