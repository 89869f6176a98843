package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
)

type attendanceConfigRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceConfigRepository(db *database.DB) attendance.ConfigRepository {
	return &attendanceConfigRepositoryImpl{db: db}
}

// office_locations and working_days live in JSONB columns; pgx marshals the
// slices through its JSON codec on both scan and exec.
const attendanceConfigColumns = `id, work_start_time, work_end_time, late_threshold,
	location_required, photo_required, office_locations, max_distance_meter,
	working_days, is_active, department_id, created_at, updated_at`

func scanAttendanceConfig(row pgx.Row) (attendance.Config, error) {
	var cfg attendance.Config
	err := row.Scan(
		&cfg.ID, &cfg.WorkStartTime, &cfg.WorkEndTime, &cfg.LateThreshold,
		&cfg.LocationRequired, &cfg.PhotoRequired, &cfg.OfficeLocations, &cfg.MaxDistanceMeter,
		&cfg.WorkingDays, &cfg.IsActive, &cfg.DepartmentID, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	return cfg, err
}

func (r *attendanceConfigRepositoryImpl) Create(ctx context.Context, cfg attendance.Config) (attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendance_configs (
			id, work_start_time, work_end_time, late_threshold,
			location_required, photo_required, office_locations, max_distance_meter,
			working_days, is_active, department_id, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW()
		) RETURNING %s
	`, attendanceConfigColumns)

	created, err := scanAttendanceConfig(q.QueryRow(ctx, query,
		cfg.WorkStartTime, cfg.WorkEndTime, cfg.LateThreshold,
		cfg.LocationRequired, cfg.PhotoRequired, cfg.OfficeLocations, cfg.MaxDistanceMeter,
		cfg.WorkingDays, cfg.IsActive, cfg.DepartmentID,
	))
	if err != nil {
		return attendance.Config{}, fmt.Errorf("failed to create attendance config: %w", err)
	}

	return created, nil
}

func (r *attendanceConfigRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendance_configs WHERE id = $1`, attendanceConfigColumns)

	cfg, err := scanAttendanceConfig(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Config{}, attendance.ErrConfigNotFound
		}
		return attendance.Config{}, fmt.Errorf("failed to get attendance config by ID: %w", err)
	}

	return cfg, nil
}

func (r *attendanceConfigRepositoryImpl) GetEffective(ctx context.Context, departmentID *string) (attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	// A department-specific active config beats the company-wide default.
	query := fmt.Sprintf(`
		SELECT %s FROM attendance_configs
		WHERE is_active = TRUE
		  AND (department_id = $1 OR department_id IS NULL)
		ORDER BY department_id NULLS LAST, updated_at DESC
		LIMIT 1
	`, attendanceConfigColumns)

	cfg, err := scanAttendanceConfig(q.QueryRow(ctx, query, departmentID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Config{}, attendance.ErrNoConfigFound
		}
		return attendance.Config{}, fmt.Errorf("failed to get effective attendance config: %w", err)
	}

	return cfg, nil
}

func (r *attendanceConfigRepositoryImpl) List(ctx context.Context) ([]attendance.Config, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM attendance_configs ORDER BY created_at DESC`, attendanceConfigColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance configs: %w", err)
	}
	defer rows.Close()

	var configs []attendance.Config
	for rows.Next() {
		cfg, err := scanAttendanceConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	return configs, rows.Err()
}

func (r *attendanceConfigRepositoryImpl) Update(ctx context.Context, cfg attendance.Config) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_configs SET
			work_start_time = $1, work_end_time = $2, late_threshold = $3,
			location_required = $4, photo_required = $5, office_locations = $6,
			max_distance_meter = $7, working_days = $8, is_active = $9,
			department_id = $10, updated_at = NOW()
		WHERE id = $11
	`

	commandTag, err := q.Exec(ctx, query,
		cfg.WorkStartTime, cfg.WorkEndTime, cfg.LateThreshold,
		cfg.LocationRequired, cfg.PhotoRequired, cfg.OfficeLocations,
		cfg.MaxDistanceMeter, cfg.WorkingDays, cfg.IsActive,
		cfg.DepartmentID, cfg.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance config: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrConfigNotFound
	}

	return nil
}

func (r *attendanceConfigRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance config: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrConfigNotFound
	}

	return nil
}
