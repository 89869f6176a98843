package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.user_id, a.date,
	a.clock_in_time, a.clock_in_latitude, a.clock_in_longitude, a.clock_in_photo,
	a.clock_out_time, a.clock_out_latitude, a.clock_out_longitude, a.clock_out_photo,
	a.status, a.is_valid, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, withUserName bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []interface{}{
		&att.ID, &att.UserID, &att.Date,
		&att.ClockInTime, &att.ClockInLatitude, &att.ClockInLongitude, &att.ClockInPhoto,
		&att.ClockOutTime, &att.ClockOutLatitude, &att.ClockOutLongitude, &att.ClockOutPhoto,
		&att.Status, &att.IsValid, &att.CreatedAt, &att.UpdatedAt,
	}
	if withUserName {
		dest = append(dest, &att.UserName)
	}
	err := row.Scan(dest...)
	return att, err
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO attendances (
			id, user_id, date,
			clock_in_time, clock_in_latitude, clock_in_longitude, clock_in_photo,
			status, is_valid, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING %s
	`, strings.ReplaceAll(attendanceColumns, "a.", ""))

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.UserID, att.Date,
		att.ClockInTime, att.ClockInLatitude, att.ClockInLongitude, att.ClockInPhoto,
		att.Status, att.IsValid,
	), false)
	if err != nil {
		if strings.Contains(err.Error(), "attendances_user_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.name AS user_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances a
		WHERE a.user_id = $1 AND a.date = $2
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return att, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			clock_in_time = $1, clock_in_latitude = $2, clock_in_longitude = $3, clock_in_photo = $4,
			clock_out_time = $5, clock_out_latitude = $6, clock_out_longitude = $7, clock_out_photo = $8,
			status = $9, is_valid = $10, updated_at = NOW()
		WHERE id = $11
	`

	commandTag, err := q.Exec(ctx, query,
		att.ClockInTime, att.ClockInLatitude, att.ClockInLongitude, att.ClockInPhoto,
		att.ClockOutTime, att.ClockOutLatitude, att.ClockOutLongitude, att.ClockOutPhoto,
		att.Status, att.IsValid, att.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

func buildAttendanceWhere(filter attendance.AttendanceFilter) (string, []interface{}, int) {
	where := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		where += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	return where, args, argIdx
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args, argIdx := buildAttendanceWhere(filter)

	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
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
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE %s
		ORDER BY a.date DESC, a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}

func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	filter.UserID = &userID
	return r.List(ctx, filter)
}

func (r *attendanceRepositoryImpl) CountByStatusInRange(ctx context.Context, userID string, from, to time.Time) (map[attendance.Status]int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendances by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[attendance.Status]int)
	for rows.Next() {
		var status attendance.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
