package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate returns the single row for (user, day) or
	// ErrAttendanceNotFound. Backs the get-or-create clock-in path.
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	Update(ctx context.Context, att Attendance) error

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	ListByUser(ctx context.Context, userID string, filter AttendanceFilter) ([]Attendance, int64, error)

	// CountByStatusInRange tallies a user's records per status within
	// [from, to]. Used by the payroll calculator.
	CountByStatusInRange(ctx context.Context, userID string, from, to time.Time) (map[Status]int, error)
}

// ConfigRepository defines data access for attendance configurations.
type ConfigRepository interface {
	Create(ctx context.Context, cfg Config) (Config, error)
	GetByID(ctx context.Context, id string) (Config, error)

	// GetEffective resolves the config for a department: an active
	// department-specific config wins over the active default (nil
	// department) config.
	GetEffective(ctx context.Context, departmentID *string) (Config, error)

	List(ctx context.Context) ([]Config, error)
	Update(ctx context.Context, cfg Config) error
	Delete(ctx context.Context, id string) error
}
