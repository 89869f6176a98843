package attendance

import (
	"context"
)

// AttendanceService classifies clock events against the effective schedule
// and geofence.
type AttendanceService interface {
	// ClockIn validates and records the first clock event of the day.
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut completes today's record; the status set at clock-in is kept.
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	// GetToday returns the caller's record for today, if any.
	GetToday(ctx context.Context) (AttendanceResponse, error)

	// GetMy lists the caller's attendance history.
	GetMy(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// List is the privileged view across users.
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
}

// ConfigService manages work-schedule and geofence rules (admin).
type ConfigService interface {
	CreateConfig(ctx context.Context, req CreateConfigRequest) (ConfigResponse, error)
	GetConfig(ctx context.Context, id string) (ConfigResponse, error)
	ListConfigs(ctx context.Context) ([]ConfigResponse, error)
	UpdateConfig(ctx context.Context, req UpdateConfigRequest) (ConfigResponse, error)
	DeleteConfig(ctx context.Context, id string) error
}
