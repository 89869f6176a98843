package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
)

// Attendance holds one employee's record for one working day.
// At most one row exists per (user, date); clock-out updates it in place.
type Attendance struct {
	ID     string
	UserID string
	Date   time.Time

	ClockInTime      *time.Time
	ClockInLatitude  *float64
	ClockInLongitude *float64
	ClockInPhoto     *string

	ClockOutTime      *time.Time
	ClockOutLatitude  *float64
	ClockOutLongitude *float64
	ClockOutPhoto     *string

	Status  Status
	IsValid bool

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / join
	UserName *string
}

// OfficeLocation is one geofence center an employee may clock in from.
type OfficeLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Config is the work-schedule and geofence rule set. A config with a nil
// DepartmentID is the company-wide default; a department-specific active
// config takes precedence over it.
type Config struct {
	ID               string
	WorkStartTime    string // "HH:MM"
	WorkEndTime      string // "HH:MM"
	LateThreshold    int    // minutes of grace after work start
	LocationRequired bool
	PhotoRequired    bool
	OfficeLocations  []OfficeLocation
	MaxDistanceMeter float64
	WorkingDays      []int // 0=Sunday .. 6=Saturday
	IsActive         bool
	DepartmentID     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsWorkingDay reports whether the weekday is part of the schedule.
func (c *Config) IsWorkingDay(day time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// WorkStartOn anchors the configured start time onto the given date.
func (c *Config) WorkStartOn(date time.Time) (time.Time, error) {
	return anchorTimeOfDay(c.WorkStartTime, date)
}

// WorkEndOn anchors the configured end time onto the given date.
func (c *Config) WorkEndOn(date time.Time) (time.Time, error) {
	return anchorTimeOfDay(c.WorkEndTime, date)
}

// LateThresholdOn returns the instant after which a clock-in counts as late.
func (c *Config) LateThresholdOn(date time.Time) (time.Time, error) {
	start, err := c.WorkStartOn(date)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(c.LateThreshold) * time.Minute), nil
}

func anchorTimeOfDay(value string, date time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
