package attendance

import (
	"time"

	"github.com/karyahr/ess-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Photo     *string  `json:"photo,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Photo     *string  `json:"photo,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	return validateCoordinates(r.Latitude, r.Longitude)
}

// validateCoordinates only checks ranges; whether coordinates are required
// at all depends on the effective config and is enforced by the service.
func validateCoordinates(lat, lon *float64) error {
	var errs validator.ValidationErrors

	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if lon != nil && !validator.IsValidLongitude(*lon) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if (lat == nil) != (lon == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be supplied together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateConfigRequest struct {
	WorkStartTime    string           `json:"work_start_time"`
	WorkEndTime      string           `json:"work_end_time"`
	LateThreshold    int              `json:"late_threshold"`
	LocationRequired bool             `json:"location_required"`
	PhotoRequired    bool             `json:"photo_required"`
	OfficeLocations  []OfficeLocation `json:"office_locations"`
	MaxDistanceMeter float64          `json:"max_distance_meters"`
	WorkingDays      []int            `json:"working_days"`
	DepartmentID     *string          `json:"department_id,omitempty"`
}

func (r *CreateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidTimeOfDay(r.WorkStartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "work_start_time must be in HH:MM format",
		})
	}

	if _, ok := validator.IsValidTimeOfDay(r.WorkEndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "work_end_time must be in HH:MM format",
		})
	}

	if r.LateThreshold < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold",
			Message: "late_threshold must not be negative",
		})
	}

	if r.LocationRequired {
		if len(r.OfficeLocations) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "office_locations",
				Message: "at least one office location is required when location is required",
			})
		}
		if r.MaxDistanceMeter <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "max_distance_meters",
				Message: "max_distance_meters must be positive when location is required",
			})
		}
	}

	for _, loc := range r.OfficeLocations {
		if !validator.IsValidLatitude(loc.Latitude) || !validator.IsValidLongitude(loc.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "office_locations",
				Message: "office location coordinates are out of range",
			})
			break
		}
	}

	if len(r.WorkingDays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "working_days",
			Message: "working_days is required",
		})
	}
	for _, d := range r.WorkingDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateConfigRequest struct {
	ID               string           `json:"-"`
	WorkStartTime    *string          `json:"work_start_time,omitempty"`
	WorkEndTime      *string          `json:"work_end_time,omitempty"`
	LateThreshold    *int             `json:"late_threshold,omitempty"`
	LocationRequired *bool            `json:"location_required,omitempty"`
	PhotoRequired    *bool            `json:"photo_required,omitempty"`
	OfficeLocations  []OfficeLocation `json:"office_locations,omitempty"`
	MaxDistanceMeter *float64         `json:"max_distance_meters,omitempty"`
	WorkingDays      []int            `json:"working_days,omitempty"`
	IsActive         *bool            `json:"is_active,omitempty"`
}

func (r *UpdateConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "config id is required",
		})
	}

	if r.WorkStartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.WorkStartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_start_time",
				Message: "work_start_time must be in HH:MM format",
			})
		}
	}

	if r.WorkEndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.WorkEndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_end_time",
				Message: "work_end_time must be in HH:MM format",
			})
		}
	}

	if r.LateThreshold != nil && *r.LateThreshold < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_threshold",
			Message: "late_threshold must not be negative",
		})
	}

	for _, d := range r.WorkingDays {
		if d < 0 || d > 6 {
			errs = append(errs, validator.ValidationError{
				Field:   "working_days",
				Message: "working_days entries must be between 0 (Sunday) and 6 (Saturday)",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceFilter narrows attendance listing.
type AttendanceFilter struct {
	UserID    *string
	Status    *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

type AttendanceResponse struct {
	ID                string   `json:"id"`
	UserID            string   `json:"user_id"`
	UserName          *string  `json:"user_name,omitempty"`
	Date              string   `json:"date"`
	ClockInTime       *string  `json:"clock_in_time,omitempty"`
	ClockOutTime      *string  `json:"clock_out_time,omitempty"`
	ClockInLatitude   *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_longitude,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_longitude,omitempty"`
	ClockInPhoto      *string  `json:"clock_in_photo,omitempty"`
	ClockOutPhoto     *string  `json:"clock_out_photo,omitempty"`
	Status            string   `json:"status"`
	IsValid           bool     `json:"is_valid"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// ToResponse maps a stored attendance record to its API shape.
func ToResponse(att Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                att.ID,
		UserID:            att.UserID,
		UserName:          att.UserName,
		Date:              att.Date.Format("2006-01-02"),
		ClockInTime:       formatTimePtr(att.ClockInTime),
		ClockOutTime:      formatTimePtr(att.ClockOutTime),
		ClockInLatitude:   att.ClockInLatitude,
		ClockInLongitude:  att.ClockInLongitude,
		ClockOutLatitude:  att.ClockOutLatitude,
		ClockOutLongitude: att.ClockOutLongitude,
		ClockInPhoto:      att.ClockInPhoto,
		ClockOutPhoto:     att.ClockOutPhoto,
		Status:            string(att.Status),
		IsValid:           att.IsValid,
	}
}

// ConfigToResponse maps a stored config to its API shape.
func ConfigToResponse(cfg Config) ConfigResponse {
	return ConfigResponse{
		ID:               cfg.ID,
		WorkStartTime:    cfg.WorkStartTime,
		WorkEndTime:      cfg.WorkEndTime,
		LateThreshold:    cfg.LateThreshold,
		LocationRequired: cfg.LocationRequired,
		PhotoRequired:    cfg.PhotoRequired,
		OfficeLocations:  cfg.OfficeLocations,
		MaxDistanceMeter: cfg.MaxDistanceMeter,
		WorkingDays:      cfg.WorkingDays,
		IsActive:         cfg.IsActive,
		DepartmentID:     cfg.DepartmentID,
	}
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type ConfigResponse struct {
	ID               string           `json:"id"`
	WorkStartTime    string           `json:"work_start_time"`
	WorkEndTime      string           `json:"work_end_time"`
	LateThreshold    int              `json:"late_threshold"`
	LocationRequired bool             `json:"location_required"`
	PhotoRequired    bool             `json:"photo_required"`
	OfficeLocations  []OfficeLocation `json:"office_locations"`
	MaxDistanceMeter float64          `json:"max_distance_meters"`
	WorkingDays      []int            `json:"working_days"`
	IsActive         bool             `json:"is_active"`
	DepartmentID     *string          `json:"department_id,omitempty"`
}
