package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNoConfigFound     = errors.New("no attendance configuration found for your department")
	ErrOutsideOfficeArea = errors.New("you are outside the allowed office area")
	ErrNotWorkingDay     = errors.New("today is not a working day")
	ErrLocationRequired  = errors.New("location coordinates are required")
	ErrPhotoRequired     = errors.New("a photo is required")

	// Clock-out errors
	ErrNotClockedIn      = errors.New("you have not clocked in today")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// Config errors
	ErrConfigNotFound = errors.New("attendance configuration not found")
)
