package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypePermissionCreated    NotificationType = "permission_created"
	TypePermissionStatus     NotificationType = "permission_status"
	TypeAttendanceLate       NotificationType = "attendance_late"
	TypeAttendanceEarlyLeave NotificationType = "attendance_early_leave"
	TypePayrollProcessed     NotificationType = "payroll_processed"
	TypePayrollPaid          NotificationType = "payroll_paid"
)

// Notification represents a notification entity
type Notification struct {
	ID        string
	UserID    string
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
