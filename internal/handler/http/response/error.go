package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/karyahr/ess-backend-go/internal/domain/attendance"
	"github.com/karyahr/ess-backend-go/internal/domain/auth"
	"github.com/karyahr/ess-backend-go/internal/domain/notification"
	"github.com/karyahr/ess-backend-go/internal/domain/payroll"
	"github.com/karyahr/ess-backend-go/internal/domain/permission"
	"github.com/karyahr/ess-backend-go/internal/domain/user"
	"github.com/karyahr/ess-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Quota and duration errors carry the configured limit
	var quotaErr *permission.QuotaExceededError
	if errors.As(err, &quotaErr) {
		BadRequest(w, quotaErr.Error(), map[string]string{
			"type":          string(quotaErr.Type),
			"max_per_month": fmt.Sprintf("%d", quotaErr.Limit),
		})
		return
	}
	var durationErr *permission.DurationExceededError
	if errors.As(err, &durationErr) {
		BadRequest(w, durationErr.Error(), map[string]string{
			"type":              string(durationErr.Type),
			"max_duration_days": fmt.Sprintf("%d", durationErr.Limit),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrForbidden),
		errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrInsufficientPrivilege):
		Forbidden(w, "You do not have access to this resource")

	// Permission domain errors
	case errors.Is(err, permission.ErrPermissionNotFound):
		NotFound(w, "Permission request not found")
	case errors.Is(err, permission.ErrConfigNotFound):
		NotFound(w, "Permission configuration not found")
	case errors.Is(err, permission.ErrConfigTypeExists):
		Conflict(w, "An active configuration for this type already exists")
	case errors.Is(err, permission.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, permission.ErrNotAwaitingApproval),
		errors.Is(err, permission.ErrNotAwaitingHRD),
		errors.Is(err, permission.ErrAlreadyFinalized),
		errors.Is(err, permission.ErrNotPending):
		Conflict(w, err.Error())
	case errors.Is(err, permission.ErrNotOwner):
		Forbidden(w, "You do not own this permission request")
	case errors.Is(err, permission.ErrRejectionReasonRequired),
		errors.Is(err, permission.ErrCancelReasonRequired):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoConfigFound),
		errors.Is(err, attendance.ErrConfigNotFound):
		NotFound(w, "Attendance configuration not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "No clock-in recorded for today")
	case errors.Is(err, attendance.ErrNotWorkingDay):
		BadRequest(w, "Today is not a working day", nil)
	case errors.Is(err, attendance.ErrOutsideOfficeArea):
		BadRequest(w, "You are outside the allowed office area", nil)
	case errors.Is(err, attendance.ErrLocationRequired):
		BadRequest(w, "Location is required for attendance", nil)
	case errors.Is(err, attendance.ErrPhotoRequired):
		BadRequest(w, "Photo is required for attendance", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollExists):
		Conflict(w, "Payroll for this period already exists")
	case errors.Is(err, payroll.ErrNotDraft),
		errors.Is(err, payroll.ErrNotProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrPayslipNotReady):
		Conflict(w, "Payslip is only available once the payroll is processed")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Forbidden(w, "You do not have access to this notification")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
