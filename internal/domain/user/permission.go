package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"

	// Permission Requests
	PermissionRequestCreate        Permission = "permission.create"
	PermissionRequestViewOwn       Permission = "permission.view_own"
	PermissionRequestViewAll       Permission = "permission.view_all"
	PermissionRequestApproveStage1 Permission = "permission.approve_stage1"
	PermissionRequestApproveStage2 Permission = "permission.approve_stage2"

	// Attendance
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Payroll
	PermissionPayrollViewOwn Permission = "payroll.view_own"
	PermissionPayrollManage  Permission = "payroll.manage"

	// Configuration (permission types, attendance rules)
	PermissionConfigManage Permission = "config.manage"

	// User Management
	PermissionUserManage Permission = "user.manage"

	// Notifications
	PermissionNotificationViewOwn Permission = "notification.view_own"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionViewOwnProfile,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionRequestViewAll,
		PermissionRequestApproveStage1,
		PermissionRequestApproveStage2,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionPayrollViewOwn,
		PermissionPayrollManage,
		PermissionConfigManage,
		PermissionUserManage,
		PermissionNotificationViewOwn,
	},
	RoleHRD: {
		// HRD performs the final approval stage and runs payroll
		PermissionViewOwnProfile,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionRequestViewAll,
		PermissionRequestApproveStage2,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionPayrollViewOwn,
		PermissionPayrollManage,
		PermissionNotificationViewOwn,
	},
	RoleApproval: {
		// First-stage reviewer can see and decide team requests
		PermissionViewOwnProfile,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionRequestViewAll,
		PermissionRequestApproveStage1,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionAttendanceViewAll,
		PermissionPayrollViewOwn,
		PermissionNotificationViewOwn,
	},
	RoleUser: {
		// Regular employee has self-service access only
		PermissionViewOwnProfile,
		PermissionRequestCreate,
		PermissionRequestViewOwn,
		PermissionAttendanceCreate,
		PermissionAttendanceViewOwn,
		PermissionPayrollViewOwn,
		PermissionNotificationViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
