package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionUserManage, true},
		{RoleAdmin, PermissionConfigManage, true},
		{RoleHRD, PermissionRequestApproveStage2, true},
		{RoleHRD, PermissionRequestApproveStage1, false},
		{RoleHRD, PermissionPayrollManage, true},
		{RoleHRD, PermissionConfigManage, false},
		{RoleApproval, PermissionRequestApproveStage1, true},
		{RoleApproval, PermissionRequestApproveStage2, false},
		{RoleApproval, PermissionPayrollManage, false},
		{RoleUser, PermissionRequestCreate, true},
		{RoleUser, PermissionRequestViewAll, false},
		{RoleUser, PermissionAttendanceViewAll, false},
		{RoleUser, PermissionPayrollViewOwn, true},
	}

	for _, tt := range tests {
		got := HasPermission(tt.role, tt.permission)
		assert.Equal(t, tt.want, got, "%s / %s", tt.role, tt.permission)
	}
}

func TestHasPermission_UnknownRole(t *testing.T) {
	t.Parallel()

	assert.False(t, HasPermission(Role("intern"), PermissionViewOwnProfile))
}
