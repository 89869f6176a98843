package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser     Role = "user"     // Regular employee
	RoleApproval Role = "approval" // First-stage reviewer (team lead)
	RoleHRD      Role = "hrd"      // Second-stage reviewer, final authority
	RoleAdmin    Role = "admin"    // Full access
)

func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleUser, RoleApproval, RoleHRD, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Department   *string
	Position     *string
	BasicSalary  decimal.Decimal
	Allowances   decimal.Decimal
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has full administrative access
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsApprover checks if user performs the first approval stage
func (u *User) IsApprover() bool {
	return u.Role == RoleApproval
}

// IsHRD checks if user performs the final approval stage
func (u *User) IsHRD() bool {
	return u.Role == RoleHRD
}

// CanViewAllPermissions checks if user may read other users' requests
func (u *User) CanViewAllPermissions() bool {
	return u.Role == RoleApproval || u.Role == RoleHRD || u.Role == RoleAdmin
}
