package user

import "errors"

// User domain errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailExists           = errors.New("email already registered")
	ErrUserInactive          = errors.New("user account is inactive")
	ErrInvalidRole           = errors.New("invalid role")
	ErrAdminAccessRequired   = errors.New("admin access required")
	ErrForbidden             = errors.New("you are not allowed to access this resource")
	ErrInsufficientPrivilege = errors.New("insufficient privileges for this operation")
)
