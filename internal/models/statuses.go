package models

// UserRole is the numeric role claim carried in session tokens.
// 0 is administrator (unrestricted), 1 is standard (quota-bound).
type UserRole int

const (
	RoleAdmin    UserRole = 0
	RoleStandard UserRole = 1
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

type ApiKeyStatus string

const (
	ApiKeyStatusActive   ApiKeyStatus = "active"
	ApiKeyStatusInactive ApiKeyStatus = "inactive"
)
