package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the identity record. Users are soft-deleted, never hard-deleted,
// so request logs and contacts keep their referential history.
type User struct {
	UserID       uint           `gorm:"primaryKey" json:"user_id"`
	Name         string         `gorm:"size:150;not null" json:"name"`
	Email        string         `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"column:password;not null" json:"-"`
	// Role and DailyQuota carry no column default: 0 is a meaningful value
	// for both (administrator, zero quota) and a default tag would make GORM
	// drop it from the INSERT. Callers set them explicitly.
	Role       UserRole   `gorm:"not null" json:"role"`
	Status     UserStatus `gorm:"size:50;not null;default:'active'" json:"status"`
	DailyQuota int        `gorm:"not null" json:"daily_quota"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	ApiKeys    []UserApiKey     `gorm:"foreignKey:UserID" json:"-"`
	Contacts   []Contact        `gorm:"foreignKey:UserID" json:"-"`
	DailyUsage []UserDailyUsage `gorm:"foreignKey:UserID" json:"-"`
}

// IsAdmin reports whether the user holds the administrator role. All
// admin-bypass decisions go through this method.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsActive reports whether the account admits authenticated traffic.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
