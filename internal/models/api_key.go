package models

import "time"

// UserApiKey gates quota-bound traffic for standard accounts. The key string
// is a secret display value: it is returned in plaintext exactly once at
// registration and is never retrievable afterwards.
type UserApiKey struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	UserID     uint         `gorm:"not null;index" json:"user_id"`
	ApiKey     string       `gorm:"size:255;uniqueIndex;not null" json:"-"`
	Status     ApiKeyStatus `gorm:"size:50;not null;default:'active'" json:"status"`
	LastUsedAt *time.Time   `json:"last_used_at"`
	ExpiresAt  *time.Time   `json:"expires_at"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (UserApiKey) TableName() string {
	return "user_api_keys"
}

// IsActive reports whether the key admits quota-bound traffic.
func (k *UserApiKey) IsActive() bool {
	if k.Status != ApiKeyStatusActive {
		return false
	}
	if k.ExpiresAt != nil && k.ExpiresAt.Before(time.Now()) {
		return false
	}
	return true
}
