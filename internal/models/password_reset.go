package models

import "time"

// PasswordReset is a one-time password recovery credential. Only the SHA-256
// hash of the plaintext token is persisted. A consumed record keeps its
// used_at timestamp as an audit trail; an expired record is deleted on first
// use attempt.
type PasswordReset struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Email     string     `gorm:"size:255;not null;index" json:"email"`
	TokenHash string     `gorm:"size:64;not null" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	RequestIP string     `gorm:"size:45" json:"request_ip"`
	UserAgent string     `gorm:"size:500" json:"user_agent"`
	CreatedAt time.Time  `json:"created_at"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

// IsExpired reports whether the token lifetime has elapsed at the given time.
func (p *PasswordReset) IsExpired(now time.Time) bool {
	return now.After(p.ExpiresAt)
}

// IsUsed reports whether the token was already consumed.
func (p *PasswordReset) IsUsed() bool {
	return p.UsedAt != nil
}
