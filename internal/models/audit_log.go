package models

import "time"

// AuditLog records entity mutations. Services call the audit collaborator
// explicitly after each mutating operation; there are no save hooks.
type AuditLog struct {
	LogID      uint      `gorm:"primaryKey" json:"log_id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	Action     string    `gorm:"size:100;not null" json:"action"`
	EntityType string    `gorm:"size:50;not null" json:"entity_type"`
	EntityID   uint      `gorm:"not null" json:"entity_id"`
	Details    string    `gorm:"type:text" json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
