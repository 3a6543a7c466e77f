package models

import "time"

// RequestLog is the audit trail of API requests. One row is written per
// request on every branch of every auth operation, success or failure.
type RequestLog struct {
	RequestID   uint      `gorm:"primaryKey" json:"request_id"`
	UserID      *uint     `gorm:"index" json:"user_id"`
	ApiKey      *string   `gorm:"size:255" json:"api_key"`
	Method      string    `gorm:"size:10;not null" json:"method"`
	Endpoint    string    `gorm:"size:255;not null" json:"endpoint"`
	StatusCode  int       `gorm:"not null" json:"status_code"`
	IPAddress   string    `gorm:"size:45;not null" json:"ip_address"`
	UserAgent   string    `gorm:"size:500" json:"user_agent"`
	RequestedAt time.Time `gorm:"not null" json:"requested_at"`
	ReqDate     string    `gorm:"size:10;not null;index" json:"req_date"`
}

func (RequestLog) TableName() string {
	return "requests"
}
