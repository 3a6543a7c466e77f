package models

// UserDailyUsage counts quota-gated requests per user and calendar day. The
// quota window resets by a new row being created for each day, never by
// resetting an old one. Unique on (user_id, usage_date).
type UserDailyUsage struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	UserID       uint   `gorm:"not null;uniqueIndex:idx_user_usage_date" json:"user_id"`
	UsageDate    string `gorm:"size:10;not null;uniqueIndex:idx_user_usage_date" json:"usage_date"`
	RequestCount int    `gorm:"not null;default:0" json:"request_count"`
}

func (UserDailyUsage) TableName() string {
	return "user_daily_usages"
}
