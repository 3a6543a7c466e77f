package models

import "time"

// Contact is a contact-book record owned by exactly one user.
type Contact struct {
	ContactID uint      `gorm:"primaryKey" json:"contact_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:150;not null" json:"name"`
	Phone     string    `gorm:"size:30;not null" json:"phone"`
	Email     string    `gorm:"size:255" json:"email"`
	Note      string    `gorm:"size:500" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Attributes []ContactAttribute `gorm:"foreignKey:ContactID" json:"attributes,omitempty"`
}

// ContactAttribute is a free-form key/value pair attached to a contact.
// attr_key is unique per contact.
type ContactAttribute struct {
	AttributeID uint      `gorm:"primaryKey" json:"attribute_id"`
	ContactID   uint      `gorm:"not null;uniqueIndex:idx_contact_attr_key" json:"contact_id"`
	AttrKey     string    `gorm:"size:100;not null;uniqueIndex:idx_contact_attr_key" json:"attr_key"`
	AttrValue   string    `gorm:"type:text;not null" json:"attr_value"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ContactAttribute) TableName() string {
	return "contact_attributes"
}
