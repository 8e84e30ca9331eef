package model

import "gorm.io/gorm"

// AdminComment review note on a discipline or a session, stored in admin_comments
type AdminComment struct {
	ID           string  `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID       string  `gorm:"type:uuid;not null"       json:"user_id"`
	DisciplineID *string `gorm:"type:uuid;index"          json:"discipline_id,omitempty"`
	SessionID    *string `gorm:"type:uuid;index"          json:"session_id,omitempty"`
	Content      string  `gorm:"type:text;not null"       json:"content"`
	BaseModel

	User *User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
}

func (AdminComment) TableName() string { return "admin_comments" }

func (c *AdminComment) BeforeCreate(_ *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
