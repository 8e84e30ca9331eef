package model

import "gorm.io/gorm"

// User directory record of an externally authenticated identity, stored in users
type User struct {
	ID       string `gorm:"type:uuid;primaryKey"                     json:"id"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"   json:"email"`
	Name     string `gorm:"type:varchar(100)"                        json:"name,omitempty"`
	Role     Role   `gorm:"type:varchar(20);not null"                json:"role"`
	IsActive bool   `gorm:"not null;default:true"                    json:"is_active"`
	BaseModel
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(_ *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
