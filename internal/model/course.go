package model

import "gorm.io/gorm"

// Course academic program grouping disciplines, stored in courses
type Course struct {
	ID          string     `gorm:"type:uuid;primaryKey"           json:"id"`
	Name        string     `gorm:"type:varchar(150);not null"     json:"name"`
	Description string     `gorm:"type:text"                      json:"description,omitempty"`
	Type        CourseType `gorm:"type:varchar(20);not null"      json:"type"`
	IsActive    bool       `gorm:"not null;default:true"          json:"is_active"`
	BaseModel
}

func (Course) TableName() string { return "courses" }

func (c *Course) BeforeCreate(_ *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
