package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel audit timestamps embedded by every table
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// ensureID assigns a fresh UUID when the primary key is still empty.
// Keys are generated client-side so inserts behave the same on every dialect.
func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
