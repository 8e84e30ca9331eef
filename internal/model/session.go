package model

import "gorm.io/gorm"

// Session ordered content block of a discipline, stored in sessions
//
// Order is persisted in the "position" column; (discipline_id, position) is
// unique and deferred so a batch reorder may pass through duplicates.
type Session struct {
	ID           string      `gorm:"type:uuid;primaryKey"            json:"id"`
	DisciplineID string      `gorm:"type:uuid;not null;index"        json:"discipline_id"`
	Name         string      `gorm:"type:varchar(200);not null"      json:"name"`
	Type         SessionType `gorm:"type:varchar(20);not null"       json:"type"`
	Order        int         `gorm:"column:position;not null"        json:"order"`
	IsCompleted  bool        `gorm:"not null;default:false"          json:"is_completed"` // cache
	Content      string      `gorm:"type:text"                       json:"content"`
	BaseModel

	Materials   []Material   `gorm:"foreignKey:SessionID" json:"materials"`
	Activities  []Activity   `gorm:"foreignKey:SessionID" json:"activities"`
	Evaluations []Evaluation `gorm:"foreignKey:SessionID" json:"evaluations"`
	Extras      []Extra      `gorm:"foreignKey:SessionID" json:"extras"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) BeforeCreate(_ *gorm.DB) error {
	ensureID(&s.ID)
	return nil
}

// AuthorialMaterials counts materials written by the discipline author
func (s *Session) AuthorialMaterials() int {
	n := 0
	for i := range s.Materials {
		if s.Materials[i].IsAuthorial {
			n++
		}
	}
	return n
}
