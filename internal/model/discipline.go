package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Discipline authored course unit, stored in disciplines
type Discipline struct {
	ID                     string           `gorm:"type:uuid;primaryKey"                        json:"id"`
	Name                   string           `gorm:"type:varchar(200);not null"                  json:"name"`
	Code                   string           `gorm:"type:varchar(50);not null;uniqueIndex"       json:"code"`
	Workload               int              `gorm:"not null"                                    json:"workload"`
	CourseType             CourseType       `gorm:"type:varchar(20);not null"                   json:"course_type"`
	CourseID               string           `gorm:"type:uuid;not null;index"                    json:"course_id"`
	HasEADHours            bool             `gorm:"column:has_ead_hours;not null;default:false" json:"has_ead_hours"`
	HasPracticalHours      bool             `gorm:"not null;default:false"                      json:"has_practical_hours"`
	HasIntegratedProject   bool             `gorm:"not null;default:false"                      json:"has_integrated_project"`
	HasPresentialExam      bool             `gorm:"not null;default:false"                      json:"has_presential_exam"`
	IsLicensure            bool             `gorm:"column:is_licenciatura;not null;default:false" json:"is_licenciatura"`
	HasComplementaryEval   bool             `gorm:"not null;default:false"                      json:"has_complementary_eval"`
	HasExtensionCurriculum bool             `gorm:"not null;default:false"                      json:"has_extension_curriculum"`
	NeedsPresentialTool    bool             `gorm:"not null;default:false"                      json:"needs_presential_tool"`
	Status                 DisciplineStatus `gorm:"type:varchar(20);not null;default:'CREATED'" json:"status"`   // cache, see domain.DeriveStatus
	Progress               int              `gorm:"not null;default:0"                          json:"progress"` // cache, see domain.Progress
	DeliveryDate           *datatypes.Date  `gorm:"type:date"                                   json:"delivery_date"`
	LastAccess             *time.Time       `json:"last_access,omitempty"`
	CreatedBy              string           `gorm:"type:uuid;not null"                          json:"created_by"`
	BaseModel

	Course      *Course               `gorm:"foreignKey:CourseID;references:ID"  json:"course,omitempty"`
	Creator     *User                 `gorm:"foreignKey:CreatedBy;references:ID" json:"created_by_user,omitempty"`
	Sessions    []Session             `gorm:"foreignKey:DisciplineID"            json:"sessions,omitempty"`
	Templates   []DisciplineTemplate  `gorm:"foreignKey:DisciplineID"            json:"templates,omitempty"`
	Assignments []ProfessorDiscipline `gorm:"foreignKey:DisciplineID"            json:"assignments,omitempty"`
}

func (Discipline) TableName() string { return "disciplines" }

func (d *Discipline) BeforeCreate(_ *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}

// ActiveTemplate returns the active template, if any
func (d *Discipline) ActiveTemplate() *DisciplineTemplate {
	for i := range d.Templates {
		if d.Templates[i].IsActive {
			return &d.Templates[i]
		}
	}
	return nil
}

// DisciplineTemplate per-discipline thresholds and numbering, stored in discipline_templates
type DisciplineTemplate struct {
	ID                 string         `gorm:"type:uuid;primaryKey"            json:"id"`
	DisciplineID       string         `gorm:"type:uuid;not null;index"        json:"discipline_id"`
	SessionLabel       string         `gorm:"type:varchar(50);not null"       json:"session_label"`
	Numbering          NumberingStyle `gorm:"type:varchar(20);not null"       json:"numbering"`
	MinAuthorMaterials int            `gorm:"not null;default:0"              json:"min_author_materials"`
	MinStudyActivities int            `gorm:"not null;default:0"              json:"min_study_activities"`
	MinEvaluations     int            `gorm:"not null;default:0"              json:"min_evaluations"`
	IsActive           bool           `gorm:"not null;default:true"           json:"is_active"`
	BaseModel
}

func (DisciplineTemplate) TableName() string { return "discipline_templates" }

func (t *DisciplineTemplate) BeforeCreate(_ *gorm.DB) error {
	ensureID(&t.ID)
	return nil
}

// ProfessorDiscipline assignment of a professor to a discipline, stored in professor_disciplines
type ProfessorDiscipline struct {
	ID           string           `gorm:"type:uuid;primaryKey"                                  json:"id"`
	ProfessorID  string           `gorm:"type:uuid;not null;uniqueIndex:uq_professor_discipline" json:"professor_id"`
	DisciplineID string           `gorm:"type:uuid;not null;uniqueIndex:uq_professor_discipline" json:"discipline_id"`
	AssignedAt   time.Time        `gorm:"not null"                                              json:"assigned_at"`
	Status       AssignmentStatus `gorm:"type:varchar(20);not null;default:'PENDING'"           json:"status"` // cache, see domain.AssignmentStatusFor

	Professor  *User       `gorm:"foreignKey:ProfessorID;references:ID"  json:"professor,omitempty"`
	Discipline *Discipline `gorm:"foreignKey:DisciplineID;references:ID" json:"discipline,omitempty"`
}

func (ProfessorDiscipline) TableName() string { return "professor_disciplines" }

func (p *ProfessorDiscipline) BeforeCreate(_ *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
