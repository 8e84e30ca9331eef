package dto

import (
	"coursecraft/internal/domain"
	"coursecraft/internal/model"
)

// ── discipline DTOs ──

// CreateDisciplineRequest creation payload; validated in the service
type CreateDisciplineRequest struct {
	Name                   string           `json:"name"                     validate:"required,max=200"`
	Code                   string           `json:"code"                     validate:"required,max=50"`
	Workload               int              `json:"workload"                 validate:"gt=0"`
	CourseType             model.CourseType `json:"course_type"              validate:"required,course_type"`
	CourseID               string           `json:"course_id"                validate:"required,uuid"`
	HasEADHours            bool             `json:"has_ead_hours"`
	HasPracticalHours      bool             `json:"has_practical_hours"`
	HasIntegratedProject   bool             `json:"has_integrated_project"`
	HasPresentialExam      bool             `json:"has_presential_exam"`
	IsLicensure            bool             `json:"is_licenciatura"`
	HasComplementaryEval   bool             `json:"has_complementary_eval"`
	HasExtensionCurriculum bool             `json:"has_extension_curriculum"`
	NeedsPresentialTool    bool             `json:"needs_presential_tool"`
	DeliveryDate           string           `json:"delivery_date"            validate:"omitempty,datetime=2006-01-02"`
	Template               *TemplateRequest `json:"template"                 validate:"omitempty"`
}

// UpdateDisciplineRequest whitelisted partial update. Fields outside this
// struct (id, created_by, course_id, timestamps, status, progress) are
// dropped by decoding. DeliveryDate "" clears the date.
type UpdateDisciplineRequest struct {
	Name                   *string `json:"name"                     validate:"omitempty,min=1,max=200"`
	Code                   *string `json:"code"                     validate:"omitempty,min=1,max=50"`
	Workload               *int    `json:"workload"                 validate:"omitempty,gt=0"`
	HasEADHours            *bool   `json:"has_ead_hours"`
	HasPracticalHours      *bool   `json:"has_practical_hours"`
	HasIntegratedProject   *bool   `json:"has_integrated_project"`
	HasPresentialExam      *bool   `json:"has_presential_exam"`
	IsLicensure            *bool   `json:"is_licenciatura"`
	HasComplementaryEval   *bool   `json:"has_complementary_eval"`
	HasExtensionCurriculum *bool   `json:"has_extension_curriculum"`
	NeedsPresentialTool    *bool   `json:"needs_presential_tool"`
	DeliveryDate           *string `json:"delivery_date"`
}

// SessionView session with its unmet completeness requirements
type SessionView struct {
	model.Session
	UnmetRequirements []domain.Requirement `json:"unmet_requirements"`
}

// DisciplineAggregate full aggregate with derived fields
type DisciplineAggregate struct {
	model.Discipline
	Template model.DisciplineTemplate `json:"template"`
	Sessions []SessionView            `json:"sessions"`
}

// CompletionResponse result of the whole-discipline completeness check
type CompletionResponse struct {
	DisciplineID string               `json:"discipline_id"`
	Complete     bool                 `json:"complete"`
	Unmet        []domain.Requirement `json:"unmet"`
}
