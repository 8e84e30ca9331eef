package dto

// ── assignment / template / comment DTOs ──

// AssignProfessorRequest assign a professor to a discipline
type AssignProfessorRequest struct {
	ProfessorID string `json:"professor_id" binding:"required"`
}

// TemplateRequest template fields; nil keeps the current (or default) value
type TemplateRequest struct {
	SessionLabel       *string `json:"session_label"        validate:"omitempty,min=1,max=50"`
	Numbering          *string `json:"numbering"            validate:"omitempty,oneof=NUMERIC ALPHABETIC ROMAN"`
	MinAuthorMaterials *int    `json:"min_author_materials" validate:"omitempty,min=0"`
	MinStudyActivities *int    `json:"min_study_activities" validate:"omitempty,min=0"`
	MinEvaluations     *int    `json:"min_evaluations"      validate:"omitempty,min=0"`
}

// CreateCommentRequest admin comment body
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}
