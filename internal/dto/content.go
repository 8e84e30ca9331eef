package dto

import "coursecraft/internal/model"

// ── session content DTOs ──

// CreateMaterialRequest exactly one of FileURL/LinkURL must be set
type CreateMaterialRequest struct {
	Name        string             `json:"name"         binding:"required,max=200"`
	Type        model.MaterialType `json:"type"         binding:"required"`
	IsAuthorial bool               `json:"is_authorial"`
	UsedAI      bool               `json:"used_ai"`
	AITool      string             `json:"ai_tool"      binding:"omitempty,max=100"`
	AIUsage     string             `json:"ai_usage"`
	Description string             `json:"description"`
	FileURL     *string            `json:"file_url"`
	LinkURL     *string            `json:"link_url"`
}

// ForumInput FORUM body
type ForumInput struct {
	Statement string `json:"statement"`
}

// AssignmentInput ASSIGNMENT body
type AssignmentInput struct {
	Question       string  `json:"question"`
	ExpectedAnswer string  `json:"expected_answer"`
	FileURL        *string `json:"file_url"`
	Feedback       string  `json:"feedback"`
}

// ChoiceInput multiple-choice question
type ChoiceInput struct {
	Question      string    `json:"question"`
	CorrectAnswer string    `json:"correct_answer"`
	WrongAnswers  [4]string `json:"wrong_answers"`
	Feedback      string    `json:"feedback"`
}

// CreateActivityRequest the body matching Type must be present and the others absent
type CreateActivityRequest struct {
	Type       model.ActivityType `json:"type"       binding:"required"`
	Title      string             `json:"title"      binding:"required,max=200"`
	Guidance   string             `json:"guidance"`
	Forum      *ForumInput        `json:"forum"`
	Assignment *AssignmentInput   `json:"assignment"`
	Quiz       []ChoiceInput      `json:"quiz"`
}

// EssayInput essay question
type EssayInput struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
}

// CreateEvaluationRequest ESSAY carries essay questions only, OBJECTIVE multiple-choice only
type CreateEvaluationRequest struct {
	Type           model.EvaluationType `json:"type"            binding:"required"`
	Guidance       string               `json:"guidance"`
	FileURL        *string              `json:"file_url"`
	EssayQuestions []EssayInput         `json:"essay_questions"`
	MCQuestions    []ChoiceInput        `json:"mc_questions"`
}

// CreateExtraRequest side box
type CreateExtraRequest struct {
	Type        model.ExtraType `json:"type"        binding:"required"`
	Description string          `json:"description" binding:"required"`
	FileURL     *string         `json:"file_url"`
}
