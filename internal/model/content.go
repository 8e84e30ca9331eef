package model

import "gorm.io/gorm"

// ── materials ──

// Material reading attached to a session; exactly one of FileURL/LinkURL is set, stored in materials
type Material struct {
	ID          string       `gorm:"type:uuid;primaryKey"           json:"id"`
	SessionID   string       `gorm:"type:uuid;not null;index"       json:"session_id"`
	Name        string       `gorm:"type:varchar(200);not null"     json:"name"`
	Type        MaterialType `gorm:"type:varchar(20);not null"      json:"type"`
	IsAuthorial bool         `gorm:"not null;default:false"         json:"is_authorial"`
	UsedAI      bool         `gorm:"column:used_ai;not null;default:false" json:"used_ai"`
	AITool      string       `gorm:"column:ai_tool;type:varchar(100)" json:"ai_tool,omitempty"`
	AIUsage     string       `gorm:"column:ai_usage;type:text"      json:"ai_usage,omitempty"`
	Description string       `gorm:"type:text"                      json:"description,omitempty"`
	FileURL     *string      `gorm:"type:text"                      json:"file_url,omitempty"`
	LinkURL     *string      `gorm:"type:text"                      json:"link_url,omitempty"`
	BaseModel
}

func (Material) TableName() string { return "materials" }

func (m *Material) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}

// ── activities ──

// Activity study activity; the body matching Type is populated, stored in activities
type Activity struct {
	ID        string       `gorm:"type:uuid;primaryKey"         json:"id"`
	SessionID string       `gorm:"type:uuid;not null;index"     json:"session_id"`
	Type      ActivityType `gorm:"type:varchar(20);not null"    json:"type"`
	Title     string       `gorm:"type:varchar(200);not null"   json:"title"`
	Guidance  string       `gorm:"type:text"                    json:"guidance,omitempty"`
	Order     int          `gorm:"column:position;not null"     json:"order"`
	BaseModel

	Forum         *ForumBody      `gorm:"foreignKey:ActivityID" json:"forum,omitempty"`
	Assignment    *AssignmentBody `gorm:"foreignKey:ActivityID" json:"assignment,omitempty"`
	QuizQuestions []QuizQuestion  `gorm:"foreignKey:ActivityID" json:"quiz_questions,omitempty"`
}

func (Activity) TableName() string { return "activities" }

func (a *Activity) BeforeCreate(_ *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// ForumBody discussion prompt, stored in activity_forums
type ForumBody struct {
	ID         string `gorm:"type:uuid;primaryKey"        json:"id"`
	ActivityID string `gorm:"type:uuid;not null;uniqueIndex" json:"activity_id"`
	Statement  string `gorm:"type:text;not null"          json:"statement"`
}

func (ForumBody) TableName() string { return "activity_forums" }

func (f *ForumBody) BeforeCreate(_ *gorm.DB) error {
	ensureID(&f.ID)
	return nil
}

// AssignmentBody open task with expected answer, stored in activity_assignments
type AssignmentBody struct {
	ID             string  `gorm:"type:uuid;primaryKey"           json:"id"`
	ActivityID     string  `gorm:"type:uuid;not null;uniqueIndex" json:"activity_id"`
	Question       string  `gorm:"type:text;not null"             json:"question"`
	ExpectedAnswer string  `gorm:"type:text"                      json:"expected_answer,omitempty"`
	FileURL        *string `gorm:"type:text"                      json:"file_url,omitempty"`
	Feedback       string  `gorm:"type:text"                      json:"feedback,omitempty"`
}

func (AssignmentBody) TableName() string { return "activity_assignments" }

func (a *AssignmentBody) BeforeCreate(_ *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

// Choices multiple-choice stem with one correct answer and four distractors
type Choices struct {
	Question      string `gorm:"type:text;not null" json:"question"`
	CorrectAnswer string `gorm:"type:text;not null" json:"correct_answer"`
	WrongAnswer1  string `gorm:"type:text;not null" json:"wrong_answer_1"`
	WrongAnswer2  string `gorm:"type:text;not null" json:"wrong_answer_2"`
	WrongAnswer3  string `gorm:"type:text;not null" json:"wrong_answer_3"`
	WrongAnswer4  string `gorm:"type:text;not null" json:"wrong_answer_4"`
	Feedback      string `gorm:"type:text"          json:"feedback,omitempty"`
}

// QuizQuestion row of quiz_questions
type QuizQuestion struct {
	ID         string  `gorm:"type:uuid;primaryKey"     json:"id"`
	ActivityID string  `gorm:"type:uuid;not null;index" json:"activity_id"`
	Order      int     `gorm:"column:position;not null" json:"order"`
	Choices    Choices `gorm:"embedded"                 json:"choices"`
}

func (QuizQuestion) TableName() string { return "quiz_questions" }

func (q *QuizQuestion) BeforeCreate(_ *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}

// ── evaluations ──

// Evaluation graded assessment; ESSAY carries essay questions, OBJECTIVE multiple-choice, stored in evaluations
type Evaluation struct {
	ID        string         `gorm:"type:uuid;primaryKey"      json:"id"`
	SessionID string         `gorm:"type:uuid;not null;index"  json:"session_id"`
	Type      EvaluationType `gorm:"type:varchar(20);not null" json:"type"`
	Guidance  string         `gorm:"type:text"                 json:"guidance,omitempty"`
	FileURL   *string        `gorm:"type:text"                 json:"file_url,omitempty"`
	BaseModel

	EssayQuestions []EssayQuestion `gorm:"foreignKey:EvaluationID" json:"essay_questions,omitempty"`
	MCQuestions    []MCQuestion    `gorm:"foreignKey:EvaluationID" json:"mc_questions,omitempty"`
}

func (Evaluation) TableName() string { return "evaluations" }

func (e *Evaluation) BeforeCreate(_ *gorm.DB) error {
	ensureID(&e.ID)
	return nil
}

// EssayQuestion row of essay_questions
type EssayQuestion struct {
	ID             string `gorm:"type:uuid;primaryKey"     json:"id"`
	EvaluationID   string `gorm:"type:uuid;not null;index" json:"evaluation_id"`
	Order          int    `gorm:"column:position;not null" json:"order"`
	Question       string `gorm:"type:text;not null"       json:"question"`
	ExpectedAnswer string `gorm:"type:text"                json:"expected_answer,omitempty"`
}

func (EssayQuestion) TableName() string { return "essay_questions" }

func (q *EssayQuestion) BeforeCreate(_ *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}

// MCQuestion row of mc_questions
type MCQuestion struct {
	ID           string  `gorm:"type:uuid;primaryKey"     json:"id"`
	EvaluationID string  `gorm:"type:uuid;not null;index" json:"evaluation_id"`
	Order        int     `gorm:"column:position;not null" json:"order"`
	Choices      Choices `gorm:"embedded"                 json:"choices"`
}

func (MCQuestion) TableName() string { return "mc_questions" }

func (q *MCQuestion) BeforeCreate(_ *gorm.DB) error {
	ensureID(&q.ID)
	return nil
}

// ── extras ──

// Extra side box (reflect, caution, learn more), stored in extras
type Extra struct {
	ID          string    `gorm:"type:uuid;primaryKey"      json:"id"`
	SessionID   string    `gorm:"type:uuid;not null;index"  json:"session_id"`
	Type        ExtraType `gorm:"type:varchar(20);not null" json:"type"`
	Description string    `gorm:"type:text;not null"        json:"description"`
	FileURL     *string   `gorm:"type:text"                 json:"file_url,omitempty"`
	BaseModel
}

func (Extra) TableName() string { return "extras" }

func (e *Extra) BeforeCreate(_ *gorm.DB) error {
	ensureID(&e.ID)
	return nil
}
