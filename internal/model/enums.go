package model

// ── users ──

// Role user role
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleProfessor Role = "PROFESSOR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProfessor:
		return true
	}
	return false
}

// ── courses ──

// CourseType academic program type
type CourseType string

const (
	CourseUndergraduate CourseType = "UNDERGRADUATE"
	CourseGraduate      CourseType = "GRADUATE"
	CourseExtension     CourseType = "EXTENSION"
	CourseDistance      CourseType = "DISTANCE"
	CourseInstitutional CourseType = "INSTITUTIONAL"
)

func (t CourseType) Valid() bool {
	switch t {
	case CourseUndergraduate, CourseGraduate, CourseExtension, CourseDistance, CourseInstitutional:
		return true
	}
	return false
}

// ── disciplines ──

// DisciplineStatus lifecycle status; always derived, the column is a cache
type DisciplineStatus string

const (
	DisciplineCreated    DisciplineStatus = "CREATED"
	DisciplineAssigned   DisciplineStatus = "ASSIGNED"
	DisciplineInProgress DisciplineStatus = "IN_PROGRESS"
	DisciplineCompleted  DisciplineStatus = "COMPLETED"
	DisciplineLate       DisciplineStatus = "LATE"
)

// AssignmentStatus professor assignment status; projected from DisciplineStatus
type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "PENDING"
	AssignmentInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentCompleted  AssignmentStatus = "COMPLETED"
	AssignmentLate       AssignmentStatus = "LATE"
)

// NumberingStyle how grouped sessions are numbered
type NumberingStyle string

const (
	NumberingNumeric    NumberingStyle = "NUMERIC"
	NumberingAlphabetic NumberingStyle = "ALPHABETIC"
	NumberingRoman      NumberingStyle = "ROMAN"
)

func (n NumberingStyle) Valid() bool {
	switch n {
	case NumberingNumeric, NumberingAlphabetic, NumberingRoman:
		return true
	}
	return false
}

// ── sessions and content ──

// SessionType kind of content block
type SessionType string

const (
	SessionPresentation SessionType = "PRESENTATION"
	SessionGuide        SessionType = "GUIDE"
	SessionAssessment   SessionType = "ASSESSMENT"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionPresentation, SessionGuide, SessionAssessment:
		return true
	}
	return false
}

// MaterialType basic or supplementary reading
type MaterialType string

const (
	MaterialBasic         MaterialType = "BASIC"
	MaterialSupplementary MaterialType = "SUPPLEMENTARY"
)

func (t MaterialType) Valid() bool {
	return t == MaterialBasic || t == MaterialSupplementary
}

// ActivityType study activity variant
type ActivityType string

const (
	ActivityForum      ActivityType = "FORUM"
	ActivityAssignment ActivityType = "ASSIGNMENT"
	ActivityQuiz       ActivityType = "QUIZ"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityForum, ActivityAssignment, ActivityQuiz:
		return true
	}
	return false
}

// EvaluationType essay or objective
type EvaluationType string

const (
	EvaluationEssay     EvaluationType = "ESSAY"
	EvaluationObjective EvaluationType = "OBJECTIVE"
)

func (t EvaluationType) Valid() bool {
	return t == EvaluationEssay || t == EvaluationObjective
}

// ExtraType side-box variant
type ExtraType string

const (
	ExtraReflect   ExtraType = "REFLECT"
	ExtraCaution   ExtraType = "CAUTION"
	ExtraLearnMore ExtraType = "LEARN_MORE"
)

func (t ExtraType) Valid() bool {
	switch t {
	case ExtraReflect, ExtraCaution, ExtraLearnMore:
		return true
	}
	return false
}
