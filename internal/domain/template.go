package domain

import (
	"fmt"
	"strings"

	"coursecraft/internal/model"
)

// Rule identifies a completeness rule
type Rule string

const (
	RuleHasSessions      Rule = "has_sessions"
	RulePresentationText Rule = "presentation_content"
	RuleAuthorMaterials  Rule = "min_author_materials"
	RuleStudyActivities  Rule = "min_study_activities"
	RuleEvaluations      Rule = "min_evaluations"
	RuleKnownSessionType Rule = "known_session_type"
)

// Requirement one unmet completeness rule
type Requirement struct {
	SessionID    string `json:"session_id,omitempty"`
	SessionOrder int    `json:"session_order,omitempty"`
	SessionName  string `json:"session_name,omitempty"`
	Rule         Rule   `json:"rule"`
	Required     int    `json:"required"`
	Actual       int    `json:"actual"`
	Message      string `json:"message"`
}

// Default template thresholds
const (
	DefaultSessionLabel       = "Roteiro"
	DefaultMinAuthorMaterials = 3
	DefaultMinStudyActivities = 2
	DefaultMinEvaluations     = 1
)

// DefaultTemplate thresholds applied when a discipline has no active template
func DefaultTemplate() model.DisciplineTemplate {
	return model.DisciplineTemplate{
		SessionLabel:       DefaultSessionLabel,
		Numbering:          model.NumberingNumeric,
		MinAuthorMaterials: DefaultMinAuthorMaterials,
		MinStudyActivities: DefaultMinStudyActivities,
		MinEvaluations:     DefaultMinEvaluations,
		IsActive:           true,
	}
}

// EffectiveTemplate returns the discipline's active template or the default
func EffectiveTemplate(d *model.Discipline) model.DisciplineTemplate {
	if t := d.ActiveTemplate(); t != nil {
		return *t
	}
	return DefaultTemplate()
}

// Unmet lists the rules session s fails under template t
func Unmet(s *model.Session, t model.DisciplineTemplate) []Requirement {
	var out []Requirement
	add := func(rule Rule, required, actual int, what string) {
		out = append(out, Requirement{
			SessionID:    s.ID,
			SessionOrder: s.Order,
			SessionName:  s.Name,
			Rule:         rule,
			Required:     required,
			Actual:       actual,
			Message:      fmt.Sprintf("Session %d requires ≥%d %s, has %d", s.Order, required, what, actual),
		})
	}

	switch s.Type {
	case model.SessionPresentation:
		if strings.TrimSpace(s.Content) == "" {
			out = append(out, Requirement{
				SessionID:    s.ID,
				SessionOrder: s.Order,
				SessionName:  s.Name,
				Rule:         RulePresentationText,
				Required:     1,
				Actual:       0,
				Message:      fmt.Sprintf("Session %d requires presentation content", s.Order),
			})
		}
	case model.SessionGuide:
		if n := s.AuthorialMaterials(); n < t.MinAuthorMaterials {
			add(RuleAuthorMaterials, t.MinAuthorMaterials, n, "authorial materials")
		}
		if n := len(s.Activities); n < t.MinStudyActivities {
			add(RuleStudyActivities, t.MinStudyActivities, n, "study activities")
		}
	case model.SessionAssessment:
		if n := len(s.Evaluations); n < t.MinEvaluations {
			add(RuleEvaluations, t.MinEvaluations, n, "evaluations")
		}
	default:
		out = append(out, Requirement{
			SessionID:    s.ID,
			SessionOrder: s.Order,
			SessionName:  s.Name,
			Rule:         RuleKnownSessionType,
			Required:     1,
			Message:      fmt.Sprintf("Session %d has unknown type %q", s.Order, s.Type),
		})
	}
	return out
}

// IsSatisfied reports whether s meets every rule of t
func IsSatisfied(s *model.Session, t model.DisciplineTemplate) bool {
	return len(Unmet(s, t)) == 0
}

// ValidateForCompletion lists every unmet requirement of the discipline in
// session order. An empty result means the discipline may be COMPLETED.
func ValidateForCompletion(d *model.Discipline) []Requirement {
	if len(d.Sessions) == 0 {
		return []Requirement{{
			Rule:     RuleHasSessions,
			Required: 1,
			Actual:   0,
			Message:  "discipline has no sessions",
		}}
	}
	t := EffectiveTemplate(d)
	out := make([]Requirement, 0)
	for i := range d.Sessions {
		out = append(out, Unmet(&d.Sessions[i], t)...)
	}
	return out
}
