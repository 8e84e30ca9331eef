package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursecraft/internal/model"
)

func guide(order int, authorial, activities int) model.Session {
	s := model.Session{ID: "g", Name: "Roteiro", Type: model.SessionGuide, Order: order}
	for i := 0; i < authorial; i++ {
		s.Materials = append(s.Materials, model.Material{IsAuthorial: true})
	}
	s.Materials = append(s.Materials, model.Material{IsAuthorial: false})
	for i := 0; i < activities; i++ {
		s.Activities = append(s.Activities, model.Activity{Type: model.ActivityForum})
	}
	return s
}

func TestUnmet_Presentation(t *testing.T) {
	tpl := DefaultTemplate()

	blank := model.Session{Type: model.SessionPresentation, Order: 1, Content: "  \n\t"}
	unmet := Unmet(&blank, tpl)
	require.Len(t, unmet, 1)
	assert.Equal(t, RulePresentationText, unmet[0].Rule)

	filled := model.Session{Type: model.SessionPresentation, Order: 1, Content: "Welcome"}
	assert.True(t, IsSatisfied(&filled, tpl))
}

func TestUnmet_GuideCountsOnlyAuthorialMaterials(t *testing.T) {
	tpl := DefaultTemplate()

	s := guide(2, 1, 2)
	unmet := Unmet(&s, tpl)
	require.Len(t, unmet, 1)
	assert.Equal(t, RuleAuthorMaterials, unmet[0].Rule)
	assert.Equal(t, 3, unmet[0].Required)
	assert.Equal(t, 1, unmet[0].Actual)
	assert.Equal(t, "Session 2 requires ≥3 authorial materials, has 1", unmet[0].Message)

	s = guide(2, 3, 2)
	assert.True(t, IsSatisfied(&s, tpl))
}

func TestUnmet_GuideBothRules(t *testing.T) {
	s := guide(1, 0, 0)
	unmet := Unmet(&s, DefaultTemplate())
	require.Len(t, unmet, 2)
	assert.Equal(t, RuleAuthorMaterials, unmet[0].Rule)
	assert.Equal(t, RuleStudyActivities, unmet[1].Rule)
}

func TestUnmet_Assessment(t *testing.T) {
	tpl := DefaultTemplate()
	s := model.Session{Type: model.SessionAssessment, Order: 3}
	assert.False(t, IsSatisfied(&s, tpl))

	s.Evaluations = []model.Evaluation{{Type: model.EvaluationObjective}}
	assert.True(t, IsSatisfied(&s, tpl))

	tpl.MinEvaluations = 0
	s.Evaluations = nil
	assert.True(t, IsSatisfied(&s, tpl))
}

func TestUnmet_UnknownType(t *testing.T) {
	s := model.Session{Type: "VIDEO", Order: 1}
	unmet := Unmet(&s, DefaultTemplate())
	require.Len(t, unmet, 1)
	assert.Equal(t, RuleKnownSessionType, unmet[0].Rule)
}

func TestValidateForCompletion_NoSessions(t *testing.T) {
	unmet := ValidateForCompletion(&model.Discipline{})
	require.Len(t, unmet, 1)
	assert.Equal(t, RuleHasSessions, unmet[0].Rule)
	assert.Equal(t, "discipline has no sessions", unmet[0].Message)
}

func TestValidateForCompletion_UsesActiveTemplate(t *testing.T) {
	d := &model.Discipline{
		Templates: []model.DisciplineTemplate{
			{IsActive: false, MinAuthorMaterials: 9},
			{IsActive: true, SessionLabel: "Unidade", Numbering: model.NumberingRoman, MinAuthorMaterials: 1, MinStudyActivities: 1},
		},
		Sessions: []model.Session{guide(1, 1, 1)},
	}
	assert.Empty(t, ValidateForCompletion(d))

	d.Templates[1].IsActive = false
	unmet := ValidateForCompletion(d)
	assert.Len(t, unmet, 2, "default template applies when none is active")
}

func TestEffectiveTemplate_Default(t *testing.T) {
	tpl := EffectiveTemplate(&model.Discipline{})
	assert.Equal(t, "Roteiro", tpl.SessionLabel)
	assert.Equal(t, model.NumberingNumeric, tpl.Numbering)
	assert.Equal(t, 3, tpl.MinAuthorMaterials)
	assert.Equal(t, 2, tpl.MinStudyActivities)
	assert.Equal(t, 1, tpl.MinEvaluations)
}
