package service

import (
	"context"
	"testing"

	"coursecraft/internal/domain"
	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

func TestTemplateService_Get_FallsBackToDefault(t *testing.T) {
	svc, db := setupTestService()
	db.addDiscipline("disc-1", "ALG")
	delete(db.templates, "tpl-disc-1")

	tpl, err := svc.Template.Get(context.Background(), "disc-1")
	if err != nil {
		t.Fatalf("Get should succeed: %v", err)
	}
	if tpl.ID != "" || tpl.SessionLabel != domain.DefaultSessionLabel || tpl.DisciplineID != "disc-1" {
		t.Errorf("expected the unsaved default template, got %+v", tpl)
	}
}

func TestTemplateService_Update_RecomputesCompletion(t *testing.T) {
	svc, db := setupTestService()
	seedThreeSessions(db)
	db.fillGuide("s1")
	db.sessions["s1"].IsCompleted = true

	tpl, err := svc.Template.Update(context.Background(), "disc-1", &dto.TemplateRequest{MinStudyActivities: intPtr(3)})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if tpl.MinStudyActivities != 3 || tpl.MinAuthorMaterials != domain.DefaultMinAuthorMaterials {
		t.Errorf("unexpected template %+v", tpl)
	}
	if db.sessions["s1"].IsCompleted {
		t.Error("raised threshold should reopen s1")
	}
}

func TestTemplateService_Update_CreatesMissing(t *testing.T) {
	svc, db := setupTestService()
	db.addDiscipline("disc-1", "ALG")
	delete(db.templates, "tpl-disc-1")

	tpl, err := svc.Template.Update(context.Background(), "disc-1", &dto.TemplateRequest{Numbering: strPtr("ALPHABETIC")})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if tpl.ID == "" || tpl.Numbering != model.NumberingAlphabetic {
		t.Errorf("expected a stored ALPHABETIC template, got %+v", tpl)
	}
	if len(db.templates) != 1 {
		t.Errorf("expected one stored template, got %d", len(db.templates))
	}
}

func TestTemplateService_Update_Validation(t *testing.T) {
	svc, db := setupTestService()
	db.addDiscipline("disc-1", "ALG")

	_, err := svc.Template.Update(context.Background(), "disc-1", &dto.TemplateRequest{MinEvaluations: intPtr(-1)})
	assertCode(t, err, apperr.CodeValidation)

	_, err = svc.Template.Update(context.Background(), "missing", &dto.TemplateRequest{})
	assertCode(t, err, apperr.CodeNotFound)
}
