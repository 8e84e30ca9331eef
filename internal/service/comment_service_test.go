package service

import (
	"context"
	"testing"

	"coursecraft/internal/dto"
	apperr "coursecraft/pkg/errors"
)

func TestCommentService_DisciplineAndSession(t *testing.T) {
	svc, db := setupTestService()
	seedThreeSessions(db)
	ctx := context.Background()

	if _, err := svc.Comment.CreateForDiscipline(ctx, "disc-1", "admin-1", &dto.CreateCommentRequest{Content: " Revisar ementa "}); err != nil {
		t.Fatalf("CreateForDiscipline should succeed: %v", err)
	}
	c, err := svc.Comment.CreateForSession(ctx, "s2", "admin-1", &dto.CreateCommentRequest{Content: "Faltam atividades"})
	if err != nil {
		t.Fatalf("CreateForSession should succeed: %v", err)
	}
	if c.DisciplineID == nil || *c.DisciplineID != "disc-1" {
		t.Error("session comment should also reference its discipline")
	}

	forDiscipline, err := svc.Comment.ListForDiscipline(ctx, "disc-1")
	if err != nil {
		t.Fatalf("ListForDiscipline should succeed: %v", err)
	}
	if len(forDiscipline) != 2 {
		t.Errorf("expected 2 discipline comments, got %d", len(forDiscipline))
	}
	if forDiscipline[0].Content != "Revisar ementa" {
		t.Errorf("content should be trimmed, got %q", forDiscipline[0].Content)
	}

	forSession, err := svc.Comment.ListForSession(ctx, "s2")
	if err != nil {
		t.Fatalf("ListForSession should succeed: %v", err)
	}
	if len(forSession) != 1 {
		t.Errorf("expected 1 session comment, got %d", len(forSession))
	}
}

func TestCommentService_Errors(t *testing.T) {
	svc, db := setupTestService()
	seedThreeSessions(db)
	ctx := context.Background()

	_, err := svc.Comment.CreateForDiscipline(ctx, "disc-1", "admin-1", &dto.CreateCommentRequest{Content: "  "})
	assertCode(t, err, apperr.CodeValidation)

	_, err = svc.Comment.CreateForDiscipline(ctx, "disc-1", "", &dto.CreateCommentRequest{Content: "x"})
	assertCode(t, err, apperr.CodeValidation)

	_, err = svc.Comment.CreateForSession(ctx, "missing", "admin-1", &dto.CreateCommentRequest{Content: "x"})
	assertCode(t, err, apperr.CodeNotFound)

	_, err = svc.Comment.ListForDiscipline(ctx, "missing")
	assertCode(t, err, apperr.CodeNotFound)
}
