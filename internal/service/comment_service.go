package service

import (
	"context"
	"strings"

	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

// CommentService admin review comments on disciplines and sessions
type CommentService interface {
	CreateForDiscipline(ctx context.Context, disciplineID, userID string, req *dto.CreateCommentRequest) (*model.AdminComment, error)
	CreateForSession(ctx context.Context, sessionID, userID string, req *dto.CreateCommentRequest) (*model.AdminComment, error)
	ListForDiscipline(ctx context.Context, disciplineID string) ([]model.AdminComment, error)
	ListForSession(ctx context.Context, sessionID string) ([]model.AdminComment, error)
}

type commentService struct {
	*aggregates
}

// NewCommentService creates a CommentService
func NewCommentService(agg *aggregates) CommentService {
	return &commentService{aggregates: agg}
}

func (s *commentService) CreateForDiscipline(ctx context.Context, disciplineID, userID string, req *dto.CreateCommentRequest) (*model.AdminComment, error) {
	const op = "comment.CreateForDiscipline"

	if err := validateComment(op, userID, req); err != nil {
		return nil, err
	}
	if _, err := s.repo.Discipline.GetByID(ctx, disciplineID); err != nil {
		return nil, translate(s.logger, op, "discipline", disciplineID, err)
	}

	c := &model.AdminComment{
		UserID:       userID,
		DisciplineID: &disciplineID,
		Content:      strings.TrimSpace(req.Content),
	}
	if err := s.repo.Comment.Create(ctx, c); err != nil {
		return nil, translate(s.logger, op, "comment", disciplineID, err)
	}
	return c, nil
}

// CreateForSession attaches the comment to the session and its discipline
func (s *commentService) CreateForSession(ctx context.Context, sessionID, userID string, req *dto.CreateCommentRequest) (*model.AdminComment, error) {
	const op = "comment.CreateForSession"

	if err := validateComment(op, userID, req); err != nil {
		return nil, err
	}
	session, err := s.repo.Session.GetByID(ctx, sessionID)
	if err != nil {
		return nil, translate(s.logger, op, "session", sessionID, err)
	}

	c := &model.AdminComment{
		UserID:       userID,
		DisciplineID: &session.DisciplineID,
		SessionID:    &sessionID,
		Content:      strings.TrimSpace(req.Content),
	}
	if err := s.repo.Comment.Create(ctx, c); err != nil {
		return nil, translate(s.logger, op, "comment", sessionID, err)
	}
	return c, nil
}

func (s *commentService) ListForDiscipline(ctx context.Context, disciplineID string) ([]model.AdminComment, error) {
	const op = "comment.ListForDiscipline"

	if _, err := s.repo.Discipline.GetByID(ctx, disciplineID); err != nil {
		return nil, translate(s.logger, op, "discipline", disciplineID, err)
	}
	list, err := s.repo.Comment.ListByDiscipline(ctx, disciplineID)
	if err != nil {
		return nil, translate(s.logger, op, "comments", disciplineID, err)
	}
	return list, nil
}

func (s *commentService) ListForSession(ctx context.Context, sessionID string) ([]model.AdminComment, error) {
	const op = "comment.ListForSession"

	if _, err := s.repo.Session.GetByID(ctx, sessionID); err != nil {
		return nil, translate(s.logger, op, "session", sessionID, err)
	}
	list, err := s.repo.Comment.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, translate(s.logger, op, "comments", sessionID, err)
	}
	return list, nil
}

func validateComment(op, userID string, req *dto.CreateCommentRequest) error {
	if userID == "" {
		return apperr.Validation(op, "user_id", "caller identity is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return apperr.Validation(op, "content", "content is required")
	}
	return nil
}
