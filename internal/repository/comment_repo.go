package repository

import (
	"context"

	"gorm.io/gorm"

	"coursecraft/internal/model"
)

// CommentRepository admin review comments
type CommentRepository interface {
	Create(ctx context.Context, c *model.AdminComment) error
	ListByDiscipline(ctx context.Context, disciplineID string) ([]model.AdminComment, error)
	ListBySession(ctx context.Context, sessionID string) ([]model.AdminComment, error)
}

type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo creates a CommentRepository
func NewCommentRepo(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, c *model.AdminComment) error {
	return r.db.WithContext(ctx).Omit("User").Create(c).Error
}

func (r *commentRepo) ListByDiscipline(ctx context.Context, disciplineID string) ([]model.AdminComment, error) {
	var out []model.AdminComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("discipline_id = ?", disciplineID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *commentRepo) ListBySession(ctx context.Context, sessionID string) ([]model.AdminComment, error) {
	var out []model.AdminComment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}
