package repository

import (
	"context"

	"gorm.io/gorm"

	"coursecraft/internal/model"
)

// TemplateRepository discipline template access
type TemplateRepository interface {
	Create(ctx context.Context, t *model.DisciplineTemplate) error
	GetActive(ctx context.Context, disciplineID string) (*model.DisciplineTemplate, error)
	Update(ctx context.Context, t *model.DisciplineTemplate) error
}

type templateRepo struct {
	db *gorm.DB
}

// NewTemplateRepo creates a TemplateRepository
func NewTemplateRepo(db *gorm.DB) TemplateRepository {
	return &templateRepo{db: db}
}

func (r *templateRepo) Create(ctx context.Context, t *model.DisciplineTemplate) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *templateRepo) GetActive(ctx context.Context, disciplineID string) (*model.DisciplineTemplate, error) {
	var t model.DisciplineTemplate
	err := r.db.WithContext(ctx).
		Where("discipline_id = ? AND is_active = ?", disciplineID, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) Update(ctx context.Context, t *model.DisciplineTemplate) error {
	return r.db.WithContext(ctx).Save(t).Error
}
