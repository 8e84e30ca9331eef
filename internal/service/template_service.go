package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"coursecraft/internal/domain"
	"coursecraft/internal/dto"
	"coursecraft/internal/model"
)

// TemplateService active template of a discipline
type TemplateService interface {
	Get(ctx context.Context, disciplineID string) (*model.DisciplineTemplate, error)
	Update(ctx context.Context, disciplineID string, req *dto.TemplateRequest) (*model.DisciplineTemplate, error)
}

type templateService struct {
	*aggregates
	validate *validator.Validate
}

// NewTemplateService creates a TemplateService
func NewTemplateService(agg *aggregates) TemplateService {
	return &templateService{aggregates: agg, validate: newValidator()}
}

// Get returns the active template, or the unsaved default when there is none
func (s *templateService) Get(ctx context.Context, disciplineID string) (*model.DisciplineTemplate, error) {
	const op = "template.Get"

	if _, err := s.repo.Discipline.GetByID(ctx, disciplineID); err != nil {
		return nil, translate(s.logger, op, "discipline", disciplineID, err)
	}
	t, err := s.repo.Template.GetActive(ctx, disciplineID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := domain.DefaultTemplate()
		def.DisciplineID = disciplineID
		return &def, nil
	}
	if err != nil {
		return nil, translate(s.logger, op, "template", disciplineID, err)
	}
	return t, nil
}

// Update changes the active template, creating it from the default when
// missing. Thresholds change completion, so derived fields are refreshed.
func (s *templateService) Update(ctx context.Context, disciplineID string, req *dto.TemplateRequest) (*model.DisciplineTemplate, error) {
	const op = "template.Update"

	if err := validateStruct(s.validate, op, req); err != nil {
		return nil, err
	}
	current, err := s.Get(ctx, disciplineID)
	if err != nil {
		return nil, err
	}

	updated := applyTemplate(*current, req)
	if updated.ID == "" {
		err = s.repo.Template.Create(ctx, &updated)
	} else {
		err = s.repo.Template.Update(ctx, &updated)
	}
	if err != nil {
		return nil, translate(s.logger, op, "template", disciplineID, err)
	}

	if _, _, err := s.refresh(ctx, disciplineID); err != nil {
		return nil, err
	}
	return &updated, nil
}
