package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursecraft/internal/domain"
	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	"coursecraft/internal/repository"
	apperr "coursecraft/pkg/errors"
)

const dateLayout = "2006-01-02"

// DisciplineService discipline aggregate operations
type DisciplineService interface {
	Create(ctx context.Context, req *dto.CreateDisciplineRequest, callerID string) (*model.Discipline, error)
	Load(ctx context.Context, id string) (*dto.DisciplineAggregate, error)
	List(ctx context.Context) ([]model.Discipline, error)
	Update(ctx context.Context, id string, req *dto.UpdateDisciplineRequest) (*dto.DisciplineAggregate, error)
	Delete(ctx context.Context, id string) error
	RecordAccess(ctx context.Context, id string) error
	ValidateForCompletion(ctx context.Context, id string) (*dto.CompletionResponse, error)
}

type disciplineService struct {
	*aggregates
	validate *validator.Validate
}

// NewDisciplineService creates a DisciplineService
func NewDisciplineService(agg *aggregates) DisciplineService {
	return &disciplineService{aggregates: agg, validate: newValidator()}
}

// ────────────────────── Create ──────────────────────

func (s *disciplineService) Create(ctx context.Context, req *dto.CreateDisciplineRequest, callerID string) (*model.Discipline, error) {
	const op = "discipline.Create"

	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.TrimSpace(req.Code)
	if err := validateStruct(s.validate, op, req); err != nil {
		return nil, err
	}
	if req.Template != nil {
		if err := validateStruct(s.validate, op, req.Template); err != nil {
			return nil, err
		}
	}
	if callerID == "" {
		return nil, apperr.Validation(op, "created_by", "caller identity is required")
	}

	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation(op, "course_id", "course does not exist")
		}
		return nil, translate(s.logger, op, "course", req.CourseID, err)
	}
	if _, err := s.repo.Discipline.GetByCode(ctx, req.Code); err == nil {
		return nil, apperr.Conflict(op, "discipline code already in use", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(s.logger, op, "discipline", req.Code, err)
	}

	d := &model.Discipline{
		Name:                   req.Name,
		Code:                   req.Code,
		Workload:               req.Workload,
		CourseType:             req.CourseType,
		CourseID:               req.CourseID,
		HasEADHours:            req.HasEADHours,
		HasPracticalHours:      req.HasPracticalHours,
		HasIntegratedProject:   req.HasIntegratedProject,
		HasPresentialExam:      req.HasPresentialExam,
		IsLicensure:            req.IsLicensure,
		HasComplementaryEval:   req.HasComplementaryEval,
		HasExtensionCurriculum: req.HasExtensionCurriculum,
		NeedsPresentialTool:    req.NeedsPresentialTool,
		Status:                 model.DisciplineCreated,
		Progress:               0,
		CreatedBy:              callerID,
	}
	if req.DeliveryDate != "" {
		date, err := parseDate(req.DeliveryDate)
		if err != nil {
			return nil, apperr.Validation(op, "delivery_date", "delivery_date must be a date formatted 2006-01-02")
		}
		d.DeliveryDate = date
	}

	tpl := applyTemplate(domain.DefaultTemplate(), req.Template)

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Discipline.Create(ctx, d); err != nil {
			return err
		}
		tpl.DisciplineID = d.ID
		return tx.Template.Create(ctx, &tpl)
	})
	if err != nil {
		return nil, translate(s.logger, op, "discipline", req.Code, err)
	}

	d.Templates = []model.DisciplineTemplate{tpl}
	s.logger.Info("discipline created",
		zap.String("discipline_id", d.ID),
		zap.String("code", d.Code),
		zap.String("created_by", callerID),
	)
	return d, nil
}

// ────────────────────── Load ──────────────────────

func (s *disciplineService) Load(ctx context.Context, id string) (*dto.DisciplineAggregate, error) {
	ctx, span := tracer.Start(ctx, "DisciplineService.Load", trace.WithAttributes(attribute.String("discipline.id", id)))
	defer span.End()

	d, derived, err := s.load(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return view(d, derived), nil
}

// ────────────────────── List ──────────────────────

func (s *disciplineService) List(ctx context.Context) ([]model.Discipline, error) {
	const op = "discipline.List"

	disciplines, err := s.repo.Discipline.List(ctx)
	if err != nil {
		return nil, translate(s.logger, op, "disciplines", "", err)
	}

	ids := make([]string, len(disciplines))
	for i := range disciplines {
		ids[i] = disciplines[i].ID
	}
	counts, err := s.repo.Discipline.SessionCounts(ctx, ids)
	if err != nil {
		return nil, translate(s.logger, op, "sessions", "", err)
	}

	now := s.clock.Now()
	for i := range disciplines {
		c := counts[disciplines[i].ID]
		domain.Summarize(&disciplines[i], c.Completed, c.Total, now)
	}
	return disciplines, nil
}

// ────────────────────── Update ──────────────────────

func (s *disciplineService) Update(ctx context.Context, id string, req *dto.UpdateDisciplineRequest) (*dto.DisciplineAggregate, error) {
	const op = "discipline.Update"

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.Validation(op, "name", "name must not be blank")
		}
		req.Name = &name
	}
	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" {
			return nil, apperr.Validation(op, "code", "code must not be blank")
		}
		req.Code = &code
	}
	if err := validateStruct(s.validate, op, req); err != nil {
		return nil, err
	}

	fields, err := updateFields(op, req)
	if err != nil {
		return nil, err
	}

	current, err := s.repo.Discipline.GetByID(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "discipline", id, err)
	}
	if code, ok := fields["code"].(string); ok && code != current.Code {
		if _, err := s.repo.Discipline.GetByCode(ctx, code); err == nil {
			return nil, apperr.Conflict(op, "discipline code already in use", nil)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, translate(s.logger, op, "discipline", code, err)
		}
	}

	if err := s.repo.Discipline.UpdateFields(ctx, id, fields); err != nil {
		return nil, translate(s.logger, op, "discipline", id, err)
	}

	d, derived, err := s.refresh(ctx, id)
	if err != nil {
		return nil, err
	}
	return view(d, derived), nil
}

// updateFields turns the whitelisted request into a column patch
func updateFields(op string, req *dto.UpdateDisciplineRequest) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Code != nil {
		fields["code"] = *req.Code
	}
	if req.Workload != nil {
		fields["workload"] = *req.Workload
	}
	flags := map[string]*bool{
		"has_ead_hours":            req.HasEADHours,
		"has_practical_hours":      req.HasPracticalHours,
		"has_integrated_project":   req.HasIntegratedProject,
		"has_presential_exam":      req.HasPresentialExam,
		"is_licenciatura":          req.IsLicensure,
		"has_complementary_eval":   req.HasComplementaryEval,
		"has_extension_curriculum": req.HasExtensionCurriculum,
		"needs_presential_tool":    req.NeedsPresentialTool,
	}
	for col, v := range flags {
		if v != nil {
			fields[col] = *v
		}
	}
	if req.DeliveryDate != nil {
		if *req.DeliveryDate == "" {
			fields["delivery_date"] = nil
		} else {
			date, err := parseDate(*req.DeliveryDate)
			if err != nil {
				return nil, apperr.Validation(op, "delivery_date", "delivery_date must be a date formatted 2006-01-02")
			}
			fields["delivery_date"] = *date
		}
	}
	return fields, nil
}

// ────────────────────── Delete ──────────────────────

func (s *disciplineService) Delete(ctx context.Context, id string) error {
	const op = "discipline.Delete"

	if err := s.repo.Discipline.Delete(ctx, id); err != nil {
		return translate(s.logger, op, "discipline", id, err)
	}
	s.cache.Evict(ctx, id)
	s.logger.Info("discipline deleted", zap.String("discipline_id", id))
	return nil
}

// ────────────────────── RecordAccess ──────────────────────

func (s *disciplineService) RecordAccess(ctx context.Context, id string) error {
	const op = "discipline.RecordAccess"

	if err := s.repo.Discipline.TouchAccess(ctx, id, s.clock.Now()); err != nil {
		return translate(s.logger, op, "discipline", id, err)
	}
	s.cache.Evict(ctx, id)
	return nil
}

// ────────────────────── ValidateForCompletion ──────────────────────

func (s *disciplineService) ValidateForCompletion(ctx context.Context, id string) (*dto.CompletionResponse, error) {
	d, _, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	unmet := domain.ValidateForCompletion(d)
	return &dto.CompletionResponse{
		DisciplineID: id,
		Complete:     len(unmet) == 0,
		Unmet:        unmet,
	}, nil
}

// ── helpers ──

func parseDate(s string) (*datatypes.Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}

// applyTemplate overlays the non-nil request fields onto base
func applyTemplate(base model.DisciplineTemplate, req *dto.TemplateRequest) model.DisciplineTemplate {
	if req == nil {
		return base
	}
	if req.SessionLabel != nil {
		base.SessionLabel = strings.TrimSpace(*req.SessionLabel)
	}
	if req.Numbering != nil {
		base.Numbering = model.NumberingStyle(*req.Numbering)
	}
	if req.MinAuthorMaterials != nil {
		base.MinAuthorMaterials = *req.MinAuthorMaterials
	}
	if req.MinStudyActivities != nil {
		base.MinStudyActivities = *req.MinStudyActivities
	}
	if req.MinEvaluations != nil {
		base.MinEvaluations = *req.MinEvaluations
	}
	base.IsActive = true
	return base
}
