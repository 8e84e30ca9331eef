package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

// CatalogService courses and the user directory
type CatalogService interface {
	ListCourses(ctx context.Context, req *dto.CourseListRequest) ([]model.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*model.Course, error)
	ListUsers(ctx context.Context, req *dto.UserListRequest) ([]model.User, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error)
}

type catalogService struct {
	*aggregates
}

// NewCatalogService creates a CatalogService
func NewCatalogService(agg *aggregates) CatalogService {
	return &catalogService{aggregates: agg}
}

// ────────────────────── Courses ──────────────────────

func (s *catalogService) ListCourses(ctx context.Context, req *dto.CourseListRequest) ([]model.Course, error) {
	courses, err := s.repo.Course.List(ctx, req.IncludeInactive)
	if err != nil {
		return nil, translate(s.logger, "catalog.ListCourses", "courses", "", err)
	}
	return courses, nil
}

func (s *catalogService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	const op = "catalog.CreateCourse"

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperr.Validation(op, "name", "name is required")
	}
	if !req.Type.Valid() {
		return nil, apperr.Validation(op, "type", "type is not a known course type")
	}

	c := &model.Course{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Type:        req.Type,
		IsActive:    true,
	}
	if err := s.repo.Course.Create(ctx, c); err != nil {
		return nil, translate(s.logger, op, "course", c.Name, err)
	}
	return c, nil
}

// UpdateCourse patches a course. Snapshots of its disciplines embed the course
// and are evicted.
func (s *catalogService) UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*model.Course, error) {
	const op = "catalog.UpdateCourse"

	fields := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.Validation(op, "name", "name must not be blank")
		}
		fields["name"] = name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, apperr.Validation(op, "type", "type is not a known course type")
		}
		fields["type"] = *req.Type
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if err := s.repo.Course.UpdateFields(ctx, id, fields); err != nil {
		return nil, translate(s.logger, op, "course", id, err)
	}
	c, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "course", id, err)
	}

	if len(fields) > 0 {
		disciplines, err := s.repo.Discipline.List(ctx)
		if err != nil {
			s.logger.Warn("evict course snapshots failed", zap.String("course_id", id), zap.Error(err))
		}
		for i := range disciplines {
			if disciplines[i].CourseID == id {
				s.cache.Evict(ctx, disciplines[i].ID)
			}
		}
	}
	return c, nil
}

// ────────────────────── Users ──────────────────────

func (s *catalogService) ListUsers(ctx context.Context, req *dto.UserListRequest) ([]model.User, error) {
	const op = "catalog.ListUsers"

	if req.Role != "" && !req.Role.Valid() {
		return nil, apperr.Validation(op, "role", "role must be ADMIN or PROFESSOR")
	}
	users, err := s.repo.User.List(ctx, req.Role)
	if err != nil {
		return nil, translate(s.logger, op, "users", "", err)
	}
	return users, nil
}

func (s *catalogService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*model.User, error) {
	const op = "catalog.CreateUser"

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, apperr.Validation(op, "email", "email is required")
	}
	if !req.Role.Valid() {
		return nil, apperr.Validation(op, "role", "role must be ADMIN or PROFESSOR")
	}

	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, apperr.Conflict(op, "email already registered", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(s.logger, op, "user", email, err)
	}

	u := &model.User{
		Email:    email,
		Name:     strings.TrimSpace(req.Name),
		Role:     req.Role,
		IsActive: true,
	}
	if err := s.repo.User.Create(ctx, u); err != nil {
		return nil, translate(s.logger, op, "user", email, err)
	}
	s.logger.Info("user registered", zap.String("user_id", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

// UpdateUser patches a directory record. A professor with assignments keeps
// the PROFESSOR role; the snapshots naming them are evicted.
func (s *catalogService) UpdateUser(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error) {
	const op = "catalog.UpdateUser"

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil && !req.Role.Valid() {
		return nil, apperr.Validation(op, "role", "role must be ADMIN or PROFESSOR")
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	current, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "user", id, err)
	}
	assignments, err := s.repo.Assignment.ListByProfessor(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "assignments", id, err)
	}
	if req.Role != nil && *req.Role != current.Role {
		if current.Role == model.RoleProfessor && len(assignments) > 0 {
			return nil, apperr.Conflict(op, "professor still has discipline assignments", nil)
		}
		fields["role"] = *req.Role
	}

	if err := s.repo.User.UpdateFields(ctx, id, fields); err != nil {
		return nil, translate(s.logger, op, "user", id, err)
	}
	for i := range assignments {
		s.cache.Evict(ctx, assignments[i].DisciplineID)
	}

	u, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "user", id, err)
	}
	return u, nil
}
