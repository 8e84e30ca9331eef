package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	"coursecraft/internal/service"
)

const (
	seedAdminEmail     = "admin@coursecraft.local"
	seedProfessorEmail = "professor@coursecraft.local"
	seedCourseName     = "Engenharia de Software"
	seedDisciplineCode = "ES101"
)

// seedResult ids of the demo records, created or found
type seedResult struct {
	AdminID      string
	ProfessorID  string
	CourseID     string
	DisciplineID string
	Created      bool
}

// seed creates a demo directory, course and discipline through the service
// layer. Records that already exist are reused, so running it twice is safe.
func seed(ctx context.Context, svc *service.Service, now time.Time, logger *zap.Logger) (*seedResult, error) {
	res := &seedResult{}

	users, err := svc.Catalog.ListUsers(ctx, &dto.UserListRequest{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	byEmail := make(map[string]string, len(users))
	for _, u := range users {
		byEmail[u.Email] = u.ID
	}
	ensureUser := func(email, name string, role model.Role) (string, error) {
		if id, ok := byEmail[email]; ok {
			return id, nil
		}
		u, err := svc.Catalog.CreateUser(ctx, &dto.CreateUserRequest{Email: email, Name: name, Role: role})
		if err != nil {
			return "", fmt.Errorf("create user %s: %w", email, err)
		}
		return u.ID, nil
	}
	if res.AdminID, err = ensureUser(seedAdminEmail, "Administração", model.RoleAdmin); err != nil {
		return nil, err
	}
	if res.ProfessorID, err = ensureUser(seedProfessorEmail, "Professora Demo", model.RoleProfessor); err != nil {
		return nil, err
	}

	courses, err := svc.Catalog.ListCourses(ctx, &dto.CourseListRequest{IncludeInactive: true})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	for _, c := range courses {
		if c.Name == seedCourseName {
			res.CourseID = c.ID
		}
	}
	if res.CourseID == "" {
		c, err := svc.Catalog.CreateCourse(ctx, &dto.CreateCourseRequest{
			Name:        seedCourseName,
			Description: "Curso de demonstração",
			Type:        model.CourseUndergraduate,
		})
		if err != nil {
			return nil, fmt.Errorf("create course: %w", err)
		}
		res.CourseID = c.ID
	}

	disciplines, err := svc.Discipline.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list disciplines: %w", err)
	}
	for _, d := range disciplines {
		if d.Code == seedDisciplineCode {
			res.DisciplineID = d.ID
			logger.Info("seed data already present", zap.String("discipline_id", d.ID))
			return res, nil
		}
	}

	d, err := svc.Discipline.Create(ctx, &dto.CreateDisciplineRequest{
		Name:         "Introdução à Engenharia de Software",
		Code:         seedDisciplineCode,
		Workload:     60,
		CourseType:   model.CourseUndergraduate,
		CourseID:     res.CourseID,
		HasEADHours:  true,
		DeliveryDate: now.AddDate(0, 1, 0).Format("2006-01-02"),
	}, res.AdminID)
	if err != nil {
		return nil, fmt.Errorf("create discipline: %w", err)
	}
	res.DisciplineID = d.ID
	res.Created = true

	if _, err := svc.Session.Create(ctx, d.ID, &dto.CreateSessionRequest{
		Type:    model.SessionPresentation,
		Content: "Boas-vindas e plano de ensino.",
	}); err != nil {
		return nil, fmt.Errorf("create presentation: %w", err)
	}
	guide, err := svc.Session.Create(ctx, d.ID, &dto.CreateSessionRequest{Type: model.SessionGuide})
	if err != nil {
		return nil, fmt.Errorf("create guide: %w", err)
	}
	link := "https://example.org/engenharia-de-software/processos"
	if _, err := svc.Content.AddMaterial(ctx, guide.ID, &dto.CreateMaterialRequest{
		Name:        "Processos de software",
		Type:        model.MaterialBasic,
		IsAuthorial: true,
		LinkURL:     &link,
	}); err != nil {
		return nil, fmt.Errorf("add material: %w", err)
	}
	if _, err := svc.Session.Create(ctx, d.ID, &dto.CreateSessionRequest{Type: model.SessionAssessment}); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	if _, err := svc.Assignment.Assign(ctx, d.ID, res.ProfessorID); err != nil {
		return nil, fmt.Errorf("assign professor: %w", err)
	}

	logger.Info("seed data created",
		zap.String("discipline_id", d.ID),
		zap.String("professor_id", res.ProfessorID),
	)
	return res, nil
}
