package service

import (
	"go.uber.org/zap"

	"coursecraft/internal/domain"
	"coursecraft/internal/repository"
)

// Service aggregate entry point for every service
type Service struct {
	Discipline DisciplineService
	Session    SessionService
	Content    ContentService
	Assignment AssignmentService
	Comment    CommentService
	Template   TemplateService
	Catalog    CatalogService
}

// NewService wires every service over one repository, snapshot cache and clock
func NewService(
	repo *repository.Repository,
	cache AggregateCache,
	clock domain.Clock,
	logger *zap.Logger,
) *Service {
	if cache == nil {
		cache = nopCache{}
	}
	if clock == nil {
		clock = domain.SystemClock{}
	}
	agg := &aggregates{repo: repo, cache: cache, clock: clock, logger: logger}

	return &Service{
		Discipline: NewDisciplineService(agg),
		Session:    NewSessionService(agg),
		Content:    NewContentService(agg),
		Assignment: NewAssignmentService(agg),
		Comment:    NewCommentService(agg),
		Template:   NewTemplateService(agg),
		Catalog:    NewCatalogService(agg),
	}
}
