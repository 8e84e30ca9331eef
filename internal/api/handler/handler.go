package handler

import (
	"go.uber.org/zap"

	"coursecraft/internal/service"
)

// Handler aggregate entry point for every HTTP handler
type Handler struct {
	Discipline *DisciplineHandler
	Session    *SessionHandler
	Content    *ContentHandler
	Assignment *AssignmentHandler
	Comment    *CommentHandler
	Template   *TemplateHandler
	Catalog    *CatalogHandler
	Health     *HealthHandler
}

// NewHandler builds every handler over the service aggregate
func NewHandler(svc *service.Service, checks map[string]Pinger, logger *zap.Logger) *Handler {
	return &Handler{
		Discipline: NewDisciplineHandler(svc.Discipline, logger),
		Session:    NewSessionHandler(svc.Session, logger),
		Content:    NewContentHandler(svc.Content, logger),
		Assignment: NewAssignmentHandler(svc.Assignment, logger),
		Comment:    NewCommentHandler(svc.Comment, logger),
		Template:   NewTemplateHandler(svc.Template, logger),
		Catalog:    NewCatalogHandler(svc.Catalog, logger),
		Health:     NewHealthHandler(checks),
	}
}
