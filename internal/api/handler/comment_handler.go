package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursecraft/internal/dto"
	"coursecraft/internal/service"
	"coursecraft/pkg/response"
)

// CommentHandler admin review comments
type CommentHandler struct {
	svc    service.CommentService
	logger *zap.Logger
}

// NewCommentHandler creates a CommentHandler
func NewCommentHandler(svc service.CommentService, logger *zap.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, logger: logger}
}

// CreateForDiscipline POST /api/v1/disciplines/:id/comments
func (h *CommentHandler) CreateForDiscipline(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	cm, err := h.svc.CreateForDiscipline(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, cm)
}

// CreateForSession POST /api/v1/sessions/:id/comments
func (h *CommentHandler) CreateForSession(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	cm, err := h.svc.CreateForSession(c.Request.Context(), c.Param("id"), userID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, cm)
}

// ListForDiscipline GET /api/v1/disciplines/:id/comments
func (h *CommentHandler) ListForDiscipline(c *gin.Context) {
	list, err := h.svc.ListForDiscipline(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}

// ListForSession GET /api/v1/sessions/:id/comments
func (h *CommentHandler) ListForSession(c *gin.Context) {
	list, err := h.svc.ListForSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}
