package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursecraft/internal/dto"
	"coursecraft/internal/service"
	"coursecraft/pkg/response"
)

// ContentHandler session content endpoints
type ContentHandler struct {
	svc    service.ContentService
	logger *zap.Logger
}

// NewContentHandler creates a ContentHandler
func NewContentHandler(svc service.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, logger: logger}
}

// AddMaterial POST /api/v1/sessions/:id/materials
func (h *ContentHandler) AddMaterial(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.svc.AddMaterial(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, m)
}

// DeleteMaterial DELETE /api/v1/materials/:id
func (h *ContentHandler) DeleteMaterial(c *gin.Context) {
	h.deleted(c, h.svc.DeleteMaterial(c.Request.Context(), c.Param("id")), "material deleted")
}

// AddActivity POST /api/v1/sessions/:id/activities
func (h *ContentHandler) AddActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.svc.AddActivity(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, a)
}

// DeleteActivity DELETE /api/v1/activities/:id
func (h *ContentHandler) DeleteActivity(c *gin.Context) {
	h.deleted(c, h.svc.DeleteActivity(c.Request.Context(), c.Param("id")), "activity deleted")
}

// AddEvaluation POST /api/v1/sessions/:id/evaluations
func (h *ContentHandler) AddEvaluation(c *gin.Context) {
	var req dto.CreateEvaluationRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.svc.AddEvaluation(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, e)
}

// DeleteEvaluation DELETE /api/v1/evaluations/:id
func (h *ContentHandler) DeleteEvaluation(c *gin.Context) {
	h.deleted(c, h.svc.DeleteEvaluation(c.Request.Context(), c.Param("id")), "evaluation deleted")
}

// AddExtra POST /api/v1/sessions/:id/extras
func (h *ContentHandler) AddExtra(c *gin.Context) {
	var req dto.CreateExtraRequest
	if !bindJSON(c, &req) {
		return
	}
	e, err := h.svc.AddExtra(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, e)
}

// DeleteExtra DELETE /api/v1/extras/:id
func (h *ContentHandler) DeleteExtra(c *gin.Context) {
	h.deleted(c, h.svc.DeleteExtra(c.Request.Context(), c.Param("id")), "extra deleted")
}

func (h *ContentHandler) deleted(c *gin.Context, err error, msg string) {
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OKMessage(c, msg, nil)
}
