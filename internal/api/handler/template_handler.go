package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursecraft/internal/dto"
	"coursecraft/internal/service"
	"coursecraft/pkg/response"
)

// TemplateHandler discipline template endpoints
type TemplateHandler struct {
	svc    service.TemplateService
	logger *zap.Logger
}

// NewTemplateHandler creates a TemplateHandler
func NewTemplateHandler(svc service.TemplateService, logger *zap.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, logger: logger}
}

// Get GET /api/v1/disciplines/:id/template
func (h *TemplateHandler) Get(c *gin.Context) {
	t, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, t)
}

// Update PUT /api/v1/disciplines/:id/template
func (h *TemplateHandler) Update(c *gin.Context) {
	var req dto.TemplateRequest
	if !bindJSON(c, &req) {
		return
	}
	t, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, t)
}
