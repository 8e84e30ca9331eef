package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursecraft/internal/dto"
	"coursecraft/internal/service"
	"coursecraft/pkg/response"
)

// DisciplineHandler discipline aggregate endpoints
type DisciplineHandler struct {
	svc    service.DisciplineService
	logger *zap.Logger
}

// NewDisciplineHandler creates a DisciplineHandler
func NewDisciplineHandler(svc service.DisciplineService, logger *zap.Logger) *DisciplineHandler {
	return &DisciplineHandler{svc: svc, logger: logger}
}

// Create new discipline with its initial template
// POST /api/v1/disciplines
func (h *DisciplineHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	var req dto.CreateDisciplineRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.svc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, d)
}

// Get full aggregate with derived fields
// GET /api/v1/disciplines/:id
func (h *DisciplineHandler) Get(c *gin.Context) {
	agg, err := h.svc.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, agg)
}

// List every discipline with summarized progress
// GET /api/v1/disciplines
func (h *DisciplineHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}

// Update whitelisted partial update
// PUT /api/v1/disciplines/:id
func (h *DisciplineHandler) Update(c *gin.Context) {
	var req dto.UpdateDisciplineRequest
	if !bindJSON(c, &req) {
		return
	}

	agg, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, agg)
}

// Delete discipline and everything it owns
// DELETE /api/v1/disciplines/:id
func (h *DisciplineHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "discipline deleted", nil)
}

// RecordAccess stamps last_access
// POST /api/v1/disciplines/:id/access
func (h *DisciplineHandler) RecordAccess(c *gin.Context) {
	if err := h.svc.RecordAccess(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "access recorded", nil)
}

// Completion lists what keeps the discipline from being complete
// GET /api/v1/disciplines/:id/completion
func (h *DisciplineHandler) Completion(c *gin.Context) {
	res, err := h.svc.ValidateForCompletion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, res)
}
