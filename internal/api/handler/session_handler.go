package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursecraft/internal/dto"
	"coursecraft/internal/service"
	"coursecraft/pkg/response"
)

// SessionHandler session ordering and lifecycle endpoints
type SessionHandler struct {
	svc    service.SessionService
	logger *zap.Logger
}

// NewSessionHandler creates a SessionHandler
func NewSessionHandler(svc service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, logger: logger}
}

// Reorder applies a complete new session order atomically
// PUT /api/v1/disciplines/:id/sessions-order
func (h *SessionHandler) Reorder(c *gin.Context) {
	var req dto.ReorderSessionsRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Sessions == nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "sessions must be an array", gin.H{"field": "sessions"})
		return
	}

	agg, err := h.svc.Reorder(c.Request.Context(), c.Param("id"), req.Sessions)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, agg)
}

// Create appends a session to the discipline
// POST /api/v1/disciplines/:id/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.svc.Create(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, v)
}

// Update renames a session or replaces its text
// PUT /api/v1/sessions/:id
func (h *SessionHandler) Update(c *gin.Context) {
	var req dto.UpdateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	v, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, v)
}

// Delete removes a session and closes the gap in the order
// DELETE /api/v1/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "session deleted", nil)
}

// Complete marks a session complete; unmet requirements come back in error
// POST /api/v1/sessions/:id/complete
func (h *SessionHandler) Complete(c *gin.Context) {
	v, err := h.svc.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, v)
}
