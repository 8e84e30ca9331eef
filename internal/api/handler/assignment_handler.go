package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursecraft/internal/dto"
	"coursecraft/internal/service"
	"coursecraft/pkg/response"
)

// AssignmentHandler professor assignment endpoints
type AssignmentHandler struct {
	svc    service.AssignmentService
	logger *zap.Logger
}

// NewAssignmentHandler creates an AssignmentHandler
func NewAssignmentHandler(svc service.AssignmentService, logger *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{svc: svc, logger: logger}
}

// Assign POST /api/v1/disciplines/:id/assignments
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req dto.AssignProfessorRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.svc.Assign(c.Request.Context(), c.Param("id"), req.ProfessorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.Created(c, a)
}

// Unassign DELETE /api/v1/disciplines/:id/assignments/:professorId
func (h *AssignmentHandler) Unassign(c *gin.Context) {
	if err := h.svc.Unassign(c.Request.Context(), c.Param("id"), c.Param("professorId")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OKMessage(c, "assignment removed", nil)
}

// ProfessorDisciplines assignments of one professor, newest first
// GET /api/v1/professor/disciplines?professorId=
func (h *AssignmentHandler) ProfessorDisciplines(c *gin.Context) {
	list, err := h.svc.ListByProfessor(c.Request.Context(), c.Query("professorId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	response.OK(c, list)
}
