package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"coursecraft/pkg/response"
)

// Pinger dependency that can report its health
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler liveness with per-dependency status
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler creates a HealthHandler; nil entries are skipped
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	status := "ok"
	for name, p := range h.checks {
		if p == nil {
			deps[name] = "disabled"
			continue
		}
		if err := p.Ping(ctx); err != nil {
			deps[name] = "down"
			status = "degraded"
			continue
		}
		deps[name] = "up"
	}
	response.OK(c, gin.H{"status": status, "dependencies": deps})
}
