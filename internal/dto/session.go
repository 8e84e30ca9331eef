package dto

import (
	"coursecraft/internal/domain"
	"coursecraft/internal/model"
)

// ── session DTOs ──

// ReorderSessionsRequest target order of every session of a discipline
type ReorderSessionsRequest struct {
	Sessions []domain.OrderItem `json:"sessions"`
}

// CreateSessionRequest new session appended at the end; Name defaults from the template
type CreateSessionRequest struct {
	Type    model.SessionType `json:"type"    binding:"required"`
	Name    string            `json:"name"    binding:"omitempty,max=200"`
	Content string            `json:"content"`
}

// UpdateSessionRequest name/content patch
type UpdateSessionRequest struct {
	Name    *string `json:"name"    binding:"omitempty,min=1,max=200"`
	Content *string `json:"content"`
}
