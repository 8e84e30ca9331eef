package dto

import "coursecraft/internal/model"

// ── course / user directory DTOs ──

// CreateCourseRequest new course
type CreateCourseRequest struct {
	Name        string           `json:"name"        binding:"required,max=150"`
	Description string           `json:"description"`
	Type        model.CourseType `json:"type"        binding:"required"`
}

// UpdateCourseRequest partial course update; IsActive false retires the course
type UpdateCourseRequest struct {
	Name        *string           `json:"name"        binding:"omitempty,max=150"`
	Description *string           `json:"description"`
	Type        *model.CourseType `json:"type"`
	IsActive    *bool             `json:"is_active"`
}

// CourseListRequest course list filter
type CourseListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// CreateUserRequest directory record for an externally authenticated identity
type CreateUserRequest struct {
	Email string     `json:"email" binding:"required,email,max=255"`
	Name  string     `json:"name"  binding:"omitempty,max=100"`
	Role  model.Role `json:"role"  binding:"required"`
}

// UpdateUserRequest partial directory update. The email is the identity key
// shared with the identity provider and cannot change.
type UpdateUserRequest struct {
	Name     *string     `json:"name"      binding:"omitempty,max=100"`
	Role     *model.Role `json:"role"`
	IsActive *bool       `json:"is_active"`
}

// UserListRequest user list filter
type UserListRequest struct {
	Role model.Role `form:"role"`
}
