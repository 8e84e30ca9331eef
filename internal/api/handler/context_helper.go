package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coursecraft/internal/api/middleware"
	apperr "coursecraft/pkg/errors"
	"coursecraft/pkg/response"
)

// MustGetUserID extracts the caller id injected by JWTAuth.
// On failure it writes a 401 and returns false; the caller should return.
func MustGetUserID(c *gin.Context) (string, bool) {
	s := c.GetString(middleware.ContextUserID)
	if s == "" {
		response.Unauthorized(c, "unauthenticated")
		return "", false
	}
	return s, true
}

// respondError maps a coded service error onto the response envelope.
// Persistence and foreign errors are logged and answered with a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	e, ok := apperr.As(err)
	if !ok {
		internalError(c, logger, err)
		return
	}

	switch e.Code {
	case apperr.CodeValidation:
		switch {
		case e.Details != nil:
			response.ErrorWithDetails(c, http.StatusBadRequest, e.Message, e.Details)
		case e.Field != "":
			response.ErrorWithDetails(c, http.StatusBadRequest, e.Message, gin.H{"field": e.Field})
		default:
			response.BadRequest(c, e.Message)
		}
	case apperr.CodeNotFound:
		response.NotFound(c, e.Message)
	case apperr.CodeConflict:
		response.Conflict(c, e.Message)
	default:
		internalError(c, logger, err)
	}
}

func internalError(c *gin.Context, logger *zap.Logger, err error) {
	_ = c.Error(err)
	logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	response.InternalError(c)
}

// bindJSON decodes the body into req, answering 400 on malformed input
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "invalid request body", gin.H{"detail": err.Error()})
		return false
	}
	return true
}
