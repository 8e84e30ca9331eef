package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperr "coursecraft/pkg/errors"
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports a duplicate-key failure from Postgres
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// translate maps a repository error into the coded taxonomy.
// Coded errors pass through; persistence failures are logged with their cause.
func translate(logger *zap.Logger, op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(op, entity, id)
	case isUniqueViolation(err):
		return apperr.Conflict(op, entity+" already exists", err)
	}
	logger.Error("persistence failure",
		zap.String("op", op),
		zap.String("entity", entity),
		zap.String("id", id),
		zap.Error(err),
	)
	return apperr.Persistence(op, err)
}
