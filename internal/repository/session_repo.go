package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"coursecraft/internal/model"
)

// ErrStaleSession a reorder row matched no session of the discipline
var ErrStaleSession = errors.New("session not found in discipline")

// SessionRepository session access; order changes are transactional
type SessionRepository interface {
	Create(ctx context.Context, s *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	ListByDiscipline(ctx context.Context, disciplineID string) ([]model.Session, error)
	Count(ctx context.Context, disciplineID string) (int, error)
	CountByType(ctx context.Context, disciplineID string, typ model.SessionType) (int, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	SetCompletion(ctx context.Context, flags map[string]bool) error
	ApplyOrder(ctx context.Context, disciplineID string, ids []string) error
	DeleteAndRenumber(ctx context.Context, id string) error
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates a SessionRepository
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, s *model.Session) error {
	return r.db.WithContext(ctx).Omit("Materials", "Activities", "Evaluations", "Extras").Create(s).Error
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var s model.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByDiscipline returns the bare session rows ordered by position
func (r *sessionRepo) ListByDiscipline(ctx context.Context, disciplineID string) ([]model.Session, error) {
	var sessions []model.Session
	err := r.db.WithContext(ctx).
		Where("discipline_id = ?", disciplineID).
		Order("position ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Count(ctx context.Context, disciplineID string) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("discipline_id = ?", disciplineID).
		Count(&n).Error
	return int(n), err
}

func (r *sessionRepo) CountByType(ctx context.Context, disciplineID string, typ model.SessionType) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("discipline_id = ? AND type = ?", disciplineID, typ).
		Count(&n).Error
	return int(n), err
}

func (r *sessionRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetCompletion writes the is_completed cache of several sessions
func (r *sessionRepo) SetCompletion(ctx context.Context, flags map[string]bool) error {
	if len(flags) == 0 {
		return nil
	}
	var done, open []string
	for id, ok := range flags {
		if ok {
			done = append(done, id)
		} else {
			open = append(open, id)
		}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(done) > 0 {
			if err := tx.Model(&model.Session{}).Where("id IN ?", done).
				UpdateColumn("is_completed", true).Error; err != nil {
				return err
			}
		}
		if len(open) > 0 {
			if err := tx.Model(&model.Session{}).Where("id IN ?", open).
				UpdateColumn("is_completed", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyOrder assigns position i+1 to ids[i] in a single transaction.
// Any failing row rolls back the whole batch.
func (r *sessionRepo) ApplyOrder(ctx context.Context, disciplineID string, ids []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			res := tx.Model(&model.Session{}).
				Where("id = ? AND discipline_id = ?", id, disciplineID).
				Update("position", i+1)
			if res.Error != nil {
				return fmt.Errorf("session %s: %w", id, res.Error)
			}
			if res.RowsAffected != 1 {
				return fmt.Errorf("session %s: %w", id, ErrStaleSession)
			}
		}
		return nil
	})
}

// DeleteAndRenumber removes a session with its content and closes the gap
// it leaves in the discipline's order
func (r *sessionRepo) DeleteAndRenumber(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s model.Session
		if err := tx.Where("id = ?", id).First(&s).Error; err != nil {
			return err
		}
		if err := deleteSessionContent(tx, []string{id}); err != nil {
			return err
		}
		if err := tx.Where("session_id = ?", id).Delete(&model.AdminComment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Session{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Model(&model.Session{}).
			Where("discipline_id = ? AND position > ?", s.DisciplineID, s.Order).
			UpdateColumn("position", gorm.Expr("position - 1")).Error
	})
}
