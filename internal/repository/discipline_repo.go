package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coursecraft/internal/model"
)

// SessionCount session totals of one discipline, from the cached completion flags
type SessionCount struct {
	DisciplineID string
	Total        int
	Completed    int
}

// DisciplineRepository discipline access
type DisciplineRepository interface {
	Create(ctx context.Context, d *model.Discipline) error
	GetByID(ctx context.Context, id string) (*model.Discipline, error)
	GetByCode(ctx context.Context, code string) (*model.Discipline, error)
	List(ctx context.Context) ([]model.Discipline, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	UpdateDerived(ctx context.Context, id string, status model.DisciplineStatus, assignment model.AssignmentStatus, progress int) error
	TouchAccess(ctx context.Context, id string, at time.Time) error
	SessionCounts(ctx context.Context, ids []string) (map[string]SessionCount, error)
	Delete(ctx context.Context, id string) error
}

type disciplineRepo struct {
	db *gorm.DB
}

// NewDisciplineRepo creates a DisciplineRepository
func NewDisciplineRepo(db *gorm.DB) DisciplineRepository {
	return &disciplineRepo{db: db}
}

func (r *disciplineRepo) Create(ctx context.Context, d *model.Discipline) error {
	return r.db.WithContext(ctx).Omit("Course", "Creator", "Sessions", "Assignments").Create(d).Error
}

// GetByID loads the discipline row with its course, templates and assignments
func (r *disciplineRepo) GetByID(ctx context.Context, id string) (*model.Discipline, error) {
	var d model.Discipline
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Templates").
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assigned_at DESC")
		}).
		Preload("Assignments.Professor").
		Where("id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disciplineRepo) GetByCode(ctx context.Context, code string) (*model.Discipline, error) {
	var d model.Discipline
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns every discipline with course, creator and assignments, newest first
func (r *disciplineRepo) List(ctx context.Context) ([]model.Discipline, error) {
	var disciplines []model.Discipline
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("Creator").
		Preload("Assignments").
		Order("created_at DESC").
		Find(&disciplines).Error
	return disciplines, err
}

func (r *disciplineRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).
		Model(&model.Discipline{}).
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

// UpdateDerived persists the status/progress cache columns and the projected
// status of the discipline's assignments
func (r *disciplineRepo) UpdateDerived(ctx context.Context, id string, status model.DisciplineStatus, assignment model.AssignmentStatus, progress int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Discipline{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"status": status, "progress": progress}).Error; err != nil {
			return err
		}
		return tx.Model(&model.ProfessorDiscipline{}).
			Where("discipline_id = ?", id).
			Update("status", assignment).Error
	})
}

func (r *disciplineRepo) TouchAccess(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&model.Discipline{}).
		Where("id = ?", id).
		UpdateColumn("last_access", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *disciplineRepo) SessionCounts(ctx context.Context, ids []string) (map[string]SessionCount, error) {
	out := make(map[string]SessionCount, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []SessionCount
	err := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Select("discipline_id, COUNT(*) AS total, SUM(CASE WHEN is_completed THEN 1 ELSE 0 END) AS completed").
		Where("discipline_id IN ?", ids).
		Group("discipline_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.DisciplineID] = row
	}
	return out, nil
}

// Delete removes the discipline and everything hanging off it in one transaction
func (r *disciplineRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sessionIDs []string
		if err := tx.Model(&model.Session{}).
			Where("discipline_id = ?", id).
			Pluck("id", &sessionIDs).Error; err != nil {
			return err
		}
		if err := deleteSessionContent(tx, sessionIDs); err != nil {
			return err
		}
		if err := tx.Where("discipline_id = ?", id).Delete(&model.Session{}).Error; err != nil {
			return err
		}
		for _, m := range []interface{}{&model.AdminComment{}, &model.ProfessorDiscipline{}, &model.DisciplineTemplate{}} {
			if err := tx.Where("discipline_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&model.Discipline{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
