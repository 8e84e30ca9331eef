package repository

import (
	"context"

	"gorm.io/gorm"

	"coursecraft/internal/model"
)

// AssignmentRepository professor ↔ discipline assignments
type AssignmentRepository interface {
	Create(ctx context.Context, a *model.ProfessorDiscipline) error
	Get(ctx context.Context, professorID, disciplineID string) (*model.ProfessorDiscipline, error)
	Delete(ctx context.Context, professorID, disciplineID string) error
	ListByProfessor(ctx context.Context, professorID string) ([]model.ProfessorDiscipline, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo creates an AssignmentRepository
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, a *model.ProfessorDiscipline) error {
	return r.db.WithContext(ctx).Omit("Professor", "Discipline").Create(a).Error
}

func (r *assignmentRepo) Get(ctx context.Context, professorID, disciplineID string) (*model.ProfessorDiscipline, error) {
	var a model.ProfessorDiscipline
	err := r.db.WithContext(ctx).
		Where("professor_id = ? AND discipline_id = ?", professorID, disciplineID).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) Delete(ctx context.Context, professorID, disciplineID string) error {
	res := r.db.WithContext(ctx).
		Where("professor_id = ? AND discipline_id = ?", professorID, disciplineID).
		Delete(&model.ProfessorDiscipline{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByProfessor returns the professor's assignments, newest first, each
// with its discipline, the discipline's course and its assignments
func (r *assignmentRepo) ListByProfessor(ctx context.Context, professorID string) ([]model.ProfessorDiscipline, error) {
	var out []model.ProfessorDiscipline
	err := r.db.WithContext(ctx).
		Preload("Discipline").
		Preload("Discipline.Course").
		Preload("Discipline.Assignments").
		Where("professor_id = ?", professorID).
		Order("assigned_at DESC").
		Find(&out).Error
	return out, err
}
