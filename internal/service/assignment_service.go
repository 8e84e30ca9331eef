package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coursecraft/internal/domain"
	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

// AssignmentService professor ↔ discipline assignments
type AssignmentService interface {
	Assign(ctx context.Context, disciplineID, professorID string) (*model.ProfessorDiscipline, error)
	Unassign(ctx context.Context, disciplineID, professorID string) error
	ListByProfessor(ctx context.Context, professorID string) ([]model.ProfessorDiscipline, error)
}

type assignmentService struct {
	*aggregates
}

// NewAssignmentService creates an AssignmentService
func NewAssignmentService(agg *aggregates) AssignmentService {
	return &assignmentService{aggregates: agg}
}

// ────────────────────── Assign ──────────────────────

func (s *assignmentService) Assign(ctx context.Context, disciplineID, professorID string) (*model.ProfessorDiscipline, error) {
	const op = "assignment.Assign"

	if professorID == "" {
		return nil, apperr.Validation(op, "professor_id", "professor_id is required")
	}
	if _, err := s.repo.Discipline.GetByID(ctx, disciplineID); err != nil {
		return nil, translate(s.logger, op, "discipline", disciplineID, err)
	}
	user, err := s.repo.User.GetByID(ctx, professorID)
	if err != nil {
		return nil, translate(s.logger, op, "user", professorID, err)
	}
	if user.Role != model.RoleProfessor {
		return nil, apperr.Validation(op, "professor_id", "user is not a professor")
	}

	if _, err := s.repo.Assignment.Get(ctx, professorID, disciplineID); err == nil {
		return nil, apperr.Conflict(op, "professor already assigned to this discipline", nil)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(s.logger, op, "assignment", disciplineID, err)
	}

	a := &model.ProfessorDiscipline{
		ProfessorID:  professorID,
		DisciplineID: disciplineID,
		AssignedAt:   s.clock.Now(),
		Status:       model.AssignmentPending,
	}
	if err := s.repo.Assignment.Create(ctx, a); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.Conflict(op, "professor already assigned to this discipline", err)
		}
		return nil, translate(s.logger, op, "assignment", disciplineID, err)
	}

	_, derived, err := s.refresh(ctx, disciplineID)
	if err != nil {
		return nil, err
	}
	a.Status = domain.AssignmentStatusFor(derived.Status)

	s.logger.Info("professor assigned",
		zap.String("discipline_id", disciplineID),
		zap.String("professor_id", professorID),
	)
	return a, nil
}

// ────────────────────── Unassign ──────────────────────

func (s *assignmentService) Unassign(ctx context.Context, disciplineID, professorID string) error {
	const op = "assignment.Unassign"

	if err := s.repo.Assignment.Delete(ctx, professorID, disciplineID); err != nil {
		return translate(s.logger, op, "assignment", disciplineID+"/"+professorID, err)
	}
	_, _, err := s.refresh(ctx, disciplineID)
	return err
}

// ────────────────────── ListByProfessor ──────────────────────

// ListByProfessor returns the professor's assignments newest first, each status
// projected from the discipline's derived status
func (s *assignmentService) ListByProfessor(ctx context.Context, professorID string) ([]model.ProfessorDiscipline, error) {
	const op = "assignment.ListByProfessor"

	if professorID == "" {
		return nil, apperr.Validation(op, "professorId", "professorId is required")
	}

	list, err := s.repo.Assignment.ListByProfessor(ctx, professorID)
	if err != nil {
		return nil, translate(s.logger, op, "assignments", professorID, err)
	}

	ids := make([]string, 0, len(list))
	for i := range list {
		if list[i].Discipline != nil {
			ids = append(ids, list[i].Discipline.ID)
		}
	}
	counts, err := s.repo.Discipline.SessionCounts(ctx, ids)
	if err != nil {
		return nil, translate(s.logger, op, "sessions", professorID, err)
	}

	now := s.clock.Now()
	for i := range list {
		d := list[i].Discipline
		if d == nil {
			continue
		}
		c := counts[d.ID]
		domain.Summarize(d, c.Completed, c.Total, now)
		list[i].Status = domain.AssignmentStatusFor(d.Status)
	}
	return list, nil
}
