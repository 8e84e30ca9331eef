package domain

import (
	"time"

	"gorm.io/datatypes"

	"coursecraft/internal/model"
)

// Deadline instant a delivery date expires: the start of the following day, UTC
func Deadline(date *datatypes.Date) *time.Time {
	if date == nil {
		return nil
	}
	d := StartOfDay(time.Time(*date)).AddDate(0, 0, 1)
	return &d
}

// DeriveStatus lifecycle status from its inputs, in precedence order:
// not assigned, nothing done, everything done, past deadline, in progress.
func DeriveStatus(assigned bool, progress int, deadline *time.Time, now time.Time) model.DisciplineStatus {
	switch {
	case !assigned:
		return model.DisciplineCreated
	case progress <= 0:
		return model.DisciplineAssigned
	case progress >= 100:
		return model.DisciplineCompleted
	case deadline != nil && !now.Before(*deadline):
		return model.DisciplineLate
	default:
		return model.DisciplineInProgress
	}
}

// AssignmentStatusFor projects a discipline status onto an assignment
func AssignmentStatusFor(s model.DisciplineStatus) model.AssignmentStatus {
	switch s {
	case model.DisciplineInProgress:
		return model.AssignmentInProgress
	case model.DisciplineCompleted:
		return model.AssignmentCompleted
	case model.DisciplineLate:
		return model.AssignmentLate
	default:
		return model.AssignmentPending
	}
}
