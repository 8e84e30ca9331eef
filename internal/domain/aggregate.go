package domain

import (
	"time"

	"coursecraft/internal/model"
)

// Derived values computed from an aggregate's facts
type Derived struct {
	Progress int
	Status   model.DisciplineStatus
	// Unmet requirements keyed by session id; sessions that pass are absent.
	Unmet map[string][]Requirement
}

// Refresh recomputes every derived field of d in place: each session's
// completion flag, the discipline's progress and status, and the projected
// assignment statuses. d must carry its sessions with content, templates and
// assignments.
func Refresh(d *model.Discipline, now time.Time) Derived {
	t := EffectiveTemplate(d)
	out := Derived{Unmet: make(map[string][]Requirement)}

	for i := range d.Sessions {
		s := &d.Sessions[i]
		unmet := Unmet(s, t)
		s.IsCompleted = len(unmet) == 0
		if len(unmet) > 0 {
			out.Unmet[s.ID] = unmet
		}
	}

	out.Progress = SessionProgress(d.Sessions)
	out.Status = DeriveStatus(len(d.Assignments) > 0, out.Progress, Deadline(d.DeliveryDate), now)

	d.Progress = out.Progress
	d.Status = out.Status
	as := AssignmentStatusFor(out.Status)
	for i := range d.Assignments {
		d.Assignments[i].Status = as
	}
	return out
}

// Summarize derives progress and status from cached session flags only,
// for list views that do not load content.
func Summarize(d *model.Discipline, completed, total int, now time.Time) {
	d.Progress = Progress(completed, total)
	d.Status = DeriveStatus(len(d.Assignments) > 0, d.Progress, Deadline(d.DeliveryDate), now)
}
