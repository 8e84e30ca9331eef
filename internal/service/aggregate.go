package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"coursecraft/internal/domain"
	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	"coursecraft/internal/repository"
)

var tracer = otel.Tracer("coursecraft/internal/service")

// aggregates loads discipline aggregates and keeps their derived caches fresh.
// Every service that mutates content goes through refresh.
type aggregates struct {
	repo   *repository.Repository
	cache  AggregateCache
	clock  domain.Clock
	logger *zap.Logger
}

// facts returns the content graph of a discipline, from the snapshot cache
// when present. Derived fields on the result are stale until domain.Refresh.
// The snapshot is only written by load and refresh, once the derived columns
// it carries match what is stored.
func (a *aggregates) facts(ctx context.Context, id string) (*model.Discipline, bool, error) {
	if d, ok := a.cache.Get(ctx, id); ok {
		trace.SpanFromContext(ctx).SetAttributes(attribute.Bool("snapshot.hit", true))
		return d, true, nil
	}
	d, err := a.stored(ctx, id)
	return d, false, err
}

// stored reads the content graph from the database
func (a *aggregates) stored(ctx context.Context, id string) (*model.Discipline, error) {
	const op = "aggregate.facts"

	d, err := a.repo.Discipline.GetByID(ctx, id)
	if err != nil {
		return nil, translate(a.logger, op, "discipline", id, err)
	}
	sessions, err := a.repo.Session.ListByDiscipline(ctx, id)
	if err != nil {
		return nil, translate(a.logger, op, "sessions", id, err)
	}

	ids := make([]string, len(sessions))
	for i := range sessions {
		ids[i] = sessions[i].ID
	}

	var (
		materials   []model.Material
		activities  []model.Activity
		evaluations []model.Evaluation
		extras      []model.Extra
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		materials, err = a.repo.Content.ListMaterials(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		activities, err = a.repo.Content.ListActivities(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		evaluations, err = a.repo.Content.ListEvaluations(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		extras, err = a.repo.Content.ListExtras(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, translate(a.logger, op, "session content", id, err)
	}

	index := make(map[string]*model.Session, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		s.Materials = []model.Material{}
		s.Activities = []model.Activity{}
		s.Evaluations = []model.Evaluation{}
		s.Extras = []model.Extra{}
		index[s.ID] = s
	}
	for _, m := range materials {
		if s, ok := index[m.SessionID]; ok {
			s.Materials = append(s.Materials, m)
		}
	}
	for _, act := range activities {
		if s, ok := index[act.SessionID]; ok {
			s.Activities = append(s.Activities, act)
		}
	}
	for _, e := range evaluations {
		if s, ok := index[e.SessionID]; ok {
			s.Evaluations = append(s.Evaluations, e)
		}
	}
	for _, e := range extras {
		if s, ok := index[e.SessionID]; ok {
			s.Extras = append(s.Extras, e)
		}
	}
	d.Sessions = sessions
	return d, nil
}

// load returns the aggregate with every derived field recomputed against the
// clock. Drifted cache columns (e.g. a deadline that just passed) are written
// back, and the snapshot is rewritten so later hits agree with the database.
func (a *aggregates) load(ctx context.Context, id string) (*model.Discipline, domain.Derived, error) {
	d, hit, err := a.facts(ctx, id)
	if err != nil {
		return nil, domain.Derived{}, err
	}

	prevStatus, prevProgress := d.Status, d.Progress
	derived := domain.Refresh(d, a.clock.Now())
	if derived.Status == prevStatus && derived.Progress == prevProgress {
		if !hit {
			a.cache.Set(ctx, d)
		}
		return d, derived, nil
	}

	if err := a.repo.Discipline.UpdateDerived(ctx, id, derived.Status, domain.AssignmentStatusFor(derived.Status), derived.Progress); err != nil {
		a.logger.Warn("write back derived fields failed", zap.String("discipline_id", id), zap.Error(err))
		a.cache.Evict(ctx, id)
		return d, derived, nil
	}
	a.cache.Set(ctx, d)
	return d, derived, nil
}

// refresh drops the snapshot, recomputes derived fields from the stored facts
// and persists them as cache columns. Called after every content mutation.
func (a *aggregates) refresh(ctx context.Context, id string) (*model.Discipline, domain.Derived, error) {
	const op = "aggregate.refresh"

	ctx, span := tracer.Start(ctx, "aggregate.refresh", trace.WithAttributes(attribute.String("discipline.id", id)))
	defer span.End()

	a.cache.Evict(ctx, id)
	d, err := a.stored(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, domain.Derived{}, err
	}

	derived := domain.Refresh(d, a.clock.Now())

	flags := make(map[string]bool, len(d.Sessions))
	for i := range d.Sessions {
		flags[d.Sessions[i].ID] = d.Sessions[i].IsCompleted
	}
	if err := a.repo.Session.SetCompletion(ctx, flags); err != nil {
		return nil, domain.Derived{}, translate(a.logger, op, "sessions", id, err)
	}
	if err := a.repo.Discipline.UpdateDerived(ctx, id, derived.Status, domain.AssignmentStatusFor(derived.Status), derived.Progress); err != nil {
		return nil, domain.Derived{}, translate(a.logger, op, "discipline", id, err)
	}
	a.cache.Set(ctx, d)

	span.SetAttributes(
		attribute.Int("discipline.progress", derived.Progress),
		attribute.String("discipline.status", string(derived.Status)),
	)
	return d, derived, nil
}

// view shapes an aggregate for the API
func view(d *model.Discipline, derived domain.Derived) *dto.DisciplineAggregate {
	agg := &dto.DisciplineAggregate{
		Discipline: *d,
		Template:   domain.EffectiveTemplate(d),
		Sessions:   make([]dto.SessionView, len(d.Sessions)),
	}
	agg.Discipline.Sessions = nil
	for i := range d.Sessions {
		agg.Sessions[i] = sessionView(&d.Sessions[i], derived)
	}
	return agg
}

func sessionView(s *model.Session, derived domain.Derived) dto.SessionView {
	unmet := derived.Unmet[s.ID]
	if unmet == nil {
		unmet = []domain.Requirement{}
	}
	return dto.SessionView{Session: *s, UnmetRequirements: unmet}
}

func findSession(d *model.Discipline, id string) *model.Session {
	for i := range d.Sessions {
		if d.Sessions[i].ID == id {
			return &d.Sessions[i]
		}
	}
	return nil
}
