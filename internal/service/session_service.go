package service

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"coursecraft/internal/domain"
	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

// SessionService session ordering and lifecycle
type SessionService interface {
	Reorder(ctx context.Context, disciplineID string, items []domain.OrderItem) (*dto.DisciplineAggregate, error)
	Create(ctx context.Context, disciplineID string, req *dto.CreateSessionRequest) (*dto.SessionView, error)
	Update(ctx context.Context, id string, req *dto.UpdateSessionRequest) (*dto.SessionView, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) (*dto.SessionView, error)
}

type sessionService struct {
	*aggregates
}

// NewSessionService creates a SessionService
func NewSessionService(agg *aggregates) SessionService {
	return &sessionService{aggregates: agg}
}

// ────────────────────── Reorder ──────────────────────

// Reorder applies the requested order atomically. The request must name every
// session of the discipline exactly once; otherwise nothing is written.
func (s *sessionService) Reorder(ctx context.Context, disciplineID string, items []domain.OrderItem) (*dto.DisciplineAggregate, error) {
	const op = "session.Reorder"

	ctx, span := tracer.Start(ctx, "SessionService.Reorder", trace.WithAttributes(
		attribute.String("discipline.id", disciplineID),
		attribute.Int("items", len(items)),
	))
	defer span.End()
	fail := func(err error) (*dto.DisciplineAggregate, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if _, err := s.repo.Discipline.GetByID(ctx, disciplineID); err != nil {
		return fail(translate(s.logger, op, "discipline", disciplineID, err))
	}
	sessions, err := s.repo.Session.ListByDiscipline(ctx, disciplineID)
	if err != nil {
		return fail(translate(s.logger, op, "sessions", disciplineID, err))
	}

	current := make([]string, len(sessions))
	for i := range sessions {
		current[i] = sessions[i].ID
	}
	seq := domain.SequenceFromItems(items)
	if err := domain.ValidatePermutation(seq, current); err != nil {
		return fail(err)
	}

	if err := s.repo.Session.ApplyOrder(ctx, disciplineID, seq); err != nil {
		s.logger.Error("reorder rolled back",
			zap.String("discipline_id", disciplineID),
			zap.Strings("sequence", seq),
			zap.Error(err),
		)
		return fail(apperr.Persistence(op, err))
	}

	// order does not affect completion, progress or status; only re-read
	s.cache.Evict(ctx, disciplineID)
	d, derived, err := s.load(ctx, disciplineID)
	if err != nil {
		s.logger.Error("reorder committed but reload failed",
			zap.String("discipline_id", disciplineID),
			zap.Error(err),
		)
		return fail(err)
	}
	return view(d, derived), nil
}

// ────────────────────── Create ──────────────────────

func (s *sessionService) Create(ctx context.Context, disciplineID string, req *dto.CreateSessionRequest) (*dto.SessionView, error) {
	const op = "session.Create"

	if !req.Type.Valid() {
		return nil, apperr.Validation(op, "type", "type must be one of PRESENTATION, GUIDE, ASSESSMENT")
	}

	d, err := s.repo.Discipline.GetByID(ctx, disciplineID)
	if err != nil {
		return nil, translate(s.logger, op, "discipline", disciplineID, err)
	}
	count, err := s.repo.Session.Count(ctx, disciplineID)
	if err != nil {
		return nil, translate(s.logger, op, "sessions", disciplineID, err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		ofType, err := s.repo.Session.CountByType(ctx, disciplineID, req.Type)
		if err != nil {
			return nil, translate(s.logger, op, "sessions", disciplineID, err)
		}
		name = domain.DefaultSessionName(domain.EffectiveTemplate(d), req.Type, ofType+1)
	}

	session := &model.Session{
		DisciplineID: disciplineID,
		Name:         name,
		Type:         req.Type,
		Order:        count + 1,
		Content:      req.Content,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, translate(s.logger, op, "session", disciplineID, err)
	}

	return s.refreshedSession(ctx, disciplineID, session.ID)
}

// ────────────────────── Update ──────────────────────

func (s *sessionService) Update(ctx context.Context, id string, req *dto.UpdateSessionRequest) (*dto.SessionView, error) {
	const op = "session.Update"

	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "session", id, err)
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.Validation(op, "name", "name must not be blank")
		}
		fields["name"] = name
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if err := s.repo.Session.UpdateFields(ctx, id, fields); err != nil {
		return nil, translate(s.logger, op, "session", id, err)
	}

	return s.refreshedSession(ctx, session.DisciplineID, id)
}

// ────────────────────── Delete ──────────────────────

// Delete removes the session and its content; later sessions move up one place
func (s *sessionService) Delete(ctx context.Context, id string) error {
	const op = "session.Delete"

	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		return translate(s.logger, op, "session", id, err)
	}
	if err := s.repo.Session.DeleteAndRenumber(ctx, id); err != nil {
		return translate(s.logger, op, "session", id, err)
	}
	if _, _, err := s.refresh(ctx, session.DisciplineID); err != nil {
		return err
	}
	return nil
}

// ────────────────────── Complete ──────────────────────

// Complete marks a session complete when its template requirements hold.
// Otherwise it fails with a ValidationError whose details list what is missing.
func (s *sessionService) Complete(ctx context.Context, id string) (*dto.SessionView, error) {
	const op = "session.Complete"

	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "session", id, err)
	}
	d, _, err := s.facts(ctx, session.DisciplineID)
	if err != nil {
		return nil, err
	}
	loaded := findSession(d, id)
	if loaded == nil {
		return nil, apperr.NotFound(op, "session", id)
	}

	if unmet := domain.Unmet(loaded, domain.EffectiveTemplate(d)); len(unmet) > 0 {
		return nil, apperr.ValidationWithDetails(op, "session requirements not met", unmet)
	}
	if err := s.repo.Session.SetCompletion(ctx, map[string]bool{id: true}); err != nil {
		return nil, translate(s.logger, op, "session", id, err)
	}

	return s.refreshedSession(ctx, session.DisciplineID, id)
}

func (s *sessionService) refreshedSession(ctx context.Context, disciplineID, sessionID string) (*dto.SessionView, error) {
	d, derived, err := s.refresh(ctx, disciplineID)
	if err != nil {
		return nil, err
	}
	found := findSession(d, sessionID)
	if found == nil {
		return nil, apperr.NotFound("session.refresh", "session", sessionID)
	}
	v := sessionView(found, derived)
	return &v, nil
}
