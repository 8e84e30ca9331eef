package service

import (
	"context"
	"fmt"
	"strings"

	"coursecraft/internal/dto"
	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

// ContentService materials, activities, evaluations and extras of a session.
// Every mutation refreshes the owning discipline's derived fields.
type ContentService interface {
	AddMaterial(ctx context.Context, sessionID string, req *dto.CreateMaterialRequest) (*model.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
	AddActivity(ctx context.Context, sessionID string, req *dto.CreateActivityRequest) (*model.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	AddEvaluation(ctx context.Context, sessionID string, req *dto.CreateEvaluationRequest) (*model.Evaluation, error)
	DeleteEvaluation(ctx context.Context, id string) error
	AddExtra(ctx context.Context, sessionID string, req *dto.CreateExtraRequest) (*model.Extra, error)
	DeleteExtra(ctx context.Context, id string) error
}

type contentService struct {
	*aggregates
}

// NewContentService creates a ContentService
func NewContentService(agg *aggregates) ContentService {
	return &contentService{aggregates: agg}
}

func (s *contentService) session(ctx context.Context, op, id string) (*model.Session, error) {
	session, err := s.repo.Session.GetByID(ctx, id)
	if err != nil {
		return nil, translate(s.logger, op, "session", id, err)
	}
	return session, nil
}

// afterMutation refreshes the discipline owning sessionID
func (s *contentService) afterMutation(ctx context.Context, op, sessionID string) error {
	session, err := s.session(ctx, op, sessionID)
	if err != nil {
		return err
	}
	_, _, err = s.refresh(ctx, session.DisciplineID)
	return err
}

// ────────────────────── Materials ──────────────────────

func (s *contentService) AddMaterial(ctx context.Context, sessionID string, req *dto.CreateMaterialRequest) (*model.Material, error) {
	const op = "content.AddMaterial"

	if err := validateMaterial(op, req); err != nil {
		return nil, err
	}
	session, err := s.session(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}

	m := &model.Material{
		SessionID:   sessionID,
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		IsAuthorial: req.IsAuthorial,
		UsedAI:      req.UsedAI,
		AITool:      req.AITool,
		AIUsage:     req.AIUsage,
		Description: req.Description,
		FileURL:     trimmed(req.FileURL),
		LinkURL:     trimmed(req.LinkURL),
	}
	if err := s.repo.Content.CreateMaterial(ctx, m); err != nil {
		return nil, translate(s.logger, op, "material", sessionID, err)
	}
	if _, _, err := s.refresh(ctx, session.DisciplineID); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *contentService) DeleteMaterial(ctx context.Context, id string) error {
	const op = "content.DeleteMaterial"

	m, err := s.repo.Content.GetMaterial(ctx, id)
	if err != nil {
		return translate(s.logger, op, "material", id, err)
	}
	if err := s.repo.Content.DeleteMaterial(ctx, id); err != nil {
		return translate(s.logger, op, "material", id, err)
	}
	return s.afterMutation(ctx, op, m.SessionID)
}

// ────────────────────── Activities ──────────────────────

func (s *contentService) AddActivity(ctx context.Context, sessionID string, req *dto.CreateActivityRequest) (*model.Activity, error) {
	const op = "content.AddActivity"

	if err := validateActivity(op, req); err != nil {
		return nil, err
	}
	session, err := s.session(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}
	order, err := s.repo.Content.NextActivityOrder(ctx, sessionID)
	if err != nil {
		return nil, translate(s.logger, op, "activity", sessionID, err)
	}

	a := &model.Activity{
		SessionID: sessionID,
		Type:      req.Type,
		Title:     strings.TrimSpace(req.Title),
		Guidance:  req.Guidance,
		Order:     order,
	}
	switch req.Type {
	case model.ActivityForum:
		a.Forum = &model.ForumBody{Statement: req.Forum.Statement}
	case model.ActivityAssignment:
		a.Assignment = &model.AssignmentBody{
			Question:       req.Assignment.Question,
			ExpectedAnswer: req.Assignment.ExpectedAnswer,
			FileURL:        trimmed(req.Assignment.FileURL),
			Feedback:       req.Assignment.Feedback,
		}
	case model.ActivityQuiz:
		for i, q := range req.Quiz {
			a.QuizQuestions = append(a.QuizQuestions, model.QuizQuestion{Order: i + 1, Choices: choices(q)})
		}
	}

	if err := s.repo.Content.CreateActivity(ctx, a); err != nil {
		return nil, translate(s.logger, op, "activity", sessionID, err)
	}
	if _, _, err := s.refresh(ctx, session.DisciplineID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *contentService) DeleteActivity(ctx context.Context, id string) error {
	const op = "content.DeleteActivity"

	a, err := s.repo.Content.GetActivity(ctx, id)
	if err != nil {
		return translate(s.logger, op, "activity", id, err)
	}
	if err := s.repo.Content.DeleteActivity(ctx, id); err != nil {
		return translate(s.logger, op, "activity", id, err)
	}
	return s.afterMutation(ctx, op, a.SessionID)
}

// ────────────────────── Evaluations ──────────────────────

func (s *contentService) AddEvaluation(ctx context.Context, sessionID string, req *dto.CreateEvaluationRequest) (*model.Evaluation, error) {
	const op = "content.AddEvaluation"

	if err := validateEvaluation(op, req); err != nil {
		return nil, err
	}
	session, err := s.session(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}

	e := &model.Evaluation{
		SessionID: sessionID,
		Type:      req.Type,
		Guidance:  req.Guidance,
		FileURL:   trimmed(req.FileURL),
	}
	switch req.Type {
	case model.EvaluationEssay:
		for i, q := range req.EssayQuestions {
			e.EssayQuestions = append(e.EssayQuestions, model.EssayQuestion{
				Order: i + 1, Question: q.Question, ExpectedAnswer: q.ExpectedAnswer,
			})
		}
	case model.EvaluationObjective:
		for i, q := range req.MCQuestions {
			e.MCQuestions = append(e.MCQuestions, model.MCQuestion{Order: i + 1, Choices: choices(q)})
		}
	}

	if err := s.repo.Content.CreateEvaluation(ctx, e); err != nil {
		return nil, translate(s.logger, op, "evaluation", sessionID, err)
	}
	if _, _, err := s.refresh(ctx, session.DisciplineID); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *contentService) DeleteEvaluation(ctx context.Context, id string) error {
	const op = "content.DeleteEvaluation"

	e, err := s.repo.Content.GetEvaluation(ctx, id)
	if err != nil {
		return translate(s.logger, op, "evaluation", id, err)
	}
	if err := s.repo.Content.DeleteEvaluation(ctx, id); err != nil {
		return translate(s.logger, op, "evaluation", id, err)
	}
	return s.afterMutation(ctx, op, e.SessionID)
}

// ────────────────────── Extras ──────────────────────

func (s *contentService) AddExtra(ctx context.Context, sessionID string, req *dto.CreateExtraRequest) (*model.Extra, error) {
	const op = "content.AddExtra"

	if !req.Type.Valid() {
		return nil, apperr.Validation(op, "type", "type must be one of REFLECT, CAUTION, LEARN_MORE")
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, apperr.Validation(op, "description", "description is required")
	}
	session, err := s.session(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}

	e := &model.Extra{
		SessionID:   sessionID,
		Type:        req.Type,
		Description: req.Description,
		FileURL:     trimmed(req.FileURL),
	}
	if err := s.repo.Content.CreateExtra(ctx, e); err != nil {
		return nil, translate(s.logger, op, "extra", sessionID, err)
	}
	if _, _, err := s.refresh(ctx, session.DisciplineID); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *contentService) DeleteExtra(ctx context.Context, id string) error {
	const op = "content.DeleteExtra"

	e, err := s.repo.Content.GetExtra(ctx, id)
	if err != nil {
		return translate(s.logger, op, "extra", id, err)
	}
	if err := s.repo.Content.DeleteExtra(ctx, id); err != nil {
		return translate(s.logger, op, "extra", id, err)
	}
	return s.afterMutation(ctx, op, e.SessionID)
}

// ── variant validation ──

func validateMaterial(op string, req *dto.CreateMaterialRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperr.Validation(op, "name", "name is required")
	}
	if !req.Type.Valid() {
		return apperr.Validation(op, "type", "type must be BASIC or SUPPLEMENTARY")
	}
	hasFile, hasLink := trimmed(req.FileURL) != nil, trimmed(req.LinkURL) != nil
	if hasFile == hasLink {
		return apperr.Validation(op, "file_url", "exactly one of file_url or link_url is required")
	}
	if req.UsedAI && strings.TrimSpace(req.AITool) == "" {
		return apperr.Validation(op, "ai_tool", "ai_tool is required when used_ai is set")
	}
	return nil
}

func validateActivity(op string, req *dto.CreateActivityRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return apperr.Validation(op, "title", "title is required")
	}
	switch req.Type {
	case model.ActivityForum:
		if req.Forum == nil || strings.TrimSpace(req.Forum.Statement) == "" {
			return apperr.Validation(op, "forum", "forum activities require a statement")
		}
		if req.Assignment != nil || len(req.Quiz) > 0 {
			return apperr.Validation(op, "type", "forum activities carry only a forum body")
		}
	case model.ActivityAssignment:
		if req.Assignment == nil || strings.TrimSpace(req.Assignment.Question) == "" {
			return apperr.Validation(op, "assignment", "assignment activities require a question")
		}
		if req.Forum != nil || len(req.Quiz) > 0 {
			return apperr.Validation(op, "type", "assignment activities carry only an assignment body")
		}
	case model.ActivityQuiz:
		if len(req.Quiz) == 0 {
			return apperr.Validation(op, "quiz", "quiz activities require at least one question")
		}
		if req.Forum != nil || req.Assignment != nil {
			return apperr.Validation(op, "type", "quiz activities carry only questions")
		}
		for i, q := range req.Quiz {
			if err := validateChoice(op, fmt.Sprintf("quiz[%d]", i), q); err != nil {
				return err
			}
		}
	default:
		return apperr.Validation(op, "type", "type must be one of FORUM, ASSIGNMENT, QUIZ")
	}
	return nil
}

func validateEvaluation(op string, req *dto.CreateEvaluationRequest) error {
	switch req.Type {
	case model.EvaluationEssay:
		if len(req.EssayQuestions) == 0 {
			return apperr.Validation(op, "essay_questions", "essay evaluations require at least one question")
		}
		if len(req.MCQuestions) > 0 {
			return apperr.Validation(op, "mc_questions", "essay evaluations carry essay questions only")
		}
		for i, q := range req.EssayQuestions {
			if strings.TrimSpace(q.Question) == "" {
				return apperr.Validation(op, fmt.Sprintf("essay_questions[%d]", i), "question is required")
			}
		}
	case model.EvaluationObjective:
		if len(req.MCQuestions) == 0 {
			return apperr.Validation(op, "mc_questions", "objective evaluations require at least one question")
		}
		if len(req.EssayQuestions) > 0 {
			return apperr.Validation(op, "essay_questions", "objective evaluations carry multiple-choice questions only")
		}
		for i, q := range req.MCQuestions {
			if err := validateChoice(op, fmt.Sprintf("mc_questions[%d]", i), q); err != nil {
				return err
			}
		}
	default:
		return apperr.Validation(op, "type", "type must be ESSAY or OBJECTIVE")
	}
	return nil
}

func validateChoice(op, field string, q dto.ChoiceInput) error {
	if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
		return apperr.Validation(op, field, "question and correct_answer are required")
	}
	for _, w := range q.WrongAnswers {
		if strings.TrimSpace(w) == "" {
			return apperr.Validation(op, field, "four wrong_answers are required")
		}
	}
	return nil
}

func choices(q dto.ChoiceInput) model.Choices {
	return model.Choices{
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		WrongAnswer1:  q.WrongAnswers[0],
		WrongAnswer2:  q.WrongAnswers[1],
		WrongAnswer3:  q.WrongAnswers[2],
		WrongAnswer4:  q.WrongAnswers[3],
		Feedback:      q.Feedback,
	}
}

// trimmed nil for a nil or blank string
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
