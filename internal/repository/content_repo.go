package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"coursecraft/internal/model"
)

// ContentRepository materials, activities, evaluations and extras of sessions
type ContentRepository interface {
	ListMaterials(ctx context.Context, sessionIDs []string) ([]model.Material, error)
	ListActivities(ctx context.Context, sessionIDs []string) ([]model.Activity, error)
	ListEvaluations(ctx context.Context, sessionIDs []string) ([]model.Evaluation, error)
	ListExtras(ctx context.Context, sessionIDs []string) ([]model.Extra, error)

	CreateMaterial(ctx context.Context, m *model.Material) error
	GetMaterial(ctx context.Context, id string) (*model.Material, error)
	DeleteMaterial(ctx context.Context, id string) error

	CreateActivity(ctx context.Context, a *model.Activity) error
	GetActivity(ctx context.Context, id string) (*model.Activity, error)
	DeleteActivity(ctx context.Context, id string) error
	NextActivityOrder(ctx context.Context, sessionID string) (int, error)

	CreateEvaluation(ctx context.Context, e *model.Evaluation) error
	GetEvaluation(ctx context.Context, id string) (*model.Evaluation, error)
	DeleteEvaluation(ctx context.Context, id string) error

	CreateExtra(ctx context.Context, e *model.Extra) error
	GetExtra(ctx context.Context, id string) (*model.Extra, error)
	DeleteExtra(ctx context.Context, id string) error
}

type contentRepo struct {
	db *gorm.DB
}

// NewContentRepo creates a ContentRepository
func NewContentRepo(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// ────────────────────── List ──────────────────────

func (r *contentRepo) ListMaterials(ctx context.Context, sessionIDs []string) ([]model.Material, error) {
	var out []model.Material
	if len(sessionIDs) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *contentRepo) ListActivities(ctx context.Context, sessionIDs []string) ([]model.Activity, error) {
	var out []model.Activity
	if len(sessionIDs) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Preload("Forum").
		Preload("Assignment").
		Preload("QuizQuestions", byPosition).
		Where("session_id IN ?", sessionIDs).
		Order("position ASC").
		Find(&out).Error
	return out, err
}

func (r *contentRepo) ListEvaluations(ctx context.Context, sessionIDs []string) ([]model.Evaluation, error) {
	var out []model.Evaluation
	if len(sessionIDs) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Preload("EssayQuestions", byPosition).
		Preload("MCQuestions", byPosition).
		Where("session_id IN ?", sessionIDs).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *contentRepo) ListExtras(ctx context.Context, sessionIDs []string) ([]model.Extra, error) {
	var out []model.Extra
	if len(sessionIDs) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// ────────────────────── Materials ──────────────────────

func (r *contentRepo) CreateMaterial(ctx context.Context, m *model.Material) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *contentRepo) GetMaterial(ctx context.Context, id string) (*model.Material, error) {
	var m model.Material
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *contentRepo) DeleteMaterial(ctx context.Context, id string) error {
	return deleteOne(r.db.WithContext(ctx), &model.Material{}, id)
}

// ────────────────────── Activities ──────────────────────

// CreateActivity inserts the activity together with its body
func (r *contentRepo) CreateActivity(ctx context.Context, a *model.Activity) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *contentRepo) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	var a model.Activity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *contentRepo) DeleteActivity(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteActivityBodies(tx, []string{id}); err != nil {
			return err
		}
		return deleteOne(tx, &model.Activity{}, id)
	})
}

func (r *contentRepo) NextActivityOrder(ctx context.Context, sessionID string) (int, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Select("MAX(position)").
		Where("session_id = ?", sessionID).
		Row().
		Scan(&max)
	if err != nil {
		return 0, err
	}
	return int(max.Int64) + 1, nil
}

// ────────────────────── Evaluations ──────────────────────

// CreateEvaluation inserts the evaluation together with its questions
func (r *contentRepo) CreateEvaluation(ctx context.Context, e *model.Evaluation) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *contentRepo) GetEvaluation(ctx context.Context, id string) (*model.Evaluation, error) {
	var e model.Evaluation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *contentRepo) DeleteEvaluation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteEvaluationQuestions(tx, []string{id}); err != nil {
			return err
		}
		return deleteOne(tx, &model.Evaluation{}, id)
	})
}

// ────────────────────── Extras ──────────────────────

func (r *contentRepo) CreateExtra(ctx context.Context, e *model.Extra) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *contentRepo) GetExtra(ctx context.Context, id string) (*model.Extra, error) {
	var e model.Extra
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *contentRepo) DeleteExtra(ctx context.Context, id string) error {
	return deleteOne(r.db.WithContext(ctx), &model.Extra{}, id)
}

// ── cascade helpers ──

func deleteOne(db *gorm.DB, m interface{}, id string) error {
	res := db.Where("id = ?", id).Delete(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteActivityBodies(tx *gorm.DB, activityIDs []string) error {
	if len(activityIDs) == 0 {
		return nil
	}
	for _, m := range []interface{}{&model.ForumBody{}, &model.AssignmentBody{}, &model.QuizQuestion{}} {
		if err := tx.Where("activity_id IN ?", activityIDs).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func deleteEvaluationQuestions(tx *gorm.DB, evaluationIDs []string) error {
	if len(evaluationIDs) == 0 {
		return nil
	}
	for _, m := range []interface{}{&model.EssayQuestion{}, &model.MCQuestion{}} {
		if err := tx.Where("evaluation_id IN ?", evaluationIDs).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteSessionContent removes all content rows of the given sessions
func deleteSessionContent(tx *gorm.DB, sessionIDs []string) error {
	if len(sessionIDs) == 0 {
		return nil
	}

	var activityIDs, evaluationIDs []string
	if err := tx.Model(&model.Activity{}).Where("session_id IN ?", sessionIDs).Pluck("id", &activityIDs).Error; err != nil {
		return err
	}
	if err := tx.Model(&model.Evaluation{}).Where("session_id IN ?", sessionIDs).Pluck("id", &evaluationIDs).Error; err != nil {
		return err
	}
	if err := deleteActivityBodies(tx, activityIDs); err != nil {
		return err
	}
	if err := deleteEvaluationQuestions(tx, evaluationIDs); err != nil {
		return err
	}
	for _, m := range []interface{}{&model.Material{}, &model.Activity{}, &model.Evaluation{}, &model.Extra{}} {
		if err := tx.Where("session_id IN ?", sessionIDs).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
