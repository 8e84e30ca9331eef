package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregate entry point for every table repository
type Repository struct {
	db *gorm.DB

	User       UserRepository
	Course     CourseRepository
	Discipline DisciplineRepository
	Template   TemplateRepository
	Session    SessionRepository
	Content    ContentRepository
	Assignment AssignmentRepository
	Comment    CommentRepository
}

// NewRepository builds the aggregate over db
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		User:       NewUserRepo(db),
		Course:     NewCourseRepo(db),
		Discipline: NewDisciplineRepo(db),
		Template:   NewTemplateRepo(db),
		Session:    NewSessionRepo(db),
		Content:    NewContentRepo(db),
		Assignment: NewAssignmentRepo(db),
		Comment:    NewCommentRepo(db),
	}
}

// Transaction runs fn with every repository bound to one database transaction.
// A non-nil error from fn rolls the transaction back.
// A Repository assembled without a database (in-memory doubles) runs fn directly.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// Ping checks the database connection
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
