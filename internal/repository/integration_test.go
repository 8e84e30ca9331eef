//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursecraft/internal/model"
	"coursecraft/internal/repository"
	"coursecraft/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var pgDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=coursecraft_test sslmode=disable TimeZone=UTC"
	}

	var err error
	pgDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect test database: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := pgDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sql.DB: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrations: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func seedPG(t *testing.T, sessions int) (*repository.Repository, *model.Discipline, []string) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewRepository(pgDB)
	suffix := time.Now().UnixNano()

	admin := &model.User{Email: fmt.Sprintf("admin%d@example.edu", suffix), Role: model.RoleAdmin, IsActive: true}
	if err := repo.User.Create(ctx, admin); err != nil {
		t.Fatalf("create user: %v", err)
	}
	course := &model.Course{Name: "Course", Type: model.CourseGraduate, IsActive: true}
	if err := repo.Course.Create(ctx, course); err != nil {
		t.Fatalf("create course: %v", err)
	}
	d := &model.Discipline{
		Name: "Discipline", Code: fmt.Sprintf("D%d", suffix), Workload: 40,
		CourseType: model.CourseGraduate, CourseID: course.ID, CreatedBy: admin.ID,
		Status: model.DisciplineCreated,
	}
	if err := repo.Discipline.Create(ctx, d); err != nil {
		t.Fatalf("create discipline: %v", err)
	}

	ids := make([]string, 0, sessions)
	for i := 1; i <= sessions; i++ {
		s := &model.Session{DisciplineID: d.ID, Name: fmt.Sprintf("s%d", i), Type: model.SessionGuide, Order: i}
		if err := repo.Session.Create(ctx, s); err != nil {
			t.Fatalf("create session: %v", err)
		}
		ids = append(ids, s.ID)
	}

	t.Cleanup(func() {
		_ = repo.Discipline.Delete(context.Background(), d.ID)
		pgDB.Where("id = ?", course.ID).Delete(&model.Course{})
		pgDB.Where("email LIKE ?", fmt.Sprintf("%%%d@example.edu", suffix)).Delete(&model.User{})
	})
	return repo, d, ids
}

// ═══════════════════════════════════════════════════════════
// Test: Reorder against the deferred position constraint
// ═══════════════════════════════════════════════════════════

func TestPG_ApplyOrder_PassesThroughDuplicates(t *testing.T) {
	repo, d, ids := seedPG(t, 3)
	ctx := context.Background()

	if err := repo.Session.ApplyOrder(ctx, d.ID, []string{ids[2], ids[0], ids[1]}); err != nil {
		t.Fatalf("ApplyOrder: %v", err)
	}
	assertOrder(t, orderOf(t, repo, d.ID), "s3", "s1", "s2")
}

func TestPG_ApplyOrder_DuplicateFailsAtCommit(t *testing.T) {
	repo, d, ids := seedPG(t, 3)

	err := repo.Session.ApplyOrder(context.Background(), d.ID, []string{ids[0], ids[0], ids[2]})
	if err == nil {
		t.Fatal("expected commit to fail on a duplicate position")
	}
	assertOrder(t, orderOf(t, repo, d.ID), "s1", "s2", "s3")
}

func TestPG_DeleteAndRenumber(t *testing.T) {
	repo, d, ids := seedPG(t, 4)

	if err := repo.Session.DeleteAndRenumber(context.Background(), ids[0]); err != nil {
		t.Fatalf("DeleteAndRenumber: %v", err)
	}
	assertOrder(t, orderOf(t, repo, d.ID), "s2", "s3", "s4")
}

// ═══════════════════════════════════════════════════════════
// Test: Duplicate assignment surfaces SQLSTATE 23505
// ═══════════════════════════════════════════════════════════

func TestPG_DuplicateAssignment(t *testing.T) {
	repo, d, _ := seedPG(t, 0)
	ctx := context.Background()

	prof := &model.User{Email: fmt.Sprintf("prof%d@example.edu", time.Now().UnixNano()), Role: model.RoleProfessor, IsActive: true}
	if err := repo.User.Create(ctx, prof); err != nil {
		t.Fatalf("create professor: %v", err)
	}
	t.Cleanup(func() { pgDB.Where("id = ?", prof.ID).Delete(&model.User{}) })

	a := &model.ProfessorDiscipline{ProfessorID: prof.ID, DisciplineID: d.ID, AssignedAt: time.Now(), Status: model.AssignmentPending}
	if err := repo.Assignment.Create(ctx, a); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	err := repo.Assignment.Create(ctx, &model.ProfessorDiscipline{ProfessorID: prof.ID, DisciplineID: d.ID, AssignedAt: time.Now()})

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		t.Fatalf("expected unique violation, got %v", err)
	}
	_ = repo.Assignment.Delete(ctx, prof.ID, d.ID)
}
