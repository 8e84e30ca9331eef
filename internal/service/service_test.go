package service

import (
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"coursecraft/internal/domain"
	"coursecraft/internal/model"
	apperr "coursecraft/pkg/errors"
)

// ── test helpers ──

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func setupTestService() (*Service, *memDB) {
	db := newMemDB()
	svc := NewService(db.repository(), nil, domain.FixedClock{T: testNow}, zap.NewNop())
	return svc, db
}

func (m *memDB) addUser(id string, role model.Role) {
	m.users[id] = &model.User{ID: id, Email: id + "@uni.test", Name: id, Role: role, IsActive: true}
}

func (m *memDB) addCourse(id string) {
	m.courses[id] = &model.Course{ID: id, Name: "Course " + id, Type: model.CourseUndergraduate, IsActive: true}
}

// addDiscipline stores a discipline with the default template and no sessions
func (m *memDB) addDiscipline(id, code string) {
	m.disciplines[id] = &model.Discipline{
		ID:         id,
		Name:       "Discipline " + code,
		Code:       code,
		Workload:   60,
		CourseType: model.CourseUndergraduate,
		CourseID:   "course-1",
		Status:     model.DisciplineCreated,
		CreatedBy:  "admin-1",
	}
	tpl := domain.DefaultTemplate()
	tpl.ID = "tpl-" + id
	tpl.DisciplineID = id
	m.templates[tpl.ID] = &tpl
}

func (m *memDB) addSession(id, disciplineID string, order int, typ model.SessionType) {
	m.sessions[id] = &model.Session{ID: id, DisciplineID: disciplineID, Name: id, Type: typ, Order: order}
}

// fillGuide gives a GUIDE session what the default template requires
func (m *memDB) fillGuide(sessionID string) {
	for i := 0; i < domain.DefaultMinAuthorMaterials; i++ {
		id := fmt.Sprintf("%s-mat-%d", sessionID, i)
		link := "https://example.org/" + id
		m.materials[id] = &model.Material{ID: id, SessionID: sessionID, Name: id, Type: model.MaterialBasic, IsAuthorial: true, LinkURL: &link}
	}
	for i := 0; i < domain.DefaultMinStudyActivities; i++ {
		id := fmt.Sprintf("%s-act-%d", sessionID, i)
		m.activities[id] = &model.Activity{ID: id, SessionID: sessionID, Type: model.ActivityForum, Title: id, Order: i + 1}
	}
}

func (m *memDB) assign(professorID, disciplineID string) {
	m.assignments[professorID+"/"+disciplineID] = &model.ProfessorDiscipline{
		ID: "asg-" + disciplineID, ProfessorID: professorID, DisciplineID: disciplineID,
		AssignedAt: testNow.Add(-time.Hour), Status: model.AssignmentPending,
	}
}

func (m *memDB) setDelivery(disciplineID string, y int, mo time.Month, d int) {
	date := datatypes.Date(time.Date(y, mo, d, 0, 0, 0, 0, time.UTC))
	m.disciplines[disciplineID].DeliveryDate = &date
}

func (m *memDB) order(disciplineID string) []string {
	var ids []string
	for _, s := range m.sessionsOf(disciplineID) {
		ids = append(ids, s.ID)
	}
	return ids
}

func assertCode(t *testing.T, err error, code apperr.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := apperr.CodeOf(err); got != code {
		t.Fatalf("expected code %s, got %q (%v)", code, got, err)
	}
}

func assertSequence(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }
