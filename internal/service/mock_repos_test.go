package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursecraft/internal/model"
	"coursecraft/internal/repository"
)

// ── in-memory store shared by every mock repository ──

type memDB struct {
	mu sync.Mutex

	users       map[string]*model.User
	courses     map[string]*model.Course
	disciplines map[string]*model.Discipline
	templates   map[string]*model.DisciplineTemplate
	sessions    map[string]*model.Session
	materials   map[string]*model.Material
	activities  map[string]*model.Activity
	evaluations map[string]*model.Evaluation
	extras      map[string]*model.Extra
	assignments map[string]*model.ProfessorDiscipline // professor/discipline
	comments    []model.AdminComment

	// failures forces the named method ("Session.ApplyOrder") to return the error
	failures map[string]error
	// calls counts invocations of the named method ("Discipline.UpdateDerived")
	calls map[string]int
	seq   int
}

func newMemDB() *memDB {
	return &memDB{
		users:       make(map[string]*model.User),
		courses:     make(map[string]*model.Course),
		disciplines: make(map[string]*model.Discipline),
		templates:   make(map[string]*model.DisciplineTemplate),
		sessions:    make(map[string]*model.Session),
		materials:   make(map[string]*model.Material),
		activities:  make(map[string]*model.Activity),
		evaluations: make(map[string]*model.Evaluation),
		extras:      make(map[string]*model.Extra),
		assignments: make(map[string]*model.ProfessorDiscipline),
		failures:    make(map[string]error),
		calls:       make(map[string]int),
	}
}

func (m *memDB) nextID(prefix string, id *string) {
	if *id != "" {
		return
	}
	m.seq++
	*id = fmt.Sprintf("%s-%03d", prefix, m.seq)
}

func (m *memDB) repository() *repository.Repository {
	return &repository.Repository{
		User:       &mockUserRepo{m},
		Course:     &mockCourseRepo{m},
		Discipline: &mockDisciplineRepo{m},
		Template:   &mockTemplateRepo{m},
		Session:    &mockSessionRepo{m},
		Content:    &mockContentRepo{m},
		Assignment: &mockAssignmentRepo{m},
		Comment:    &mockCommentRepo{m},
	}
}

func (m *memDB) sessionsOf(disciplineID string) []*model.Session {
	var out []*model.Session
	for _, s := range m.sessions {
		if s.DisciplineID == disciplineID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// ── Mock UserRepository ──

type mockUserRepo struct{ db *memDB }

func (r *mockUserRepo) Create(_ context.Context, u *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.db.nextID("user", &u.ID)
	c := *u
	r.db.users[u.ID] = &c
	return nil
}

func (r *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if u, ok := r.db.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockUserRepo) List(_ context.Context, role model.Role) ([]model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.User
	for _, u := range r.db.users {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *mockUserRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range fields {
		switch col {
		case "name":
			u.Name = v.(string)
		case "role":
			u.Role = v.(model.Role)
		case "is_active":
			u.IsActive = v.(bool)
		}
	}
	return nil
}

// ── Mock CourseRepository ──

type mockCourseRepo struct{ db *memDB }

func (r *mockCourseRepo) Create(_ context.Context, c *model.Course) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextID("course", &c.ID)
	cp := *c
	r.db.courses[c.ID] = &cp
	return nil
}

func (r *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if c, ok := r.db.courses[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockCourseRepo) List(_ context.Context, includeInactive bool) ([]model.Course, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Course
	for _, c := range r.db.courses {
		if includeInactive || c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *mockCourseRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c, ok := r.db.courses[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range fields {
		switch col {
		case "name":
			c.Name = v.(string)
		case "description":
			c.Description = v.(string)
		case "type":
			c.Type = v.(model.CourseType)
		case "is_active":
			c.IsActive = v.(bool)
		}
	}
	return nil
}

// ── Mock DisciplineRepository ──

type mockDisciplineRepo struct{ db *memDB }

func (r *mockDisciplineRepo) Create(_ context.Context, d *model.Discipline) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failures["Discipline.Create"]; err != nil {
		return err
	}
	r.db.nextID("disc", &d.ID)
	c := *d
	c.Templates, c.Assignments, c.Sessions = nil, nil, nil
	r.db.disciplines[d.ID] = &c
	return nil
}

// hydrate copies d with its templates and assignments, like the gorm preloads
func (r *mockDisciplineRepo) hydrate(d *model.Discipline) *model.Discipline {
	c := *d
	c.Templates, c.Assignments, c.Sessions = nil, nil, nil
	for _, t := range r.db.templates {
		if t.DisciplineID == d.ID {
			c.Templates = append(c.Templates, *t)
		}
	}
	for _, a := range r.db.assignments {
		if a.DisciplineID == d.ID {
			c.Assignments = append(c.Assignments, *a)
		}
	}
	return &c
}

func (r *mockDisciplineRepo) GetByID(_ context.Context, id string) (*model.Discipline, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.calls["Discipline.GetByID"]++
	if err := r.db.failures["Discipline.GetByID"]; err != nil {
		return nil, err
	}
	if d, ok := r.db.disciplines[id]; ok {
		return r.hydrate(d), nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockDisciplineRepo) GetByCode(_ context.Context, code string) (*model.Discipline, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, d := range r.db.disciplines {
		if d.Code == code {
			return r.hydrate(d), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockDisciplineRepo) List(_ context.Context) ([]model.Discipline, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []model.Discipline
	for _, d := range r.db.disciplines {
		out = append(out, *r.hydrate(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *mockDisciplineRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d, ok := r.db.disciplines[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range fields {
		switch col {
		case "name":
			d.Name = v.(string)
		case "code":
			d.Code = v.(string)
		case "workload":
			d.Workload = v.(int)
		case "has_ead_hours":
			d.HasEADHours = v.(bool)
		case "has_practical_hours":
			d.HasPracticalHours = v.(bool)
		case "has_integrated_project":
			d.HasIntegratedProject = v.(bool)
		case "has_presential_exam":
			d.HasPresentialExam = v.(bool)
		case "is_licenciatura":
			d.IsLicensure = v.(bool)
		case "has_complementary_eval":
			d.HasComplementaryEval = v.(bool)
		case "has_extension_curriculum":
			d.HasExtensionCurriculum = v.(bool)
		case "needs_presential_tool":
			d.NeedsPresentialTool = v.(bool)
		case "delivery_date":
			if v == nil {
				d.DeliveryDate = nil
			} else {
				date := v.(datatypes.Date)
				d.DeliveryDate = &date
			}
		default:
			return fmt.Errorf("unexpected column %q", col)
		}
	}
	return nil
}

func (r *mockDisciplineRepo) UpdateDerived(_ context.Context, id string, status model.DisciplineStatus, assignment model.AssignmentStatus, progress int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.calls["Discipline.UpdateDerived"]++
	if err := r.db.failures["Discipline.UpdateDerived"]; err != nil {
		return err
	}
	d, ok := r.db.disciplines[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.Status, d.Progress = status, progress
	for _, a := range r.db.assignments {
		if a.DisciplineID == id {
			a.Status = assignment
		}
	}
	return nil
}

func (r *mockDisciplineRepo) TouchAccess(_ context.Context, id string, at time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	d, ok := r.db.disciplines[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	d.LastAccess = &at
	return nil
}

func (r *mockDisciplineRepo) SessionCounts(_ context.Context, ids []string) (map[string]repository.SessionCount, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make(map[string]repository.SessionCount, len(ids))
	for _, id := range ids {
		c := repository.SessionCount{DisciplineID: id}
		for _, s := range r.db.sessionsOf(id) {
			c.Total++
			if s.IsCompleted {
				c.Completed++
			}
		}
		out[id] = c
	}
	return out, nil
}

func (r *mockDisciplineRepo) Delete(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.disciplines[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, s := range r.db.sessionsOf(id) {
		delete(r.db.sessions, s.ID)
	}
	for k, t := range r.db.templates {
		if t.DisciplineID == id {
			delete(r.db.templates, k)
		}
	}
	for k, a := range r.db.assignments {
		if a.DisciplineID == id {
			delete(r.db.assignments, k)
		}
	}
	delete(r.db.disciplines, id)
	return nil
}

// ── Mock TemplateRepository ──

type mockTemplateRepo struct{ db *memDB }

func (r *mockTemplateRepo) Create(_ context.Context, t *model.DisciplineTemplate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failures["Template.Create"]; err != nil {
		return err
	}
	r.db.nextID("tpl", &t.ID)
	c := *t
	r.db.templates[t.ID] = &c
	return nil
}

func (r *mockTemplateRepo) GetActive(_ context.Context, disciplineID string) (*model.DisciplineTemplate, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.templates {
		if t.DisciplineID == disciplineID && t.IsActive {
			c := *t
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockTemplateRepo) Update(_ context.Context, t *model.DisciplineTemplate) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c := *t
	r.db.templates[t.ID] = &c
	return nil
}

// ── Mock SessionRepository ──

type mockSessionRepo struct{ db *memDB }

func (r *mockSessionRepo) Create(_ context.Context, s *model.Session) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextID("sess", &s.ID)
	c := *s
	c.Materials, c.Activities, c.Evaluations, c.Extras = nil, nil, nil, nil
	r.db.sessions[s.ID] = &c
	return nil
}

func (r *mockSessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if s, ok := r.db.sessions[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockSessionRepo) ListByDiscipline(_ context.Context, disciplineID string) ([]model.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.Session, 0)
	for _, s := range r.db.sessionsOf(disciplineID) {
		out = append(out, *s)
	}
	return out, nil
}

func (r *mockSessionRepo) Count(_ context.Context, disciplineID string) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.sessionsOf(disciplineID)), nil
}

func (r *mockSessionRepo) CountByType(_ context.Context, disciplineID string, typ model.SessionType) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	n := 0
	for _, s := range r.db.sessionsOf(disciplineID) {
		if s.Type == typ {
			n++
		}
	}
	return n, nil
}

func (r *mockSessionRepo) UpdateFields(_ context.Context, id string, fields map[string]interface{}) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		s.Name = v.(string)
	}
	if v, ok := fields["content"]; ok {
		s.Content = v.(string)
	}
	return nil
}

func (r *mockSessionRepo) SetCompletion(_ context.Context, flags map[string]bool) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for id, done := range flags {
		if s, ok := r.db.sessions[id]; ok {
			s.IsCompleted = done
		}
	}
	return nil
}

// ApplyOrder is all-or-nothing like the transactional implementation
func (r *mockSessionRepo) ApplyOrder(_ context.Context, disciplineID string, ids []string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failures["Session.ApplyOrder"]; err != nil {
		return err
	}
	staged := make(map[string]int, len(ids))
	for i, id := range ids {
		s, ok := r.db.sessions[id]
		if !ok || s.DisciplineID != disciplineID {
			return repository.ErrStaleSession
		}
		staged[id] = i + 1
	}
	for id, pos := range staged {
		r.db.sessions[id].Order = pos
	}
	return nil
}

func (r *mockSessionRepo) DeleteAndRenumber(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s, ok := r.db.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.sessions, id)
	for _, other := range r.db.sessionsOf(s.DisciplineID) {
		if other.Order > s.Order {
			other.Order--
		}
	}
	for k, m := range r.db.materials {
		if m.SessionID == id {
			delete(r.db.materials, k)
		}
	}
	for k, a := range r.db.activities {
		if a.SessionID == id {
			delete(r.db.activities, k)
		}
	}
	for k, e := range r.db.evaluations {
		if e.SessionID == id {
			delete(r.db.evaluations, k)
		}
	}
	for k, e := range r.db.extras {
		if e.SessionID == id {
			delete(r.db.extras, k)
		}
	}
	return nil
}

// ── Mock ContentRepository ──

type mockContentRepo struct{ db *memDB }

func inSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func (r *mockContentRepo) ListMaterials(_ context.Context, sessionIDs []string) ([]model.Material, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.failures["Content.ListMaterials"]; err != nil {
		return nil, err
	}
	set := inSet(sessionIDs)
	var out []model.Material
	for _, m := range r.db.materials {
		if set[m.SessionID] {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *mockContentRepo) ListActivities(_ context.Context, sessionIDs []string) ([]model.Activity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	set := inSet(sessionIDs)
	var out []model.Activity
	for _, a := range r.db.activities {
		if set[a.SessionID] {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *mockContentRepo) ListEvaluations(_ context.Context, sessionIDs []string) ([]model.Evaluation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	set := inSet(sessionIDs)
	var out []model.Evaluation
	for _, e := range r.db.evaluations {
		if set[e.SessionID] {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *mockContentRepo) ListExtras(_ context.Context, sessionIDs []string) ([]model.Extra, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	set := inSet(sessionIDs)
	var out []model.Extra
	for _, e := range r.db.extras {
		if set[e.SessionID] {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *mockContentRepo) CreateMaterial(_ context.Context, m *model.Material) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextID("mat", &m.ID)
	c := *m
	r.db.materials[m.ID] = &c
	return nil
}

func (r *mockContentRepo) GetMaterial(_ context.Context, id string) (*model.Material, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if m, ok := r.db.materials[id]; ok {
		c := *m
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockContentRepo) DeleteMaterial(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.materials[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.materials, id)
	return nil
}

func (r *mockContentRepo) CreateActivity(_ context.Context, a *model.Activity) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextID("act", &a.ID)
	c := *a
	r.db.activities[a.ID] = &c
	return nil
}

func (r *mockContentRepo) GetActivity(_ context.Context, id string) (*model.Activity, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if a, ok := r.db.activities[id]; ok {
		c := *a
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockContentRepo) DeleteActivity(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.activities[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.activities, id)
	return nil
}

func (r *mockContentRepo) NextActivityOrder(_ context.Context, sessionID string) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	max := 0
	for _, a := range r.db.activities {
		if a.SessionID == sessionID && a.Order > max {
			max = a.Order
		}
	}
	return max + 1, nil
}

func (r *mockContentRepo) CreateEvaluation(_ context.Context, e *model.Evaluation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextID("eval", &e.ID)
	c := *e
	r.db.evaluations[e.ID] = &c
	return nil
}

func (r *mockContentRepo) GetEvaluation(_ context.Context, id string) (*model.Evaluation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if e, ok := r.db.evaluations[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockContentRepo) DeleteEvaluation(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.evaluations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.evaluations, id)
	return nil
}

func (r *mockContentRepo) CreateExtra(_ context.Context, e *model.Extra) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextID("extra", &e.ID)
	c := *e
	r.db.extras[e.ID] = &c
	return nil
}

func (r *mockContentRepo) GetExtra(_ context.Context, id string) (*model.Extra, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if e, ok := r.db.extras[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockContentRepo) DeleteExtra(_ context.Context, id string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.extras[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.extras, id)
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct{ db *memDB }

func (r *mockAssignmentRepo) Create(_ context.Context, a *model.ProfessorDiscipline) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	key := a.ProfessorID + "/" + a.DisciplineID
	if _, dup := r.db.assignments[key]; dup {
		return gorm.ErrDuplicatedKey
	}
	r.db.nextID("asg", &a.ID)
	c := *a
	r.db.assignments[key] = &c
	return nil
}

func (r *mockAssignmentRepo) Get(_ context.Context, professorID, disciplineID string) (*model.ProfessorDiscipline, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if a, ok := r.db.assignments[professorID+"/"+disciplineID]; ok {
		c := *a
		return &c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *mockAssignmentRepo) Delete(_ context.Context, professorID, disciplineID string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	key := professorID + "/" + disciplineID
	if _, ok := r.db.assignments[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.assignments, key)
	return nil
}

func (r *mockAssignmentRepo) ListByProfessor(_ context.Context, professorID string) ([]model.ProfessorDiscipline, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	dr := &mockDisciplineRepo{r.db}
	var out []model.ProfessorDiscipline
	for _, a := range r.db.assignments {
		if a.ProfessorID != professorID {
			continue
		}
		c := *a
		if d, ok := r.db.disciplines[a.DisciplineID]; ok {
			c.Discipline = dr.hydrate(d)
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedAt.After(out[j].AssignedAt) })
	return out, nil
}

// ── Mock CommentRepository ──

type mockCommentRepo struct{ db *memDB }

func (r *mockCommentRepo) Create(_ context.Context, c *model.AdminComment) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.nextID("cmt", &c.ID)
	r.db.comments = append(r.db.comments, *c)
	return nil
}

func (r *mockCommentRepo) ListByDiscipline(_ context.Context, disciplineID string) ([]model.AdminComment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.AdminComment, 0)
	for _, c := range r.db.comments {
		if c.DisciplineID != nil && *c.DisciplineID == disciplineID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *mockCommentRepo) ListBySession(_ context.Context, sessionID string) ([]model.AdminComment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]model.AdminComment, 0)
	for _, c := range r.db.comments {
		if c.SessionID != nil && *c.SessionID == sessionID {
			out = append(out, c)
		}
	}
	return out, nil
}
