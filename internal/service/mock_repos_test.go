package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
	pkgerrors "github.com/ecelliitbhu/ecell-backend/pkg/errors"
	"github.com/ecelliitbhu/ecell-backend/pkg/jwt"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User // by id
	seq   int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) add(email string) *model.User {
	m.seq++
	u := &model.User{ID: fmt.Sprintf("00000000-0000-0000-0000-%012d", m.seq), Email: email, CreatedAt: time.Now()}
	m.users[u.ID] = u
	return u
}

func (m *mockUserRepo) FirstOrCreateByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	if u, err := m.GetByEmail(ctx, email); err == nil {
		return u, false, nil
	}
	return m.add(email), true, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetWithProfiles(ctx context.Context, id, email string) (*model.User, error) {
	if id != "" {
		return m.GetByID(ctx, id)
	}
	return m.GetByEmail(ctx, email)
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[string]*model.Student // by id
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) FirstOrCreate(ctx context.Context, student *model.Student) (*model.Student, bool, error) {
	if s, err := m.GetByUserID(ctx, student.UserID); err == nil {
		return s, false, nil
	}
	if student.ID == "" {
		student.ID = "stu-" + student.UserID
	}
	m.students[student.ID] = student
	return student, true, nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID string) (*model.Student, error) {
	for _, s := range m.students {
		if s.UserID == userID {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	m.students[student.ID] = student
	return nil
}

// ── Mock RecruiterRepository ──

type mockRecruiterRepo struct {
	recruiters map[string]*model.Recruiter // by id
}

func newMockRecruiterRepo() *mockRecruiterRepo {
	return &mockRecruiterRepo{recruiters: make(map[string]*model.Recruiter)}
}

func (m *mockRecruiterRepo) FirstOrCreate(ctx context.Context, recruiter *model.Recruiter) (*model.Recruiter, bool, error) {
	if r, err := m.GetByUserID(ctx, recruiter.UserID); err == nil {
		return r, false, nil
	}
	if recruiter.ID == "" {
		recruiter.ID = "rec-" + recruiter.UserID
	}
	m.recruiters[recruiter.ID] = recruiter
	return recruiter, true, nil
}

func (m *mockRecruiterRepo) GetByID(_ context.Context, id string) (*model.Recruiter, error) {
	if r, ok := m.recruiters[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecruiterRepo) GetByUserID(_ context.Context, userID string) (*model.Recruiter, error) {
	for _, r := range m.recruiters {
		if r.UserID == userID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRecruiterRepo) Update(_ context.Context, recruiter *model.Recruiter) error {
	m.recruiters[recruiter.ID] = recruiter
	return nil
}

// ── Mock PostRepository ──

type mockPostRepo struct {
	posts map[string]*model.Post
	seq   int
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*model.Post)}
}

func (m *mockPostRepo) Create(_ context.Context, post *model.Post) error {
	m.seq++
	if post.ID == "" {
		post.ID = fmt.Sprintf("post-%d", m.seq)
	}
	post.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Second)
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*model.Post, error) {
	if p, ok := m.posts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPostRepo) List(_ context.Context) ([]model.Post, error) {
	result := make([]model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockPostRepo) Update(_ context.Context, post *model.Post) error {
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.posts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.posts, id)
	return nil
}

// ── Mock ApplicationRepository ──

type mockApplicationRepo struct {
	applications map[string]*model.Application
	seq          int
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{applications: make(map[string]*model.Application)}
}

func (m *mockApplicationRepo) Create(ctx context.Context, application *model.Application) error {
	if _, err := m.GetByStudentAndPost(ctx, application.StudentID, application.PostID); err == nil {
		return pkgerrors.ErrDuplicate
	}
	m.seq++
	if application.ID == "" {
		application.ID = fmt.Sprintf("app-%d", m.seq)
	}
	application.AppliedAt = time.Now().Add(time.Duration(m.seq) * time.Second)
	m.applications[application.ID] = application
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id string) (*model.Application, error) {
	if a, ok := m.applications[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) GetDetail(ctx context.Context, id string) (*model.Application, error) {
	return m.GetByID(ctx, id)
}

func (m *mockApplicationRepo) GetByStudentAndPost(_ context.Context, studentID, postID string) (*model.Application, error) {
	for _, a := range m.applications {
		if a.StudentID == studentID && a.PostID == postID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockApplicationRepo) List(_ context.Context, filters *repository.ApplicationFilters) ([]model.Application, error) {
	var result []model.Application
	for _, a := range m.applications {
		if filters.StudentID != "" && a.StudentID != filters.StudentID {
			continue
		}
		if filters.PostID != "" && a.PostID != filters.PostID {
			continue
		}
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AppliedAt.After(result[j].AppliedAt) })
	return result, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id, status string) error {
	a, ok := m.applications[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Status = status
	return nil
}

func (m *mockApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.applications[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.applications, id)
	return nil
}

func (m *mockApplicationRepo) DeleteByPost(_ context.Context, postID string) (int64, error) {
	var n int64
	for id, a := range m.applications {
		if a.PostID == postID {
			delete(m.applications, id)
			n++
		}
	}
	return n, nil
}

// ── Mock AmbassadorRepository ──

type mockAmbassadorRepo struct {
	ambassadors map[uint]*model.CampusAmbassador
	tasks       *mockTaskRepo
	seq         uint
	err         error // returned by every call when set
	onAddPoints func() // runs before the increment, stands in for a concurrent writer
}

func newMockAmbassadorRepo(tasks *mockTaskRepo) *mockAmbassadorRepo {
	return &mockAmbassadorRepo{ambassadors: make(map[uint]*model.CampusAmbassador), tasks: tasks}
}

func (m *mockAmbassadorRepo) Create(_ context.Context, ambassador *model.CampusAmbassador) error {
	if m.err != nil {
		return m.err
	}
	for _, a := range m.ambassadors {
		if a.Email == ambassador.Email {
			return pkgerrors.ErrDuplicate
		}
	}
	m.seq++
	ambassador.ID = m.seq
	ambassador.CreatedAt = time.Now()
	m.ambassadors[ambassador.ID] = ambassador
	return nil
}

func (m *mockAmbassadorRepo) GetByID(_ context.Context, id uint) (*model.CampusAmbassador, error) {
	if m.err != nil {
		return nil, m.err
	}
	if a, ok := m.ambassadors[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAmbassadorRepo) GetByEmail(_ context.Context, email string) (*model.CampusAmbassador, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, a := range m.ambassadors {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAmbassadorRepo) sorted() []model.CampusAmbassador {
	result := make([]model.CampusAmbassador, 0, len(m.ambassadors))
	for _, a := range m.ambassadors {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (m *mockAmbassadorRepo) List(_ context.Context) ([]model.CampusAmbassador, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(), nil
}

func (m *mockAmbassadorRepo) ListByEmails(_ context.Context, emails []string) ([]model.CampusAmbassador, error) {
	want := make(map[string]bool, len(emails))
	for _, e := range emails {
		want[e] = true
	}
	var result []model.CampusAmbassador
	for _, a := range m.sorted() {
		if want[a.Email] {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAmbassadorRepo) ListWithTasks(ctx context.Context) ([]model.CampusAmbassador, error) {
	result := m.sorted()
	for i := range result {
		tasks, _ := m.tasks.ListByAmbassador(ctx, result[i].ID)
		result[i].Tasks = tasks
	}
	return result, nil
}

func (m *mockAmbassadorRepo) Leaderboard(_ context.Context, limit int) ([]model.CampusAmbassador, error) {
	result := m.sorted()
	sort.SliceStable(result, func(i, j int) bool { return result[i].Points > result[j].Points })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAmbassadorRepo) Count(_ context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.ambassadors)), nil
}

func (m *mockAmbassadorRepo) UpdateProfile(_ context.Context, ambassador *model.CampusAmbassador) error {
	a, ok := m.ambassadors[ambassador.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Name = ambassador.Name
	a.CollegeName = ambassador.CollegeName
	a.CollegeYear = ambassador.CollegeYear
	a.Phone = ambassador.Phone
	return nil
}

func (m *mockAmbassadorRepo) AddPoints(_ context.Context, id uint, delta int) (int, error) {
	if m.onAddPoints != nil {
		m.onAddPoints()
	}
	a, ok := m.ambassadors[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	a.Points += delta
	return a.Points, nil
}

// ── Mock TaskRepository ──

type mockTaskRepo struct {
	tasks map[uint]*model.Task
	links map[uint]map[uint]bool // task id → ambassador ids
	seq   uint
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{tasks: make(map[uint]*model.Task), links: make(map[uint]map[uint]bool)}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	m.seq++
	task.ID = m.seq
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepo) GetByID(_ context.Context, id uint) (*model.Task, error) {
	if t, ok := m.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTaskRepo) List(_ context.Context) ([]model.Task, error) {
	result := make([]model.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockTaskRepo) ListByAmbassador(ctx context.Context, ambassadorID uint) ([]model.Task, error) {
	all, _ := m.List(ctx)
	var result []model.Task
	for _, t := range all {
		if m.links[t.ID][ambassadorID] {
			result = append(result, t)
		}
	}
	return result, nil
}

func (m *mockTaskRepo) Update(_ context.Context, task *model.Task) error {
	m.tasks[task.ID] = task
	return nil
}

func (m *mockTaskRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.tasks[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.tasks, id)
	delete(m.links, id)
	return nil
}

func (m *mockTaskRepo) Link(_ context.Context, taskIDs []uint, ambassadorIDs []uint) error {
	for _, tid := range taskIDs {
		if m.links[tid] == nil {
			m.links[tid] = make(map[uint]bool)
		}
		for _, aid := range ambassadorIDs {
			m.links[tid][aid] = true
		}
	}
	return nil
}

func (m *mockTaskRepo) ResetSubmissionFields(_ context.Context, taskIDs []uint, all bool) (int64, error) {
	want := make(map[uint]bool, len(taskIDs))
	for _, id := range taskIDs {
		want[id] = true
	}
	var n int64
	for id, t := range m.tasks {
		if !all && !want[id] {
			continue
		}
		t.Submission = ""
		t.Submitted = false
		t.Status = model.TaskStatusPending
		n++
	}
	return n, nil
}

// ── Mock SubmissionRepository ──

type mockSubmissionRepo struct {
	submissions map[uint]*model.Submission
	tasks       *mockTaskRepo
	seq         uint
	batchErr    error
	upserts     int
}

func newMockSubmissionRepo(tasks *mockTaskRepo) *mockSubmissionRepo {
	return &mockSubmissionRepo{submissions: make(map[uint]*model.Submission), tasks: tasks}
}

func (m *mockSubmissionRepo) find(email string, taskID uint) *model.Submission {
	for _, s := range m.submissions {
		if s.UserEmail == email && s.TaskID == taskID {
			return s
		}
	}
	return nil
}

func (m *mockSubmissionRepo) insert(sub model.Submission) *model.Submission {
	m.seq++
	sub.ID = m.seq
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.seq) * time.Minute)
	}
	sub.UpdatedAt = sub.CreatedAt
	m.submissions[sub.ID] = &sub
	return &sub
}

func (m *mockSubmissionRepo) countFor(email string, taskID uint) int {
	n := 0
	for _, s := range m.submissions {
		if s.UserEmail == email && s.TaskID == taskID {
			n++
		}
	}
	return n
}

func (m *mockSubmissionRepo) byTask(taskID uint) []*model.Submission {
	var result []*model.Submission
	for _, s := range m.submissions {
		if s.TaskID == taskID {
			result = append(result, s)
		}
	}
	return result
}

func (m *mockSubmissionRepo) BatchCreate(_ context.Context, submissions []model.Submission) error {
	if m.batchErr != nil {
		return m.batchErr
	}
	for _, s := range submissions {
		if m.find(s.UserEmail, s.TaskID) == nil {
			m.insert(s)
		}
	}
	return nil
}

func (m *mockSubmissionRepo) GetByEmailAndTask(_ context.Context, email string, taskID uint) (*model.Submission, error) {
	if s := m.find(email, taskID); s != nil {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubmissionRepo) ListByEmail(_ context.Context, email string) ([]model.Submission, error) {
	var result []model.Submission
	for _, s := range m.submissions {
		if s.UserEmail == email {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TaskID < result[j].TaskID })
	return result, nil
}

func (m *mockSubmissionRepo) ListAll(_ context.Context) ([]model.Submission, error) {
	result := make([]model.Submission, 0, len(m.submissions))
	for _, s := range m.submissions {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	return result, nil
}

func (m *mockSubmissionRepo) ListWithTask(ctx context.Context) ([]model.Submission, error) {
	result, _ := m.ListAll(ctx)
	for i := range result {
		if t, err := m.tasks.GetByID(ctx, result[i].TaskID); err == nil {
			result[i].Task = t
		}
	}
	return result, nil
}

func (m *mockSubmissionRepo) Upsert(_ context.Context, submission *model.Submission) (bool, error) {
	m.upserts++
	existing := m.find(submission.UserEmail, submission.TaskID)
	if existing == nil {
		stored := m.insert(*submission)
		submission.ID = stored.ID
		return true, nil
	}
	if existing.IsFinal() {
		return false, nil
	}
	existing.Submission = submission.Submission
	existing.Status = submission.Status
	existing.UpdatedAt = time.Now()
	submission.ID = existing.ID
	return true, nil
}

func (m *mockSubmissionRepo) TransitionStatus(_ context.Context, id uint, from, to string) (bool, error) {
	s, ok := m.submissions[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	return true, nil
}

func (m *mockSubmissionRepo) DeleteByTask(_ context.Context, taskID uint) (int64, error) {
	var n int64
	for id, s := range m.submissions {
		if s.TaskID == taskID {
			delete(m.submissions, id)
			n++
		}
	}
	return n, nil
}

// ── Mock AdminRepository ──

type mockAdminRepo struct {
	admins map[string]*model.Admin
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*model.Admin)}
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	if a, ok := m.admins[strings.ToLower(email)]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) Upsert(_ context.Context, admin *model.Admin) error {
	m.admins[admin.Email] = admin
	return nil
}

// ── Mock TokenRevoker ──

type mockRevoker struct {
	revoked map[string]*jwt.Claims
	err     error
}

func newMockRevoker() *mockRevoker {
	return &mockRevoker{revoked: make(map[string]*jwt.Claims)}
}

func (m *mockRevoker) RevokeAdminToken(_ context.Context, claims *jwt.Claims) error {
	if m.err != nil {
		return m.err
	}
	m.revoked[claims.ID] = claims
	return nil
}

// ── in-memory repository set ──

type mockRepos struct {
	user        *mockUserRepo
	student     *mockStudentRepo
	recruiter   *mockRecruiterRepo
	post        *mockPostRepo
	application *mockApplicationRepo
	ambassador  *mockAmbassadorRepo
	task        *mockTaskRepo
	submission  *mockSubmissionRepo
	admin       *mockAdminRepo
}

// newMockRepository builds a db-less Repository; Transaction runs its callback directly
func newMockRepository() (*repository.Repository, *mockRepos) {
	tasks := newMockTaskRepo()
	m := &mockRepos{
		user:        newMockUserRepo(),
		student:     newMockStudentRepo(),
		recruiter:   newMockRecruiterRepo(),
		post:        newMockPostRepo(),
		application: newMockApplicationRepo(),
		ambassador:  newMockAmbassadorRepo(tasks),
		task:        tasks,
		submission:  newMockSubmissionRepo(tasks),
		admin:       newMockAdminRepo(),
	}
	repo := &repository.Repository{
		User:        m.user,
		Student:     m.student,
		Recruiter:   m.recruiter,
		Post:        m.post,
		Application: m.application,
		Ambassador:  m.ambassador,
		Task:        m.task,
		Submission:  m.submission,
		Admin:       m.admin,
	}
	return repo, m
}
