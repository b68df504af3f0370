package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
)

// ── task errors ──

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNoTasks          = errors.New("no tasks found")
	ErrNoAmbassadors    = errors.New("no ambassadors to assign the task to")
	ErrInvalidTaskDate  = errors.New("lastDate must be RFC3339 or YYYY-MM-DD")
	ErrCalendarGenerate = errors.New("failed to build calendar")
)

// taskDateLayouts accepted for lastDate, most precise first
var taskDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// TaskService task lifecycle and per-ambassador task views
type TaskService interface {
	// Create stores the task and assigns it to every ambassador with a pending submission
	Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error)
	// List every task ordered by id
	List(ctx context.Context) ([]dto.TaskResponse, error)
	// ListNonEmpty like List but ErrNoTasks when nothing exists
	ListNonEmpty(ctx context.Context) ([]dto.TaskResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	// Delete removes the task with its submissions and ambassador links
	Delete(ctx context.Context, id uint) error
	// ForAmbassador tasks linked to the ambassador with derived status labels
	ForAmbassador(ctx context.Context, ambassadorID uint) ([]dto.AmbassadorTaskResponse, error)
	// Calendar iCalendar feed with one event per task deadline of the ambassador
	Calendar(ctx context.Context, ambassadorID uint) (string, error)
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewTaskService creates a TaskService
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger, now: time.Now}
}

// ═══════════════════════════════════════════════════════════
// Create
// ═══════════════════════════════════════════════════════════
//
// The ambassador count is checked before anything is written.
// Task, pending submissions and links are written in one transaction.

func (s *taskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*dto.CreateTaskResponse, error) {
	lastDate, err := parseTaskDate(req.LastDate)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.Ambassador.Count(ctx)
	if err != nil {
		s.logger.Error("failed to count ambassadors", zap.Error(err))
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoAmbassadors
	}

	task := &model.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		LastDate:    lastDate,
		Points:      req.Points,
		Status:      model.TaskStatusPending,
	}

	var assigned int
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		ambassadors, err := tx.Ambassador.List(ctx)
		if err != nil {
			return err
		}
		if len(ambassadors) == 0 {
			return ErrNoAmbassadors
		}

		if err := tx.Task.Create(ctx, task); err != nil {
			return err
		}

		submissions := make([]model.Submission, 0, len(ambassadors))
		ambassadorIDs := make([]uint, 0, len(ambassadors))
		for _, a := range ambassadors {
			submissions = append(submissions, pendingSubmission(task.ID, a.Email))
			ambassadorIDs = append(ambassadorIDs, a.ID)
		}
		if err := tx.Submission.BatchCreate(ctx, submissions); err != nil {
			return err
		}
		assigned = len(ambassadors)
		return tx.Task.Link(ctx, []uint{task.ID}, ambassadorIDs)
	})
	if err != nil {
		if errors.Is(err, ErrNoAmbassadors) {
			return nil, err
		}
		s.logger.Error("failed to create task", zap.String("title", task.Title), zap.Error(err))
		return nil, err
	}

	s.logger.Info("task created", zap.Uint("id", task.ID), zap.Int("assigned", assigned))
	return &dto.CreateTaskResponse{Task: toTaskResponse(task), Assignments: assigned}, nil
}

func (s *taskService) List(ctx context.Context) ([]dto.TaskResponse, error) {
	tasks, err := s.repo.Task.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, toTaskResponse(&tasks[i]))
	}
	return result, nil
}

func (s *taskService) ListNonEmpty(ctx context.Context) ([]dto.TaskResponse, error) {
	tasks, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}
	return tasks, nil
}

func (s *taskService) Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	setIfPresent(&task.Description, req.Description)
	setIfPresent(&task.Points, req.Points)
	if req.LastDate != nil {
		lastDate, err := parseTaskDate(*req.LastDate)
		if err != nil {
			return nil, err
		}
		task.LastDate = lastDate
	}

	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	resp := toTaskResponse(task)
	return &resp, nil
}

func (s *taskService) Delete(ctx context.Context, id uint) error {
	var removed int64
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		var err error
		if removed, err = tx.Submission.DeleteByTask(ctx, id); err != nil {
			return err
		}
		return tx.Task.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		s.logger.Error("failed to delete task", zap.Uint("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("task deleted", zap.Uint("id", id), zap.Int64("submissions", removed))
	return nil
}

// ═══════════════════════════════════════════════════════════
// ForAmbassador
// ═══════════════════════════════════════════════════════════

func (s *taskService) ForAmbassador(ctx context.Context, ambassadorID uint) ([]dto.AmbassadorTaskResponse, error) {
	ambassador, tasks, err := s.ambassadorTasks(ctx, ambassadorID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.repo.Submission.ListByEmail(ctx, ambassador.Email)
	if err != nil {
		s.logger.Error("failed to list submissions", zap.String("email", ambassador.Email), zap.Error(err))
		return nil, err
	}
	byTask := make(map[uint]*model.Submission, len(submissions))
	for i := range submissions {
		byTask[submissions[i].TaskID] = &submissions[i]
	}

	now := s.now()
	result := make([]dto.AmbassadorTaskResponse, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		label := TaskLabel(t, byTask[t.ID], now)
		result = append(result, dto.AmbassadorTaskResponse{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Points:      t.Points,
			Status:      label,
			Submitted:   label == statusLabel(model.SubmissionStatusSubmitted),
			LastDate:    t.LastDate,
		})
	}
	return result, nil
}

// ═══════════════════════════════════════════════════════════
// Calendar
// ═══════════════════════════════════════════════════════════

func (s *taskService) Calendar(ctx context.Context, ambassadorID uint) (string, error) {
	ambassador, tasks, err := s.ambassadorTasks(ctx, ambassadorID)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//E-Cell IIT BHU//Ambassador Tasks//EN")
	cal.SetXWRCalName(fmt.Sprintf("E-Cell tasks for %s", ambassador.Name))

	stamp := s.now().UTC()
	for _, t := range tasks {
		event := cal.AddEvent(fmt.Sprintf("task-%d-ambassador-%d@ecell", t.ID, ambassador.ID))
		event.SetDtStampTime(stamp)
		event.SetCreatedTime(t.CreatedAt)
		event.SetStartAt(t.LastDate)
		event.SetEndAt(t.LastDate)
		event.SetSummary(fmt.Sprintf("%s (%d pts)", t.Title, t.Points))
		event.SetDescription(t.Description)
	}

	out := cal.Serialize()
	if out == "" {
		return "", ErrCalendarGenerate
	}
	return out, nil
}

// ── helpers ──

func (s *taskService) getTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.repo.Task.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to load task", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return task, nil
}

func (s *taskService) ambassadorTasks(ctx context.Context, ambassadorID uint) (*model.CampusAmbassador, []model.Task, error) {
	ambassador, err := s.repo.Ambassador.GetByID(ctx, ambassadorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrAmbassadorNotFound
		}
		s.logger.Error("failed to load ambassador", zap.Uint("id", ambassadorID), zap.Error(err))
		return nil, nil, err
	}

	tasks, err := s.repo.Task.ListByAmbassador(ctx, ambassadorID)
	if err != nil {
		s.logger.Error("failed to list ambassador tasks", zap.Uint("id", ambassadorID), zap.Error(err))
		return nil, nil, err
	}
	return ambassador, tasks, nil
}

func parseTaskDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range taskDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTaskDate
}

func toTaskResponse(t *model.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		LastDate:    t.LastDate,
		Points:      t.Points,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}
