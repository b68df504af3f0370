package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
	pkgerrors "github.com/ecelliitbhu/ecell-backend/pkg/errors"
)

// ── submission errors ──

var (
	ErrSubmissionNotFound      = errors.New("submission not found for this task and user")
	ErrSubmissionFinalized     = errors.New("submission has already been reviewed")
	ErrSubmissionNotReviewable = errors.New("only submitted work can be reviewed")
	ErrInvalidReviewAction     = errors.New("invalid action provided")
)

// SubmissionService submission lifecycle and admin reporting
type SubmissionService interface {
	// Submit hands in work for a task; reviewed submissions are final
	Submit(ctx context.Context, req *dto.SubmitRequest) (*model.Submission, error)
	// Review approves (awarding points) or rejects a submitted submission
	Review(ctx context.Context, req *dto.AdminTasksRequest) (*dto.ReviewResponse, error)
	// Overview per-ambassador progress ordered by completed task count
	Overview(ctx context.Context) ([]dto.OverviewEntry, error)
	// Feed every submission with task and ambassador metadata, awaiting review first
	Feed(ctx context.Context) ([]dto.FeedEntry, error)
	// Clear resets task-level submission fields for the requested scope
	Clear(ctx context.Context, req *dto.ClearSubmissionsRequest) (int64, error)
}

type submissionService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSubmissionService creates a SubmissionService
func NewSubmissionService(repo *repository.Repository, logger *zap.Logger) SubmissionService {
	return &submissionService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *submissionService) Submit(ctx context.Context, req *dto.SubmitRequest) (*model.Submission, error) {
	ambassador, err := s.repo.Ambassador.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		s.logger.Error("failed to load ambassador", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Task.GetByID(ctx, req.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to load task", zap.Uint("task_id", req.TaskID), zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.Submission.GetByEmailAndTask(ctx, ambassador.Email, req.TaskID)
	switch {
	case err == nil && existing.IsFinal():
		return nil, ErrSubmissionFinalized
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		s.logger.Error("failed to load submission", zap.Error(err))
		return nil, err
	}

	// the upsert re-checks finality for reviews that land in between
	submission := &model.Submission{
		TaskID:     req.TaskID,
		UserEmail:  ambassador.Email,
		Submission: req.Submission,
		Status:     model.SubmissionStatusSubmitted,
	}
	applied, err := s.repo.Submission.Upsert(ctx, submission)
	if err != nil {
		s.logger.Error("failed to save submission",
			zap.String("email", ambassador.Email), zap.Uint("task_id", req.TaskID), zap.Error(err))
		return nil, err
	}
	if !applied {
		return nil, ErrSubmissionFinalized
	}

	stored, err := s.repo.Submission.GetByEmailAndTask(ctx, ambassador.Email, req.TaskID)
	if err != nil {
		s.logger.Error("failed to reload submission", zap.Error(err))
		return nil, err
	}
	return stored, nil
}

// ═══════════════════════════════════════════════════════════
// Review
// ═══════════════════════════════════════════════════════════
//
// The status move is conditional on the row still being "submitted", so two
// concurrent approvals award points once. Status and points commit together.

func (s *submissionService) Review(ctx context.Context, req *dto.AdminTasksRequest) (*dto.ReviewResponse, error) {
	var target string
	switch req.Action {
	case dto.ReviewActionApprove:
		target = model.SubmissionStatusApproved
	case dto.ReviewActionReject:
		target = model.SubmissionStatusRejected
	default:
		return nil, ErrInvalidReviewAction
	}

	ambassador, err := s.repo.Ambassador.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		s.logger.Error("failed to load ambassador", zap.Uint("id", req.UserID), zap.Error(err))
		return nil, err
	}

	submission, err := s.repo.Submission.GetByEmailAndTask(ctx, ambassador.Email, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		s.logger.Error("failed to load submission", zap.Error(err))
		return nil, err
	}
	if submission.Status != model.SubmissionStatusSubmitted {
		return nil, ErrSubmissionNotReviewable
	}

	award := 0
	if target == model.SubmissionStatusApproved {
		if award, err = s.awardFor(ctx, req); err != nil {
			return nil, err
		}
	}

	var total int
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		moved, err := tx.Submission.TransitionStatus(ctx, submission.ID, model.SubmissionStatusSubmitted, target)
		if err != nil {
			return err
		}
		if !moved {
			return ErrSubmissionNotReviewable
		}
		if award > 0 {
			total, err = tx.Ambassador.AddPoints(ctx, ambassador.ID, award)
			return err
		}
		current, err := tx.Ambassador.GetByID(ctx, ambassador.ID)
		if err != nil {
			return err
		}
		total = current.Points
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSubmissionNotReviewable) {
			return nil, err
		}
		s.logger.Error("failed to review submission",
			zap.Uint("submission_id", submission.ID), zap.String("action", req.Action), zap.Error(err))
		return nil, err
	}

	s.logger.Info("submission reviewed",
		zap.Uint("submission_id", submission.ID),
		zap.String("status", target),
		zap.Int("points", award))

	return &dto.ReviewResponse{
		SubmissionID:  submission.ID,
		Status:        target,
		AwardedPoints: award,
		TotalPoints:   total,
	}, nil
}

// awardFor explicit points win; otherwise the task's own value
func (s *submissionService) awardFor(ctx context.Context, req *dto.AdminTasksRequest) (int, error) {
	if req.Points != nil {
		return *req.Points, nil
	}
	task, err := s.repo.Task.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrTaskNotFound
		}
		s.logger.Error("failed to load task", zap.Uint("task_id", req.TaskID), zap.Error(err))
		return 0, err
	}
	return task.Points, nil
}

// ────────────────────── Overview ──────────────────────

func (s *submissionService) Overview(ctx context.Context) ([]dto.OverviewEntry, error) {
	ambassadors, err := s.repo.Ambassador.ListWithTasks(ctx)
	if err != nil {
		s.logger.Error("failed to list ambassadors", zap.Error(err))
		return nil, err
	}
	submissions, err := s.repo.Submission.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list submissions", zap.Error(err))
		return nil, err
	}

	type key struct {
		email  string
		taskID uint
	}
	index := make(map[key]*model.Submission, len(submissions))
	for i := range submissions {
		index[key{submissions[i].UserEmail, submissions[i].TaskID}] = &submissions[i]
	}

	result := make([]dto.OverviewEntry, 0, len(ambassadors))
	for _, a := range ambassadors {
		entry := dto.OverviewEntry{
			UserID:      a.ID,
			UserName:    a.Name,
			Email:       a.Email,
			CollegeName: a.CollegeName,
			TotalPoints: a.Points,
			Tasks:       make([]dto.OverviewTask, 0, len(a.Tasks)),
		}
		for _, t := range a.Tasks {
			row := dto.OverviewTask{
				TaskID:     t.ID,
				TaskTitle:  t.Title,
				TaskPoints: t.Points,
				Status:     model.SubmissionStatusPending,
			}
			if sub, ok := index[key{a.Email, t.ID}]; ok {
				payload := sub.Submission
				row.Submission = &payload
				row.Status = sub.Status
				row.Submitted = IsCompleted(sub.Status)
			}
			if row.Submitted {
				entry.CompletedTasksCount++
			}
			entry.Tasks = append(entry.Tasks, row)
		}
		result = append(result, entry)
	}

	SortOverview(result)
	return result, nil
}

// ────────────────────── Feed ──────────────────────

func (s *submissionService) Feed(ctx context.Context) ([]dto.FeedEntry, error) {
	submissions, err := s.repo.Submission.ListWithTask(ctx)
	if err != nil {
		s.logger.Error("failed to list submissions", zap.Error(err))
		return nil, err
	}

	seen := make(map[string]struct{})
	emails := make([]string, 0)
	for _, sub := range submissions {
		if _, ok := seen[sub.UserEmail]; !ok {
			seen[sub.UserEmail] = struct{}{}
			emails = append(emails, sub.UserEmail)
		}
	}
	ambassadors, err := s.repo.Ambassador.ListByEmails(ctx, emails)
	if err != nil {
		s.logger.Error("failed to list ambassadors", zap.Error(err))
		return nil, err
	}
	byEmail := make(map[string]*dto.FeedAmbassador, len(ambassadors))
	for _, a := range ambassadors {
		byEmail[a.Email] = &dto.FeedAmbassador{
			ID:          a.ID,
			Name:        a.Name,
			Email:       a.Email,
			Points:      a.Points,
			CollegeName: a.CollegeName,
			CollegeYear: a.CollegeYear,
		}
	}

	result := make([]dto.FeedEntry, 0, len(submissions))
	for _, sub := range submissions {
		entry := dto.FeedEntry{
			ID:         sub.ID,
			Submission: sub.Submission,
			Status:     sub.Status,
			CreatedAt:  sub.CreatedAt,
			Ambassador: byEmail[sub.UserEmail],
		}
		if sub.Task != nil {
			entry.Task = &dto.FeedTask{ID: sub.Task.ID, Title: sub.Task.Title, Points: sub.Task.Points}
		}
		result = append(result, entry)
	}

	SortFeed(result)
	return result, nil
}

// ────────────────────── Clear ──────────────────────

func (s *submissionService) Clear(ctx context.Context, req *dto.ClearSubmissionsRequest) (int64, error) {
	if !req.ConfirmAll && len(req.TaskIDs) == 0 {
		return 0, pkgerrors.ErrScopeRequired
	}

	cleared, err := s.repo.Task.ResetSubmissionFields(ctx, req.TaskIDs, req.ConfirmAll)
	if err != nil {
		s.logger.Error("failed to clear submissions", zap.Error(err))
		return 0, err
	}

	s.logger.Warn("task submissions cleared",
		zap.Bool("all", req.ConfirmAll),
		zap.Uints("task_ids", req.TaskIDs),
		zap.Int64("tasks", cleared))
	return cleared, nil
}
