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

// LeaderboardSize number of ambassadors ranked on the leaderboard
const LeaderboardSize = 10

// ── ambassador errors ──

var (
	ErrAmbassadorNotFound = errors.New("ambassador not found")
	ErrAmbassadorExists   = errors.New("you have already submitted the form")
)

// AmbassadorService campus ambassador profiles and ranking
type AmbassadorService interface {
	// Register returns the stored profile together with ErrAmbassadorExists for a known email
	Register(ctx context.Context, req *dto.RegisterAmbassadorRequest) (*model.CampusAmbassador, error)
	GetProfile(ctx context.Context, email string) (*dto.AmbassadorProfileResponse, error)
	Update(ctx context.Context, req *dto.UpdateAmbassadorRequest) (*dto.AmbassadorProfileResponse, error)
	Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error)
}

type ambassadorService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAmbassadorService creates an AmbassadorService
func NewAmbassadorService(repo *repository.Repository, logger *zap.Logger) AmbassadorService {
	return &ambassadorService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// Register
// ═══════════════════════════════════════════════════════════
//
// One transaction:
//  1. upsert the root user by email
//  2. create the ambassador with zero points
//  3. hand out a pending submission for every existing task
//  4. link the ambassador to every task

func (s *ambassadorService) Register(ctx context.Context, req *dto.RegisterAmbassadorRequest) (*model.CampusAmbassador, error) {
	existing, err := s.repo.Ambassador.GetByEmail(ctx, req.Email)
	if err == nil {
		return existing, ErrAmbassadorExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to load ambassador", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	ambassador := &model.CampusAmbassador{
		Email:             req.Email,
		Name:              req.Name,
		CollegeName:       req.CollegeName,
		CollegeYear:       req.CollegeYear,
		Program:           req.Program,
		Phone:             req.Phone,
		POR:               req.POR,
		ReasonToJoin:      req.ReasonToJoin,
		RoleInStudentBody: req.RoleInStudentBody,
		Skills:            req.Skills,
		Experience:        req.Experience,
		RoleInEcell:       req.RoleInEcell,
		Hours:             req.Hours,
		Contribution:      req.Contribution,
		Motivation:        req.Motivation,
		Points:            0,
	}

	var assigned int
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		user, _, err := tx.User.FirstOrCreateByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		ambassador.UserID = user.ID

		if err := tx.Ambassador.Create(ctx, ambassador); err != nil {
			return err
		}

		tasks, err := tx.Task.List(ctx)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}

		submissions := make([]model.Submission, 0, len(tasks))
		taskIDs := make([]uint, 0, len(tasks))
		for _, t := range tasks {
			submissions = append(submissions, pendingSubmission(t.ID, ambassador.Email))
			taskIDs = append(taskIDs, t.ID)
		}
		if err := tx.Submission.BatchCreate(ctx, submissions); err != nil {
			return err
		}
		assigned = len(tasks)
		return tx.Task.Link(ctx, taskIDs, []uint{ambassador.ID})
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			// lost a race against a concurrent registration for the same email
			if stored, getErr := s.repo.Ambassador.GetByEmail(ctx, req.Email); getErr == nil {
				return stored, ErrAmbassadorExists
			}
			return nil, ErrAmbassadorExists
		}
		s.logger.Error("failed to register ambassador", zap.String("email", req.Email), zap.Error(err))
		return nil, err
	}

	s.logger.Info("ambassador registered",
		zap.Uint("id", ambassador.ID), zap.String("email", ambassador.Email), zap.Int("tasks", assigned))
	return ambassador, nil
}

func (s *ambassadorService) GetProfile(ctx context.Context, email string) (*dto.AmbassadorProfileResponse, error) {
	ambassador, err := s.repo.Ambassador.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		s.logger.Error("failed to load ambassador", zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return toProfileResponse(ambassador), nil
}

func (s *ambassadorService) Update(ctx context.Context, req *dto.UpdateAmbassadorRequest) (*dto.AmbassadorProfileResponse, error) {
	ambassador, err := s.repo.Ambassador.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		s.logger.Error("failed to load ambassador", zap.Uint("id", req.ID), zap.Error(err))
		return nil, err
	}

	ambassador.Name = req.Name
	ambassador.CollegeName = req.CollegeName
	ambassador.CollegeYear = req.CollegeYear
	ambassador.Phone = req.Phone

	if err := s.repo.Ambassador.UpdateProfile(ctx, ambassador); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAmbassadorNotFound
		}
		s.logger.Error("failed to update ambassador", zap.Uint("id", req.ID), zap.Error(err))
		return nil, err
	}
	return toProfileResponse(ambassador), nil
}

func (s *ambassadorService) Leaderboard(ctx context.Context) ([]dto.LeaderboardEntry, error) {
	top, err := s.repo.Ambassador.Leaderboard(ctx, LeaderboardSize)
	if err != nil {
		s.logger.Error("failed to load leaderboard", zap.Error(err))
		return nil, err
	}

	result := make([]dto.LeaderboardEntry, 0, len(top))
	for _, a := range top {
		result = append(result, dto.LeaderboardEntry{
			Name:        a.Name,
			Email:       a.Email,
			CollegeName: a.CollegeName,
			Points:      a.Points,
		})
	}
	return result, nil
}

// ── helpers ──

func pendingSubmission(taskID uint, email string) model.Submission {
	return model.Submission{
		TaskID:    taskID,
		UserEmail: email,
		Status:    model.SubmissionStatusPending,
	}
}

func toProfileResponse(a *model.CampusAmbassador) *dto.AmbassadorProfileResponse {
	return &dto.AmbassadorProfileResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		CollegeName: a.CollegeName,
		CollegeYear: a.CollegeYear,
		Phone:       a.Phone,
		Points:      a.Points,
		Referrals:   a.Referrals,
	}
}
