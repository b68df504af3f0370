package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
)

// ── recruiter errors ──

var ErrRecruiterNotFound = errors.New("recruiter profile not found")

// RecruiterService recruiter profile operations, keyed by user id
type RecruiterService interface {
	Create(ctx context.Context, userID string) (recruiter *model.Recruiter, created bool, err error)
	GetByUserID(ctx context.Context, userID string) (*model.Recruiter, error)
	Update(ctx context.Context, userID string, req *dto.UpdateRecruiterRequest) (*model.Recruiter, error)
}

type recruiterService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRecruiterService creates a RecruiterService
func NewRecruiterService(repo *repository.Repository, logger *zap.Logger) RecruiterService {
	return &recruiterService{repo: repo, logger: logger}
}

func (s *recruiterService) Create(ctx context.Context, userID string) (*model.Recruiter, bool, error) {
	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrUserNotFound
		}
		s.logger.Error("failed to load user", zap.String("user_id", userID), zap.Error(err))
		return nil, false, err
	}

	recruiter, created, err := s.repo.Recruiter.FirstOrCreate(ctx, &model.Recruiter{UserID: userID})
	if err != nil {
		s.logger.Error("failed to create recruiter", zap.String("user_id", userID), zap.Error(err))
		return nil, false, err
	}
	return recruiter, created, nil
}

func (s *recruiterService) GetByUserID(ctx context.Context, userID string) (*model.Recruiter, error) {
	recruiter, err := s.repo.Recruiter.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecruiterNotFound
		}
		s.logger.Error("failed to load recruiter", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return recruiter, nil
}

func (s *recruiterService) Update(ctx context.Context, userID string, req *dto.UpdateRecruiterRequest) (*model.Recruiter, error) {
	recruiter, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	setIfPresent(&recruiter.CompanyName, req.CompanyName)
	setIfPresent(&recruiter.Address, req.Address)
	setIfPresent(&recruiter.WebsiteURL, req.WebsiteURL)
	setIfPresent(&recruiter.PhoneNumber, req.PhoneNumber)

	if err := s.repo.Recruiter.Update(ctx, recruiter); err != nil {
		s.logger.Error("failed to update recruiter", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return recruiter, nil
}
