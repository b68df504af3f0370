package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
)

// ── user errors ──

var ErrUserNotFound = errors.New("user not found")

// UserService root identity operations
type UserService interface {
	// Create inserts the email if absent; created is false when the user already existed
	Create(ctx context.Context, email string) (user *model.User, created bool, err error)
	// FindByEmail loads the user with student, recruiter and ambassador profiles
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// GetByID loads the user with student, recruiter and ambassador profiles
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, email string) (*model.User, bool, error) {
	user, created, err := s.repo.User.FirstOrCreateByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to create user", zap.String("email", email), zap.Error(err))
		return nil, false, err
	}
	return user, created, nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getWithProfiles(ctx, "", email)
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	return s.getWithProfiles(ctx, id, "")
}

func (s *userService) getWithProfiles(ctx context.Context, id, email string) (*model.User, error) {
	user, err := s.repo.User.GetWithProfiles(ctx, id, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to load user", zap.String("id", id), zap.String("email", email), zap.Error(err))
		return nil, err
	}
	return user, nil
}
