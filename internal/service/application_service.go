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

// ── application errors ──

var (
	ErrApplicationNotFound        = errors.New("application not found")
	ErrApplicationExists          = errors.New("already applied to this post")
	ErrApplicationRejected        = errors.New("rejected applications cannot be withdrawn")
	ErrApplicationStudentNotFound = errors.New("student not found")
	ErrApplicationPostNotFound    = errors.New("post not found")
)

// ApplicationService student applications to posts
type ApplicationService interface {
	// Create returns the existing application together with ErrApplicationExists on a repeated pair
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*model.Application, error)
	GetByID(ctx context.Context, id string) (*model.Application, error)
	List(ctx context.Context, req *dto.ApplicationListRequest) ([]model.Application, error)
	UpdateStatus(ctx context.Context, id, status string) (*model.Application, error)
	// Delete returns the application together with ErrApplicationRejected when it was rejected
	Delete(ctx context.Context, id string) (*model.Application, error)
}

type applicationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewApplicationService creates an ApplicationService
func NewApplicationService(repo *repository.Repository, logger *zap.Logger) ApplicationService {
	return &applicationService{repo: repo, logger: logger}
}

func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*model.Application, error) {
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationStudentNotFound
		}
		s.logger.Error("failed to load student", zap.String("student_id", req.StudentID), zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.Post.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationPostNotFound
		}
		s.logger.Error("failed to load post", zap.String("post_id", req.PostID), zap.Error(err))
		return nil, err
	}

	application := &model.Application{
		StudentID: req.StudentID,
		PostID:    req.PostID,
		Status:    model.ApplicationStatusPending,
	}
	if err := s.repo.Application.Create(ctx, application); err != nil {
		if errors.Is(err, pkgerrors.ErrDuplicate) {
			existing, getErr := s.repo.Application.GetByStudentAndPost(ctx, req.StudentID, req.PostID)
			if getErr != nil {
				s.logger.Error("failed to load existing application", zap.Error(getErr))
				return nil, getErr
			}
			return existing, ErrApplicationExists
		}
		s.logger.Error("failed to create application",
			zap.String("student_id", req.StudentID), zap.String("post_id", req.PostID), zap.Error(err))
		return nil, err
	}
	return application, nil
}

func (s *applicationService) GetByID(ctx context.Context, id string) (*model.Application, error) {
	application, err := s.repo.Application.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("failed to load application", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return application, nil
}

func (s *applicationService) List(ctx context.Context, req *dto.ApplicationListRequest) ([]model.Application, error) {
	applications, err := s.repo.Application.List(ctx, &repository.ApplicationFilters{
		StudentID: req.StudentID,
		PostID:    req.PostID,
	})
	if err != nil {
		s.logger.Error("failed to list applications", zap.Error(err))
		return nil, err
	}
	return applications, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id, status string) (*model.Application, error) {
	if err := s.repo.Application.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("failed to update application", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *applicationService) Delete(ctx context.Context, id string) (*model.Application, error) {
	application, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("failed to load application", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if application.IsRejected() {
		return application, ErrApplicationRejected
	}

	if err := s.repo.Application.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("failed to delete application", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return application, nil
}
