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

// ── student errors ──

var ErrStudentNotFound = errors.New("student profile not found")

// StudentService student profile operations, keyed by user id
type StudentService interface {
	// Create attaches a blank profile to the user unless one exists; created reports which happened
	Create(ctx context.Context, userID string) (student *model.Student, created bool, err error)
	GetByUserID(ctx context.Context, userID string) (*model.Student, error)
	Update(ctx context.Context, userID string, req *dto.UpdateStudentRequest) (*model.Student, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService creates a StudentService
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, userID string) (*model.Student, bool, error) {
	if _, err := s.repo.User.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrUserNotFound
		}
		s.logger.Error("failed to load user", zap.String("user_id", userID), zap.Error(err))
		return nil, false, err
	}

	student, created, err := s.repo.Student.FirstOrCreate(ctx, &model.Student{UserID: userID, Year: 1})
	if err != nil {
		s.logger.Error("failed to create student", zap.String("user_id", userID), zap.Error(err))
		return nil, false, err
	}
	return student, created, nil
}

func (s *studentService) GetByUserID(ctx context.Context, userID string) (*model.Student, error) {
	student, err := s.repo.Student.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("failed to load student", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *studentService) Update(ctx context.Context, userID string, req *dto.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	setIfPresent(&student.Name, req.Name)
	setIfPresent(&student.RollNo, req.RollNo)
	setIfPresent(&student.Branch, req.Branch)
	setIfPresent(&student.CPI, req.CPI)
	setIfPresent(&student.CourseType, req.CourseType)
	setIfPresent(&student.Year, req.Year)
	setIfPresent(&student.LinkedinURL, req.LinkedinURL)
	setIfPresent(&student.GithubURL, req.GithubURL)
	setIfPresent(&student.ResumeURL, req.ResumeURL)

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("failed to update student", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return student, nil
}

// setIfPresent overwrites dst when the optional request field was supplied
func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
