package service

import (
	"go.uber.org/zap"

	"github.com/ecelliitbhu/ecell-backend/internal/repository"
	"github.com/ecelliitbhu/ecell-backend/pkg/jwt"
)

// Service aggregate of every service
type Service struct {
	Auth        AuthService
	User        UserService
	Student     StudentService
	Recruiter   RecruiterService
	Post        PostService
	Application ApplicationService
	Ambassador  AmbassadorService
	Task        TaskService
	Submission  SubmissionService
	Export      ExportService
}

// NewService wires the services
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	revoker TokenRevoker,
	logger *zap.Logger,
) *Service {
	submissions := NewSubmissionService(repo, logger)
	return &Service{
		Auth:        NewAuthService(repo, jwtMgr, revoker, logger),
		User:        NewUserService(repo, logger),
		Student:     NewStudentService(repo, logger),
		Recruiter:   NewRecruiterService(repo, logger),
		Post:        NewPostService(repo, logger),
		Application: NewApplicationService(repo, logger),
		Ambassador:  NewAmbassadorService(repo, logger),
		Task:        NewTaskService(repo, logger),
		Submission:  submissions,
		Export:      NewExportService(submissions, logger),
	}
}
