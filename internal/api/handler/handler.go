package handler

import "github.com/ecelliitbhu/ecell-backend/internal/service"

// Handler aggregates every module handler
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Student     *StudentHandler
	Recruiter   *RecruiterHandler
	Post        *PostHandler
	Application *ApplicationHandler
	Ambassador  *AmbassadorHandler
	Task        *TaskHandler
	Submission  *SubmissionHandler
	Export      *ExportHandler
}

// NewHandler wires handlers to their services
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Student:     NewStudentHandler(svc.Student),
		Recruiter:   NewRecruiterHandler(svc.Recruiter),
		Post:        NewPostHandler(svc.Post),
		Application: NewApplicationHandler(svc.Application),
		Ambassador:  NewAmbassadorHandler(svc.Ambassador),
		Task:        NewTaskHandler(svc.Task),
		Submission:  NewSubmissionHandler(svc.Submission),
		Export:      NewExportHandler(svc.Export),
	}
}
