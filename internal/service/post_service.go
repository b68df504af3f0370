package service

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
)

// ── post errors ──

var (
	ErrPostNotFound          = errors.New("post not found")
	ErrPostRecruiterNotFound = errors.New("recruiter does not exist")
)

// PostService job listing operations
type PostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Update(ctx context.Context, id string, req *dto.UpdatePostRequest) (*model.Post, error)
	// Delete removes the post together with every application to it
	Delete(ctx context.Context, id string) error
}

type postService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPostService creates a PostService
func NewPostService(repo *repository.Repository, logger *zap.Logger) PostService {
	return &postService{repo: repo, logger: logger}
}

func (s *postService) Create(ctx context.Context, req *dto.CreatePostRequest) (*model.Post, error) {
	if _, err := s.repo.Recruiter.GetByID(ctx, req.RecruiterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostRecruiterNotFound
		}
		s.logger.Error("failed to load recruiter", zap.String("recruiter_id", req.RecruiterID), zap.Error(err))
		return nil, err
	}

	post := &model.Post{
		RecruiterID:    req.RecruiterID,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Qualification:  req.Qualification,
		Experience:     req.Experience,
		Stipend:        req.Stipend,
		RequiredSkills: skills(req.RequiredSkills),
		Location:       req.Location,
		JobType:        req.JobType,
	}
	if err := s.repo.Post.Create(ctx, post); err != nil {
		s.logger.Error("failed to create post", zap.String("recruiter_id", req.RecruiterID), zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.repo.Post.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("failed to load post", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.repo.Post.List(ctx)
	if err != nil {
		s.logger.Error("failed to list posts", zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (s *postService) Update(ctx context.Context, id string, req *dto.UpdatePostRequest) (*model.Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.CompanyName = req.CompanyName
	post.JobTitle = req.JobTitle
	post.JobDescription = req.JobDescription
	post.Qualification = req.Qualification
	post.Experience = req.Experience
	post.Stipend = req.Stipend
	post.RequiredSkills = skills(req.RequiredSkills)
	post.Location = req.Location
	post.JobType = req.JobType

	if err := s.repo.Post.Update(ctx, post); err != nil {
		s.logger.Error("failed to update post", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id string) error {
	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		removed, err := tx.Application.DeleteByPost(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Post.Delete(ctx, id); err != nil {
			return err
		}
		s.logger.Info("post deleted", zap.String("id", id), zap.Int64("applications", removed))
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		s.logger.Error("failed to delete post", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func skills(in []string) pq.StringArray {
	if in == nil {
		return pq.StringArray{}
	}
	return pq.StringArray(in)
}
