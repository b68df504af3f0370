package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// PostRepository posts data access
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	// GetByID loads the post with recruiter and applications (each with its student)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	// List every post, newest first, with recruiter+user and applications+student+user
	List(ctx context.Context) ([]model.Post, error)
	Update(ctx context.Context, post *model.Post) error
	// Delete removes the post row; returns gorm.ErrRecordNotFound when nothing was deleted
	Delete(ctx context.Context, id string) error
}

type postRepo struct {
	db *gorm.DB
}

// NewPostRepo creates a PostRepository
func NewPostRepo(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error)
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).
		Preload("Recruiter").
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applied_at DESC")
		}).
		Preload("Applications.Student").
		Where("id = ?", id).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepo) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Preload("Recruiter").
		Preload("Recruiter.User").
		Preload("Applications").
		Preload("Applications.Student").
		Preload("Applications.Student.User").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(post).Error
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
