package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// ApplicationFilters optional list filters
type ApplicationFilters struct {
	StudentID string
	PostID    string
}

// ApplicationRepository applications data access
type ApplicationRepository interface {
	// Create returns pkgerrors.ErrDuplicate when the (student, post) pair already exists
	Create(ctx context.Context, application *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)
	// GetDetail loads the application with student+user and post+recruiter
	GetDetail(ctx context.Context, id string) (*model.Application, error)
	GetByStudentAndPost(ctx context.Context, studentID, postID string) (*model.Application, error)
	List(ctx context.Context, filters *ApplicationFilters) ([]model.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	DeleteByPost(ctx context.Context, postID string) (int64, error)
}

type applicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo creates an ApplicationRepository
func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, application *model.Application) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(application).Error)
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var application model.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&application).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepo) GetDetail(ctx context.Context, id string) (*model.Application, error) {
	var application model.Application
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.User").
		Preload("Post").
		Preload("Post.Recruiter").
		Where("id = ?", id).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepo) GetByStudentAndPost(ctx context.Context, studentID, postID string) (*model.Application, error) {
	var application model.Application
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND post_id = ?", studentID, postID).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepo) List(ctx context.Context, filters *ApplicationFilters) ([]model.Application, error) {
	q := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.User").
		Preload("Post").
		Preload("Post.Recruiter").
		Preload("Post.Recruiter.User")

	if filters != nil {
		if filters.StudentID != "" {
			q = q.Where("student_id = ?", filters.StudentID)
		}
		if filters.PostID != "" {
			q = q.Where("post_id = ?", filters.PostID)
		}
	}

	var applications []model.Application
	err := q.Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Application{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *applicationRepo) DeleteByPost(ctx context.Context, postID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&model.Application{})
	return res.RowsAffected, res.Error
}
