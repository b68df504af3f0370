package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// RecruiterRepository recruiters data access
type RecruiterRepository interface {
	FirstOrCreate(ctx context.Context, recruiter *model.Recruiter) (stored *model.Recruiter, created bool, err error)
	GetByID(ctx context.Context, id string) (*model.Recruiter, error)
	// GetByUserID loads the profile with user and posts (each with its applications)
	GetByUserID(ctx context.Context, userID string) (*model.Recruiter, error)
	Update(ctx context.Context, recruiter *model.Recruiter) error
}

type recruiterRepo struct {
	db *gorm.DB
}

// NewRecruiterRepo creates a RecruiterRepository
func NewRecruiterRepo(db *gorm.DB) RecruiterRepository {
	return &recruiterRepo{db: db}
}

func (r *recruiterRepo) FirstOrCreate(ctx context.Context, recruiter *model.Recruiter) (*model.Recruiter, bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(recruiter)
	if res.Error != nil {
		return nil, false, translateError(res.Error)
	}

	var stored model.Recruiter
	if err := r.db.WithContext(ctx).Where("user_id = ?", recruiter.UserID).First(&stored).Error; err != nil {
		return nil, false, err
	}
	return &stored, res.RowsAffected == 1, nil
}

func (r *recruiterRepo) GetByID(ctx context.Context, id string) (*model.Recruiter, error) {
	var recruiter model.Recruiter
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recruiter).Error; err != nil {
		return nil, err
	}
	return &recruiter, nil
}

func (r *recruiterRepo) GetByUserID(ctx context.Context, userID string) (*model.Recruiter, error) {
	var recruiter model.Recruiter
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Posts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Posts.Applications").
		Where("user_id = ?", userID).
		First(&recruiter).Error
	if err != nil {
		return nil, err
	}
	return &recruiter, nil
}

func (r *recruiterRepo) Update(ctx context.Context, recruiter *model.Recruiter) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recruiter).Error
}
