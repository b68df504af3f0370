package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// StudentRepository students data access
type StudentRepository interface {
	// FirstOrCreate inserts student unless a profile for student.UserID exists, then loads the stored row
	FirstOrCreate(ctx context.Context, student *model.Student) (stored *model.Student, created bool, err error)
	GetByID(ctx context.Context, id string) (*model.Student, error)
	// GetByUserID loads the profile with user and applications (each with its post)
	GetByUserID(ctx context.Context, userID string) (*model.Student, error)
	Update(ctx context.Context, student *model.Student) error
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo creates a StudentRepository
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) FirstOrCreate(ctx context.Context, student *model.Student) (*model.Student, bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(student)
	if res.Error != nil {
		return nil, false, translateError(res.Error)
	}

	var stored model.Student
	if err := r.db.WithContext(ctx).Where("user_id = ?", student.UserID).First(&stored).Error; err != nil {
		return nil, false, err
	}
	return &stored, res.RowsAffected == 1, nil
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByUserID(ctx context.Context, userID string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Applications", func(db *gorm.DB) *gorm.DB {
			return db.Order("applied_at DESC")
		}).
		Preload("Applications.Post").
		Where("user_id = ?", userID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) Update(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(student).Error
}
