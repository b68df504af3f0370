package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// UserRepository users data access
type UserRepository interface {
	// FirstOrCreateByEmail inserts the email if absent; created reports whether this call inserted it
	FirstOrCreateByEmail(ctx context.Context, email string) (user *model.User, created bool, err error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// GetWithProfiles loads the user by id or email with all three profiles
	GetWithProfiles(ctx context.Context, id, email string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a UserRepository
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FirstOrCreateByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	candidate := model.User{ID: uuid.NewString(), Email: email}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "email"}}, DoNothing: true}).
		Create(&candidate)
	if res.Error != nil {
		return nil, false, translateError(res.Error)
	}

	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, err
	}
	return user, res.RowsAffected == 1, nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetWithProfiles(ctx context.Context, id, email string) (*model.User, error) {
	q := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Recruiter").
		Preload("Ambassador")
	if id != "" {
		q = q.Where("id = ?", id)
	} else {
		q = q.Where("email = ?", email)
	}

	var user model.User
	if err := q.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
