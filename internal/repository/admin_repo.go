package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// AdminRepository admins data access
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	// Upsert creates the admin or replaces its password hash
	Upsert(ctx context.Context, admin *model.Admin) error
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo creates an AdminRepository
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) Upsert(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
		}).
		Create(admin).Error
}
