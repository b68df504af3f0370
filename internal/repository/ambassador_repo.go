package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// AmbassadorRepository campus_ambassadors data access
type AmbassadorRepository interface {
	// Create returns pkgerrors.ErrDuplicate when the email is already registered
	Create(ctx context.Context, ambassador *model.CampusAmbassador) error
	GetByID(ctx context.Context, id uint) (*model.CampusAmbassador, error)
	GetByEmail(ctx context.Context, email string) (*model.CampusAmbassador, error)
	List(ctx context.Context) ([]model.CampusAmbassador, error)
	ListByEmails(ctx context.Context, emails []string) ([]model.CampusAmbassador, error)
	// ListWithTasks every ambassador with linked tasks, ordered by id
	ListWithTasks(ctx context.Context) ([]model.CampusAmbassador, error)
	// Leaderboard top ambassadors by points, ties broken by registration order
	Leaderboard(ctx context.Context, limit int) ([]model.CampusAmbassador, error)
	Count(ctx context.Context) (int64, error)
	// UpdateProfile overwrites name, college name, college year and phone
	UpdateProfile(ctx context.Context, ambassador *model.CampusAmbassador) error
	// AddPoints increments points in SQL and returns the resulting balance
	AddPoints(ctx context.Context, id uint, delta int) (int, error)
}

type ambassadorRepo struct {
	db *gorm.DB
}

// NewAmbassadorRepo creates an AmbassadorRepository
func NewAmbassadorRepo(db *gorm.DB) AmbassadorRepository {
	return &ambassadorRepo{db: db}
}

func (r *ambassadorRepo) Create(ctx context.Context, ambassador *model.CampusAmbassador) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(ambassador).Error)
}

func (r *ambassadorRepo) GetByID(ctx context.Context, id uint) (*model.CampusAmbassador, error) {
	var ambassador model.CampusAmbassador
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ambassador).Error; err != nil {
		return nil, err
	}
	return &ambassador, nil
}

func (r *ambassadorRepo) GetByEmail(ctx context.Context, email string) (*model.CampusAmbassador, error) {
	var ambassador model.CampusAmbassador
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&ambassador).Error; err != nil {
		return nil, err
	}
	return &ambassador, nil
}

func (r *ambassadorRepo) List(ctx context.Context) ([]model.CampusAmbassador, error) {
	var ambassadors []model.CampusAmbassador
	err := r.db.WithContext(ctx).Order("id ASC").Find(&ambassadors).Error
	return ambassadors, err
}

func (r *ambassadorRepo) ListByEmails(ctx context.Context, emails []string) ([]model.CampusAmbassador, error) {
	var ambassadors []model.CampusAmbassador
	if len(emails) == 0 {
		return ambassadors, nil
	}
	err := r.db.WithContext(ctx).Where("email IN ?", emails).Find(&ambassadors).Error
	return ambassadors, err
}

func (r *ambassadorRepo) ListWithTasks(ctx context.Context) ([]model.CampusAmbassador, error) {
	var ambassadors []model.CampusAmbassador
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id ASC")
		}).
		Order("id ASC").
		Find(&ambassadors).Error
	return ambassadors, err
}

func (r *ambassadorRepo) Leaderboard(ctx context.Context, limit int) ([]model.CampusAmbassador, error) {
	var ambassadors []model.CampusAmbassador
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "college_name", "points").
		Order("points DESC").
		Order("id ASC").
		Limit(limit).
		Find(&ambassadors).Error
	return ambassadors, err
}

func (r *ambassadorRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CampusAmbassador{}).Count(&count).Error
	return count, err
}

func (r *ambassadorRepo) UpdateProfile(ctx context.Context, ambassador *model.CampusAmbassador) error {
	res := r.db.WithContext(ctx).
		Model(&model.CampusAmbassador{}).
		Where("id = ?", ambassador.ID).
		Updates(map[string]interface{}{
			"name":         ambassador.Name,
			"college_name": ambassador.CollegeName,
			"college_year": ambassador.CollegeYear,
			"phone":        ambassador.Phone,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ambassadorRepo) AddPoints(ctx context.Context, id uint, delta int) (int, error) {
	var updated model.CampusAmbassador
	res := r.db.WithContext(ctx).
		Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "points"}}}).
		Where("id = ?", id).
		Update("points", gorm.Expr("points + ?", delta))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return updated.Points, nil
}
