package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// SubmissionRepository submissions data access
type SubmissionRepository interface {
	// BatchCreate inserts the rows, leaving existing (user_email, task_id) pairs untouched
	BatchCreate(ctx context.Context, submissions []model.Submission) error
	GetByEmailAndTask(ctx context.Context, email string, taskID uint) (*model.Submission, error)
	ListByEmail(ctx context.Context, email string) ([]model.Submission, error)
	// ListAll every submission, newest first
	ListAll(ctx context.Context) ([]model.Submission, error)
	// ListWithTask every submission with its task, newest first
	ListWithTask(ctx context.Context) ([]model.Submission, error)
	// Upsert writes payload and status for (user_email, task_id) unless the stored row is final.
	// applied is false when an approved/rejected row blocked the write.
	Upsert(ctx context.Context, submission *model.Submission) (applied bool, err error)
	// TransitionStatus moves the row from one status to another; false when the row was not in from
	TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error)
	DeleteByTask(ctx context.Context, taskID uint) (int64, error)
}

type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepo creates a SubmissionRepository
func NewSubmissionRepo(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) BatchCreate(ctx context.Context, submissions []model.Submission) error {
	if len(submissions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_email"}, {Name: "task_id"}},
			DoNothing: true,
		}).
		CreateInBatches(submissions, 500).Error
}

func (r *submissionRepo) GetByEmailAndTask(ctx context.Context, email string, taskID uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND task_id = ?", email, taskID).
		First(&submission).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) ListByEmail(ctx context.Context, email string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("task_id ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepo) ListAll(ctx context.Context) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepo) ListWithTask(ctx context.Context) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.WithContext(ctx).
		Preload("Task").
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepo) Upsert(ctx context.Context, submission *model.Submission) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_email"}, {Name: "task_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"submission": submission.Submission,
				"status":     submission.Status,
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{
					SQL:  "submissions.status NOT IN ?",
					Vars: []interface{}{[]string{model.SubmissionStatusApproved, model.SubmissionStatusRejected}},
				},
			}},
		}).
		Create(submission)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *submissionRepo) TransitionStatus(ctx context.Context, id uint, from, to string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Submission{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *submissionRepo) DeleteByTask(ctx context.Context, taskID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("task_id = ?", taskID).Delete(&model.Submission{})
	return res.RowsAffected, res.Error
}
