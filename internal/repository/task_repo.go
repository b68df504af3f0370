package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

// taskAmbassador row of the task_ambassadors join table
type taskAmbassador struct {
	TaskID             uint `gorm:"primaryKey"`
	CampusAmbassadorID uint `gorm:"primaryKey"`
}

func (taskAmbassador) TableName() string { return "task_ambassadors" }

// TaskRepository tasks data access
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	GetByID(ctx context.Context, id uint) (*model.Task, error)
	// List every task ordered by id
	List(ctx context.Context) ([]model.Task, error)
	// ListByAmbassador tasks linked to the ambassador, ordered by id
	ListByAmbassador(ctx context.Context, ambassadorID uint) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
	// Delete removes the task and its ambassador links; returns gorm.ErrRecordNotFound when absent
	Delete(ctx context.Context, id uint) error
	// Link inserts join rows for every (task, ambassador) pair, skipping existing ones
	Link(ctx context.Context, taskIDs []uint, ambassadorIDs []uint) error
	// ResetSubmissionFields clears the task-level submission fields of the given tasks, or of every task when all is set
	ResetSubmissionFields(ctx context.Context, taskIDs []uint, all bool) (int64, error)
}

type taskRepo struct {
	db *gorm.DB
}

// NewTaskRepo creates a TaskRepository
func NewTaskRepo(db *gorm.DB) TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(task).Error
}

func (r *taskRepo) GetByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepo) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error
	return tasks, err
}

func (r *taskRepo) ListByAmbassador(ctx context.Context, ambassadorID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Joins("JOIN task_ambassadors ta ON ta.task_id = tasks.id").
		Where("ta.campus_ambassador_id = ?", ambassadorID).
		Order("tasks.id ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *taskRepo) Update(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

func (r *taskRepo) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Where("task_id = ?", id).Delete(&taskAmbassador{}).Error; err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *taskRepo) Link(ctx context.Context, taskIDs []uint, ambassadorIDs []uint) error {
	rows := make([]taskAmbassador, 0, len(taskIDs)*len(ambassadorIDs))
	for _, tid := range taskIDs {
		for _, aid := range ambassadorIDs {
			rows = append(rows, taskAmbassador{TaskID: tid, CampusAmbassadorID: aid})
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(rows, 500).Error
}

func (r *taskRepo) ResetSubmissionFields(ctx context.Context, taskIDs []uint, all bool) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Task{})
	if all {
		q = q.Where("1 = 1")
	} else {
		if len(taskIDs) == 0 {
			return 0, nil
		}
		q = q.Where("id IN ?", taskIDs)
	}

	res := q.Updates(map[string]interface{}{
		"submission": "",
		"submitted":  false,
		"status":     model.TaskStatusPending,
	})
	return res.RowsAffected, res.Error
}
