package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	pkgerrors "github.com/ecelliitbhu/ecell-backend/pkg/errors"
)

// Repository aggregate of every table repository
type Repository struct {
	db *gorm.DB

	User        UserRepository
	Student     StudentRepository
	Recruiter   RecruiterRepository
	Post        PostRepository
	Application ApplicationRepository
	Ambassador  AmbassadorRepository
	Task        TaskRepository
	Submission  SubmissionRepository
	Admin       AdminRepository
}

// NewRepository builds the aggregate on top of db
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		User:        NewUserRepo(db),
		Student:     NewStudentRepo(db),
		Recruiter:   NewRecruiterRepo(db),
		Post:        NewPostRepo(db),
		Application: NewApplicationRepo(db),
		Ambassador:  NewAmbassadorRepo(db),
		Task:        NewTaskRepo(db),
		Submission:  NewSubmissionRepo(db),
		Admin:       NewAdminRepo(db),
	}
}

// WithTx returns a Repository whose members all run on tx
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction runs fn in a single database transaction; any error rolls everything back.
// A Repository assembled without a db (unit tests with in-memory repos) runs fn directly.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// translateError maps driver-level unique violations to pkgerrors.ErrDuplicate
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return pkgerrors.ErrDuplicate
	}
	return err
}
