//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ecelliitbhu/ecell-backend/internal/model"
	"github.com/ecelliitbhu/ecell-backend/internal/repository"
	"github.com/ecelliitbhu/ecell-backend/pkg/database"
	pkgerrors "github.com/ecelliitbhu/ecell-backend/pkg/errors"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=postgres password=postgres dbname=ecell_test sslmode=disable TimeZone=Asia/Kolkata"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot connect to test database: %v\n", err)
		os.Exit(1)
	}

	sqlDB, err := testDB.DB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot obtain sql.DB: %v\n", err)
		os.Exit(1)
	}
	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		fmt.Fprintf(os.Stderr, "migrations failed: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// seedAmbassadorWithTask creates an ambassador, one task, the pending submission and the link
func seedAmbassadorWithTask(t *testing.T) (*repository.Repository, *model.CampusAmbassador, *model.Task, func()) {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewRepository(testDB)

	email := fmt.Sprintf("ca-%d@college.edu", time.Now().UnixNano())
	user, _, err := repo.User.FirstOrCreateByEmail(ctx, email)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	ambassador := &model.CampusAmbassador{Email: email, Name: "Test CA", UserID: user.ID}
	if err := repo.Ambassador.Create(ctx, ambassador); err != nil {
		t.Fatalf("create ambassador: %v", err)
	}

	task := &model.Task{
		Title:       "Share the poster",
		Description: "Post on three groups",
		LastDate:    time.Now().Add(48 * time.Hour),
		Points:      10,
		Status:      model.TaskStatusPending,
	}
	if err := repo.Task.Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := repo.Submission.BatchCreate(ctx, []model.Submission{
		{TaskID: task.ID, UserEmail: email, Status: model.SubmissionStatusPending},
	}); err != nil {
		t.Fatalf("create submission: %v", err)
	}
	if err := repo.Task.Link(ctx, []uint{task.ID}, []uint{ambassador.ID}); err != nil {
		t.Fatalf("link task: %v", err)
	}

	cleanup := func() {
		testDB.Exec("DELETE FROM submissions WHERE user_email = ?", email)
		testDB.Exec("DELETE FROM task_ambassadors WHERE task_id = ?", task.ID)
		testDB.Exec("DELETE FROM tasks WHERE id = ?", task.ID)
		testDB.Exec("DELETE FROM campus_ambassadors WHERE id = ?", ambassador.ID)
		testDB.Exec("DELETE FROM users WHERE id = ?", user.ID)
	}
	return repo, ambassador, task, cleanup
}

// ═══════════════════════════════════════════════════════════
// Submission lifecycle
// ═══════════════════════════════════════════════════════════

func TestSubmissionUpsert_FinalStatusIsKept(t *testing.T) {
	repo, ambassador, task, cleanup := seedAmbassadorWithTask(t)
	defer cleanup()
	ctx := context.Background()

	applied, err := repo.Submission.Upsert(ctx, &model.Submission{
		TaskID: task.ID, UserEmail: ambassador.Email, Submission: "https://drive/1", Status: model.SubmissionStatusSubmitted,
	})
	if err != nil || !applied {
		t.Fatalf("first upsert: applied=%v err=%v", applied, err)
	}

	sub, err := repo.Submission.GetByEmailAndTask(ctx, ambassador.Email, task.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if sub.Status != model.SubmissionStatusSubmitted || sub.Submission != "https://drive/1" {
		t.Fatalf("unexpected submission %+v", sub)
	}

	ok, err := repo.Submission.TransitionStatus(ctx, sub.ID, model.SubmissionStatusSubmitted, model.SubmissionStatusApproved)
	if err != nil || !ok {
		t.Fatalf("approve: ok=%v err=%v", ok, err)
	}

	applied, err = repo.Submission.Upsert(ctx, &model.Submission{
		TaskID: task.ID, UserEmail: ambassador.Email, Submission: "https://drive/2", Status: model.SubmissionStatusSubmitted,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if applied {
		t.Fatal("approved submission must not be overwritten")
	}

	sub, _ = repo.Submission.GetByEmailAndTask(ctx, ambassador.Email, task.ID)
	if sub.Status != model.SubmissionStatusApproved || sub.Submission != "https://drive/1" {
		t.Errorf("approved submission changed: %+v", sub)
	}
}

func TestTransitionStatus_OnlyOnce(t *testing.T) {
	repo, ambassador, task, cleanup := seedAmbassadorWithTask(t)
	defer cleanup()
	ctx := context.Background()

	sub, err := repo.Submission.GetByEmailAndTask(ctx, ambassador.Email, task.ID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	ok, err := repo.Submission.TransitionStatus(ctx, sub.ID, model.SubmissionStatusSubmitted, model.SubmissionStatusApproved)
	if err != nil {
		t.Fatalf("transition: %v", err)
	}
	if ok {
		t.Fatal("pending submission must not move to approved")
	}

	testDB.Model(&model.Submission{}).Where("id = ?", sub.ID).Update("status", model.SubmissionStatusSubmitted)

	first, _ := repo.Submission.TransitionStatus(ctx, sub.ID, model.SubmissionStatusSubmitted, model.SubmissionStatusApproved)
	second, _ := repo.Submission.TransitionStatus(ctx, sub.ID, model.SubmissionStatusSubmitted, model.SubmissionStatusApproved)
	if !first || second {
		t.Errorf("expected exactly one transition, got first=%v second=%v", first, second)
	}
}

func TestBatchCreate_IgnoresExistingPairs(t *testing.T) {
	repo, ambassador, task, cleanup := seedAmbassadorWithTask(t)
	defer cleanup()
	ctx := context.Background()

	err := repo.Submission.BatchCreate(ctx, []model.Submission{
		{TaskID: task.ID, UserEmail: ambassador.Email, Status: model.SubmissionStatusPending},
	})
	if err != nil {
		t.Fatalf("repeated batch create: %v", err)
	}

	subs, err := repo.Submission.ListByEmail(ctx, ambassador.Email)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 {
		t.Errorf("expected 1 submission, got %d", len(subs))
	}
}

// ═══════════════════════════════════════════════════════════
// Ambassadors & tasks
// ═══════════════════════════════════════════════════════════

func TestAmbassador_AddPointsAndUniqueness(t *testing.T) {
	repo, ambassador, _, cleanup := seedAmbassadorWithTask(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := repo.Ambassador.AddPoints(ctx, ambassador.ID, 15); err != nil {
		t.Fatalf("add points: %v", err)
	}
	total, err := repo.Ambassador.AddPoints(ctx, ambassador.ID, 5)
	if err != nil {
		t.Fatalf("add points: %v", err)
	}
	if total != 20 {
		t.Errorf("expected returned balance 20, got %d", total)
	}
	got, err := repo.Ambassador.GetByID(ctx, ambassador.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Points != 20 {
		t.Errorf("expected 20 points, got %d", got.Points)
	}

	if _, err := repo.Ambassador.AddPoints(ctx, 0, 5); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected not found for unknown ambassador, got %v", err)
	}

	dup := &model.CampusAmbassador{Email: ambassador.Email, Name: "Dup", UserID: ambassador.UserID}
	if err := repo.Ambassador.Create(ctx, dup); !errors.Is(err, pkgerrors.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestTask_ListByAmbassadorAndDelete(t *testing.T) {
	repo, ambassador, task, cleanup := seedAmbassadorWithTask(t)
	defer cleanup()
	ctx := context.Background()

	// linking twice is a no-op
	if err := repo.Task.Link(ctx, []uint{task.ID}, []uint{ambassador.ID}); err != nil {
		t.Fatalf("relink: %v", err)
	}

	tasks, err := repo.Task.ListByAmbassador(ctx, ambassador.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Fatalf("unexpected tasks %+v", tasks)
	}

	err = repo.Transaction(ctx, func(tx *repository.Repository) error {
		if _, err := tx.Submission.DeleteByTask(ctx, task.ID); err != nil {
			return err
		}
		return tx.Task.Delete(ctx, task.ID)
	})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.Task.GetByID(ctx, task.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected task gone, got %v", err)
	}
	tasks, _ = repo.Task.ListByAmbassador(ctx, ambassador.ID)
	if len(tasks) != 0 {
		t.Errorf("expected links removed, got %d tasks", len(tasks))
	}
}

func TestTask_ResetSubmissionFields(t *testing.T) {
	repo, _, task, cleanup := seedAmbassadorWithTask(t)
	defer cleanup()
	ctx := context.Background()

	testDB.Model(&model.Task{}).Where("id = ?", task.ID).Updates(map[string]interface{}{
		"submission": "legacy", "submitted": true, "status": "submitted",
	})

	n, err := repo.Task.ResetSubmissionFields(ctx, []uint{task.ID}, false)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}

	got, _ := repo.Task.GetByID(ctx, task.ID)
	if got.Submission != "" || got.Submitted || got.Status != model.TaskStatusPending {
		t.Errorf("task not reset: %+v", got)
	}
}
