package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/ecelliitbhu/ecell-backend/internal/dto"
	"github.com/ecelliitbhu/ecell-backend/internal/model"
)

func setupPostFixtures(t *testing.T) (PostService, ApplicationService, *mockRepos, *model.Recruiter, *model.Student) {
	t.Helper()
	repo, m := newMockRepository()
	ctx := context.Background()

	hr := m.user.add("hr@acme.com")
	recruiter, _, _ := m.recruiter.FirstOrCreate(ctx, &model.Recruiter{UserID: hr.ID})
	st := m.user.add("s@x.com")
	student, _, _ := m.student.FirstOrCreate(ctx, &model.Student{UserID: st.ID})

	return NewPostService(repo, zap.NewNop()), NewApplicationService(repo, zap.NewNop()), m, recruiter, student
}

// ── posts ──

func TestPostService_Create_UnknownRecruiter(t *testing.T) {
	posts, _, _, _, _ := setupPostFixtures(t)

	_, err := posts.Create(context.Background(), &dto.CreatePostRequest{RecruiterID: "nope", JobTitle: "SDE"})
	if !errors.Is(err, ErrPostRecruiterNotFound) {
		t.Errorf("expected ErrPostRecruiterNotFound, got %v", err)
	}
}

func TestPostService_CreateAndUpdate(t *testing.T) {
	posts, _, _, recruiter, _ := setupPostFixtures(t)
	ctx := context.Background()

	post, err := posts.Create(ctx, &dto.CreatePostRequest{
		RecruiterID:    recruiter.ID,
		JobTitle:       "SDE Intern",
		RequiredSkills: []string{"go", "sql"},
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if len(post.RequiredSkills) != 2 {
		t.Errorf("expected 2 skills, got %v", post.RequiredSkills)
	}

	updated, err := posts.Update(ctx, post.ID, &dto.UpdatePostRequest{JobTitle: "Backend Intern", Stipend: "50k"})
	if err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}
	if updated.JobTitle != "Backend Intern" || updated.Stipend != "50k" {
		t.Errorf("overwrite not applied: %+v", updated)
	}
	if len(updated.RequiredSkills) != 0 {
		t.Errorf("full overwrite should clear skills, got %v", updated.RequiredSkills)
	}
	if updated.RecruiterID != recruiter.ID {
		t.Error("recruiter must not change on update")
	}
}

func TestPostService_Delete_RemovesApplicationsFirst(t *testing.T) {
	posts, apps, m, recruiter, student := setupPostFixtures(t)
	ctx := context.Background()

	post, _ := posts.Create(ctx, &dto.CreatePostRequest{RecruiterID: recruiter.ID, JobTitle: "SDE"})
	other, _ := posts.Create(ctx, &dto.CreatePostRequest{RecruiterID: recruiter.ID, JobTitle: "PM"})
	if _, err := apps.Create(ctx, &dto.CreateApplicationRequest{StudentID: student.ID, PostID: post.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := apps.Create(ctx, &dto.CreateApplicationRequest{StudentID: student.ID, PostID: other.ID}); err != nil {
		t.Fatal(err)
	}

	if err := posts.Delete(ctx, post.ID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}
	for _, a := range m.application.applications {
		if a.PostID == post.ID {
			t.Error("orphaned application left behind")
		}
	}
	if len(m.application.applications) != 1 {
		t.Errorf("other post's application should remain, have %d", len(m.application.applications))
	}
	if _, err := posts.GetByID(ctx, post.ID); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound after delete, got %v", err)
	}
}

func TestPostService_Delete_NotFound(t *testing.T) {
	posts, _, _, _, _ := setupPostFixtures(t)

	if err := posts.Delete(context.Background(), "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
}

// ── applications ──

func TestApplicationService_Create_PendingThenConflict(t *testing.T) {
	posts, apps, m, recruiter, student := setupPostFixtures(t)
	ctx := context.Background()
	post, _ := posts.Create(ctx, &dto.CreatePostRequest{RecruiterID: recruiter.ID, JobTitle: "SDE"})
	req := &dto.CreateApplicationRequest{StudentID: student.ID, PostID: post.ID}

	first, err := apps.Create(ctx, req)
	if err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}
	if first.Status != "PENDING" {
		t.Errorf("expected PENDING, got %s", first.Status)
	}

	existing, err := apps.Create(ctx, req)
	if !errors.Is(err, ErrApplicationExists) {
		t.Fatalf("expected ErrApplicationExists, got %v", err)
	}
	if existing == nil || existing.ID != first.ID {
		t.Error("conflict should carry the existing application")
	}
	if len(m.application.applications) != 1 {
		t.Errorf("expected 1 application, have %d", len(m.application.applications))
	}
}

func TestApplicationService_Create_UnknownReferences(t *testing.T) {
	posts, apps, _, recruiter, student := setupPostFixtures(t)
	ctx := context.Background()
	post, _ := posts.Create(ctx, &dto.CreatePostRequest{RecruiterID: recruiter.ID, JobTitle: "SDE"})

	if _, err := apps.Create(ctx, &dto.CreateApplicationRequest{StudentID: "x", PostID: post.ID}); !errors.Is(err, ErrApplicationStudentNotFound) {
		t.Errorf("expected ErrApplicationStudentNotFound, got %v", err)
	}
	if _, err := apps.Create(ctx, &dto.CreateApplicationRequest{StudentID: student.ID, PostID: "x"}); !errors.Is(err, ErrApplicationPostNotFound) {
		t.Errorf("expected ErrApplicationPostNotFound, got %v", err)
	}
}

func TestApplicationService_Delete(t *testing.T) {
	posts, apps, m, recruiter, student := setupPostFixtures(t)
	ctx := context.Background()
	post, _ := posts.Create(ctx, &dto.CreatePostRequest{RecruiterID: recruiter.ID, JobTitle: "SDE"})
	app, _ := apps.Create(ctx, &dto.CreateApplicationRequest{StudentID: student.ID, PostID: post.ID})

	tests := []struct {
		status  string
		wantErr error
	}{
		{"Rejected", ErrApplicationRejected},
		{"REJECTED", ErrApplicationRejected},
		{"ACCEPTED", nil},
	}
	for _, tt := range tests {
		if _, err := apps.UpdateStatus(ctx, app.ID, tt.status); err != nil {
			t.Fatalf("UpdateStatus(%s): %v", tt.status, err)
		}
		_, err := apps.Delete(ctx, app.ID)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("status %s: expected %v, got %v", tt.status, tt.wantErr, err)
		}
	}
	if len(m.application.applications) != 0 {
		t.Error("accepted application should have been deleted")
	}
	if _, err := apps.Delete(ctx, app.ID); !errors.Is(err, ErrApplicationNotFound) {
		t.Errorf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestApplicationService_List_Filters(t *testing.T) {
	posts, apps, _, recruiter, student := setupPostFixtures(t)
	ctx := context.Background()
	p1, _ := posts.Create(ctx, &dto.CreatePostRequest{RecruiterID: recruiter.ID, JobTitle: "A"})
	p2, _ := posts.Create(ctx, &dto.CreatePostRequest{RecruiterID: recruiter.ID, JobTitle: "B"})
	_, _ = apps.Create(ctx, &dto.CreateApplicationRequest{StudentID: student.ID, PostID: p1.ID})
	_, _ = apps.Create(ctx, &dto.CreateApplicationRequest{StudentID: student.ID, PostID: p2.ID})

	all, err := apps.List(ctx, &dto.ApplicationListRequest{StudentID: student.ID})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2, got %d", len(all))
	}
	if !all[0].AppliedAt.After(all[1].AppliedAt) {
		t.Error("expected newest application first")
	}

	byPost, _ := apps.List(ctx, &dto.ApplicationListRequest{PostID: p1.ID})
	if len(byPost) != 1 || byPost[0].PostID != p1.ID {
		t.Errorf("post filter not applied: %+v", byPost)
	}
}
