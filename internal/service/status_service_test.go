package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/standup/backend/internal/model"
	"github.com/standup/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mock repositories (shared by the service tests in this package)
// ---------------------------------------------------------------------------

type mockUserRepository struct {
	getByIDFunc       func(ctx context.Context, id string) (*model.User, error)
	getByUsernameFunc func(ctx context.Context, username string) (*model.User, error)
	getOrCreateFunc   func(ctx context.Context, username string) (*model.User, error)
	updateFunc        func(ctx context.Context, user *model.User) error
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFunc != nil {
		return m.getByUsernameFunc(ctx, username)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) GetOrCreateByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getOrCreateFunc != nil {
		return m.getOrCreateFunc(ctx, username)
	}
	return &model.User{ID: "user-1", Username: username, Slug: username}, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *model.User) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, user)
	}
	return nil
}

type mockProjectRepository struct {
	getBySlugFunc   func(ctx context.Context, slug string) (*model.Project, error)
	getOrCreateFunc func(ctx context.Context, slug string) (*model.Project, error)
	upsertFunc      func(ctx context.Context, project *model.Project) error
}

func (m *mockProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepository) GetOrCreateBySlug(ctx context.Context, slug string) (*model.Project, error) {
	if m.getOrCreateFunc != nil {
		return m.getOrCreateFunc(ctx, slug)
	}
	return &model.Project{ID: "project-1", Name: slug, Slug: slug}, nil
}

func (m *mockProjectRepository) Upsert(ctx context.Context, project *model.Project) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, project)
	}
	return nil
}

type mockStatusRepository struct {
	createFunc func(ctx context.Context, status *model.Status) error
	getFunc    func(ctx context.Context, id string) (*model.Status, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockStatusRepository) Create(ctx context.Context, status *model.Status) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, status)
	}
	status.ID = "status-1"
	return nil
}

func (m *mockStatusRepository) GetByID(ctx context.Context, id string) (*model.Status, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockStatusRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tests: StatusService.Create
// ---------------------------------------------------------------------------

func TestStatusService_Create_FormatsContent(t *testing.T) {
	repoURL := "https://github.com/mozilla/kuma"
	projects := &mockProjectRepository{
		getOrCreateFunc: func(ctx context.Context, slug string) (*model.Project, error) {
			return &model.Project{ID: "project-1", Name: slug, Slug: slug, RepoURL: &repoURL}, nil
		},
	}

	var saved *model.Status
	statuses := &mockStatusRepository{
		createFunc: func(ctx context.Context, status *model.Status) error {
			status.ID = "status-1"
			saved = status
			return nil
		},
	}

	svc := NewStatusService(statuses, &mockUserRepository{}, projects, "https://bugzilla.mozilla.org")
	status, err := svc.Create(context.Background(), "r1cky", "mdndev", "#merge pull #1 to fix bug #3")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if saved == nil {
		t.Fatal("expected status to be persisted")
	}
	if status.Content != "#merge pull #1 to fix bug #3" {
		t.Errorf("raw content must be stored as submitted, got %q", status.Content)
	}
	for _, want := range []string{"tag-merge", "pull/1", "show_bug.cgi?id=3"} {
		if !strings.Contains(status.ContentHTML, want) {
			t.Errorf("expected %q in content_html, got %q", want, status.ContentHTML)
		}
	}
	if status.Username != "r1cky" || status.ProjectSlug != "mdndev" {
		t.Errorf("expected transient fields to be set, got %+v", status)
	}
}

func TestStatusService_Create_DefaultBugTracker(t *testing.T) {
	svc := NewStatusService(&mockStatusRepository{}, &mockUserRepository{},
		&mockProjectRepository{}, "https://bugs.internal.example.com")

	status, err := svc.Create(context.Background(), "r1cky", "sumodev", "bug 123456")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.Contains(status.ContentHTML, "https://bugs.internal.example.com/show_bug.cgi?id=123456") {
		t.Errorf("expected configured default bug tracker, got %q", status.ContentHTML)
	}
}

func TestStatusService_Create_ProjectBugTrackerOverride(t *testing.T) {
	override := "https://bugs.project.example.com"
	projects := &mockProjectRepository{
		getOrCreateFunc: func(ctx context.Context, slug string) (*model.Project, error) {
			return &model.Project{ID: "project-1", Slug: slug, BugTrackerURL: &override}, nil
		},
	}
	svc := NewStatusService(&mockStatusRepository{}, &mockUserRepository{},
		projects, "https://bugzilla.mozilla.org")

	status, err := svc.Create(context.Background(), "r1cky", "sumodev", "bug 7")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.Contains(status.ContentHTML, override+"/show_bug.cgi?id=7") {
		t.Errorf("expected project bug tracker override, got %q", status.ContentHTML)
	}
}

func TestStatusService_Create_NoRepoURLLeavesPullLiteral(t *testing.T) {
	svc := NewStatusService(&mockStatusRepository{}, &mockUserRepository{},
		&mockProjectRepository{}, "https://bugzilla.mozilla.org")

	status, err := svc.Create(context.Background(), "r1cky", "sumodev", "pull #1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if status.ContentHTML != "pull #1" {
		t.Errorf("expected literal pass-through without repo URL, got %q", status.ContentHTML)
	}
}

// ---------------------------------------------------------------------------
// Tests: StatusService.Delete
// ---------------------------------------------------------------------------

func deleteFixture(deleted *[]string) (*mockStatusRepository, *mockUserRepository) {
	statuses := &mockStatusRepository{
		getFunc: func(ctx context.Context, id string) (*model.Status, error) {
			if id != "status-1" {
				return nil, repository.ErrNotFound
			}
			return &model.Status{ID: "status-1", UserID: "user-1"}, nil
		},
		deleteFunc: func(ctx context.Context, id string) error {
			*deleted = append(*deleted, id)
			return nil
		},
	}
	users := &mockUserRepository{
		getByUsernameFunc: func(ctx context.Context, username string) (*model.User, error) {
			switch username {
			case "r1cky":
				return &model.User{ID: "user-1", Username: "r1cky"}, nil
			case "admin":
				return &model.User{ID: "user-9", Username: "admin", IsAdmin: true}, nil
			case "mallory":
				return &model.User{ID: "user-2", Username: "mallory"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	return statuses, users
}

func TestStatusService_Delete_ByCreator(t *testing.T) {
	var deleted []string
	statuses, users := deleteFixture(&deleted)
	svc := NewStatusService(statuses, users, &mockProjectRepository{}, "")

	if err := svc.Delete(context.Background(), "status-1", "r1cky"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != "status-1" {
		t.Errorf("expected status-1 to be deleted, got %v", deleted)
	}
}

func TestStatusService_Delete_ByAdmin(t *testing.T) {
	var deleted []string
	statuses, users := deleteFixture(&deleted)
	svc := NewStatusService(statuses, users, &mockProjectRepository{}, "")

	if err := svc.Delete(context.Background(), "status-1", "admin"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(deleted) != 1 {
		t.Errorf("expected delete to reach repository, got %v", deleted)
	}
}

func TestStatusService_Delete_ByOtherUserForbidden(t *testing.T) {
	var deleted []string
	statuses, users := deleteFixture(&deleted)
	svc := NewStatusService(statuses, users, &mockProjectRepository{}, "")

	if err := svc.Delete(context.Background(), "status-1", "mallory"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if len(deleted) != 0 {
		t.Errorf("delete must not reach repository, got %v", deleted)
	}
}

func TestStatusService_Delete_UnknownActorForbidden(t *testing.T) {
	var deleted []string
	statuses, users := deleteFixture(&deleted)
	svc := NewStatusService(statuses, users, &mockProjectRepository{}, "")

	if err := svc.Delete(context.Background(), "status-1", "nobody"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestStatusService_Delete_UnknownStatus(t *testing.T) {
	var deleted []string
	statuses, users := deleteFixture(&deleted)
	svc := NewStatusService(statuses, users, &mockProjectRepository{}, "")

	if err := svc.Delete(context.Background(), "missing", "r1cky"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
