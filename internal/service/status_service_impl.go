package service

import (
	"context"
	"errors"

	"github.com/standup/backend/internal/formatter"
	"github.com/standup/backend/internal/model"
	"github.com/standup/backend/internal/repository"
)

// StatusServiceImpl は StatusService の実装
type StatusServiceImpl struct {
	statusRepo  repository.StatusRepository
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	// bugTrackerURL はプロジェクトが上書きしない場合に使う既定の
	// バグトラッカーベース URL（設定から注入される）
	bugTrackerURL string
}

// NewStatusService は StatusServiceImpl を生成する
func NewStatusService(
	statusRepo repository.StatusRepository,
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	bugTrackerURL string,
) StatusService {
	return &StatusServiceImpl{
		statusRepo:    statusRepo,
		userRepo:      userRepo,
		projectRepo:   projectRepo,
		bugTrackerURL: bugTrackerURL,
	}
}

// projectContext はプロジェクトからフォーマッタ用のコンテキストを組み立てる
func (s *StatusServiceImpl) projectContext(p *model.Project) formatter.ProjectContext {
	pc := formatter.ProjectContext{BugTrackerURL: s.bugTrackerURL}
	if p.RepoURL != nil {
		pc.RepoURL = *p.RepoURL
	}
	if p.BugTrackerURL != nil && *p.BugTrackerURL != "" {
		pc.BugTrackerURL = *p.BugTrackerURL
	}
	return pc
}

// Create はステータスを作成する。content_html は常に content と
// プロジェクトメタデータから導出され、独立に編集されることはない。
func (s *StatusServiceImpl) Create(ctx context.Context, username, projectSlug, content string) (*model.Status, error) {
	user, err := s.userRepo.GetOrCreateByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepo.GetOrCreateBySlug(ctx, projectSlug)
	if err != nil {
		return nil, err
	}

	status := &model.Status{
		UserID:      user.ID,
		ProjectID:   project.ID,
		Content:     content,
		ContentHTML: formatter.Format(content, s.projectContext(project)),
	}
	if err := s.statusRepo.Create(ctx, status); err != nil {
		return nil, err
	}
	status.Username = user.Username
	status.ProjectSlug = project.Slug
	return status, nil
}

// GetByID は ID でステータスを取得する
func (s *StatusServiceImpl) GetByID(ctx context.Context, id string) (*model.Status, error) {
	return s.statusRepo.GetByID(ctx, id)
}

// Delete はステータスを削除する。作成者本人または管理者のみ許可される。
func (s *StatusServiceImpl) Delete(ctx context.Context, id, actingUsername string) error {
	status, err := s.statusRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	actor, err := s.userRepo.GetByUsername(ctx, actingUsername)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}
	if actor.ID != status.UserID && !actor.IsAdmin {
		return ErrForbidden
	}

	return s.statusRepo.Delete(ctx, id)
}
