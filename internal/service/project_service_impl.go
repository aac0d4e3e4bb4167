package service

import (
	"context"
	"errors"

	"github.com/standup/backend/internal/model"
	"github.com/standup/backend/internal/repository"
)

// ProjectServiceImpl は ProjectService の実装
type ProjectServiceImpl struct {
	repo repository.ProjectRepository
}

// NewProjectService は ProjectServiceImpl を生成する
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{repo: repo}
}

// GetBySlug はスラッグでプロジェクトを取得する
func (s *ProjectServiceImpl) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Upsert はスラッグをキーにプロジェクトを作成・更新する。
// 未指定のフィールドは既存の値を保つ（新規作成時は名前=スラッグ）。
func (s *ProjectServiceImpl) Upsert(ctx context.Context, slug string, changes ProjectChanges) (*model.Project, error) {
	project, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		project = &model.Project{Name: slug, Slug: slug}
	}

	if changes.Name != nil {
		project.Name = *changes.Name
	}
	if changes.RepoURL != nil {
		project.RepoURL = changes.RepoURL
	}
	if changes.BugTrackerURL != nil {
		project.BugTrackerURL = changes.BugTrackerURL
	}

	if err := s.repo.Upsert(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}
