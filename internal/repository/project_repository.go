package repository

import (
	"context"

	"github.com/standup/backend/internal/model"
)

// ProjectRepository はプロジェクト永続化のインターフェース
type ProjectRepository interface {
	// GetBySlug はスラッグでプロジェクトを取得する
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	// GetOrCreateBySlug はスラッグでプロジェクトを取得し、
	// 存在しなければ名前=スラッグで作成して返す
	GetOrCreateBySlug(ctx context.Context, slug string) (*model.Project, error)
	// Upsert はスラッグをキーに name, repo_url, bug_tracker_url を保存する
	Upsert(ctx context.Context, project *model.Project) error
}
