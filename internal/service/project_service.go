package service

import (
	"context"

	"github.com/standup/backend/internal/model"
)

// ProjectChanges は API から変更可能なプロジェクトのフィールド。
// nil のフィールドは変更されない。
type ProjectChanges struct {
	Name          *string
	RepoURL       *string
	BugTrackerURL *string
}

// ProjectService はプロジェクトに関するビジネスロジックのインターフェース
type ProjectService interface {
	// GetBySlug はスラッグでプロジェクトを取得する
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	// Upsert はスラッグをキーにプロジェクトを作成・更新する
	Upsert(ctx context.Context, slug string, changes ProjectChanges) (*model.Project, error)
}
