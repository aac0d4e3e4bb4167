package repository

import (
	"context"

	"github.com/standup/backend/internal/model"
)

// StatusRepository はステータス永続化のインターフェース
type StatusRepository interface {
	// Create は新しいステータスを作成する
	Create(ctx context.Context, status *model.Status) error
	// GetByID は ID でステータスを取得する（username, project スラッグ込み）
	GetByID(ctx context.Context, id string) (*model.Status, error)
	// Delete はステータスを削除する
	Delete(ctx context.Context, id string) error
}
