package repository

import (
	"context"

	"github.com/standup/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository はユーザー永続化のインターフェース
type UserRepository interface {
	// GetByID は ID でユーザーを取得する
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByUsername はユーザー名でユーザーを取得する
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetOrCreateByUsername はユーザー名でユーザーを取得し、
	// 存在しなければ作成して返す
	GetOrCreateByUsername(ctx context.Context, username string) (*model.User, error)
	// Update は name, email, github_handle, updated_at を更新する
	Update(ctx context.Context, user *model.User) error
}
