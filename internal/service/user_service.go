package service

import (
	"context"

	"github.com/standup/backend/internal/model"
)

// UserChanges は設定編集で変更可能なフィールド。nil のフィールドは変更されない。
type UserChanges struct {
	Name         *string
	Email        *string
	GitHubHandle *string
}

// UserService はユーザー設定に関するビジネスロジックのインターフェース
type UserService interface {
	// GetByID は ID でユーザーを取得する
	GetByID(ctx context.Context, id string) (*model.User, error)
	// Update は対象ユーザーの設定を更新する。本人か管理者のみ許可され、
	// それ以外は ErrForbidden を返す。
	Update(ctx context.Context, targetID, actingUsername string, changes UserChanges) (*model.User, error)
}
