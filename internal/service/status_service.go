package service

import (
	"context"

	"github.com/standup/backend/internal/model"
)

// StatusService はステータス更新に関するビジネスロジックのインターフェース
type StatusService interface {
	// Create はステータスを作成する。ユーザーとプロジェクトは存在しなければ
	// 作られ、content はフォーマッタを通して content_html にも保存される。
	Create(ctx context.Context, username, projectSlug, content string) (*model.Status, error)
	// GetByID は ID でステータスを取得する
	GetByID(ctx context.Context, id string) (*model.Status, error)
	// Delete はステータスを削除する。作成者本人か管理者のみ許可され、
	// それ以外は ErrForbidden を返す。
	Delete(ctx context.Context, id, actingUsername string) error
}
