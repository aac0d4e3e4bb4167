package model

import "time"

// Status はユーザーがプロジェクトに投稿したステータス更新を表す。
// ContentHTML は Content と所属プロジェクトのメタデータから再計算可能な
// キャッシュであり、Content が変わるたびに作り直される。
type Status struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProjectID string    `json:"project_id"`
	Content   string    `json:"content"`
	// ContentHTML はフォーマッタの出力（そのまま埋め込み可能な HTML）
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`

	// Transient: not stored on the statuses table, set by JOIN queries
	Username    string `json:"username,omitempty"`
	ProjectSlug string `json:"project,omitempty"`
}
