package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/standup/backend/internal/model"
)

// PgStatusRepository は StatusRepository の PostgreSQL 実装
type PgStatusRepository struct {
	pool *pgxpool.Pool
}

// NewPgStatusRepository は PgStatusRepository を生成する
func NewPgStatusRepository(pool *pgxpool.Pool) *PgStatusRepository {
	return &PgStatusRepository{pool: pool}
}

// Create は新しいステータスを作成する
func (r *PgStatusRepository) Create(ctx context.Context, status *model.Status) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO statuses (user_id, project_id, content, content_html)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		status.UserID, status.ProjectID, status.Content, status.ContentHTML,
	).Scan(&status.ID, &status.CreatedAt)
}

// GetByID は ID でステータスを取得する。
// users, projects と JOIN して username とプロジェクトスラッグも返す。
func (r *PgStatusRepository) GetByID(ctx context.Context, id string) (*model.Status, error) {
	var s model.Status
	err := r.pool.QueryRow(ctx,
		`SELECT s.id, s.user_id, s.project_id, s.content, s.content_html,
		        s.created_at, u.username, p.slug
		 FROM statuses s
		 JOIN users u ON u.id = s.user_id
		 JOIN projects p ON p.id = s.project_id
		 WHERE s.id = $1`,
		id,
	).Scan(&s.ID, &s.UserID, &s.ProjectID, &s.Content, &s.ContentHTML,
		&s.CreatedAt, &s.Username, &s.ProjectSlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete はステータスを削除する
func (r *PgStatusRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM statuses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
