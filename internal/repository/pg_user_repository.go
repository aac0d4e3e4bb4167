package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/standup/backend/internal/model"
)

// PgUserRepository は UserRepository の PostgreSQL 実装
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository は PgUserRepository を生成する
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const userColumns = `id, username, name, email, slug, github_handle, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Email, &u.Slug,
		&u.GitHubHandle, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByID は ID でユーザーを取得する
func (r *PgUserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// GetByUsername はユーザー名でユーザーを取得する
func (r *PgUserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// GetOrCreateByUsername はユーザー名でユーザーを取得し、存在しなければ作成する。
// スラッグはユーザー名から生成される。
func (r *PgUserRepository) GetOrCreateByUsername(ctx context.Context, username string) (*model.User, error) {
	return scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO users (username, slug)
		 VALUES ($1, $1)
		 ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		 RETURNING `+userColumns,
		username))
}

// Update は name, email, github_handle, updated_at を更新する
func (r *PgUserRepository) Update(ctx context.Context, user *model.User) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET name = $1, email = $2, github_handle = $3, updated_at = NOW()
		 WHERE id = $4`,
		user.Name, user.Email, user.GitHubHandle, user.ID,
	)
	return err
}
