package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/standup/backend/internal/model"
)

// PgProjectRepository は ProjectRepository の PostgreSQL 実装
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository は PgProjectRepository を生成する
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

const projectColumns = `id, name, slug, repo_url, bug_tracker_url, created_at, updated_at`

func scanProject(row pgx.Row) (*model.Project, error) {
	var p model.Project
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.RepoURL, &p.BugTrackerURL,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetBySlug はスラッグでプロジェクトを取得する
func (r *PgProjectRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE slug = $1`, slug))
}

// GetOrCreateBySlug はスラッグでプロジェクトを取得し、
// 存在しなければ名前=スラッグで作成する
func (r *PgProjectRepository) GetOrCreateBySlug(ctx context.Context, slug string) (*model.Project, error) {
	return scanProject(r.pool.QueryRow(ctx,
		`INSERT INTO projects (name, slug)
		 VALUES ($1, $1)
		 ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		 RETURNING `+projectColumns,
		slug))
}

// Upsert はスラッグをキーに name, repo_url, bug_tracker_url を保存する。
// スラッグ自体は不変で、作成後に変更されることはない。
func (r *PgProjectRepository) Upsert(ctx context.Context, project *model.Project) error {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO projects (name, slug, repo_url, bug_tracker_url)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (slug) DO UPDATE
		 SET name = EXCLUDED.name,
		     repo_url = EXCLUDED.repo_url,
		     bug_tracker_url = EXCLUDED.bug_tracker_url,
		     updated_at = NOW()
		 RETURNING `+projectColumns,
		project.Name, project.Slug, project.RepoURL, project.BugTrackerURL)
	saved, err := scanProject(row)
	if err != nil {
		return err
	}
	*project = *saved
	return nil
}
