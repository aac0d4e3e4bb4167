package model

import "time"

// Project はステータスの投稿先プロジェクトを表す。
// Slug は作成後に変更されない一意な識別子。
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	RepoURL       *string   `json:"repo_url,omitempty"`
	BugTrackerURL *string   `json:"bug_tracker_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
