package handler

import (
	"encoding/json"
	"net/http"

	"github.com/standup/backend/internal/service"
	"github.com/standup/backend/pkg/apikey"
)

// ProjectHandler はプロジェクトの HTTP ハンドラ
type ProjectHandler struct {
	svc  service.ProjectService
	keys *apikey.Validator
}

// NewProjectHandler は ProjectHandler を生成する
func NewProjectHandler(svc service.ProjectService, keys *apikey.Validator) *ProjectHandler {
	return &ProjectHandler{svc: svc, keys: keys}
}

// Upsert は POST /api/v1/project/{slug}/ を処理する。
// スラッグをキーにプロジェクトを作成・更新する。スラッグ自体は不変。
// repo_url / bug_tracker_url を設定すると以後のステータスの
// リンク解決に使われる。
func (h *ProjectHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var req struct {
		APIKey        string  `json:"api_key"`
		Name          *string `json:"name"`
		RepoURL       *string `json:"repo_url"`
		BugTrackerURL *string `json:"bug_tracker_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if !h.keys.Valid(apikey.FromRequest(r, req.APIKey)) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	project, err := h.svc.Upsert(r.Context(), slug, service.ProjectChanges{
		Name:          req.Name,
		RepoURL:       req.RepoURL,
		BugTrackerURL: req.BugTrackerURL,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "upsert_failed")
		return
	}

	writeJSON(w, http.StatusOK, project)
}
