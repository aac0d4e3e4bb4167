package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/standup/backend/internal/repository"
	"github.com/standup/backend/internal/service"
	"github.com/standup/backend/pkg/apikey"
)

// StatusHandler はステータス更新の HTTP ハンドラ
type StatusHandler struct {
	svc  service.StatusService
	keys *apikey.Validator
}

// NewStatusHandler は StatusHandler を生成する
func NewStatusHandler(svc service.StatusService, keys *apikey.Validator) *StatusHandler {
	return &StatusHandler{svc: svc, keys: keys}
}

// Create は POST /api/v1/status/ を処理する。
// ユーザーとプロジェクトは存在しなければ作成される。
// API キー検証（403）→ フィールド検証（400）の順で失敗する。
func (h *StatusHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		APIKey  string `json:"api_key"`
		User    string `json:"user" validate:"required"`
		Project string `json:"project" validate:"required"`
		Content string `json:"content" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if !h.keys.Valid(apikey.FromRequest(r, req.APIKey)) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if !requireFields(w, req) {
		return
	}

	status, err := h.svc.Create(r.Context(), req.User, req.Project, req.Content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}

	writeJSON(w, http.StatusOK, status)
}

// Delete は DELETE /api/v1/status/{id}/ を処理する。
// 作成者本人または管理者のみ削除できる。
func (h *StatusHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		APIKey string `json:"api_key"`
		User   string `json:"user" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if !h.keys.Valid(apikey.FromRequest(r, req.APIKey)) {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}
	if !requireFields(w, req) {
		return
	}

	if err := h.svc.Delete(r.Context(), id, req.User); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "forbidden")
		default:
			writeError(w, http.StatusInternalServerError, "delete_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
