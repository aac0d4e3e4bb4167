package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/standup/backend/internal/repository"
	"github.com/standup/backend/internal/service"
	"github.com/standup/backend/pkg/apikey"
)

// UserHandler はユーザー設定の HTTP ハンドラ
type UserHandler struct {
	svc  service.UserService
	keys *apikey.Validator
}

// NewUserHandler は UserHandler を生成する
func NewUserHandler(svc service.UserService, keys *apikey.Validator) *UserHandler {
	return &UserHandler{svc: svc, keys: keys}
}

// Update は POST /api/v1/user/{id}/ を処理する。
// user は操作主体のユーザー名で、本人または管理者のみ編集できる。
// 省略されたフィールドは変更されない。
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req struct {
		APIKey       string  `json:"api_key"`
		User         string  `json:"user" validate:"required"`
		Email        *string `json:"email"`
		GitHubHandle *string `json:"github_handle"`
		Name         *string `json:"name"`
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

	user, err := h.svc.Update(r.Context(), id, req.User, service.UserChanges{
		Name:         req.Name,
		Email:        req.Email,
		GitHubHandle: req.GitHubHandle,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found")
		case errors.Is(err, service.ErrForbidden):
			writeError(w, http.StatusForbidden, "forbidden")
		default:
			writeError(w, http.StatusInternalServerError, "update_failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}
