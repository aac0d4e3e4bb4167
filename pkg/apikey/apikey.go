// Package apikey implements the shared API key check used by the write
// endpoints. There are no per-user credentials or sessions: every client
// presents the same process-wide key.
package apikey

import (
	"crypto/subtle"
	"net/http"
)

// HeaderName はリクエストボディに api_key が無い場合に参照するヘッダー
const HeaderName = "X-Api-Key"

// Validator は設定された API キーとの一致を検証する
type Validator struct {
	key []byte
}

// NewValidator は Validator を生成する
func NewValidator(key string) *Validator {
	return &Validator{key: []byte(key)}
}

// Valid は candidate が設定済みキーと一致するか検証する。
// キー未設定・candidate 空の場合は常に false（タイミング攻撃対策として
// 比較は定数時間で行う）。
func (v *Validator) Valid(candidate string) bool {
	if len(v.key) == 0 || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare(v.key, []byte(candidate)) == 1
}

// FromRequest はリクエストから API キーを取り出す。
// JSON ボディのフィールド値（bodyKey）を優先し、空なら X-Api-Key ヘッダー。
func FromRequest(r *http.Request, bodyKey string) string {
	if bodyKey != "" {
		return bodyKey
	}
	return r.Header.Get(HeaderName)
}
