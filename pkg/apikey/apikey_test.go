package apikey

import (
	"net/http/httptest"
	"testing"
)

func TestValidator_Valid(t *testing.T) {
	v := NewValidator("qwertyuiopasdfghjklzxcvbnm1234567890")

	if !v.Valid("qwertyuiopasdfghjklzxcvbnm1234567890") {
		t.Error("expected matching key to be valid")
	}
	if v.Valid("qwertyuiopasdfghjklzxcvbnm1234567890123") {
		t.Error("expected mismatched key to be invalid")
	}
	if v.Valid("") {
		t.Error("expected empty candidate to be invalid")
	}
}

func TestValidator_UnsetKeyRejectsEverything(t *testing.T) {
	v := NewValidator("")
	if v.Valid("") || v.Valid("anything") {
		t.Error("unset key must reject all candidates")
	}
}

func TestFromRequest_BodyFieldWins(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/status/", nil)
	r.Header.Set(HeaderName, "header-key")

	if got := FromRequest(r, "body-key"); got != "body-key" {
		t.Errorf("expected body field to win, got %q", got)
	}
}

func TestFromRequest_HeaderFallback(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/status/", nil)
	r.Header.Set(HeaderName, "header-key")

	if got := FromRequest(r, ""); got != "header-key" {
		t.Errorf("expected header fallback, got %q", got)
	}
}

func TestFromRequest_Missing(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/v1/status/", nil)
	if got := FromRequest(r, ""); got != "" {
		t.Errorf("expected empty key, got %q", got)
	}
}
