package handler

import (
	"net/http"
	"testing"

	"github.com/okcampus/campus-map-api/internal/config"
	"github.com/okcampus/campus-map-api/internal/repository"
)

func newAuthHandler() *AuthHandler {
	return NewAuthHandler(config.Config{JWTSecret: "s", AccessTTLMin: 5, RefreshTTLDays: 7, BcryptCost: 4},
		repository.NewUserRepo(nil), repository.NewTokenRepo(nil))
}

func TestRegisterValidation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"missing email", `{"password":"secret1","name":"Sam"}`, "valid email required"},
		{"malformed email", `{"email":"not-an-email","password":"secret1","name":"Sam"}`, "valid email required"},
		{"no domain dot", `{"email":"sam@campus","password":"secret1","name":"Sam"}`, "valid email required"},
		{"short password", `{"email":"sam@campus.edu","password":"abc","name":"Sam"}`, "password must be at least 6 characters"},
		{"missing name", `{"email":"sam@campus.edu","password":"secret1"}`, "name required"},
		{"blank name", `{"email":"sam@campus.edu","password":"secret1","name":"   "}`, "name required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONCtx(http.MethodPost, "/api/auth/register", tc.body)
			if err := newAuthHandler().Register(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if got := errorBody(t, rec); got != tc.wantErr {
				t.Errorf("error = %q, want %q", got, tc.wantErr)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"email":"sam@campus.edu"}`,
		`{"password":"secret1"}`,
	} {
		c, rec := newJSONCtx(http.MethodPost, "/api/auth/login", body)
		if err := newAuthHandler().Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestRefreshRequiresToken(t *testing.T) {
	c, rec := newJSONCtx(http.MethodPost, "/api/auth/refresh", `{}`)
	if err := newAuthHandler().Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if got := errorBody(t, rec); got != "refresh_token required" {
		t.Errorf("error = %q", got)
	}
}
