package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/utils"
)

const testSecret = "test-secret"

func newAuthedRequest(t *testing.T, status string) *http.Request {
	t.Helper()
	at, err := utils.NewAccessToken(testSecret, 42, status, 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	return req
}

func runMiddleware(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	reached := false
	h := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	_ = h(c)
	return rec, reached
}

func TestJWTAuthMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, reached := runMiddleware(JWTAuth(testSecret), req)
	if reached {
		t.Error("handler reached without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthMalformedToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	rec, reached := runMiddleware(JWTAuth(testSecret), req)
	if reached {
		t.Error("handler reached with a malformed token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 42, "ADMIN", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+at.Token)
	rec, reached := runMiddleware(JWTAuth(testSecret), req)
	if reached {
		t.Error("handler reached with a token signed by the wrong secret")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthSetsClaims(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newAuthedRequest(t, "FACULTY"), rec)

	var gotUserID, gotStatus interface{}
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		gotUserID = c.Get("user_id")
		gotStatus = c.Get("status")
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// MapClaims decodes numeric claims as float64.
	if f, ok := gotUserID.(float64); !ok || uint64(f) != 42 {
		t.Errorf("user_id = %v (%T), want 42", gotUserID, gotUserID)
	}
	if gotStatus != "FACULTY" {
		t.Errorf("status = %v, want FACULTY", gotStatus)
	}
}

func TestRequireStatus(t *testing.T) {
	cases := []struct {
		name    string
		status  interface{}
		allowed []string
		wantOK  bool
	}{
		{"allowed status", "ADMIN", []string{"ADMIN", "EVENT_COORDINATOR"}, true},
		{"second allowed status", "EVENT_COORDINATOR", []string{"ADMIN", "EVENT_COORDINATOR"}, true},
		{"disallowed status", "VISITOR", []string{"ADMIN"}, false},
		{"missing status", nil, []string{"ADMIN"}, false},
		{"non-string status", 42, []string{"ADMIN"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tc.status != nil {
				c.Set("status", tc.status)
			}
			reached := false
			h := RequireStatus(tc.allowed...)(func(c echo.Context) error {
				reached = true
				return c.NoContent(http.StatusOK)
			})
			_ = h(c)
			if reached != tc.wantOK {
				t.Errorf("handler reached = %v, want %v", reached, tc.wantOK)
			}
			if !tc.wantOK && rec.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", rec.Code)
			}
		})
	}
}

func TestCurrentUserID(t *testing.T) {
	cases := []struct {
		name string
		val  interface{}
		want string
	}{
		{"unset", nil, "anon"},
		{"float64 claim", float64(42), "42"},
		{"string claim", "7", "7"},
		{"empty string", "", "anon"},
		{"uint64", uint64(9), "9"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			if tc.val != nil {
				c.Set("user_id", tc.val)
			}
			if got := currentUserID(c); got != tc.want {
				t.Errorf("currentUserID = %q, want %q", got, tc.want)
			}
		})
	}
}
