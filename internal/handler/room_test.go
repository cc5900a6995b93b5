package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/repository"
)

// newGetCtx builds an Echo context for a GET request with the given query
// string and optional path parameters (name, value pairs).
func newGetCtx(target string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	return c, rec
}

// newJSONCtx builds an Echo context for a JSON POST request.
func newJSONCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var m map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("response is not an error object: %s", rec.Body.String())
	}
	return m["error"]
}

func newRoomHandler() *RoomHandler {
	return NewRoomHandler(repository.NewRoomRepo(nil))
}

func TestFindAvailableRequiresStartAndEnd(t *testing.T) {
	for _, target := range []string{
		"/api/rooms/available",
		"/api/rooms/available?start=2025-03-10T09:00:00Z",
		"/api/rooms/available?end=2025-03-10T10:00:00Z",
	} {
		c, rec := newGetCtx(target)
		if err := newRoomHandler().FindAvailable(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		if got := errorBody(t, rec); got != "start and end are required query params (ISO 8601)" {
			t.Errorf("%s: error = %q", target, got)
		}
	}
}

func TestFindAvailableRejectsBadRange(t *testing.T) {
	cases := []string{
		"/api/rooms/available?start=garbage&end=2025-03-10T10:00:00Z",
		"/api/rooms/available?start=2025-03-10T10:00:00Z&end=2025-03-10T09:00:00Z",
		"/api/rooms/available?start=2025-03-10T09:00:00Z&end=2025-03-10T09:00:00Z",
	}
	for _, target := range cases {
		c, rec := newGetCtx(target)
		if err := newRoomHandler().FindAvailable(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
		if got := errorBody(t, rec); got != "invalid time range" {
			t.Errorf("%s: error = %q", target, got)
		}
	}
}

func TestFindAvailableRejectsBadFilters(t *testing.T) {
	base := "/api/rooms/available?start=2025-03-10T09:00:00Z&end=2025-03-10T10:00:00Z"
	cases := []struct {
		name    string
		target  string
		wantErr string
	}{
		{"bad building id", base + "&building_id=abc", "invalid building_id"},
		{"zero building id", base + "&building_id=0", "invalid building_id"},
		{"bad min capacity", base + "&min_capacity=lots", "invalid min_capacity"},
		{"faculty without user", base + "&isFaculty=true", "userId is required when isFaculty is set"},
		{"faculty with bad user", base + "&isFaculty=true&userId=abc", "userId is required when isFaculty is set"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newGetCtx(tc.target)
			if err := newRoomHandler().FindAvailable(c); err != nil {
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

func TestCheckAvailabilityValidation(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		id      string
		wantErr string
	}{
		{"bad id", "/api/rooms/x/availability?start=2025-03-10T09:00:00Z&end=2025-03-10T10:00:00Z", "x", "invalid room id"},
		{"missing range", "/api/rooms/1/availability", "1", "start and end are required query params (ISO 8601)"},
		{"inverted range", "/api/rooms/1/availability?start=2025-03-10T10:00:00Z&end=2025-03-10T09:00:00Z", "1", "invalid time range"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newGetCtx(tc.target, "id", tc.id)
			if err := newRoomHandler().CheckAvailability(c); err != nil {
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
