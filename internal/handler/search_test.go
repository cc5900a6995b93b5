package handler

import (
	"net/http"
	"strings"
	"testing"
)

func TestSearchEmptyQueryReturnsEmptyList(t *testing.T) {
	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		c, rec := newGetCtx(target)
		h := NewSearchHandler(nil) // empty queries never reach the repository
		if err := h.Query(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", target, rec.Code)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
			t.Errorf("%s: body = %q, want []", target, body)
		}
	}
}
