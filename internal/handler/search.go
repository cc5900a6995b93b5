package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/repository"
)

// SearchHandler serves the free-text map search endpoint.
type SearchHandler struct {
	Search *repository.SearchRepo
}

// NewSearchHandler constructs a SearchHandler.
func NewSearchHandler(search *repository.SearchRepo) *SearchHandler {
	return &SearchHandler{Search: search}
}

// Query handles GET /api/search?q=. An empty or whitespace-only query
// returns an empty list rather than an error.
func (h *SearchHandler) Query(c echo.Context) error {
	q := c.QueryParam("q")
	if len(repository.SearchTokens(q)) == 0 {
		return c.JSON(http.StatusOK, []repository.SearchResult{})
	}
	results, err := h.Search.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}
	if results == nil {
		results = []repository.SearchResult{}
	}
	return c.JSON(http.StatusOK, results)
}
