package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/repository"
)

// BuildingHandler serves the public building browse endpoints.
type BuildingHandler struct {
	Buildings *repository.BuildingRepo
}

func NewBuildingHandler(b *repository.BuildingRepo) *BuildingHandler {
	return &BuildingHandler{Buildings: b}
}

// List handles GET /api/buildings.
func (h *BuildingHandler) List(c echo.Context) error {
	items, err := h.Buildings.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch buildings"})
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/buildings/:id.
func (h *BuildingHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid building id"})
	}
	b, err := h.Buildings.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "building not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch building"})
	}
	return c.JSON(http.StatusOK, b)
}
