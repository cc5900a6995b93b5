package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/repository"
)

// AccessHandler manages per-user building access grants. FACULTY users only
// see availability for buildings they have been granted; these endpoints are
// for administrators to manage those grants.
type AccessHandler struct {
	Users *repository.UserRepo
}

func NewAccessHandler(users *repository.UserRepo) *AccessHandler {
	return &AccessHandler{Users: users}
}

type accessReq struct {
	UserID     uint64 `json:"user_id"`
	BuildingID uint64 `json:"building_id"`
}

// Grant handles POST /api/admin/building-access. Granting an existing pair
// is a no-op and still returns 204.
func (h *AccessHandler) Grant(c echo.Context) error {
	var req accessReq
	if err := c.Bind(&req); err != nil || req.UserID == 0 || req.BuildingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and building_id required"})
	}
	if err := h.Users.GrantBuildingAccess(c.Request().Context(), req.UserID, req.BuildingID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to grant access"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Revoke handles DELETE /api/admin/building-access.
func (h *AccessHandler) Revoke(c echo.Context) error {
	var req accessReq
	if err := c.Bind(&req); err != nil || req.UserID == 0 || req.BuildingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id and building_id required"})
	}
	if err := h.Users.RevokeBuildingAccess(c.Request().Context(), req.UserID, req.BuildingID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to revoke access"})
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /api/admin/building-access/:userId and returns the ids of
// buildings the user can see in faculty availability queries.
func (h *AccessHandler) List(c echo.Context) error {
	userID, ok := pathID(c, "userId")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	ids, err := h.Users.AccessibleBuildings(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list access"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user_id": userID, "building_ids": ids})
}
