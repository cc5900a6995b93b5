package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/repository"
)

// FacilityHandler serves the public browse endpoints for washrooms,
// businesses, parking lots and bus stops.
type FacilityHandler struct {
	Washrooms  *repository.WashroomRepo
	Businesses *repository.BusinessRepo
	Parking    *repository.ParkingRepo
	BusStops   *repository.BusStopRepo
}

func NewFacilityHandler(w *repository.WashroomRepo, bs *repository.BusinessRepo, p *repository.ParkingRepo, st *repository.BusStopRepo) *FacilityHandler {
	return &FacilityHandler{Washrooms: w, Businesses: bs, Parking: p, BusStops: st}
}

// buildingFilter reads the optional ?buildingId= query parameter.
// Returns ok=false when the parameter is present but not a valid id.
func buildingFilter(c echo.Context) (*uint64, bool) {
	raw := c.QueryParam("buildingId")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, false
	}
	return &id, true
}

// ListWashrooms handles GET /api/washrooms[?buildingId=].
func (h *FacilityHandler) ListWashrooms(c echo.Context) error {
	buildingID, ok := buildingFilter(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid buildingId"})
	}
	items, err := h.Washrooms.List(c.Request().Context(), buildingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch washrooms"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetWashroom handles GET /api/washrooms/:id.
func (h *FacilityHandler) GetWashroom(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid washroom id"})
	}
	w, err := h.Washrooms.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "washroom not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch washroom"})
	}
	return c.JSON(http.StatusOK, w)
}

// ListBusinesses handles GET /api/businesses[?buildingId=].
func (h *FacilityHandler) ListBusinesses(c echo.Context) error {
	buildingID, ok := buildingFilter(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid buildingId"})
	}
	items, err := h.Businesses.List(c.Request().Context(), buildingID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch businesses"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetBusiness handles GET /api/businesses/:id.
func (h *FacilityHandler) GetBusiness(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid business id"})
	}
	b, err := h.Businesses.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "business not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch business"})
	}
	return c.JSON(http.StatusOK, b)
}

// ListParkingLots handles GET /api/parkinglots.
func (h *FacilityHandler) ListParkingLots(c echo.Context) error {
	items, err := h.Parking.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch parking lots"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetParkingLot handles GET /api/parkinglots/:id.
func (h *FacilityHandler) GetParkingLot(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid parking lot id"})
	}
	p, err := h.Parking.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "parking lot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch parking lot"})
	}
	return c.JSON(http.StatusOK, p)
}

// ListBusStops handles GET /api/busstops.
func (h *FacilityHandler) ListBusStops(c echo.Context) error {
	items, err := h.BusStops.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch bus stops"})
	}
	return c.JSON(http.StatusOK, items)
}

// GetBusStop handles GET /api/busstops/:id.
func (h *FacilityHandler) GetBusStop(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid bus stop id"})
	}
	s, err := h.BusStops.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bus stop not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch bus stop"})
	}
	return c.JSON(http.StatusOK, s)
}
