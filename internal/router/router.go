package router

import (
	"github.com/labstack/echo/v4"

	"github.com/okcampus/campus-map-api/internal/handler"
	"github.com/okcampus/campus-map-api/internal/middleware"
)

// PublicHandlers bundles the handlers for the unauthenticated browse and
// search surface so RegisterPublic stays a single call.
type PublicHandlers struct {
	Buildings  *handler.BuildingHandler
	Rooms      *handler.RoomHandler
	Facilities *handler.FacilityHandler
	Search     *handler.SearchHandler
	Feed       *handler.CampusFeedHandler
}

// RegisterRoutes registers routes that do not require authentication and
// carry no caching. Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the unauthenticated browse, availability and
// search endpoints. The provided middleware (typically the Redis response
// cache and the token-bucket rate limiter) wraps every route in the group.
func RegisterPublic(e *echo.Echo, p PublicHandlers, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api", mw...)

	g.GET("/buildings", p.Buildings.List)
	g.GET("/buildings/:id", p.Buildings.Get)

	g.GET("/rooms", p.Rooms.List)
	// /rooms/available before /rooms/:id so Echo does not treat "available"
	// as a numeric id.
	g.GET("/rooms/available", p.Rooms.FindAvailable)
	g.GET("/rooms/:id/availability", p.Rooms.CheckAvailability)
	g.GET("/rooms/:id", p.Rooms.Get)

	g.GET("/washrooms", p.Facilities.ListWashrooms)
	g.GET("/washrooms/:id", p.Facilities.GetWashroom)
	g.GET("/businesses", p.Facilities.ListBusinesses)
	g.GET("/businesses/:id", p.Facilities.GetBusiness)
	g.GET("/parkinglots", p.Facilities.ListParkingLots)
	g.GET("/parkinglots/:id", p.Facilities.GetParkingLot)
	g.GET("/busstops", p.Facilities.ListBusStops)
	g.GET("/busstops/:id", p.Facilities.GetBusStop)

	g.GET("/search", p.Search.Query)
	g.GET("/campus-events", p.Feed.List)
}

// RegisterEvents registers the event endpoints. Reads are public but
// deliberately skip the response cache: a just-created event must show
// up on the next list or get, so event reads take only the rate limiter
// while the slower-moving browse surface stays cached. Create and edit
// require an authenticated user with a status allowed to manage events.
func RegisterEvents(e *echo.Echo, ev *handler.EventHandler, jwtSecret string, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/events", mw...)
	g.GET("", ev.List)
	g.GET("/building/:buildingId", ev.ListByBuilding)
	g.GET("/:id", ev.Get)

	w := e.Group("/api/events")
	w.Use(middleware.JWTAuth(jwtSecret))
	w.Use(middleware.RequireStatus("ADMIN", "EVENT_COORDINATOR", "FACULTY"))
	w.POST("", ev.Create)
	w.POST("/edit", ev.Edit)
}

// RegisterAuth registers authentication routes. Register, login, refresh and
// logout need no session; /api/me runs behind the JWT middleware.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/api/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/api")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	// Logout without a refresh_token body revokes all of the caller's
	// sessions, which requires knowing who the caller is.
	auth.POST("/logout", a.Logout)
}

// RegisterAdmin registers building-access management, restricted to ADMIN.
func RegisterAdmin(e *echo.Echo, ah *handler.AccessHandler, jwtSecret string) {
	g := e.Group("/api/admin")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireStatus("ADMIN"))
	g.POST("/building-access", ah.Grant)
	g.DELETE("/building-access", ah.Revoke)
	g.GET("/building-access/:userId", ah.List)
}
