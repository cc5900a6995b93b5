package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireStatus allows the request through only when the authenticated
// user's status is one of the given values (VISITOR, FACULTY, ADMIN,
// EVENT_COORDINATOR). It reads the "status" context key set by JWTAuth;
// a missing or non-string value is treated as no status and rejected.
func RequireStatus(statuses ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			status, ok := c.Get("status").(string)
			if !ok || !allowed[status] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
