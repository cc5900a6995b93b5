package middleware

// identity.go holds the request-identity helper shared by the middleware in
// this package. JWTAuth stores the raw `sub` claim under "user_id"; the
// claim's Go type depends on how the token was decoded, so all plausible
// numeric and string forms are handled here.

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// currentUserID returns a stable string identity for the authenticated user,
// or "anon" for guests. Used by the rate limiter to build per-user keys.
func currentUserID(c echo.Context) string {
	v := c.Get("user_id")
	if v == nil {
		return "anon"
	}
	switch t := v.(type) {
	case string:
		if t != "" {
			return t
		}
	case float64:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	}
	return "anon"
}
