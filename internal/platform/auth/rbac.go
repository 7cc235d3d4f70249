package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/access"
)

// RequireRole returns middleware that checks if the user has one of the
// specified roles. Administrators always pass.
func RequireRole(roles ...access.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := access.Role(RoleFromContext(c.Request().Context()))
			if role == access.RoleAdministrator {
				return next(c)
			}
			for _, required := range roles {
				if role == required {
					return next(c)
				}
			}
			names := make([]string, len(roles))
			for i, r := range roles {
				names[i] = string(r)
			}
			// Denials use the same {error} envelope as every other failure.
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"error": fmt.Sprintf("required role: %s", strings.Join(names, " or ")),
			})
		}
	}
}

// RequireCapability returns middleware that consults the role capability
// table for the authenticated user's role.
func RequireCapability(cap access.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := access.Role(RoleFromContext(c.Request().Context()))
			if !access.Allowed(role, cap) {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error": fmt.Sprintf("role %q lacks capability %s", role, cap),
				})
			}
			return next(c)
		}
	}
}
