package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/platform/auth"
)

// Logger writes one structured line per request. The availability probe
// (HEAD /api/patients) is issued by every client session at startup and is
// excluded to keep the request log meaningful.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method == http.MethodHead && req.URL.Path == "/api/patients" {
				return next(c)
			}
			start := time.Now()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			// Role lands on the request context inside the auth middleware,
			// so it is only readable after the chain has run.
			if role := auth.RoleFromContext(c.Request().Context()); role != "" {
				evt = evt.Str("role", role)
			}
			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Int64("bytes_out", c.Response().Size).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Msg("api request")

			return err
		}
	}
}
