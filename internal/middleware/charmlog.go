package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// CharmLog logs each request through charmbracelet/log instead of echo's
// own logger, so socket traffic shows up in the same stream as the rest of
// the process.
func CharmLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Infof("%s %s %d %v",
				c.Request().Method,
				c.Request().URL.Path,
				c.Response().Status,
				time.Since(start))
			return err
		}
	}
}
