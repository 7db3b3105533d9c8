package ipc

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/varkala/fbslide"
)

// GET /status
func statusHandler(ctrl Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:       "ok",
			Message:      "fbslide is running",
			Version:      strings.Trim(fbslide.Version, "\n\r "),
			PID:          os.Getpid(),
			Socket:       SocketPath(),
			Config:       viper.ConfigFileUsed(),
			CurrentImage: ctrl.CurrentSource(),
		}, "  ")
	}
}

// POST /next
func nextHandler(ctrl Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl.RequestNext()
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// POST /stop
func stopHandler(ctrl Controller) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctrl.RequestStop()
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}
