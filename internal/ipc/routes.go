package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, ctrl Controller) {
	e.GET("/status", statusHandler(ctrl))
	e.POST("/next", nextHandler(ctrl))
	e.POST("/stop", stopHandler(ctrl))
}
