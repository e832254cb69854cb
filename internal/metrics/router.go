package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// Middleware records latency and status of every dashboard request.
func Middleware(subsystem string) echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware(subsystem)
}
