package httpv1

import (
	"github.com/Egor213/PgDash/internal/metrics"
	"github.com/Egor213/PgDash/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const prefix = "/dashboard"

type routes struct {
	dashboard   service.Dashboard
	preferences service.Preferences
	counters    *metrics.Counters
}

// ConfigureRouter registers the dashboard endpoints on handler. Optional path
// segments are registered as separate routes.
func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters) error {
	renderer, err := newTemplateRenderer()
	if err != nil {
		return err
	}
	handler.Renderer = renderer
	handler.JSONSerializer = jsonSerializer{}
	handler.Pre(middleware.RemoveTrailingSlash())

	r := &routes{
		dashboard:   services.Dashboard,
		preferences: services.Preferences,
		counters:    counters,
	}

	g := handler.Group(prefix)

	g.GET("", r.index)
	g.GET("/:sid", r.index)
	g.GET("/:sid/:did", r.index)

	for _, path := range []string{"", "/:sid", "/:sid/:did"} {
		g.GET("/dashboard_stats"+path, r.dashboardStats)
		g.GET("/activity"+path, r.activity)
		g.GET("/locks"+path, r.locks)
		g.GET("/prepared"+path, r.prepared)
		g.GET("/check_extension/system_statistics"+path, r.checkSystemStatistics)
		g.GET("/system_statistics"+path, r.systemStatistics)
	}

	for _, path := range []string{"", "/:sid"} {
		g.GET("/config"+path, r.config)
		g.GET("/log_formats"+path, r.logFormats)
		g.GET("/replication_stats"+path, r.replicationStats)
		g.GET("/replication_slots"+path, r.replicationSlots)
	}

	g.GET("/logs/:log_format/:disp_format", r.logs)
	g.GET("/logs/:log_format/:disp_format/:sid", r.logs)
	g.GET("/logs/:log_format/:disp_format/:sid/:page", r.logs)

	g.DELETE("/cancel_query/:sid/:pid", r.cancelQuery)
	g.DELETE("/cancel_query/:sid/:did/:pid", r.cancelQuery)
	g.DELETE("/terminate_session/:sid/:pid", r.terminateSession)
	g.DELETE("/terminate_session/:sid/:did/:pid", r.terminateSession)

	g.GET("/preferences/long_running_query_threshold", r.getThreshold)
	g.PUT("/preferences/long_running_query_threshold", r.setThreshold)

	return nil
}
