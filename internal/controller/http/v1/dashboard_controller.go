package httpv1

import (
	"net/http"

	"github.com/Egor213/PgDash/internal/controller/http/validators"
	"github.com/Egor213/PgDash/internal/domain"
	"github.com/labstack/echo/v4"
)

// serverIDs reads the optional sid and did path segments.
func serverIDs(c echo.Context) (sid, did int, err error) {
	if sid, err = validators.ParseID(c.Param("sid")); err != nil {
		return 0, 0, err
	}
	if did, err = validators.ParseID(c.Param("did")); err != nil {
		return 0, 0, err
	}
	return sid, did, nil
}

func (r *routes) index(c echo.Context) error {
	const endpoint = "index"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, did, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	page, err := r.dashboard.Page(c.Request().Context(), sid, did)
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}

	r.counters.HTTPRequests.Inc(endpoint, "ok")
	if page.Kind == domain.DashboardWelcome {
		return c.Render(http.StatusOK, welcomeTemplate, page)
	}
	return c.Render(http.StatusOK, dashboardTemplate, page)
}

func (r *routes) dashboardStats(c echo.Context) error {
	return r.chartData(c, "dashboard_stats", false)
}

func (r *routes) systemStatistics(c echo.Context) error {
	return r.chartData(c, "system_statistics", true)
}

func (r *routes) chartData(c echo.Context, endpoint string, system bool) error {
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, did, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}
	charts := validators.ParseChartNames(c.QueryParam("chart_names"))

	ctx := c.Request().Context()
	fetch := r.dashboard.DashboardStats
	if system {
		fetch = r.dashboard.SystemStatistics
	}
	data, err := fetch(ctx, sid, did, charts)
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}
	return r.respond(c, endpoint, sid, did, data)
}

func (r *routes) activity(c echo.Context) error {
	const endpoint = "activity"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, did, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	data, err := r.dashboard.Activity(c.Request().Context(), sid, did)
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}
	return r.respond(c, endpoint, sid, did, []domain.ServerActivity{data})
}

func (r *routes) locks(c echo.Context) error {
	const endpoint = "locks"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, did, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	rows, err := r.dashboard.Locks(c.Request().Context(), sid, did)
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}
	return r.respond(c, endpoint, sid, did, rows)
}

func (r *routes) prepared(c echo.Context) error {
	const endpoint = "prepared"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, did, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	rows, err := r.dashboard.Prepared(c.Request().Context(), sid, did)
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}
	return r.respond(c, endpoint, sid, did, rows)
}

func (r *routes) config(c echo.Context) error {
	const endpoint = "config"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, _, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	rows, err := r.dashboard.Config(c.Request().Context(), sid)
	if err != nil {
		return r.handleError(c, endpoint, sid, 0, err)
	}
	return r.respond(c, endpoint, sid, 0, rows)
}

func (r *routes) checkSystemStatistics(c echo.Context) error {
	const endpoint = "check_system_statistics"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, did, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	status, err := r.dashboard.SystemStatsPresent(c.Request().Context(), sid)
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}
	return r.respond(c, endpoint, sid, did, status)
}

func (r *routes) replicationStats(c echo.Context) error {
	const endpoint = "replication_stats"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, _, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	rows, err := r.dashboard.ReplicationStats(c.Request().Context(), sid)
	if err != nil {
		return r.handleError(c, endpoint, sid, 0, err)
	}
	return r.respond(c, endpoint, sid, 0, rows)
}

func (r *routes) replicationSlots(c echo.Context) error {
	const endpoint = "replication_slots"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, _, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	rows, err := r.dashboard.ReplicationSlots(c.Request().Context(), sid)
	if err != nil {
		return r.handleError(c, endpoint, sid, 0, err)
	}
	return r.respond(c, endpoint, sid, 0, rows)
}
