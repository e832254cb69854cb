package httpv1

import (
	"context"

	"github.com/Egor213/PgDash/internal/controller/http/validators"
	"github.com/labstack/echo/v4"
)

const (
	resultSuccess = "Success"
	resultFailed  = "Failed"
)

func (r *routes) cancelQuery(c echo.Context) error {
	return r.signalBackend(c, "cancel_query", r.dashboard.CancelQuery)
}

func (r *routes) terminateSession(c echo.Context) error {
	return r.signalBackend(c, "terminate_session", r.dashboard.TerminateSession)
}

func (r *routes) signalBackend(c echo.Context, endpoint string, signal func(ctx context.Context, sid, pid int) (bool, error)) error {
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, did, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}
	pid, err := validators.ParseID(c.Param("pid"))
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}

	done, err := signal(c.Request().Context(), sid, pid)
	if err != nil {
		return r.handleError(c, endpoint, sid, did, err)
	}

	result := resultFailed
	if done {
		result = resultSuccess
	}
	return r.respond(c, endpoint, sid, did, result)
}
