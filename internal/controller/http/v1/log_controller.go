package httpv1

import (
	"github.com/Egor213/PgDash/internal/controller/http/validators"
	"github.com/Egor213/PgDash/internal/domain"
	"github.com/labstack/echo/v4"
)

type logsDisabled struct {
	LogsDisabled bool `json:"logs_disabled"`
}

type rawLog struct {
	Text string `json:"pg_read_file"`
}

func (r *routes) logFormats(c echo.Context) error {
	const endpoint = "log_formats"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	sid, _, err := serverIDs(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	formats, err := r.dashboard.LogFormats(c.Request().Context(), sid)
	if err != nil {
		return r.handleError(c, endpoint, sid, 0, err)
	}
	return r.respond(c, endpoint, sid, 0, formats)
}

func (r *routes) logs(c echo.Context) error {
	const endpoint = "logs"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	req, err := logRequest(c)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}

	page, err := r.dashboard.Logs(c.Request().Context(), req)
	if err != nil {
		return r.handleError(c, endpoint, req.ServerID, 0, err)
	}

	switch {
	case page.Disabled:
		return r.respond(c, endpoint, req.ServerID, 0, logsDisabled{LogsDisabled: true})
	case page.Plain:
		rows := []rawLog{}
		if page.Raw != "" {
			rows = append(rows, rawLog{Text: page.Raw})
		}
		return r.respond(c, endpoint, req.ServerID, 0, rows)
	default:
		return r.respond(c, endpoint, req.ServerID, 0, page.Entries)
	}
}

func logRequest(c echo.Context) (domain.LogRequest, error) {
	format := c.Param("log_format")
	if err := validators.ValidateLogFormat(format); err != nil {
		return domain.LogRequest{}, err
	}
	disposition, err := validators.ParseDisposition(c.Param("disp_format"))
	if err != nil {
		return domain.LogRequest{}, err
	}
	sid, err := validators.ParseID(c.Param("sid"))
	if err != nil {
		return domain.LogRequest{}, err
	}
	page, err := validators.ParsePage(c.Param("page"))
	if err != nil {
		return domain.LogRequest{}, err
	}

	return domain.LogRequest{
		ServerID:    sid,
		FormatCode:  format,
		Disposition: disposition,
		Page:        page,
	}, nil
}
