package httpv1

import (
	"errors"
	"net/http"

	logginghelper "github.com/Egor213/PgDash/internal/controller/common/logging"
	"github.com/Egor213/PgDash/internal/controller/http/validators"
	"github.com/Egor213/PgDash/internal/service"
	"github.com/labstack/echo/v4"
)

const connectionLostMsg = "Connection to the server has been lost."

// response is the envelope every dashboard endpoint answers with.
type response struct {
	Success  int    `json:"success"`
	ErrorMsg string `json:"errormsg"`
	Info     string `json:"info"`
	Result   any    `json:"result"`
	Data     any    `json:"data"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, response{Success: 1, Data: data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, response{Success: 0, ErrorMsg: msg})
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, validators.ErrInvalidBody):
		// the bind error carries decoder internals, log it but do not echo it
		return http.StatusBadRequest, validators.ErrInvalidBody.Error()
	case errors.Is(err, validators.ErrInvalidID),
		errors.Is(err, validators.ErrInvalidPage),
		errors.Is(err, validators.ErrInvalidLogFormat),
		errors.Is(err, validators.ErrInvalidDisplay),
		errors.Is(err, validators.ErrEmptyThreshold),
		errors.Is(err, service.ErrInvalidThreshold),
		errors.Is(err, service.ErrUnknownChart):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrServerNotFound):
		return http.StatusPreconditionRequired, connectionLostMsg
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

// handleError logs, counts and writes err. sid and did are only used for logging.
func (r *routes) handleError(c echo.Context, endpoint string, sid, did int, err error) error {
	status, msg := statusFor(err)
	if status == http.StatusBadRequest {
		logginghelper.LogBadRequest(endpoint, err)
	} else {
		logginghelper.LogRequestFailed(endpoint, sid, did, err)
	}
	r.counters.HTTPRequests.Inc(endpoint, "failed")
	return fail(c, status, msg)
}

func (r *routes) respond(c echo.Context, endpoint string, sid, did int, data any) error {
	logginghelper.LogServed(endpoint, sid, did)
	r.counters.HTTPRequests.Inc(endpoint, "ok")
	return ok(c, data)
}
