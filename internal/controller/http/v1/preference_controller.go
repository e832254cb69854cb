package httpv1

import (
	"fmt"

	"github.com/Egor213/PgDash/internal/controller/http/validators"
	"github.com/labstack/echo/v4"
)

type thresholdBody struct {
	Value string `json:"value"`
}

func (r *routes) getThreshold(c echo.Context) error {
	const endpoint = "get_threshold"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	value, err := r.preferences.Threshold(c.Request().Context())
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}
	return r.respond(c, endpoint, 0, 0, thresholdBody{Value: value})
}

func (r *routes) setThreshold(c echo.Context) error {
	const endpoint = "set_threshold"
	r.counters.HTTPRequests.Inc(endpoint, "received")

	var body thresholdBody
	if err := c.Bind(&body); err != nil {
		return r.handleError(c, endpoint, 0, 0, fmt.Errorf("%w: %w", validators.ErrInvalidBody, err))
	}
	if body.Value == "" {
		return r.handleError(c, endpoint, 0, 0, validators.ErrEmptyThreshold)
	}

	value, err := r.preferences.SetThreshold(c.Request().Context(), body.Value)
	if err != nil {
		return r.handleError(c, endpoint, 0, 0, err)
	}
	return r.respond(c, endpoint, 0, 0, thresholdBody{Value: value})
}
