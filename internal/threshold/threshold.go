package threshold

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Egor213/PgDash/internal/domain"
	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	DefaultThreshold = "2|5"

	stateActive    = "active"
	colState       = "state"
	colActiveSince = "active_since"
	separator      = "|"
)

var ErrInvalidThreshold = errors.New("invalid long running query threshold")

// Parse reads a "warning|alert" pair of seconds. An empty side is +Inf.
func Parse(raw string) (domain.ThresholdConfig, error) {
	parts := strings.Split(raw, separator)
	if len(parts) != 2 {
		return domain.ThresholdConfig{}, fmt.Errorf("%w: %q", ErrInvalidThreshold, raw)
	}

	warning, err := parseBound(parts[0])
	if err != nil {
		return domain.ThresholdConfig{}, err
	}
	alert, err := parseBound(parts[1])
	if err != nil {
		return domain.ThresholdConfig{}, err
	}

	return domain.ThresholdConfig{Warning: warning, Alert: alert}, nil
}

func parseBound(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.Inf(1), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidThreshold, s)
	}
	return v, nil
}

// Format renders cfg back into the "warning|alert" form.
func Format(cfg domain.ThresholdConfig) string {
	return formatBound(cfg.Warning) + separator + formatBound(cfg.Alert)
}

func formatBound(v float64) string {
	if math.IsInf(v, 1) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Classify sets row_type on every row in place. Only active sessions with a
// numeric active_since are flagged; every other row gets a nil row_type.
func Classify(rows []domain.ActivityRow, cfg domain.ThresholdConfig) {
	for _, row := range rows {
		row[domain.RowTypeKey] = nil

		elapsed, ok := ActiveSince(row)
		if !ok {
			continue
		}
		if elapsed > cfg.Warning {
			row[domain.RowTypeKey] = domain.RowTypeWarning
		}
		if elapsed > cfg.Alert {
			row[domain.RowTypeKey] = domain.RowTypeAlert
		}
	}
}

// ActiveSince returns the elapsed seconds of an active session row.
func ActiveSince(row domain.ActivityRow) (float64, bool) {
	state, _ := row[colState].(string)
	if state != stateActive {
		return 0, false
	}
	v, present := row[colActiveSince]
	if !present || v == nil {
		return 0, false
	}
	return toSeconds(v)
}

func toSeconds(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	case pgtype.Numeric:
		f, err := n.Float64Value()
		if err != nil || !f.Valid {
			return 0, false
		}
		return f.Float64, true
	}
	return 0, false
}
