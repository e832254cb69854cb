package validators

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Egor213/PgDash/internal/domain"
)

const (
	LogFormatCodeCSV  = "C"
	LogFormatCodeJSON = "J"
	LogFormatCodeText = "T"
)

var (
	ErrInvalidID        = errors.New("identifier must be a non-negative integer")
	ErrInvalidPage      = errors.New("page must be a non-negative integer")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidDisplay   = errors.New("invalid display format")
	ErrEmptyThreshold   = errors.New("threshold value must be specified")
	ErrInvalidBody      = errors.New("request body is malformed")
)

// ParseID reads an optional path identifier. A missing segment is 0.
func ParseID(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, ErrInvalidPage
	}
	return page, nil
}

func ValidateLogFormat(code string) error {
	switch code {
	case LogFormatCodeCSV, LogFormatCodeJSON, LogFormatCodeText:
		return nil
	default:
		return ErrInvalidLogFormat
	}
}

// ParseDisposition maps the display segment of a logs URL. Anything other
// than plain is rendered as a table.
func ParseDisposition(raw string) (domain.Disposition, error) {
	if raw == "" {
		return "", ErrInvalidDisplay
	}
	if domain.Disposition(raw) == domain.DispositionPlain {
		return domain.DispositionPlain, nil
	}
	return domain.DispositionTable, nil
}

// ParseChartNames splits the chart_names query argument. An empty argument
// selects no charts.
func ParseChartNames(raw string) []string {
	if raw == "" {
		return nil
	}
	names := strings.Split(raw, ",")
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
