package logparse

import (
	"strings"

	"github.com/Egor213/PgDash/internal/domain"
)

const (
	FormatCodeCSV  = "C"
	FormatCodeJSON = "J"
)

// ResolveFormat maps a requested format code to a log format the server actually
// writes. enabled is the raw log_destination setting, e.g. "stderr,csvlog".
// Anything unavailable falls back to plain stderr.
func ResolveFormat(code string, enabled string) domain.LogFormat {
	switch {
	case code == FormatCodeCSV && destinationEnabled(enabled, domain.FormatCSV):
		return domain.FormatCSV
	case code == FormatCodeJSON && destinationEnabled(enabled, domain.FormatJSON):
		return domain.FormatJSON
	default:
		return domain.FormatPlain
	}
}

func destinationEnabled(enabled string, format domain.LogFormat) bool {
	for _, d := range strings.Split(enabled, ",") {
		if strings.EqualFold(strings.TrimSpace(d), string(format)) {
			return true
		}
	}
	return false
}

// ParseFormatName accepts the long destination names and the short codes.
func ParseFormatName(name string) (domain.LogFormat, bool) {
	switch strings.ToLower(name) {
	case "plain", "stderr", "p":
		return domain.FormatPlain, true
	case "csv", "csvlog", "c":
		return domain.FormatCSV, true
	case "json", "jsonlog", "j":
		return domain.FormatJSON, true
	}
	return "", false
}
