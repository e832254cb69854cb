// Package logparse turns a window of a PostgreSQL server log into ordered entries.
//
// Lines that cannot be read are never reported as errors: jsonlog and csvlog lines
// are dropped, stderr lines without a severity marker are folded into the previous
// entry. Callers must not assume one entry per line.
package logparse

import (
	"regexp"
	"strings"

	"github.com/Egor213/PgDash/internal/domain"
	json "github.com/goccy/go-json"
)

const statementMarker = "STATEMENT:"

var markerRe = regexp.MustCompile(`DEBUG:|STATEMENT:|LOG:|WARNING:|NOTICE:|INFO:|ERROR:|FATAL:|PANIC:`)

const (
	csvTimestampCol = 0
	csvSeverityCol  = 11
	csvMessageCol   = 13
	csvMinCols      = csvMessageCol + 1
)

type lineKind int

const (
	lineSkip lineKind = iota
	lineEntry
	lineContinuation
)

// lineResult is the outcome of reading a single physical line.
type lineResult struct {
	kind  lineKind
	entry domain.LogEntry
	text  string
}

type lineParser func(line string) lineResult

// Parse reads lines in the given format and returns the entries in source order.
func Parse(lines []string, format domain.LogFormat) []domain.LogEntry {
	return fold(lines, parserFor(format))
}

// SplitLines splits a raw log blob the way the server writes it.
func SplitLines(raw string) []string {
	return strings.Split(raw, "\n")
}

func parserFor(format domain.LogFormat) lineParser {
	switch format {
	case domain.FormatJSON:
		return parseJSONLine
	case domain.FormatCSV:
		return parseCSVLine
	default:
		return parsePlainLine
	}
}

func fold(lines []string, parse lineParser) []domain.LogEntry {
	entries := make([]domain.LogEntry, 0, len(lines))
	for _, line := range lines {
		res := parse(line)
		switch res.kind {
		case lineEntry:
			entries = append(entries, res.entry)
		case lineContinuation:
			if len(entries) == 0 {
				entries = append(entries, domain.LogEntry{})
			}
			entries[len(entries)-1].Message += res.text
		}
	}
	return entries
}

func parsePlainLine(line string) lineResult {
	loc := markerRe.FindStringIndex(line)
	if loc == nil || line[loc[0]:loc[1]] == statementMarker {
		return lineResult{kind: lineContinuation, text: line}
	}

	marker := line[loc[0]:loc[1]]
	return lineResult{
		kind: lineEntry,
		entry: domain.LogEntry{
			Severity:  strings.TrimSuffix(marker, ":"),
			Timestamp: line[:loc[0]],
			Message:   line[loc[1]:],
		},
	}
}

func parseCSVLine(line string) lineResult {
	cols := strings.Split(line, ",")
	if len(cols) < csvMinCols {
		return lineResult{kind: lineSkip}
	}
	return lineResult{
		kind: lineEntry,
		entry: domain.LogEntry{
			Severity:  cols[csvSeverityCol],
			Timestamp: cols[csvTimestampCol],
			Message:   cols[csvMessageCol],
		},
	}
}

func parseJSONLine(line string) lineResult {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(line), &fields); err != nil || fields == nil {
		return lineResult{kind: lineSkip}
	}

	severity, okSeverity := fields["error_severity"]
	timestamp, okTimestamp := fields["timestamp"]
	message, okMessage := fields["message"]
	if !okSeverity || !okTimestamp || !okMessage {
		return lineResult{kind: lineSkip}
	}

	return lineResult{
		kind: lineEntry,
		entry: domain.LogEntry{
			Severity:  jsonText(severity),
			Timestamp: jsonText(timestamp),
			Message:   jsonText(message),
		},
	}
}

// jsonText returns string values unquoted and any other value as its JSON text.
func jsonText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}
