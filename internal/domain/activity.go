package domain

import "math"

// ActivityRow is one row of a statistics query keyed by column name.
type ActivityRow map[string]any

const (
	RowTypeKey     = "row_type"
	RowTypeWarning = "warning"
	RowTypeAlert   = "alert"
)

// ThresholdConfig bounds, in seconds, for flagging long running queries.
// An absent bound is +Inf and never fires.
type ThresholdConfig struct {
	Warning float64
	Alert   float64
}

func NoThreshold() ThresholdConfig {
	return ThresholdConfig{Warning: math.Inf(1), Alert: math.Inf(1)}
}

type ServerActivity struct {
	Activity []ActivityRow `json:"activity"`
	Locks    []ActivityRow `json:"locks"`
	Prepared []ActivityRow `json:"prepared"`
}

// LongRunningAlert is published once per query execution classified as alert.
type LongRunningAlert struct {
	ID          string  `json:"id"`
	ServerID    int     `json:"sid"`
	DatabaseID  int     `json:"did,omitempty"`
	PID         any     `json:"pid"`
	Database    any     `json:"datname,omitempty"`
	User        any     `json:"usename,omitempty"`
	Query       any     `json:"query,omitempty"`
	ActiveSince float64 `json:"active_since"`
	Threshold   float64 `json:"alert_threshold"`
	DetectedAt  string  `json:"detected_at"`
}
