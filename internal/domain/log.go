package domain

// LogFormat is the server log destination a log window is parsed as.
type LogFormat string

const (
	FormatPlain LogFormat = "stderr"
	FormatCSV   LogFormat = "csvlog"
	FormatJSON  LogFormat = "jsonlog"
)

// Disposition selects how a log window is returned to the client.
type Disposition string

const (
	DispositionTable Disposition = "table"
	DispositionPlain Disposition = "plain"
)

type LogEntry struct {
	Severity  string `json:"error_severity"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

type LogRequest struct {
	ServerID    int
	FormatCode  string
	Disposition Disposition
	Page        int
}

// LogPage is one window of the current server log.
type LogPage struct {
	Disabled bool
	Format   LogFormat
	Raw      string
	Plain    bool
	Entries  []LogEntry
}
