package domain

type DashboardKind string

const (
	DashboardWelcome  DashboardKind = "welcome"
	DashboardServer   DashboardKind = "server"
	DashboardDatabase DashboardKind = "database"
)

type ServerSummary struct {
	ID   int
	Name string
}

type DashboardPage struct {
	Kind       DashboardKind
	Servers    []ServerSummary
	ServerID   int
	DatabaseID int
	ServerName string
	Version    int
	Connected  bool
}

type SystemStatsStatus struct {
	Present bool `json:"ss_present"`
}

type Preference struct {
	Name  string `db:"name"`
	Value string `db:"value"`
}

const PrefLongRunningQueryThreshold = "long_running_query_threshold"
