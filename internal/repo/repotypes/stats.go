package repotypes

// StatsFilter narrows a statistics query to one server and optionally one database.
// DatabaseID is a database OID; zero means the whole server.
type StatsFilter struct {
	ServerID   int
	DatabaseID int
}

// LogWindow is a byte range of the current server log file.
type LogWindow struct {
	Offset int64
	Length int64
}
