package repo

import (
	"context"
	"encoding/json"

	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/repo/pgdb"
	"github.com/Egor213/PgDash/internal/repo/repotypes"
	"github.com/Egor213/PgDash/pkg/postgres"
)

// Dashboard runs statistics queries against monitored servers.
type Dashboard interface {
	Version(ctx context.Context, sid int) (int, error)
	Activity(ctx context.Context, filter repotypes.StatsFilter) ([]domain.ActivityRow, error)
	Locks(ctx context.Context, filter repotypes.StatsFilter) ([]domain.ActivityRow, error)
	Prepared(ctx context.Context, filter repotypes.StatsFilter) ([]domain.ActivityRow, error)
	Config(ctx context.Context, sid int) ([]domain.ActivityRow, error)
	ReplicationSlots(ctx context.Context, sid int) ([]domain.ActivityRow, error)
	ReplicationStats(ctx context.Context, sid int) ([]domain.ActivityRow, error)
	LogDestinations(ctx context.Context, sid int) (string, error)
	LogFileSize(ctx context.Context, sid int, format domain.LogFormat) (int64, error)
	ReadLog(ctx context.Context, sid int, format domain.LogFormat, window repotypes.LogWindow) (string, error)
	CancelBackend(ctx context.Context, sid, pid int) (bool, error)
	TerminateBackend(ctx context.Context, sid, pid int) (bool, error)
	ExtensionInstalled(ctx context.Context, sid int, name string) (bool, error)
	ChartData(ctx context.Context, filter repotypes.StatsFilter, charts []string) (map[string]json.RawMessage, error)
}

// Preference stores dashboard preferences in the application database.
type Preference interface {
	Get(ctx context.Context, name string) (string, error)
	Set(ctx context.Context, name, value string) error
}

type Repositories struct {
	Dashboard
	Preference
}

func NewRepositories(pg *postgres.Postgres, servers *postgres.Registry) *Repositories {
	return &Repositories{
		Dashboard:  pgdb.NewDashboardRepo(servers),
		Preference: pgdb.NewPreferenceRepo(pg),
	}
}
