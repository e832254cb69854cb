package service

import (
	"context"
	"encoding/json"

	"github.com/Egor213/PgDash/internal/broker"
	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/metrics"
	"github.com/Egor213/PgDash/internal/repo"
	"github.com/Egor213/PgDash/pkg/postgres"
)

type Dashboard interface {
	Page(ctx context.Context, sid, did int) (domain.DashboardPage, error)
	Activity(ctx context.Context, sid, did int) (domain.ServerActivity, error)
	Locks(ctx context.Context, sid, did int) ([]domain.ActivityRow, error)
	Prepared(ctx context.Context, sid, did int) ([]domain.ActivityRow, error)
	Config(ctx context.Context, sid int) ([]domain.ActivityRow, error)
	ReplicationSlots(ctx context.Context, sid int) ([]domain.ActivityRow, error)
	ReplicationStats(ctx context.Context, sid int) ([]domain.ActivityRow, error)
	LogFormats(ctx context.Context, sid int) (string, error)
	Logs(ctx context.Context, req domain.LogRequest) (domain.LogPage, error)
	CancelQuery(ctx context.Context, sid, pid int) (bool, error)
	TerminateSession(ctx context.Context, sid, pid int) (bool, error)
	SystemStatsPresent(ctx context.Context, sid int) (domain.SystemStatsStatus, error)
	DashboardStats(ctx context.Context, sid, did int, charts []string) (map[string]json.RawMessage, error)
	SystemStatistics(ctx context.Context, sid, did int, charts []string) (map[string]json.RawMessage, error)
}

type Preferences interface {
	Threshold(ctx context.Context) (string, error)
	SetThreshold(ctx context.Context, raw string) (string, error)
}

// ServerLookup resolves a server id to its registration.
type ServerLookup interface {
	Info(sid int) (postgres.ServerInfo, bool)
	Servers() []postgres.ServerInfo
}

type Services struct {
	Dashboard
	Preferences
}

type Settings struct {
	LogPageSize      int
	DefaultThreshold string
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	Servers        ServerLookup
	Settings       Settings
}

func NewServices(deps ServicesDependencies) *Services {
	prefs := NewPreferenceService(deps.Repos.Preference, deps.Settings.DefaultThreshold)
	return &Services{
		Dashboard: NewDashboardService(
			deps.Repos.Dashboard,
			prefs,
			deps.Servers,
			deps.Counters,
			deps.BrokerProducer,
			deps.Settings.LogPageSize,
		),
		Preferences: prefs,
	}
}
