package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Egor213/PgDash/internal/broker"
	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/logparse"
	"github.com/Egor213/PgDash/internal/metrics"
	"github.com/Egor213/PgDash/internal/repo"
	"github.com/Egor213/PgDash/internal/repo/repoerrs"
	"github.com/Egor213/PgDash/internal/repo/repotypes"
	"github.com/Egor213/PgDash/internal/threshold"
	errorsUtils "github.com/Egor213/PgDash/pkg/errors"
	gojson "github.com/goccy/go-json"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const DefaultLogPageSize = 10000

type thresholdSource interface {
	ThresholdConfig(ctx context.Context) (domain.ThresholdConfig, error)
}

type DashboardService struct {
	dashRepo    repo.Dashboard
	thresholds  thresholdSource
	servers     ServerLookup
	counters    *metrics.Counters
	producer    broker.Producer
	logPageSize int64
	alerts      *alertTracker
}

func NewDashboardService(
	dr repo.Dashboard,
	ts thresholdSource,
	servers ServerLookup,
	cnt *metrics.Counters,
	producer broker.Producer,
	logPageSize int,
) *DashboardService {
	if producer == nil {
		producer = broker.NopProducer{}
	}
	if logPageSize <= 0 {
		logPageSize = DefaultLogPageSize
	}
	return &DashboardService{
		dashRepo:    dr,
		thresholds:  ts,
		servers:     servers,
		counters:    cnt,
		producer:    producer,
		logPageSize: int64(logPageSize),
		alerts:      newAlertTracker(),
	}
}

func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repoerrs.ErrServerNotRegistered):
		return ErrServerNotFound
	case errors.Is(err, repoerrs.ErrUnknownChart):
		return ErrUnknownChart
	case errorsUtils.IsInsufficientPrivilege(err):
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
}

func requireServer(sid int) error {
	if sid <= 0 {
		return ErrServerIDNotSpecified
	}
	return nil
}

func (s *DashboardService) Page(ctx context.Context, sid, did int) (domain.DashboardPage, error) {
	if sid <= 0 {
		registered := s.servers.Servers()
		summaries := make([]domain.ServerSummary, 0, len(registered))
		for _, info := range registered {
			summaries = append(summaries, domain.ServerSummary{ID: info.ID, Name: info.Name})
		}
		return domain.DashboardPage{Kind: domain.DashboardWelcome, Servers: summaries}, nil
	}

	info, ok := s.servers.Info(sid)
	if !ok {
		return domain.DashboardPage{}, ErrServerNotFound
	}

	page := domain.DashboardPage{
		Kind:       domain.DashboardServer,
		ServerID:   sid,
		ServerName: info.Name,
	}
	if did > 0 {
		page.Kind = domain.DashboardDatabase
		page.DatabaseID = did
	}

	version, err := s.dashRepo.Version(ctx, sid)
	if err != nil {
		log.WithFields(log.Fields{"sid": sid, "error": err}).Warn("Server is not reachable")
		return page, nil
	}
	page.Version = version
	page.Connected = true
	return page, nil
}

func (s *DashboardService) Activity(ctx context.Context, sid, did int) (domain.ServerActivity, error) {
	if err := requireServer(sid); err != nil {
		return domain.ServerActivity{}, err
	}
	filter := repotypes.StatsFilter{ServerID: sid, DatabaseID: did}

	cfg, err := s.thresholds.ThresholdConfig(ctx)
	if err != nil {
		return domain.ServerActivity{}, err
	}

	activity, err := s.dashRepo.Activity(ctx, filter)
	if err != nil {
		return domain.ServerActivity{}, mapRepoErr(err)
	}
	threshold.Classify(activity, cfg)
	s.reportLongRunning(ctx, filter, activity, cfg)

	locks, err := s.dashRepo.Locks(ctx, filter)
	if err != nil {
		return domain.ServerActivity{}, mapRepoErr(err)
	}

	prepared, err := s.dashRepo.Prepared(ctx, filter)
	if err != nil {
		return domain.ServerActivity{}, mapRepoErr(err)
	}

	return domain.ServerActivity{
		Activity: activity,
		Locks:    locks,
		Prepared: prepared,
	}, nil
}

// reportLongRunning counts flagged sessions and publishes one event per query
// execution that reaches the alert bound. Later polls of the same execution
// are not published again.
// Publishing is best effort: a broker failure never fails the request.
func (s *DashboardService) reportLongRunning(ctx context.Context, filter repotypes.StatsFilter, rows []domain.ActivityRow, cfg domain.ThresholdConfig) {
	sid := strconv.Itoa(filter.ServerID)
	now := s.alerts.now()
	defer s.alerts.prune(now)

	for _, row := range rows {
		rowType, _ := row[domain.RowTypeKey].(string)
		if rowType == "" {
			continue
		}
		s.counters.LongRunningQueries.Inc(sid, rowType)
		if rowType != domain.RowTypeAlert {
			continue
		}

		elapsed, _ := threshold.ActiveSince(row)
		if !s.alerts.shouldPublish(filter.ServerID, row, elapsed, now) {
			continue
		}
		alert := domain.LongRunningAlert{
			ID:          uuid.NewString(),
			ServerID:    filter.ServerID,
			DatabaseID:  filter.DatabaseID,
			PID:         row["pid"],
			Database:    row["datname"],
			User:        row["usename"],
			Query:       row["query"],
			ActiveSince: elapsed,
			Threshold:   cfg.Alert,
			DetectedAt:  now.UTC().Format(time.RFC3339),
		}
		value, err := gojson.Marshal(alert)
		if err != nil {
			log.WithField("error", err).Error("Failed to encode long running query alert")
			continue
		}
		if err := s.producer.SendMessage(ctx, []byte(sid), value); err != nil {
			log.WithFields(log.Fields{"sid": filter.ServerID, "pid": alert.PID, "error": err}).
				Warn("Failed to publish long running query alert")
			continue
		}
		s.alerts.markPublished(filter.ServerID, row, elapsed, now)
	}
}

func (s *DashboardService) Locks(ctx context.Context, sid, did int) ([]domain.ActivityRow, error) {
	if err := requireServer(sid); err != nil {
		return nil, err
	}
	rows, err := s.dashRepo.Locks(ctx, repotypes.StatsFilter{ServerID: sid, DatabaseID: did})
	return rows, mapRepoErr(err)
}

func (s *DashboardService) Prepared(ctx context.Context, sid, did int) ([]domain.ActivityRow, error) {
	if err := requireServer(sid); err != nil {
		return nil, err
	}
	rows, err := s.dashRepo.Prepared(ctx, repotypes.StatsFilter{ServerID: sid, DatabaseID: did})
	return rows, mapRepoErr(err)
}

func (s *DashboardService) Config(ctx context.Context, sid int) ([]domain.ActivityRow, error) {
	if err := requireServer(sid); err != nil {
		return nil, err
	}
	rows, err := s.dashRepo.Config(ctx, sid)
	return rows, mapRepoErr(err)
}

func (s *DashboardService) ReplicationSlots(ctx context.Context, sid int) ([]domain.ActivityRow, error) {
	if err := requireServer(sid); err != nil {
		return nil, err
	}
	rows, err := s.dashRepo.ReplicationSlots(ctx, sid)
	return rows, mapRepoErr(err)
}

func (s *DashboardService) ReplicationStats(ctx context.Context, sid int) ([]domain.ActivityRow, error) {
	if err := requireServer(sid); err != nil {
		return nil, err
	}
	rows, err := s.dashRepo.ReplicationStats(ctx, sid)
	return rows, mapRepoErr(err)
}

func (s *DashboardService) LogFormats(ctx context.Context, sid int) (string, error) {
	if err := requireServer(sid); err != nil {
		return "", err
	}
	dest, err := s.dashRepo.LogDestinations(ctx, sid)
	return dest, mapRepoErr(err)
}

// Logs reads one page of the current server log. Pages are byte windows of
// logPageSize; the plain disposition reads from the page start to the end of file.
func (s *DashboardService) Logs(ctx context.Context, req domain.LogRequest) (domain.LogPage, error) {
	if err := requireServer(req.ServerID); err != nil {
		return domain.LogPage{}, err
	}

	dest, err := s.dashRepo.LogDestinations(ctx, req.ServerID)
	if err != nil {
		return domain.LogPage{}, mapRepoErr(err)
	}
	format := logparse.ResolveFormat(req.FormatCode, dest)

	size, err := s.dashRepo.LogFileSize(ctx, req.ServerID, format)
	if err != nil {
		return domain.LogPage{}, mapRepoErr(err)
	}
	if size <= 0 {
		return domain.LogPage{Disabled: true, Format: format}, nil
	}

	plain := req.Disposition == domain.DispositionPlain
	page := domain.LogPage{Format: format, Plain: plain, Entries: []domain.LogEntry{}}

	start := int64(0)
	if req.Page > 0 {
		start = int64(req.Page) * s.logPageSize
	}
	end := start + s.logPageSize
	if start >= size {
		return page, nil
	}
	if plain {
		end = size
	}

	raw, err := s.dashRepo.ReadLog(ctx, req.ServerID, format, repotypes.LogWindow{Offset: start, Length: end - start})
	if err != nil {
		return domain.LogPage{}, mapRepoErr(err)
	}

	if plain {
		page.Raw = raw
		return page, nil
	}

	page.Entries = logparse.Parse(logparse.SplitLines(raw), format)
	s.counters.LogEntriesParsed.Add(float64(len(page.Entries)), string(format))
	return page, nil
}

func (s *DashboardService) CancelQuery(ctx context.Context, sid, pid int) (bool, error) {
	if err := requireServer(sid); err != nil {
		return false, err
	}
	ok, err := s.dashRepo.CancelBackend(ctx, sid, pid)
	if err != nil {
		return false, mapRepoErr(err)
	}
	log.WithFields(log.Fields{"sid": sid, "pid": pid, "result": ok}).Info("Cancel query requested")
	return ok, nil
}

func (s *DashboardService) TerminateSession(ctx context.Context, sid, pid int) (bool, error) {
	if err := requireServer(sid); err != nil {
		return false, err
	}
	ok, err := s.dashRepo.TerminateBackend(ctx, sid, pid)
	if err != nil {
		return false, mapRepoErr(err)
	}
	log.WithFields(log.Fields{"sid": sid, "pid": pid, "result": ok}).Info("Terminate session requested")
	return ok, nil
}

func (s *DashboardService) SystemStatsPresent(ctx context.Context, sid int) (domain.SystemStatsStatus, error) {
	if err := requireServer(sid); err != nil {
		return domain.SystemStatsStatus{}, err
	}
	present, err := s.dashRepo.ExtensionInstalled(ctx, sid, domain.SystemStatsExtension)
	if err != nil {
		return domain.SystemStatsStatus{}, mapRepoErr(err)
	}
	return domain.SystemStatsStatus{Present: present}, nil
}

func (s *DashboardService) DashboardStats(ctx context.Context, sid, did int, charts []string) (map[string]json.RawMessage, error) {
	return s.charts(ctx, sid, did, charts, false)
}

func (s *DashboardService) SystemStatistics(ctx context.Context, sid, did int, charts []string) (map[string]json.RawMessage, error) {
	return s.charts(ctx, sid, did, charts, true)
}

func (s *DashboardService) charts(ctx context.Context, sid, did int, charts []string, system bool) (map[string]json.RawMessage, error) {
	if len(charts) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	if err := requireServer(sid); err != nil {
		return nil, err
	}

	for _, name := range charts {
		isSystem, known := domain.ChartScope(name)
		if !known || isSystem != system {
			return nil, fmt.Errorf("%w: %s", ErrUnknownChart, name)
		}
	}

	data, err := s.dashRepo.ChartData(ctx, repotypes.StatsFilter{ServerID: sid, DatabaseID: did}, charts)
	if err != nil {
		if system && errorsUtils.IsUndefinedFunction(err) {
			return nil, ErrExtensionMissing
		}
		return nil, mapRepoErr(err)
	}
	return data, nil
}
