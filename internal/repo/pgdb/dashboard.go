package pgdb

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/repo/repoerrs"
	"github.com/Egor213/PgDash/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/PgDash/pkg/errors"
	"github.com/Egor213/PgDash/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type DashboardRepo struct {
	servers *postgres.Registry
}

func NewDashboardRepo(servers *postgres.Registry) *DashboardRepo {
	return &DashboardRepo{servers: servers}
}

func (r *DashboardRepo) conn(ctx context.Context, sid int) (*postgres.Postgres, error) {
	pg, err := r.servers.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, postgres.ErrServerNotRegistered) {
			return nil, repoerrs.ErrServerNotRegistered
		}
		return nil, errorsUtils.WrapPathErr(err)
	}
	return pg, nil
}

func (r *DashboardRepo) selectRows(ctx context.Context, sid int, build func(sq.StatementBuilderType) sq.SelectBuilder) ([]domain.ActivityRow, error) {
	pg, err := r.conn(ctx, sid)
	if err != nil {
		return nil, err
	}

	sql, args, err := build(pg.Builder).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	out := make([]domain.ActivityRow, 0, len(maps))
	for _, m := range maps {
		out = append(out, domain.ActivityRow(m))
	}
	return out, nil
}

func (r *DashboardRepo) queryRow(ctx context.Context, sid int, q sq.Sqlizer, dest ...any) error {
	pg, err := r.conn(ctx, sid)
	if err != nil {
		return err
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	return pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).QueryRow(ctx, sql, args...).Scan(dest...)
}

func (r *DashboardRepo) builder(ctx context.Context, sid int) (sq.StatementBuilderType, error) {
	pg, err := r.conn(ctx, sid)
	if err != nil {
		return sq.StatementBuilderType{}, err
	}
	return pg.Builder, nil
}

func (r *DashboardRepo) Version(ctx context.Context, sid int) (int, error) {
	b, err := r.builder(ctx, sid)
	if err != nil {
		return 0, err
	}

	var version int
	q := b.Select("current_setting('server_version_num')::int")
	if err := r.queryRow(ctx, sid, q, &version); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return version, nil
}

func (r *DashboardRepo) Activity(ctx context.Context, filter repotypes.StatsFilter) ([]domain.ActivityRow, error) {
	return r.selectRows(ctx, filter.ServerID, func(b sq.StatementBuilderType) sq.SelectBuilder {
		return BuildActivityQuery(b, filter)
	})
}

func (r *DashboardRepo) Locks(ctx context.Context, filter repotypes.StatsFilter) ([]domain.ActivityRow, error) {
	return r.selectRows(ctx, filter.ServerID, func(b sq.StatementBuilderType) sq.SelectBuilder {
		return BuildLocksQuery(b, filter)
	})
}

func (r *DashboardRepo) Prepared(ctx context.Context, filter repotypes.StatsFilter) ([]domain.ActivityRow, error) {
	return r.selectRows(ctx, filter.ServerID, func(b sq.StatementBuilderType) sq.SelectBuilder {
		return BuildPreparedQuery(b, filter)
	})
}

func (r *DashboardRepo) Config(ctx context.Context, sid int) ([]domain.ActivityRow, error) {
	return r.selectRows(ctx, sid, BuildConfigQuery)
}

func (r *DashboardRepo) ReplicationSlots(ctx context.Context, sid int) ([]domain.ActivityRow, error) {
	return r.selectRows(ctx, sid, BuildReplicationSlotsQuery)
}

func (r *DashboardRepo) ReplicationStats(ctx context.Context, sid int) ([]domain.ActivityRow, error) {
	return r.selectRows(ctx, sid, BuildReplicationStatsQuery)
}

func (r *DashboardRepo) LogDestinations(ctx context.Context, sid int) (string, error) {
	b, err := r.builder(ctx, sid)
	if err != nil {
		return "", err
	}

	var dest string
	if err := r.queryRow(ctx, sid, BuildLogDestinationQuery(b), &dest); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}
	return dest, nil
}

// LogFileSize returns 0 when the server does not write the requested destination.
func (r *DashboardRepo) LogFileSize(ctx context.Context, sid int, format domain.LogFormat) (int64, error) {
	b, err := r.builder(ctx, sid)
	if err != nil {
		return 0, err
	}

	var size *int64
	err = r.queryRow(ctx, sid, BuildLogFileSizeQuery(b, format), &size)
	if errorsUtils.IsUndefinedFile(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	if size == nil {
		return 0, nil
	}
	return *size, nil
}

func (r *DashboardRepo) ReadLog(ctx context.Context, sid int, format domain.LogFormat, window repotypes.LogWindow) (string, error) {
	b, err := r.builder(ctx, sid)
	if err != nil {
		return "", err
	}

	var text *string
	if err := r.queryRow(ctx, sid, BuildReadLogQuery(b, format, window), &text); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}
	if text == nil {
		return "", nil
	}
	return *text, nil
}

func (r *DashboardRepo) signalBackend(ctx context.Context, sid int, fn string, pid int) (bool, error) {
	b, err := r.builder(ctx, sid)
	if err != nil {
		return false, err
	}

	var ok bool
	q := b.Select().Column(sq.Expr("pg_catalog."+fn+"(?)", pid))
	if err := r.queryRow(ctx, sid, q, &ok); err != nil {
		return false, errorsUtils.WrapPathErr(err)
	}
	return ok, nil
}

func (r *DashboardRepo) CancelBackend(ctx context.Context, sid, pid int) (bool, error) {
	return r.signalBackend(ctx, sid, "pg_cancel_backend", pid)
}

func (r *DashboardRepo) TerminateBackend(ctx context.Context, sid, pid int) (bool, error) {
	return r.signalBackend(ctx, sid, "pg_terminate_backend", pid)
}

func (r *DashboardRepo) ExtensionInstalled(ctx context.Context, sid int, name string) (bool, error) {
	b, err := r.builder(ctx, sid)
	if err != nil {
		return false, err
	}

	var exists bool
	q := b.Select().Column(sq.Expr("EXISTS (SELECT 1 FROM pg_catalog.pg_extension WHERE extname = ?)", name))
	if err := r.queryRow(ctx, sid, q, &exists); err != nil {
		return false, errorsUtils.WrapPathErr(err)
	}
	return exists, nil
}

func (r *DashboardRepo) ChartData(ctx context.Context, filter repotypes.StatsFilter, charts []string) (map[string]json.RawMessage, error) {
	b, err := r.builder(ctx, filter.ServerID)
	if err != nil {
		return nil, err
	}

	data := make(map[string]json.RawMessage, len(charts))
	for _, name := range charts {
		cq, ok := chartQueries[name]
		if !ok {
			return nil, repoerrs.ErrUnknownChart
		}

		var raw *string
		if err := r.queryRow(ctx, filter.ServerID, cq.build(b, filter), &raw); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		if raw == nil {
			data[name] = json.RawMessage("null")
			continue
		}
		data[name] = json.RawMessage(*raw)
	}
	return data, nil
}
