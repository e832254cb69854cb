package pgdb

import (
	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

type chartQuery struct {
	build func(b sq.StatementBuilderType, filter repotypes.StatsFilter) sq.SelectBuilder
}

func databaseStatsChart(expr string) chartQuery {
	return chartQuery{
		build: func(b sq.StatementBuilderType, filter repotypes.StatsFilter) sq.SelectBuilder {
			q := b.Select("json_build_object(" + expr + ")::text").From("pg_catalog.pg_stat_database")
			return withDatabase(q, "datid", filter)
		},
	}
}

func systemChart(expr, from string) chartQuery {
	return chartQuery{
		build: func(b sq.StatementBuilderType, _ repotypes.StatsFilter) sq.SelectBuilder {
			return b.Select(expr).From(from)
		},
	}
}

var chartQueries = map[string]chartQuery{
	domain.ChartSessionStats: {
		build: func(b sq.StatementBuilderType, filter repotypes.StatsFilter) sq.SelectBuilder {
			q := b.Select(
				"json_build_object(" +
					"'Total', count(*), " +
					"'Active', count(*) FILTER (WHERE state = 'active'), " +
					"'Idle', count(*) FILTER (WHERE state = 'idle'))::text",
			).From("pg_catalog.pg_stat_activity")
			return withDatabase(q, "datid", filter)
		},
	},
	domain.ChartTPSStats: databaseStatsChart(
		"'Transactions', sum(xact_commit) + sum(xact_rollback), 'Commits', sum(xact_commit), 'Rollbacks', sum(xact_rollback)",
	),
	domain.ChartTIStats: databaseStatsChart(
		"'Inserts', sum(tup_inserted), 'Updates', sum(tup_updated), 'Deletes', sum(tup_deleted)",
	),
	domain.ChartTOStats: databaseStatsChart(
		"'Fetched', sum(tup_fetched), 'Returned', sum(tup_returned)",
	),
	domain.ChartBIOStats: databaseStatsChart(
		"'Reads', sum(blks_read), 'Hits', sum(blks_hit)",
	),

	domain.ChartCPUStats:     systemChart("row_to_json(t)::text", "pg_catalog.pg_sys_cpu_usage_info() t"),
	domain.ChartLoadAvgStats: systemChart("row_to_json(t)::text", "pg_catalog.pg_sys_load_avg_info() t"),
	domain.ChartMemoryStats:  systemChart("row_to_json(t)::text", "pg_catalog.pg_sys_memory_info() t"),
	domain.ChartOSStats:      systemChart("row_to_json(t)::text", "pg_catalog.pg_sys_os_info() t"),
	domain.ChartProcessStats: systemChart("COALESCE(json_agg(t), '[]'::json)::text", "pg_catalog.pg_sys_cpu_memory_by_process() t"),
	domain.ChartIOStats:      systemChart("COALESCE(json_agg(t), '[]'::json)::text", "pg_catalog.pg_sys_io_analysis_info() t"),
}

func withDatabase(q sq.SelectBuilder, col string, filter repotypes.StatsFilter) sq.SelectBuilder {
	if filter.DatabaseID > 0 {
		q = q.Where(sq.Eq{col: filter.DatabaseID})
	}
	return q
}

func BuildActivityQuery(b sq.StatementBuilderType, filter repotypes.StatsFilter) sq.SelectBuilder {
	q := b.Select(
		"pid",
		"datname",
		"usename",
		"application_name",
		"client_addr::text AS client_addr",
		"to_char(backend_start, 'YYYY-MM-DD HH24:MI:SS TZ') AS backend_start",
		"state",
		"CASE WHEN wait_event_type IS NOT NULL THEN wait_event_type || ': ' || wait_event END AS wait_event",
		"pg_catalog.pg_blocking_pids(pid) AS blocking_pids",
		"query",
		"backend_type",
		"CASE WHEN state = 'active' THEN EXTRACT(EPOCH FROM (now() - query_start))::float8 END AS active_since",
	).
		From("pg_catalog.pg_stat_activity").
		OrderBy("pid")
	return withDatabase(q, "datid", filter)
}

func BuildLocksQuery(b sq.StatementBuilderType, filter repotypes.StatsFilter) sq.SelectBuilder {
	q := b.Select(
		"l.pid",
		"d.datname",
		"l.locktype",
		"l.relation::regclass::text AS relation",
		"l.page",
		"l.tuple",
		"l.virtualxid",
		"l.transactionid::text AS transactionid",
		"l.classid::regclass::text AS classid",
		"l.objid::bigint AS objid",
		"l.virtualtransaction",
		"l.mode",
		"l.granted",
		"l.fastpath",
	).
		From("pg_catalog.pg_locks l").
		LeftJoin("pg_catalog.pg_database d ON d.oid = l.database").
		OrderBy("l.pid", "l.locktype")
	return withDatabase(q, "l.database", filter)
}

func BuildPreparedQuery(b sq.StatementBuilderType, filter repotypes.StatsFilter) sq.SelectBuilder {
	q := b.Select(
		"gid",
		"database",
		"owner",
		"transaction::text AS transaction",
		"to_char(prepared, 'YYYY-MM-DD HH24:MI:SS TZ') AS prepared",
	).
		From("pg_catalog.pg_prepared_xacts").
		OrderBy("gid")
	if filter.DatabaseID > 0 {
		q = q.Where(sq.Expr("database = (SELECT datname FROM pg_catalog.pg_database WHERE oid = ?)", filter.DatabaseID))
	}
	return q
}

func BuildConfigQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("name", "category", "setting", "unit", "short_desc").
		From("pg_catalog.pg_settings").
		OrderBy("category", "name")
}

func BuildReplicationSlotsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(
		"slot_name",
		"slot_type",
		"plugin",
		"database",
		"active",
		"active_pid",
		"restart_lsn::text AS restart_lsn",
		"confirmed_flush_lsn::text AS confirmed_flush_lsn",
	).
		From("pg_catalog.pg_replication_slots").
		OrderBy("slot_name")
}

func BuildReplicationStatsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(
		"pid",
		"usename",
		"application_name",
		"client_addr::text AS client_addr",
		"state",
		"sent_lsn::text AS sent_lsn",
		"write_lsn::text AS write_lsn",
		"flush_lsn::text AS flush_lsn",
		"replay_lsn::text AS replay_lsn",
		"write_lag::text AS write_lag",
		"flush_lag::text AS flush_lag",
		"replay_lag::text AS replay_lag",
		"sync_state",
	).
		From("pg_catalog.pg_stat_replication").
		OrderBy("pid")
}

func BuildLogDestinationQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("setting").
		From("pg_catalog.pg_settings").
		Where(sq.Eq{"name": "log_destination"})
}

func BuildLogFileSizeQuery(b sq.StatementBuilderType, format domain.LogFormat) sq.SelectBuilder {
	return b.Select().
		Column(sq.Expr("(pg_catalog.pg_stat_file(pg_catalog.pg_current_logfile(?))).size", string(format)))
}

func BuildReadLogQuery(b sq.StatementBuilderType, format domain.LogFormat, window repotypes.LogWindow) sq.SelectBuilder {
	return b.Select().
		Column(sq.Expr("pg_catalog.pg_read_file(pg_catalog.pg_current_logfile(?), ?, ?)", string(format), window.Offset, window.Length))
}
