package pgdb_test

import (
	"strings"
	"testing"

	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/repo/pgdb"
	"github.com/Egor213/PgDash/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func TestBuildActivityQuery(t *testing.T) {
	testCases := []struct {
		name      string
		filter    repotypes.StatsFilter
		wantWhere bool
		wantArgs  []any
	}{
		{
			name:      "server wide",
			filter:    repotypes.StatsFilter{ServerID: 1},
			wantWhere: false,
			wantArgs:  nil,
		},
		{
			name:      "single database",
			filter:    repotypes.StatsFilter{ServerID: 1, DatabaseID: 16384},
			wantWhere: true,
			wantArgs:  []any{16384},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := pgdb.BuildActivityQuery(builder, tc.filter).ToSql()
			require.NoError(t, err)

			assert.Contains(t, sql, "FROM pg_catalog.pg_stat_activity")
			assert.Contains(t, sql, "AS active_since")
			assert.Equal(t, tc.wantWhere, strings.Contains(sql, "WHERE datid = $1"))
			if tc.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestBuildLocksQuery(t *testing.T) {
	sql, args, err := pgdb.BuildLocksQuery(builder, repotypes.StatsFilter{ServerID: 1, DatabaseID: 5}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "LEFT JOIN pg_catalog.pg_database d ON d.oid = l.database")
	assert.Contains(t, sql, "WHERE l.database = $1")
	assert.Equal(t, []any{5}, args)
}

func TestBuildPreparedQuery(t *testing.T) {
	sql, args, err := pgdb.BuildPreparedQuery(builder, repotypes.StatsFilter{ServerID: 1, DatabaseID: 7}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM pg_catalog.pg_prepared_xacts")
	assert.Contains(t, sql, "oid = $1")
	assert.Equal(t, []any{7}, args)
}

func TestBuildLogQueries(t *testing.T) {
	sql, args, err := pgdb.BuildLogFileSizeQuery(builder, domain.FormatCSV).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT (pg_catalog.pg_stat_file(pg_catalog.pg_current_logfile($1))).size", sql)
	assert.Equal(t, []any{"csvlog"}, args)

	sql, args, err = pgdb.BuildReadLogQuery(builder, domain.FormatPlain, repotypes.LogWindow{Offset: 100, Length: 50}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT pg_catalog.pg_read_file(pg_catalog.pg_current_logfile($1), $2, $3)", sql)
	assert.Equal(t, []any{"stderr", int64(100), int64(50)}, args)

	sql, args, err = pgdb.BuildLogDestinationQuery(builder).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT setting FROM pg_catalog.pg_settings WHERE name = $1", sql)
	assert.Equal(t, []any{"log_destination"}, args)
}

func TestBuildPreferenceQueries(t *testing.T) {
	sql, args, err := pgdb.BuildGetPreferenceQuery(builder, domain.PrefLongRunningQueryThreshold).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT value FROM preferences WHERE name = $1", sql)
	assert.Equal(t, []any{"long_running_query_threshold"}, args)

	sql, args, err = pgdb.BuildSetPreferenceQuery(builder, "k", "v").ToSql()
	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO preferences (name,value) VALUES ($1,$2) "+
			"ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()",
		sql)
	assert.Equal(t, []any{"k", "v"}, args)
}
