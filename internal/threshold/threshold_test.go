package threshold_test

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/Egor213/PgDash/internal/domain"
	"github.com/Egor213/PgDash/internal/threshold"
	json "github.com/goccy/go-json"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	inf := math.Inf(1)

	testCases := []struct {
		name    string
		raw     string
		want    domain.ThresholdConfig
		wantErr bool
	}{
		{name: "both bounds", raw: "2|5", want: domain.ThresholdConfig{Warning: 2, Alert: 5}},
		{name: "fractional", raw: "0.5|1.25", want: domain.ThresholdConfig{Warning: 0.5, Alert: 1.25}},
		{name: "empty warning", raw: "|5", want: domain.ThresholdConfig{Warning: inf, Alert: 5}},
		{name: "empty alert", raw: "3|", want: domain.ThresholdConfig{Warning: 3, Alert: inf}},
		{name: "both empty", raw: "|", want: domain.ThresholdConfig{Warning: inf, Alert: inf}},
		{name: "not a number", raw: "two|5", wantErr: true},
		{name: "nan", raw: "NaN|5", wantErr: true},
		{name: "missing separator", raw: "2", wantErr: true},
		{name: "too many parts", raw: "1|2|3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := threshold.Parse(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, threshold.ErrInvalidThreshold)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	for _, raw := range []string{"2|5", "|5", "3|", "|", "0.5|10"} {
		cfg, err := threshold.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, threshold.Format(cfg))
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name   string
		config string
		row    domain.ActivityRow
		want   any
	}{
		{
			name:   "above warning",
			config: "2|5",
			row:    domain.ActivityRow{"state": "active", "active_since": "3"},
			want:   domain.RowTypeWarning,
		},
		{
			name:   "above alert",
			config: "2|5",
			row:    domain.ActivityRow{"state": "active", "active_since": "6"},
			want:   domain.RowTypeAlert,
		},
		{
			name:   "below warning",
			config: "2|5",
			row:    domain.ActivityRow{"state": "active", "active_since": "1"},
			want:   nil,
		},
		{
			name:   "equal to warning is not flagged",
			config: "2|5",
			row:    domain.ActivityRow{"state": "active", "active_since": 2.0},
			want:   nil,
		},
		{
			name:   "no warning bound",
			config: "|5",
			row:    domain.ActivityRow{"state": "active", "active_since": "1000000"},
			want:   domain.RowTypeAlert,
		},
		{
			name:   "no warning bound below alert",
			config: "|5",
			row:    domain.ActivityRow{"state": "active", "active_since": 4},
			want:   nil,
		},
		{
			name:   "no alert bound",
			config: "2|",
			row:    domain.ActivityRow{"state": "active", "active_since": int64(1000000)},
			want:   domain.RowTypeWarning,
		},
		{
			name:   "idle session",
			config: "2|5",
			row:    domain.ActivityRow{"state": "idle", "active_since": 100.0},
			want:   nil,
		},
		{
			name:   "missing active_since",
			config: "2|5",
			row:    domain.ActivityRow{"state": "active"},
			want:   nil,
		},
		{
			name:   "null active_since",
			config: "2|5",
			row:    domain.ActivityRow{"state": "active", "active_since": nil},
			want:   nil,
		},
		{
			name:   "unparsable active_since",
			config: "2|5",
			row:    domain.ActivityRow{"state": "active", "active_since": "soon"},
			want:   nil,
		},
		{
			name:   "stale row_type is overwritten",
			config: "2|5",
			row:    domain.ActivityRow{"state": "idle", "row_type": domain.RowTypeAlert},
			want:   nil,
		},
		{
			name:   "numeric column",
			config: "2|5",
			row: domain.ActivityRow{
				"state":        "active",
				"active_since": pgtype.Numeric{Int: big.NewInt(75), Exp: -1, Valid: true},
			},
			want: domain.RowTypeAlert,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := threshold.Parse(tc.config)
			require.NoError(t, err)

			rows := []domain.ActivityRow{tc.row}
			threshold.Classify(rows, cfg)

			got, present := rows[0][domain.RowTypeKey]
			assert.True(t, present)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	cfg, err := threshold.Parse("2|5")
	require.NoError(t, err)

	rows := []domain.ActivityRow{
		{"state": "active", "active_since": "3", "pid": 1},
		{"state": "active", "active_since": "9", "pid": 2},
		{"state": "idle", "active_since": "9", "pid": 3},
	}

	threshold.Classify(rows, cfg)
	once := []any{rows[0]["row_type"], rows[1]["row_type"], rows[2]["row_type"]}
	threshold.Classify(rows, cfg)
	twice := []any{rows[0]["row_type"], rows[1]["row_type"], rows[2]["row_type"]}

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, rows[0]["pid"])
}

func TestClassify_NoThreshold(t *testing.T) {
	rows := []domain.ActivityRow{{"state": "active", "active_since": 1e12}}
	threshold.Classify(rows, domain.NoThreshold())
	assert.Nil(t, rows[0]["row_type"])
}

func TestClassify_DecodedJSONNumber(t *testing.T) {
	cfg, err := threshold.Parse("2|5")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(`{"state":"active","active_since":6.5}`))
	dec.UseNumber()
	var row domain.ActivityRow
	require.NoError(t, dec.Decode(&row))
	require.IsType(t, json.Number(""), row["active_since"])

	threshold.Classify([]domain.ActivityRow{row}, cfg)
	assert.Equal(t, domain.RowTypeAlert, row["row_type"])
}
