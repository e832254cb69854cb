package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Egor213/PgDash/internal/domain"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runParse(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append([]string{"parse"}, args...))

	err := root.Execute()
	return out.String(), err
}

func writeLog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "postgresql.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseCmd(t *testing.T) {
	testCases := []struct {
		name    string
		format  string
		content string
		want    []domain.LogEntry
	}{
		{
			name:    "stderr with continuation",
			format:  "plain",
			content: "2024-01-01 10:00:00 UTC ERROR:  relation \"t\" does not exist\n\tSTATEMENT:  select * from t",
			want: []domain.LogEntry{
				{
					Severity:  "ERROR",
					Timestamp: "2024-01-01 10:00:00 UTC ",
					Message:   "  relation \"t\" does not exist\tSTATEMENT:  select * from t",
				},
			},
		},
		{
			name:    "jsonlog skips broken lines",
			format:  "json",
			content: "{\"timestamp\":\"t1\",\"error_severity\":\"LOG\",\"message\":\"ready\"}\nnot json\n",
			want:    []domain.LogEntry{{Severity: "LOG", Timestamp: "t1", Message: "ready"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runParse(t, "--format", tc.format, writeLog(t, tc.content))
			require.NoError(t, err)

			var got []domain.LogEntry
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseCmd_Errors(t *testing.T) {
	_, err := runParse(t, "--format", "xml", writeLog(t, "LOG: x"))
	assert.ErrorContains(t, err, "unknown log format")

	_, err = runParse(t, filepath.Join(t.TempDir(), "missing.log"))
	assert.ErrorContains(t, err, "read log file")

	_, err = runParse(t)
	assert.Error(t, err)
}
