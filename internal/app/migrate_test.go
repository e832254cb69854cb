package app

import (
	"testing"

	"github.com/Egor213/PgDash/migrations"
	"github.com/stretchr/testify/assert"
)

func TestWithSSLModeDisabled(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain url",
			in:   "postgres://u:p@localhost:5432/pgdash",
			want: "postgres://u:p@localhost:5432/pgdash?sslmode=disable",
		},
		{
			name: "url with query",
			in:   "postgres://u:p@localhost:5432/pgdash?connect_timeout=5",
			want: "postgres://u:p@localhost:5432/pgdash?connect_timeout=5&sslmode=disable",
		},
		{
			name: "sslmode already set",
			in:   "postgres://u:p@localhost:5432/pgdash?sslmode=require",
			want: "postgres://u:p@localhost:5432/pgdash?sslmode=require",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, withSSLModeDisabled(tc.in))
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	assert.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "000001_preferences.up.sql")
	assert.Contains(t, names, "000001_preferences.down.sql")
}
