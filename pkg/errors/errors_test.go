package errorsUtils_test

import (
	"errors"
	"fmt"
	"testing"

	errorsUtils "github.com/Egor213/PgDash/pkg/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapPathErr(t *testing.T) {
	base := errors.New("boom")
	err := errorsUtils.WrapPathErr(base)

	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "TestWrapPathErr")
	assert.Contains(t, err.Error(), "boom")
}

func TestPgCodes(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{
			name:  "undefined file",
			err:   &pgconn.PgError{Code: errorsUtils.CodeUndefinedFile},
			check: errorsUtils.IsUndefinedFile,
			want:  true,
		},
		{
			name:  "wrapped insufficient privilege",
			err:   fmt.Errorf("read log: %w", &pgconn.PgError{Code: errorsUtils.CodeInsufficientPrivilege}),
			check: errorsUtils.IsInsufficientPrivilege,
			want:  true,
		},
		{
			name:  "undefined function",
			err:   &pgconn.PgError{Code: errorsUtils.CodeUndefinedFunction},
			check: errorsUtils.IsUndefinedFunction,
			want:  true,
		},
		{
			name:  "other code",
			err:   &pgconn.PgError{Code: "23505"},
			check: errorsUtils.IsUndefinedFile,
			want:  false,
		},
		{
			name:  "not a pg error",
			err:   errors.New("plain"),
			check: errorsUtils.IsUndefinedFunction,
			want:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.check(tc.err))
		})
	}
}
