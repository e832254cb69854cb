package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	CodeInsufficientPrivilege = "42501"
	CodeUndefinedFunction     = "42883"
	CodeUndefinedFile         = "58P01"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsInsufficientPrivilege reports errors such as pg_read_file called by a non-superuser.
func IsInsufficientPrivilege(err error) bool {
	return Is(err, CodeInsufficientPrivilege)
}

// IsUndefinedFunction is returned when an extension function (system_stats) is not installed.
func IsUndefinedFunction(err error) bool {
	return Is(err, CodeUndefinedFunction)
}

func IsUndefinedFile(err error) bool {
	return Is(err, CodeUndefinedFile)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
