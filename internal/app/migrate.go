package app

import (
	"errors"
	"strings"
	"time"

	"github.com/Egor213/PgDash/migrations"
	errorsUtils "github.com/Egor213/PgDash/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
)

// Migrate applies the embedded preferences schema to the application database.
func Migrate(pgUrl string) {
	mgrt, err := newMigrator(withSSLModeDisabled(pgUrl), defaultAttempts)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer mgrt.Close()

	err = mgrt.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info("Migration no change")
	case err != nil:
		log.Fatal(errorsUtils.WrapPathErr(err))
	default:
		version, _, _ := mgrt.Version()
		log.WithField("version", version).Info("Migration successful up")
	}
}

func newMigrator(pgUrl string, attempts int) (*migrate.Migrate, error) {
	var lastErr error
	for left := attempts; left > 0; left-- {
		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			return nil, err
		}

		mgrt, err := migrate.NewWithSourceInstance("iofs", src, pgUrl)
		if err == nil {
			return mgrt, nil
		}
		lastErr = err

		log.Infof("Postgres trying to connect, attempts left: %d", left-1)
		time.Sleep(defaultTimeout)
	}
	return nil, lastErr
}

func withSSLModeDisabled(pgUrl string) string {
	if strings.Contains(pgUrl, "sslmode=") {
		return pgUrl
	}
	if strings.Contains(pgUrl, "?") {
		return pgUrl + "&sslmode=disable"
	}
	return pgUrl + "?sslmode=disable"
}
