package postgres

import "time"

type Option func(*Postgres)

func MaxPoolSize(size int) Option {
	return func(p *Postgres) {
		p.maxPoolSize = size
	}
}

// ConnAttempts bounds the pings made before New gives up. Monitored servers
// use a single attempt so a dead server fails the request instead of stalling it.
func ConnAttempts(attempts int) Option {
	return func(p *Postgres) {
		p.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(p *Postgres) {
		p.connTimeout = timeout
	}
}

// ApplicationName tags every session the pool opens, so the dashboard's own
// queries are recognisable in pg_stat_activity.
func ApplicationName(name string) Option {
	return func(p *Postgres) {
		p.applicationName = name
	}
}

func HealthCheckPeriod(period time.Duration) Option {
	return func(p *Postgres) {
		p.healthCheckPeriod = period
	}
}
