package postgres

import (
	"context"
	"time"

	errorsUtils "github.com/Egor213/PgDash/pkg/errors"

	"github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMaxPoolSize  = 1
	DefaultConnAttempts = 10
	DefaultConnTimeout  = time.Second
)

type PgxPool interface {
	Close()
	Acquire(ctx context.Context) (*pgxpool.Conn, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	Begin(ctx context.Context) (pgx.Tx, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
	Ping(ctx context.Context) error
}

type Postgres struct {
	maxPoolSize       int
	connAttempts      int
	connTimeout       time.Duration
	applicationName   string
	healthCheckPeriod time.Duration

	Builder   squirrel.StatementBuilderType
	CtxGetter *trmpgx.CtxGetter
	Pool      PgxPool
}

func newPostgres(opts ...Option) *Postgres {
	pg := &Postgres{
		maxPoolSize:  DefaultMaxPoolSize,
		connAttempts: DefaultConnAttempts,
		connTimeout:  DefaultConnTimeout,
		CtxGetter:    trmpgx.DefaultCtxGetter,
		Builder:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
	for _, opt := range opts {
		opt(pg)
	}
	if pg.connAttempts < 1 {
		pg.connAttempts = 1
	}
	return pg
}

func New(pgUrl string, opts ...Option) (*Postgres, error) {
	return NewContext(context.Background(), pgUrl, opts...)
}

// NewContext is New with the dial, ping and retry waits bounded by ctx.
func NewContext(ctx context.Context, pgUrl string, opts ...Option) (*Postgres, error) {
	pg := newPostgres(opts...)

	poolConfig, err := pg.poolConfig(pgUrl)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := pg.connect(ctx, poolConfig); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return pg, nil
}

func (p *Postgres) poolConfig(pgUrl string) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(pgUrl)
	if err != nil {
		return nil, err
	}

	cfg.MaxConns = int32(p.maxPoolSize)
	if p.healthCheckPeriod > 0 {
		cfg.HealthCheckPeriod = p.healthCheckPeriod
	}
	if p.applicationName != "" {
		cfg.ConnConfig.RuntimeParams["application_name"] = p.applicationName
	}
	return cfg, nil
}

// connect opens the pool and pings it, retrying up to connAttempts times.
// A pool that fails its ping is closed before the next attempt.
func (p *Postgres) connect(ctx context.Context, cfg *pgxpool.Config) error {
	var err error
	for attempt := 1; attempt <= p.connAttempts; attempt++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return err
		}

		if err = pool.Ping(ctx); err == nil {
			p.Pool = pool
			return nil
		}
		pool.Close()

		left := p.connAttempts - attempt
		log.WithFields(log.Fields{"host": cfg.ConnConfig.Host, "error": err}).
			Infof("Postgres trying to connect, attempts left: %d", left)
		if left == 0 {
			break
		}
		select {
		case <-time.After(p.connTimeout):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// NewWithPool wraps an existing pool, used by tests and by callers that manage pools themselves.
func NewWithPool(pool PgxPool) *Postgres {
	pg := newPostgres()
	pg.Pool = pool
	return pg
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
}
