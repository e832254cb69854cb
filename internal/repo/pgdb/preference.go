package pgdb

import (
	"context"
	"errors"

	"github.com/Egor213/PgDash/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/PgDash/pkg/errors"
	"github.com/Egor213/PgDash/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type PreferenceRepo struct {
	*postgres.Postgres
}

func NewPreferenceRepo(pg *postgres.Postgres) *PreferenceRepo {
	return &PreferenceRepo{pg}
}

func (r *PreferenceRepo) Get(ctx context.Context, name string) (string, error) {
	sql, args, err := BuildGetPreferenceQuery(r.Builder, name).ToSql()
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	var value string
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", repoerrs.ErrNotFound
	}
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}
	return value, nil
}

func (r *PreferenceRepo) Set(ctx context.Context, name, value string) error {
	sql, args, err := BuildSetPreferenceQuery(r.Builder, name, value).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}

func BuildGetPreferenceQuery(b sq.StatementBuilderType, name string) sq.SelectBuilder {
	return b.Select("value").
		From("preferences").
		Where(sq.Eq{"name": name})
}

func BuildSetPreferenceQuery(b sq.StatementBuilderType, name, value string) sq.InsertBuilder {
	return b.Insert("preferences").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()")
}
