package repo

import (
	"context"
	"database/sql"

	"github.com/SergeyBogomolovv/agro-market/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// postgresRepo holds what every repository shares: the pool, the query builder
// and helpers that run on the transaction from ctx when there is one.
type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func newPostgresRepo(db *sqlx.DB) postgresRepo {
	return postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		res, err := tx.ExecContext(ctx, query, args...)
		return res, classify(err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	return res, classify(err)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return classify(tx.GetContext(ctx, dest, query, args...))
	}
	return classify(r.db.GetContext(ctx, dest, query, args...))
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return classify(tx.SelectContext(ctx, dest, query, args...))
	}
	return classify(r.db.SelectContext(ctx, dest, query, args...))
}
