package trm

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrTimeout is returned when a transaction does not finish within the manager timeout.
// Nothing is committed in that case.
var ErrTimeout = errors.New("transaction timed out")

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type Options struct {
	// Timeout bounds the whole transaction, commit included.
	Timeout time.Duration
	// LockTimeout is applied with SET LOCAL so row lock waits fail fast.
	LockTimeout time.Duration
}

type txManager struct {
	db   *sqlx.DB
	opts Options
}

func NewManager(db *sqlx.DB, opts Options) Manager {
	return &txManager{
		db:   db,
		opts: opts,
	}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, nil, err
	}
	if t.opts.LockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = %d", t.opts.LockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return nil, nil, err
		}
	}
	return withTx(ctx, tx), tx, nil
}

func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if t.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, t.opts.Timeout, ErrTimeout)
		defer cancel()
	}

	txCtx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return timeoutCause(ctx, err)
	}
	defer tx.Rollback()

	if err := callback(txCtx); err != nil {
		return timeoutCause(ctx, err)
	}
	return timeoutCause(ctx, tx.Commit())
}

func timeoutCause(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(context.Cause(ctx), ErrTimeout) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}
