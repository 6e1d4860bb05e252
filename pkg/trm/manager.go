// Package trm runs functions inside pgx transactions carried by the context.
package trm

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Beginner starts transactions. *pgxpool.Pool satisfies it.
type Beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type Manager struct {
	db Beginner
}

func New(db Beginner) *Manager {
	return &Manager{db: db}
}

type ctxKeyTx struct{}
type ctxKeyOptions struct{}

// TxKey holds the active pgx.Tx in a context.
var TxKey = ctxKeyTx{}

var optionsKey = ctxKeyOptions{}

// WithOptions sets the options used when the next Do on ctx begins a transaction.
func WithOptions(ctx context.Context, opts pgx.TxOptions) context.Context {
	return context.WithValue(ctx, optionsKey, opts)
}

// Do runs fn in a transaction. When ctx already carries one, fn joins it and
// only the outermost Do commits or rolls back.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(TxKey).(pgx.Tx); ok {
		return fn(ctx)
	}

	opts, _ := ctx.Value(optionsKey).(pgx.TxOptions)
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	ctx = context.WithValue(ctx, TxKey, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("rollback tx: %v (original error: %w)", rbErr, err)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit tx: %w", commitErr)
		}
	}()

	return fn(ctx)
}

// DoReadOnly is Do with a read-only access mode.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(WithOptions(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}), fn)
}
