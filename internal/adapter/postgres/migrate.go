package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Temutjin2k/lapla/internal/domain/types"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
)

// schema is applied in order inside one transaction. Every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS provider_cache (
		key        TEXT PRIMARY KEY,
		payload    JSONB NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS provider_cache_expires_at_idx ON provider_cache (expires_at);`,
}

type Migrator struct {
	db *pgxpool.Pool
}

func NewMigrator(db *pgxpool.Pool) *Migrator {
	return &Migrator{db: db}
}

// Up creates the tables used by the service. Run it inside a trm transaction.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	const op = "Migrator.Up"
	q := TxorDB(ctx, m.db)
	for i, stmt := range schema {
		if _, err := q.Exec(ctx, stmt); err != nil {
			ctx = wrap.WithAction(ctx, types.ActionMigration)
			return i, wrap.Error(ctx, fmt.Errorf("%s: statement %d: %w", op, i+1, err))
		}
	}
	return len(schema), nil
}
