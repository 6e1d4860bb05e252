package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/cache"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/metrics"
	pg "github.com/Temutjin2k/lapla/pkg/postgres"
	"github.com/Temutjin2k/lapla/pkg/trm"
)

const service = "dashboard"

// CacheRepo is the second cache tier, storing provider responses in provider_cache.
type CacheRepo struct {
	db *pgxpool.Pool
	tx trm.TxManager
}

func NewCacheRepo(db *pgxpool.Pool, tx trm.TxManager) *CacheRepo {
	return &CacheRepo{
		db: db,
		tx: tx,
	}
}

// Get returns a non-expired payload or cache.ErrNotCached.
func (r *CacheRepo) Get(ctx context.Context, key string) (payload []byte, err error) {
	const op = "CacheRepo.Get"
	defer recordQuery("cache_get", time.Now(), &err)

	query := `
		SELECT payload
		FROM provider_cache
		WHERE key = $1 AND expires_at > now();`

	err = r.tx.DoReadOnly(ctx, func(ctx context.Context) error {
		return TxorDB(ctx, r.db).QueryRow(ctx, query, key).Scan(&payload)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
			return nil, cache.ErrNotCached
		}
		return nil, r.fail(ctx, op, err)
	}

	return payload, nil
}

// Set upserts payload with the given ttl.
func (r *CacheRepo) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) (err error) {
	const op = "CacheRepo.Set"
	defer recordQuery("cache_set", time.Now(), &err)

	query := `
		INSERT INTO provider_cache(key, payload, expires_at)
		VALUES($1, $2, now() + $3 * interval '1 second')
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload, expires_at = EXCLUDED.expires_at;`

	if _, err = TxorDB(ctx, r.db).Exec(ctx, query, key, payload, ttl.Seconds()); err != nil {
		return r.fail(ctx, op, err)
	}

	return nil
}

// Purge deletes expired rows and returns how many were removed.
func (r *CacheRepo) Purge(ctx context.Context) (n int64, err error) {
	const op = "CacheRepo.Purge"
	defer recordQuery("cache_purge", time.Now(), &err)

	query := `DELETE FROM provider_cache WHERE expires_at <= now();`

	tag, err := TxorDB(ctx, r.db).Exec(ctx, query)
	if err != nil {
		return 0, r.fail(ctx, op, err)
	}

	return tag.RowsAffected(), nil
}

func (r *CacheRepo) fail(ctx context.Context, op string, err error) error {
	if pg.IsUndefinedTable(err) {
		err = fmt.Errorf("%w (run the migrate command)", err)
	}
	ctx = wrap.WithAction(ctx, types.ActionDatabaseTransactionFailed)
	return wrap.Error(ctx, fmt.Errorf("%s: %w", op, err))
}

func recordQuery(operation string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(service, operation, *err, time.Since(start))
}
