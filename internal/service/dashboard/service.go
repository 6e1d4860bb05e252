// Package dashboard serves the dashboard's data: it asks the provider first and
// falls back to sample data where the provider has nothing.
package dashboard

import (
	"context"
	"time"

	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/cache"
	"github.com/Temutjin2k/lapla/pkg/hasher"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/metrics"
)

type Config struct {
	FirstSeason    int
	DefaultSeason  int
	SampleLapCount int
	CacheTTL       time.Duration
}

// Result carries a payload and whether it came from the provider or was synthesized.
type Result[T any] struct {
	Data   T
	Source types.DataSource
}

func (r Result[T]) Sample() bool { return r.Source == types.SourceSample }

func provided[T any](v T) Result[T] { return Result[T]{Data: v, Source: types.SourceProvider} }
func sampled[T any](v T) Result[T]  { return Result[T]{Data: v, Source: types.SourceSample} }

type Service struct {
	gw       Gateway
	cache    cache.Store
	sampler  Sampler
	narrator Narrator
	cfg      Config
	l        logger.Logger
}

func New(gw Gateway, store cache.Store, sampler Sampler, narrator Narrator, cfg Config, l logger.Logger) *Service {
	if cfg.FirstSeason == 0 {
		cfg.FirstSeason = 2018
	}
	if cfg.DefaultSeason < cfg.FirstSeason {
		cfg.DefaultSeason = cfg.FirstSeason
	}
	if cfg.SampleLapCount <= 0 {
		cfg.SampleLapCount = 30
	}
	return &Service{
		gw:       gw,
		cache:    store,
		sampler:  sampler,
		narrator: narrator,
		cfg:      cfg,
		l:        l,
	}
}

// Years lists the seasons the dashboard offers, oldest first.
func (s *Service) Years() []int {
	years := make([]int, 0, s.cfg.DefaultSeason-s.cfg.FirstSeason+1)
	for y := s.cfg.FirstSeason; y <= s.cfg.DefaultSeason; y++ {
		years = append(years, y)
	}
	return years
}

func (s *Service) DefaultSeason() int { return s.cfg.DefaultSeason }

// fallback records that op is served from sample data because of err.
func (s *Service) fallback(ctx context.Context, op string, err error) {
	ctx = wrap.WithAction(wrap.ErrorCtx(ctx, err), types.ActionSampleFallback)
	metrics.RecordFallback(op)
	if err != nil {
		s.l.Warn(ctx, "provider has no data, serving sample", "operation", op, "error", err.Error())
		return
	}
	s.l.Warn(ctx, "provider has no data, serving sample", "operation", op)
}

func memo[T any](ctx context.Context, s *Service, fn func(ctx context.Context) (T, error), parts ...string) (T, error) {
	return cache.Memoize(ctx, s.cache, hasher.Key(parts...), s.cfg.CacheTTL, fn)
}
