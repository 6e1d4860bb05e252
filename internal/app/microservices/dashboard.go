package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Temutjin2k/lapla/config"
	"github.com/Temutjin2k/lapla/internal/adapter/http/server"
	"github.com/Temutjin2k/lapla/internal/adapter/llm"
	"github.com/Temutjin2k/lapla/internal/adapter/openf1"
	repo "github.com/Temutjin2k/lapla/internal/adapter/postgres"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/internal/service/dashboard"
	"github.com/Temutjin2k/lapla/internal/service/insight"
	"github.com/Temutjin2k/lapla/internal/service/synth"
	"github.com/Temutjin2k/lapla/pkg/cache"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/postgres"
	"github.com/Temutjin2k/lapla/pkg/trm"
	ws "github.com/Temutjin2k/lapla/pkg/wsHub"
)

const (
	tierMemory   = "memory"
	tierPostgres = "postgres"

	wsPingInterval = 30 * time.Second
)

type DashboardService struct {
	postgresDB *postgres.PostgreDB
	httpServer *server.API
	hub        *ws.ConnectionHub
	memory     *cache.Memory
	cacheRepo  *repo.CacheRepo
	cfg        config.Config
	log        logger.Logger
}

func NewDashboard(ctx context.Context, cfg config.Config, log logger.Logger) (*DashboardService, error) {
	s := &DashboardService{
		memory: cache.NewMemory(cfg.Cache.MaxEntries),
		hub:    ws.NewConnHub(string(cfg.Mode), log),
		cfg:    cfg,
		log:    log,
	}

	tiered := cache.NewTiered(cfg.Cache.TTL, log).With(tierMemory, s.memory)

	if cfg.Cache.PostgresEnabled {
		postgresDB, err := postgres.New(ctx, cfg.Database)
		if err != nil {
			log.Error(ctx, "Failed to setup database", err)
			return nil, err
		}
		log.Info(wrap.WithAction(ctx, types.ActionDatabaseConnected), "postgres cache tier enabled", "host", cfg.Database.Host)

		s.postgresDB = postgresDB
		s.cacheRepo = repo.NewCacheRepo(postgresDB.Pool, trm.New(postgresDB.Pool))
		tiered.With(tierPostgres, s.cacheRepo)
	}

	gateway := openf1.New(openf1.Config{
		BaseURL:           cfg.Provider.BaseURL,
		Timeout:           cfg.Provider.Timeout,
		RequestsPerSecond: cfg.Provider.RequestsPerSecond,
		Burst:             cfg.Provider.Burst,
	}, tiered, log)

	llmClient := llm.New(llm.Config{
		APIKey:            cfg.LLM.APIKey,
		BaseURL:           cfg.LLM.BaseURL,
		Model:             cfg.LLM.Model,
		Timeout:           cfg.LLM.Timeout,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
		Temperature:       cfg.LLM.Temperature,
	})
	if !llmClient.Configured() {
		log.Warn(ctx, "language model API key not set, insights use templates")
	}

	sampler := synth.New(nil)

	dashboardService := dashboard.New(
		gateway,
		tiered,
		sampler,
		insight.NewNarrator(llmClient, log),
		dashboard.Config{
			FirstSeason:    cfg.Dashboard.FirstSeason,
			DefaultSeason:  cfg.Dashboard.DefaultSeason,
			SampleLapCount: cfg.Dashboard.SampleLapCount,
			CacheTTL:       cfg.Cache.TTL,
		},
		log,
	)

	httpServer, err := server.New(cfg, dashboardService, s.hub, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		s.close(ctx)
		return nil, err
	}
	s.httpServer = httpServer

	return s, nil
}

func (s *DashboardService) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	purgeCtx, stopPurge := context.WithCancel(ctx)
	go s.purgeLoop(purgeCtx)
	go s.hub.KeepAlive(purgeCtx, wsPingInterval)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		stopPurge()
		s.close(ctx)
		s.log.Info(ctx, "dashboard service closed")
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	s.log.Info(ctx, "dashboard service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

// purgeLoop drops expired cache entries from every tier.
func (s *DashboardService) purgeLoop(ctx context.Context) {
	interval := s.cfg.Cache.PurgeInterval
	if interval <= 0 {
		return
	}
	ctx = wrap.WithAction(ctx, types.ActionCachePurged)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n := int64(s.memory.Purge())
			if s.cacheRepo != nil {
				rows, err := s.cacheRepo.Purge(ctx)
				if err != nil {
					s.log.Warn(wrap.ErrorCtx(ctx, err), "failed to purge postgres cache", "error", err.Error())
				}
				n += rows
			}
			if n > 0 {
				s.log.Debug(ctx, "expired cache entries purged", "count", n)
			}
		}
	}
}

func (s *DashboardService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.hub != nil {
		s.hub.Close()
	}

	s.postgresDB.Close()
}
