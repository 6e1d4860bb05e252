package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Temutjin2k/lapla/config"
	"github.com/Temutjin2k/lapla/internal/adapter/http/handler"
	"github.com/Temutjin2k/lapla/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/lapla/internal/adapter/http/middleware"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	ws "github.com/Temutjin2k/lapla/pkg/wsHub"
)

const serverIPAddress = "%s:%s"

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes *handlers // routes/handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

type handlers struct {
	health    *handler.Health
	dashboard *handler.Dashboard
	replay    *handler.Replay
}

func New(
	cfg config.Config,
	dashboardService handler.DashboardService,
	hub *ws.ConnectionHub,
	logger logger.Logger,
) (*API, error) {
	if dashboardService == nil {
		return nil, errors.New("dashboard service is required")
	}
	if cfg.Mode != types.DashboardService {
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}

	seasons := dto.Seasons{First: cfg.Dashboard.FirstSeason, Last: dashboardService.DefaultSeason()}
	handlers := &handlers{
		health:    handler.NewHealth(string(cfg.Mode), logger),
		dashboard: handler.NewDashboard(dashboardService, cfg.Dashboard.FirstSeason, logger),
		replay:    handler.NewReplay(dashboardService, hub, seasons, cfg.Dashboard.ReplaySpeedUp, logger),
	}

	api := &API{
		mode: cfg.Mode,

		mux:    http.NewServeMux(),
		routes: handlers,
		m:      middleware.NewMiddleware(logger),
		addr:   fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Server.Port),
		cfg:    cfg,
		log:    logger,
	}

	api.server = &http.Server{
		Addr:         api.addr,
		Handler:      api.withMiddleware(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	api.setupRoutes()

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// Handler exposes the full middleware chain, used by tests.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(string(a.mode))(a.mux))))
}
