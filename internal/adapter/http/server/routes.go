package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Temutjin2k/lapla/docs"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	setupSwaggerRoutes(a.mux)
	setupMetricsRoute(a.mux)
	setupDashboardRoutes(a.mux, a.routes)
}

// setupDashboardRoutes setups the JSON API and the telemetry replay socket
func setupDashboardRoutes(mux *http.ServeMux, routes *handlers) {
	d := routes.dashboard

	mux.HandleFunc("GET /api/years", d.Years)
	mux.HandleFunc("GET /api/schedule/{year}", d.Schedule)
	mux.HandleFunc("GET /api/sessions/{year}/{round}", d.Sessions)
	mux.HandleFunc("GET /api/drivers/{year}/{round}/{session}", d.Drivers)
	mux.HandleFunc("GET /api/laps/{year}/{round}/{session}", d.Laps)
	mux.HandleFunc("GET /api/telemetry/{year}/{round}/{session}/{driver}/{lap}", d.Telemetry)
	mux.HandleFunc("GET /api/track/{year}/{round}/{session}", d.Track)
	mux.HandleFunc("GET /api/track/{year}/{round}/{session}/map", d.CircuitMap)
	mux.HandleFunc("GET /api/track/{year}/{round}/{session}/map.svg", d.CircuitSVG)
	mux.HandleFunc("GET /api/export/{year}/{round}/{session}", d.Export)
	mux.HandleFunc("GET /api/compare/{year}/{round}/{session}", d.Compare)
	mux.HandleFunc("GET /api/weather/{year}/{round}/{session}", d.Weather)
	mux.HandleFunc("GET /api/fuel/{year}/{round}/{session}/{driver}", d.Fuel)
	mux.HandleFunc("GET /api/performance/{year}/{round}/{session}", d.Performance)
	mux.HandleFunc("GET /api/custom-insights/{year}/{round}/{session}", d.CustomInsights)
	mux.HandleFunc("GET /api/ai-insights/{year}/{round}/{session}", d.AIInsights)

	mux.HandleFunc("GET /ws/telemetry/{year}/{round}/{session}/{driver}/{lap}", routes.replay.Stream) // WebSocket telemetry replay
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName())
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
