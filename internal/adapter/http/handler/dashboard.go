package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Temutjin2k/lapla/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/internal/service/dashboard"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/validator"
)

type DashboardService interface {
	Years() []int
	DefaultSeason() int
	Schedule(ctx context.Context, year int) ([]models.ScheduleEvent, error)
	Sessions(ctx context.Context, year, round int) (map[types.SessionType]models.SessionSummary, error)
	Drivers(ctx context.Context, key models.SessionKey) dashboard.Result[[]models.DriverInfo]
	Laps(ctx context.Context, key models.SessionKey, codes []string) dashboard.Result[[]models.DriverLaps]
	Telemetry(ctx context.Context, key models.SessionKey, code string, lap int) dashboard.Result[models.TelemetryData]
	Track(ctx context.Context, key models.SessionKey) dashboard.Result[models.TrackData]
	CircuitMap(ctx context.Context, key models.SessionKey) (dashboard.Result[models.CircuitMap], error)
	CircuitSVG(ctx context.Context, key models.SessionKey, width float64) (dashboard.Result[[]byte], error)
	Export(ctx context.Context, key models.SessionKey, codes []string, format types.ExportFormat) (dashboard.Export, error)
	Compare(ctx context.Context, key models.SessionKey, codes []string) (dashboard.Result[models.Comparison], error)
	Weather(ctx context.Context, key models.SessionKey) (models.WeatherData, error)
	Fuel(ctx context.Context, key models.SessionKey, code string) dashboard.Result[models.FuelAnalysis]
	Performance(ctx context.Context, key models.SessionKey, codes []string) dashboard.Result[[]models.PerformanceMetrics]
	CustomInsights(key models.SessionKey) models.InsightReport
	AIInsights(ctx context.Context, key models.SessionKey, codes []string, extra string) dashboard.Result[models.NarrativeInsights]
}

type Dashboard struct {
	service DashboardService
	seasons dto.Seasons
	l       logger.Logger
}

func NewDashboard(service DashboardService, firstSeason int, l logger.Logger) *Dashboard {
	return &Dashboard{
		service: service,
		seasons: dto.Seasons{First: firstSeason, Last: service.DefaultSeason()},
		l:       l,
	}
}

// respond writes data in the success envelope and logs a failed write.
func (h *Dashboard) respond(ctx context.Context, w http.ResponseWriter, data any, source types.DataSource) {
	if err := successResponse(w, data, source); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}

// fail logs err once and writes the mapped envelope.
func (h *Dashboard) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	code := GetCode(err)
	if code == http.StatusInternalServerError {
		h.l.Error(wrap.ErrorCtx(ctx, err), msg, err)
	} else {
		h.l.Warn(wrap.ErrorCtx(ctx, err), msg, "error", err.Error())
	}
	errorResponse(w, code, Message(err))
}

// session parses and validates the session path parameters plus ?drivers=.
func (h *Dashboard) session(w http.ResponseWriter, r *http.Request) (context.Context, dto.SessionReq, []string, bool) {
	q := dto.NewSessionReq(r)
	codes := dto.ParseDrivers(r)

	v := validator.New()
	q.Validate(v, h.seasons)
	dto.ValidateDrivers(v, codes)
	if !v.Valid() {
		h.l.Warn(r.Context(), "invalid request data", "errors", v.Errors)
		failedValidationResponse(w, v.Errors)
		return nil, q, nil, false
	}

	return wrap.WithSession(r.Context(), q.Key().String()), q, codes, true
}

// Years godoc
// @Summary      Available seasons
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /api/years [get]
func (h *Dashboard) Years(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_years")
	h.respond(ctx, w, h.service.Years(), "")
}

// Schedule godoc
// @Summary      Season schedule
// @Tags         Sessions
// @Produce      json
// @Param        year  path  int  true  "Season"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/schedule/{year} [get]
func (h *Dashboard) Schedule(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_schedule")

	q := dto.NewYearReq(r)
	v := validator.New()
	q.Validate(v, h.seasons)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	events, err := h.service.Schedule(ctx, q.Year)
	if err != nil {
		h.fail(ctx, w, "failed to get schedule", err)
		return
	}
	h.respond(ctx, w, events, "")
}

// Sessions godoc
// @Summary      Sessions of a round
// @Tags         Sessions
// @Produce      json
// @Param        year   path  int  true  "Season"
// @Param        round  path  int  true  "Round number"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/sessions/{year}/{round} [get]
func (h *Dashboard) Sessions(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_sessions")

	q := dto.NewRoundReq(r)
	v := validator.New()
	q.Validate(v, h.seasons)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	sessions, err := h.service.Sessions(ctx, q.Year, q.Round)
	if err != nil {
		h.fail(ctx, w, "failed to get sessions", err)
		return
	}
	h.respond(ctx, w, sessions, "")
}

// Drivers godoc
// @Summary      Driver roster of a session
// @Tags         Drivers
// @Produce      json
// @Param        year     path  int     true  "Season"
// @Param        round    path  int     true  "Round number"
// @Param        session  path  string  true  "Session type"  Enums(FP1, FP2, FP3, SQ, S, Q, R)
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/drivers/{year}/{round}/{session} [get]
func (h *Dashboard) Drivers(w http.ResponseWriter, r *http.Request) {
	ctx, q, _, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_drivers")

	res := h.service.Drivers(ctx, q.Key())
	h.respond(ctx, w, res.Data, res.Source)
}

// Laps godoc
// @Summary      Lap records per driver
// @Tags         Drivers
// @Produce      json
// @Param        year     path   int     true   "Season"
// @Param        round    path   int     true   "Round number"
// @Param        session  path   string  true   "Session type"
// @Param        drivers  query  string  false  "Comma separated driver codes"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/laps/{year}/{round}/{session} [get]
func (h *Dashboard) Laps(w http.ResponseWriter, r *http.Request) {
	ctx, q, codes, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_laps")

	if len(codes) == 0 {
		badRequestResponse(w, "drivers query parameter is required")
		return
	}

	res := h.service.Laps(ctx, q.Key(), codes)
	h.respond(ctx, w, res.Data, res.Source)
}

// Telemetry godoc
// @Summary      Telemetry channels of one lap
// @Tags         Telemetry
// @Produce      json
// @Param        year     path  int     true  "Season"
// @Param        round    path  int     true  "Round number"
// @Param        session  path  string  true  "Session type"
// @Param        driver   path  string  true  "Driver code"
// @Param        lap      path  int     true  "Lap number"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/telemetry/{year}/{round}/{session}/{driver}/{lap} [get]
func (h *Dashboard) Telemetry(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_telemetry")

	q := dto.NewLapReq(r)
	v := validator.New()
	q.Validate(v, h.seasons)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}
	ctx = wrap.WithDriver(wrap.WithSession(ctx, q.Key().String()), q.Driver)

	res := h.service.Telemetry(ctx, q.Key(), q.Driver, q.Lap)
	h.respond(ctx, w, res.Data, res.Source)
}

// Track godoc
// @Summary      Track layout of the session's fastest lap
// @Tags         Track
// @Produce      json
// @Param        year     path  int     true  "Season"
// @Param        round    path  int     true  "Round number"
// @Param        session  path  string  true  "Session type"
// @Success      200  {object}  map[string]any
// @Router       /api/track/{year}/{round}/{session} [get]
func (h *Dashboard) Track(w http.ResponseWriter, r *http.Request) {
	ctx, q, _, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_track")

	res := h.service.Track(ctx, q.Key())
	h.respond(ctx, w, res.Data, res.Source)
}

// CircuitMap godoc
// @Summary      Speed coloured circuit map
// @Tags         Track
// @Produce      json
// @Param        year     path  int     true  "Season"
// @Param        round    path  int     true  "Round number"
// @Param        session  path  string  true  "Session type"
// @Success      200  {object}  map[string]any
// @Router       /api/track/{year}/{round}/{session}/map [get]
func (h *Dashboard) CircuitMap(w http.ResponseWriter, r *http.Request) {
	ctx, q, _, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_circuit_map")

	res, err := h.service.CircuitMap(ctx, q.Key())
	if err != nil {
		h.fail(ctx, w, "failed to build circuit map", err)
		return
	}
	h.respond(ctx, w, res.Data, res.Source)
}

// CircuitSVG godoc
// @Summary      Circuit map as SVG
// @Tags         Track
// @Produce      image/svg+xml
// @Param        year     path   int     true   "Season"
// @Param        round    path   int     true   "Round number"
// @Param        session  path   string  true   "Session type"
// @Param        width    query  int     false  "Image width in pixels"
// @Success      200
// @Router       /api/track/{year}/{round}/{session}/map.svg [get]
func (h *Dashboard) CircuitSVG(w http.ResponseWriter, r *http.Request) {
	ctx, q, _, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_circuit_svg")

	width := 0
	if raw := r.URL.Query().Get("width"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !validator.Between(n, 100, 4000) {
			failedValidationResponse(w, map[string]string{"width": "must be between 100 and 4000"})
			return
		}
		width = n
	}

	res, err := h.service.CircuitSVG(ctx, q.Key(), float64(width))
	if err != nil {
		h.fail(ctx, w, "failed to render circuit map", err)
		return
	}

	w.Header().Set("X-Data-Source", string(res.Source))
	if err := writeFile(w, "image/svg+xml", "", res.Data); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
	}
}

// Export godoc
// @Summary      Export lap data
// @Tags         Export
// @Produce      json
// @Produce      text/csv
// @Param        year     path   int     true   "Season"
// @Param        round    path   int     true   "Round number"
// @Param        session  path   string  true   "Session type"
// @Param        drivers  query  string  true   "Comma separated driver codes"
// @Param        format   query  string  false  "Export format"  Enums(json, csv, table)
// @Success      200
// @Failure      400  {object}  map[string]any
// @Router       /api/export/{year}/{round}/{session} [get]
func (h *Dashboard) Export(w http.ResponseWriter, r *http.Request) {
	ctx, q, codes, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "export_laps")

	format := types.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = types.ExportJSON
	}

	out, err := h.service.Export(ctx, q.Key(), codes, format)
	if err != nil {
		h.fail(ctx, w, "failed to export laps", err)
		return
	}

	if out.Format == types.ExportJSON {
		h.respond(ctx, w, out.Tree, out.Source)
		return
	}

	w.Header().Set("X-Data-Source", string(out.Source))
	if err := writeFile(w, out.ContentType(), out.Filename(q.Key()), out.Body); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		return
	}
	h.l.Info(ctx, "laps exported", "format", out.Format, "drivers", len(codes))
}

// Compare godoc
// @Summary      Compare drivers
// @Tags         Analysis
// @Produce      json
// @Param        year     path   int     true  "Season"
// @Param        round    path   int     true  "Round number"
// @Param        session  path   string  true  "Session type"
// @Param        drivers  query  string  true  "At least two comma separated driver codes"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/compare/{year}/{round}/{session} [get]
func (h *Dashboard) Compare(w http.ResponseWriter, r *http.Request) {
	ctx, q, codes, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "compare_drivers")

	res, err := h.service.Compare(ctx, q.Key(), codes)
	if err != nil {
		h.fail(ctx, w, "failed to compare drivers", err)
		return
	}
	h.respond(ctx, w, res.Data, res.Source)
}

// Weather godoc
// @Summary      Session weather
// @Tags         Analysis
// @Produce      json
// @Param        year     path  int     true  "Season"
// @Param        round    path  int     true  "Round number"
// @Param        session  path  string  true  "Session type"
// @Success      200  {object}  map[string]any
// @Router       /api/weather/{year}/{round}/{session} [get]
func (h *Dashboard) Weather(w http.ResponseWriter, r *http.Request) {
	ctx, q, _, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_weather")

	weather, err := h.service.Weather(ctx, q.Key())
	if err != nil {
		h.fail(ctx, w, "failed to get weather", err)
		return
	}
	h.respond(ctx, w, weather, "")
}

// Fuel godoc
// @Summary      Fuel estimate for a driver
// @Tags         Analysis
// @Produce      json
// @Param        year     path  int     true  "Season"
// @Param        round    path  int     true  "Round number"
// @Param        session  path  string  true  "Session type"
// @Param        driver   path  string  true  "Driver code"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/fuel/{year}/{round}/{session}/{driver} [get]
func (h *Dashboard) Fuel(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_fuel")

	q := dto.NewDriverReq(r)
	v := validator.New()
	q.Validate(v, h.seasons)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}
	ctx = wrap.WithDriver(wrap.WithSession(ctx, q.Key().String()), q.Driver)

	res := h.service.Fuel(ctx, q.Key(), q.Driver)
	h.respond(ctx, w, res.Data, res.Source)
}

// Performance godoc
// @Summary      Performance metrics per driver
// @Tags         Analysis
// @Produce      json
// @Param        year     path   int     true   "Season"
// @Param        round    path   int     true   "Round number"
// @Param        session  path   string  true   "Session type"
// @Param        drivers  query  string  false  "Comma separated driver codes, whole roster when empty"
// @Success      200  {object}  map[string]any
// @Router       /api/performance/{year}/{round}/{session} [get]
func (h *Dashboard) Performance(w http.ResponseWriter, r *http.Request) {
	ctx, q, codes, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_performance")

	res := h.service.Performance(ctx, q.Key(), codes)
	h.respond(ctx, w, res.Data, res.Source)
}

// CustomInsights godoc
// @Summary      Catalog insights for the session type
// @Description  Unrecognised session codes are accepted and get the race insights.
// @Tags         Insights
// @Produce      json
// @Param        year     path  int     true  "Season"
// @Param        round    path  int     true  "Round number"
// @Param        session  path  string  true  "Session type, unknown codes get race insights"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /api/custom-insights/{year}/{round}/{session} [get]
func (h *Dashboard) CustomInsights(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_custom_insights")

	q := dto.NewSessionReq(r)
	v := validator.New()
	q.RoundReq.Validate(v, h.seasons)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}
	ctx = wrap.WithSession(ctx, q.Key().String())

	h.respond(ctx, w, h.service.CustomInsights(q.Key()), "")
}

// AIInsights godoc
// @Summary      Narrative insights from the language model, or templated text
// @Tags         Insights
// @Produce      json
// @Param        year     path   int     true   "Season"
// @Param        round    path   int     true   "Round number"
// @Param        session  path   string  true   "Session type"
// @Param        drivers  query  string  false  "Comma separated driver codes"
// @Param        context  query  string  false  "Extra context for the analysis"
// @Success      200  {object}  map[string]any
// @Router       /api/ai-insights/{year}/{round}/{session} [get]
func (h *Dashboard) AIInsights(w http.ResponseWriter, r *http.Request) {
	ctx, q, codes, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx = wrap.WithAction(ctx, "get_ai_insights")

	v := validator.New()
	extra := dto.ParseContext(v, r)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	res := h.service.AIInsights(ctx, q.Key(), codes, extra)
	h.respond(ctx, w, res.Data, res.Source)
}
