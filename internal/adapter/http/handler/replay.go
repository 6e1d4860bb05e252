package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Temutjin2k/lapla/internal/adapter/http/handler/dto"
	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/internal/service/dashboard"
	"github.com/Temutjin2k/lapla/pkg/logger"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/Temutjin2k/lapla/pkg/validator"
	ws "github.com/Temutjin2k/lapla/pkg/wsHub"
)

const maxSpeedUp = 100.0

type TelemetrySource interface {
	Telemetry(ctx context.Context, key models.SessionKey, code string, lap int) dashboard.Result[models.TelemetryData]
}

// Replay streams one lap of telemetry over a websocket.
type Replay struct {
	service  TelemetrySource
	hub      *ws.ConnectionHub
	upgrader websocket.Upgrader
	seasons  dto.Seasons
	speedUp  float64
	l        logger.Logger
}

func NewReplay(service TelemetrySource, hub *ws.ConnectionHub, seasons dto.Seasons, speedUp float64, l logger.Logger) *Replay {
	return &Replay{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		seasons: seasons,
		speedUp: speedUp,
		l:       l,
	}
}

// Stream godoc
// @Summary      Replay lap telemetry over a websocket
// @Description  Sends {"type":"sample",...} frames in time order and a final {"type":"done"} frame.
// @Tags         Telemetry
// @Param        year     path   int     true   "Season"
// @Param        round    path   int     true   "Round number"
// @Param        session  path   string  true   "Session type"
// @Param        driver   path   string  true   "Driver code"
// @Param        lap      path   int     true   "Lap number"
// @Param        speed    query  number  false  "Playback speed-up factor"
// @Success      101
// @Failure      400  {object}  map[string]any
// @Router       /ws/telemetry/{year}/{round}/{session}/{driver}/{lap} [get]
func (h *Replay) Stream(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), types.ActionReplayStarted)

	q := dto.NewLapReq(r)
	v := validator.New()
	q.Validate(v, h.seasons)
	speedUp := h.speedUp
	if raw := r.URL.Query().Get("speed"); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		v.Check(err == nil && f > 0 && f <= maxSpeedUp, "speed", "must be a number between 0 and 100")
		speedUp = f
	}
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}
	ctx = wrap.WithDriver(wrap.WithSession(ctx, q.Key().String()), q.Driver)

	tel := h.service.Telemetry(ctx, q.Key(), q.Driver, q.Lap)

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		h.l.Warn(ctx, "websocket upgrade failed", "error", err.Error())
		return
	}
	// the server's read timeout would otherwise end long replays
	_ = raw.SetReadDeadline(time.Time{})

	conn := ws.NewConn(ctx, raw)
	if err := h.hub.Add(conn); err != nil {
		h.l.Error(ctx, "failed to register websocket connection", err)
		_ = conn.Close()
		return
	}
	defer func() { _ = h.hub.Delete(conn.ID()) }()

	go conn.DrainReads()

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-conn.Done():
		case <-streamCtx.Done():
		}
		cancel()
	}()

	h.l.Info(ctx, "telemetry replay started", "points", tel.Data.Len(), "speed_up", speedUp, "source", tel.Source)

	err = dashboard.Replay(streamCtx, tel.Data, speedUp, tel.Sample(), conn.Send)
	switch {
	case err == nil:
		h.l.Info(wrap.WithAction(ctx, types.ActionReplayFinished), "telemetry replay finished")
	case errors.Is(err, context.Canceled), errors.Is(err, ws.ErrConnClosed):
		h.l.Debug(ctx, "telemetry replay interrupted", "error", err.Error())
	default:
		_ = conn.Send(envelope{"type": "error", "error": Message(err)})
		h.l.Warn(wrap.ErrorCtx(ctx, err), "telemetry replay failed", "error", err.Error())
	}
}
