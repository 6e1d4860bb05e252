package dashboard

import (
	"context"
	"time"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
)

const (
	FrameSample = "sample"
	FrameDone   = "done"
)

// SampleFrame is one telemetry point of a replay.
type SampleFrame struct {
	Type     string  `json:"type"`
	Index    int     `json:"index"`
	Time     float64 `json:"time"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
	Throttle float64 `json:"throttle"`
	Brake    float64 `json:"brake"`
	Gear     int     `json:"gear"`
	DRS      int     `json:"drs"`
}

// DoneFrame ends a replay.
type DoneFrame struct {
	Type   string `json:"type"`
	Points int    `json:"points"`
	Sample bool   `json:"sample"`
}

// Replay emits the telemetry points in time order, waiting the recorded gap
// between points divided by speedUp, and finishes with a done frame.
// It stops early when ctx is cancelled or emit fails.
func Replay(ctx context.Context, t models.TelemetryData, speedUp float64, sample bool, emit func(any) error) error {
	if !t.Consistent() {
		return types.ErrTelemetryUnavailable
	}
	if speedUp <= 0 {
		speedUp = 1
	}

	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	for i := 0; i < t.Len(); i++ {
		if i > 0 {
			gap := time.Duration((t.Time[i] - t.Time[i-1]) / speedUp * float64(time.Second))
			if gap > 0 {
				timer.Reset(gap)
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-timer.C:
				}
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		err := emit(SampleFrame{
			Type:     FrameSample,
			Index:    i,
			Time:     t.Time[i],
			Distance: t.Distance[i],
			Speed:    t.Speed[i],
			Throttle: t.Throttle[i],
			Brake:    t.Brake[i],
			Gear:     t.Gear[i],
			DRS:      t.DRS[i],
		})
		if err != nil {
			return err
		}
	}

	return emit(DoneFrame{Type: FrameDone, Points: t.Len(), Sample: sample})
}
