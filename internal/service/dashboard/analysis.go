package dashboard

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/internal/service/analytics"
	"github.com/Temutjin2k/lapla/internal/service/circuit"
	"github.com/Temutjin2k/lapla/internal/service/export"
	"github.com/Temutjin2k/lapla/internal/service/insight"
	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
)

// Compare needs at least two distinct drivers.
func (s *Service) Compare(ctx context.Context, key models.SessionKey, codes []string) (Result[models.Comparison], error) {
	codes = normalizeCodes(codes)
	if len(codes) < 2 {
		return Result[models.Comparison]{}, types.ErrNotEnoughDrivers
	}

	laps := s.Laps(ctx, key, codes)
	return Result[models.Comparison]{Data: analytics.Compare(laps.Data), Source: laps.Source}, nil
}

func (s *Service) Fuel(ctx context.Context, key models.SessionKey, code string) Result[models.FuelAnalysis] {
	laps := s.Laps(ctx, key, []string{code})
	var driverLaps []models.LapData
	if len(laps.Data) > 0 {
		driverLaps = laps.Data[0].Laps
	}
	return Result[models.FuelAnalysis]{Data: analytics.Fuel(driverLaps), Source: laps.Source}
}

// Performance computes the metric bundle per driver; no codes means the whole roster.
func (s *Service) Performance(ctx context.Context, key models.SessionKey, codes []string) Result[[]models.PerformanceMetrics] {
	laps := s.Laps(ctx, key, s.resolveCodes(ctx, key, codes))

	out := make([]models.PerformanceMetrics, 0, len(laps.Data))
	for _, d := range laps.Data {
		out = append(out, analytics.Performance(d.DriverCode, d.Laps))
	}
	return Result[[]models.PerformanceMetrics]{Data: out, Source: laps.Source}
}

// CustomInsights picks catalog insights for the session type.
func (s *Service) CustomInsights(key models.SessionKey) models.InsightReport {
	return insight.Select(key.Type)
}

// AIInsights narrates the drivers' metrics, using the language model when available.
func (s *Service) AIInsights(ctx context.Context, key models.SessionKey, codes []string, extra string) Result[models.NarrativeInsights] {
	perf := s.Performance(ctx, key, codes)
	n := s.narrator.Narrate(wrap.WithSession(ctx, key.String()), key.String(), perf.Data, extra)
	return Result[models.NarrativeInsights]{Data: n, Source: perf.Source}
}

// Export is a rendered lap export. Tree is set for JSON, Body otherwise.
type Export struct {
	Format types.ExportFormat
	Tree   map[string]export.DriverExport
	Body   []byte
	Source types.DataSource
}

func (e Export) ContentType() string {
	switch e.Format {
	case types.ExportCSV:
		return "text/csv; charset=utf-8"
	case types.ExportTable:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

func (e Export) Filename(key models.SessionKey) string {
	ext := "txt"
	if e.Format == types.ExportCSV {
		ext = "csv"
	}
	return fmt.Sprintf("lapla_%d_%d_%s.%s", key.Year, key.Round, key.Type, ext)
}

func (s *Service) Export(ctx context.Context, key models.SessionKey, codes []string, format types.ExportFormat) (Export, error) {
	codes = normalizeCodes(codes)
	if err := export.Validate(format, codes); err != nil {
		return Export{}, err
	}

	laps := s.Laps(ctx, key, codes)
	out := Export{Format: format, Source: laps.Source}

	var buf bytes.Buffer
	switch format {
	case types.ExportJSON:
		out.Tree = export.Tree(laps.Data)
		return out, nil
	case types.ExportCSV:
		if err := export.CSV(&buf, laps.Data); err != nil {
			return Export{}, wrap.Error(ctx, fmt.Errorf("write csv: %w", err))
		}
	case types.ExportTable:
		if err := export.Table(&buf, laps.Data); err != nil {
			return Export{}, wrap.Error(ctx, fmt.Errorf("write table: %w", err))
		}
	}
	out.Body = buf.Bytes()
	return out, nil
}

func (s *Service) CircuitMap(ctx context.Context, key models.SessionKey) (Result[models.CircuitMap], error) {
	track := s.Track(ctx, key)
	m, err := circuit.Build(track.Data)
	if err != nil {
		return Result[models.CircuitMap]{}, wrap.Error(ctx, err)
	}
	return Result[models.CircuitMap]{Data: m, Source: track.Source}, nil
}

// CircuitSVG renders the circuit map width pixels wide.
func (s *Service) CircuitSVG(ctx context.Context, key models.SessionKey, width float64) (Result[[]byte], error) {
	m, err := s.CircuitMap(ctx, key)
	if err != nil {
		return Result[[]byte]{}, err
	}

	var buf bytes.Buffer
	if err := circuit.RenderSVG(&buf, m.Data, width); err != nil {
		return Result[[]byte]{}, wrap.Error(ctx, fmt.Errorf("render circuit: %w", err))
	}
	return Result[[]byte]{Data: buf.Bytes(), Source: m.Source}, nil
}
