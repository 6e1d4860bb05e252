package types

import "errors"

var (
	ErrProviderUnavailable = errors.New("timing data provider unavailable")
	ErrNotFound            = errors.New("requested item not found")
	ErrDecode              = errors.New("malformed provider response")

	ErrNotEnoughDrivers    = errors.New("At least 2 drivers required for comparison")
	ErrNoDriversSelected   = errors.New("No drivers selected for export")
	ErrInvalidExportFormat = errors.New("Unsupported export format")
	ErrInvalidSessionType  = errors.New("Unknown session type")

	ErrTelemetryUnavailable = errors.New("No telemetry data available")
	ErrTrackUnavailable     = errors.New("No track data available")
	ErrWeatherUnavailable   = errors.New("No weather data available")

	ErrMissingCredential = errors.New("language model API key not configured")
	ErrMalformedInsights = errors.New("language model returned malformed insights")
)
