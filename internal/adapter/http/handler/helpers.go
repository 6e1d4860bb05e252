package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/Temutjin2k/lapla/internal/domain/types"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return errors.New("failed to encode json")
	}

	js = append(js, '\n')

	maps.Copy(w.Header(), headers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// successResponse wraps data in the success envelope. Synthesized payloads carry a source marker.
func successResponse(w http.ResponseWriter, data any, source types.DataSource) error {
	env := envelope{"success": true, "data": data}
	if source != "" {
		env["source"] = source
	}
	return writeJSON(w, http.StatusOK, env, nil)
}

// writeFile sends a raw body, as an attachment when filename is set.
func writeFile(w http.ResponseWriter, contentType, filename string, body []byte) error {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(body)
	return err
}

func GetCode(err error) int {
	switch {
	case IsOneOf(err,
		types.ErrNotEnoughDrivers,
		types.ErrNoDriversSelected,
		types.ErrInvalidExportFormat,
		types.ErrInvalidSessionType,
	):
		return http.StatusBadRequest
	// the dashboard reports missing upstream data in the envelope, not the status
	case IsOneOf(err,
		types.ErrProviderUnavailable,
		types.ErrNotFound,
		types.ErrDecode,
		types.ErrTelemetryUnavailable,
		types.ErrTrackUnavailable,
		types.ErrWeatherUnavailable,
	):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

func IsOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Message returns the client-facing text for err. Unexpected errors are not leaked.
func Message(err error) string {
	if GetCode(err) == http.StatusInternalServerError {
		return "the server encountered a problem and could not process your request"
	}
	for _, target := range []error{
		types.ErrNotEnoughDrivers,
		types.ErrNoDriversSelected,
		types.ErrInvalidExportFormat,
		types.ErrInvalidSessionType,
		types.ErrTelemetryUnavailable,
		types.ErrTrackUnavailable,
		types.ErrWeatherUnavailable,
		types.ErrNotFound,
		types.ErrProviderUnavailable,
		types.ErrDecode,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
