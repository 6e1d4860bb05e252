package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	wrap "github.com/Temutjin2k/lapla/pkg/logger/wrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_InjectsContextFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "lapla", LevelDebug)

	ctx := wrap.WithAction(context.Background(), "get_laps")
	ctx = wrap.WithRequestID(ctx, "req-1")
	ctx = wrap.WithSession(ctx, "2024/5/Q")
	ctx = wrap.WithDriver(ctx, "VER")

	l.Info(ctx, "fetched laps", "count", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "fetched laps", rec["message"])
	assert.Equal(t, "get_laps", rec["action"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "2024/5/Q", rec["session"])
	assert.Equal(t, "VER", rec["driver"])
	assert.Equal(t, "lapla", rec["service"])
	assert.EqualValues(t, 3, rec["count"])
}

func TestLogger_ErrorCarriesWrappedContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "lapla", LevelDebug)

	inner := wrap.WithAction(context.Background(), "openf1_laps")
	err := wrap.Error(inner, errors.New("provider down"))

	l.Error(wrap.ErrorCtx(context.Background(), err), "failed to fetch laps", err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "openf1_laps", rec["action"])
	errGroup, ok := rec["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "provider down", errGroup["msg"])
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "lapla", LevelWarn)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden too")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "shown")
	assert.NotZero(t, buf.Len())
}

func TestValidateLogLevel(t *testing.T) {
	assert.True(t, ValidateLogLevel(LevelInfo))
	assert.False(t, ValidateLogLevel("TRACE"))
}
