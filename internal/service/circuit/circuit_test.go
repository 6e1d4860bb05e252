package circuit

import (
	"bytes"
	"image/color"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
	"github.com/Temutjin2k/lapla/internal/service/synth"
)

func TestColor(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, Color(0))
	assert.Equal(t, color.RGBA{0, 200, 0, 255}, Color(1.0/3))
	assert.Equal(t, color.RGBA{255, 215, 0, 255}, Color(2.0/3))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, Color(1))
	assert.Equal(t, Color(1), Color(7))
	assert.Equal(t, Color(0), Color(-1))

	mid := Color(1.0 / 6)
	assert.Equal(t, uint8(100), mid.G)
	assert.InDelta(t, 128, int(mid.B), 1)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#0000ff", Hex(Color(0)))
	c, err := parseHex("#ffd700")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 215, 0, 255}, c)
}

func TestBuild(t *testing.T) {
	track := models.TrackData{
		X:        []float64{0, 10, 10, 0},
		Y:        []float64{0, 0, 10, 10},
		Distance: []float64{0, 10, 20, 30},
		Speed:    []float64{100, 200, 300, 100},
	}
	m, err := Build(track)
	require.NoError(t, err)

	require.Len(t, m.Points, 4)
	require.Len(t, m.Segments, 3)
	assert.Equal(t, 100.0, m.MinSpeed)
	assert.Equal(t, 300.0, m.MaxSpeed)
	assert.Equal(t, 150.0, m.Segments[0].Speed)
	assert.Equal(t, 250.0, m.Segments[1].Speed)
	assert.Equal(t, Hex(Color(0.25)), m.Segments[0].Color)
	assert.Equal(t, Hex(Color(0.75)), m.Segments[1].Color)
	assert.Equal(t, 10.0, m.MaxX)
}

func TestBuild_NoSpeed(t *testing.T) {
	m, err := Build(models.TrackData{X: []float64{0, 1}, Y: []float64{0, 1}, Distance: []float64{0, 1.4}})
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", m.Segments[0].Color)
}

func TestBuild_Invalid(t *testing.T) {
	_, err := Build(models.TrackData{X: []float64{0}, Y: []float64{0}, Distance: []float64{0}})
	assert.ErrorIs(t, err, types.ErrTrackUnavailable)

	_, err = Build(models.TrackData{X: []float64{0, 1}, Y: []float64{0}, Distance: []float64{0, 1}})
	assert.ErrorIs(t, err, types.ErrTrackUnavailable)
}

func TestRenderSVG(t *testing.T) {
	m, err := Build(synth.New(rand.New(rand.NewSource(1))).Track())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, m, 400))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "path")
}

func TestRenderSVG_Empty(t *testing.T) {
	assert.ErrorIs(t, RenderSVG(&bytes.Buffer{}, models.CircuitMap{}, 0), types.ErrTrackUnavailable)
}
