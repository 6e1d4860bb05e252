// Package circuit builds a speed-coloured map of a track layout and renders it as SVG.
package circuit

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dsvg"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
)

const (
	DefaultWidth = 800.0
	margin       = 40.0
	lineWidth    = 6.0
)

// gradient stops from slow to fast.
var gradient = []color.RGBA{
	{0x00, 0x00, 0xff, 0xff}, // blue
	{0x00, 0xc8, 0x00, 0xff}, // green
	{0xff, 0xd7, 0x00, 0xff}, // yellow
	{0xff, 0x00, 0x00, 0xff}, // red
}

// Build turns a track with speeds into coloured segments between consecutive points.
// Without a speed channel every segment gets the slowest colour.
func Build(track models.TrackData) (models.CircuitMap, error) {
	if !track.Consistent() || len(track.X) < 2 {
		return models.CircuitMap{}, types.ErrTrackUnavailable
	}

	speed := track.Speed
	if len(speed) == 0 {
		speed = make([]float64, len(track.X))
	}

	m := models.CircuitMap{
		Points:   make([]models.MapPoint, len(track.X)),
		Segments: make([]models.MapSegment, 0, len(track.X)-1),
		MinSpeed: math.Inf(1),
		MaxSpeed: math.Inf(-1),
		MinX:     math.Inf(1),
		MaxX:     math.Inf(-1),
		MinY:     math.Inf(1),
		MaxY:     math.Inf(-1),
	}
	for i := range track.X {
		m.Points[i] = models.MapPoint{X: track.X[i], Y: track.Y[i], Speed: speed[i]}
		m.MinSpeed = math.Min(m.MinSpeed, speed[i])
		m.MaxSpeed = math.Max(m.MaxSpeed, speed[i])
		m.MinX = math.Min(m.MinX, track.X[i])
		m.MaxX = math.Max(m.MaxX, track.X[i])
		m.MinY = math.Min(m.MinY, track.Y[i])
		m.MaxY = math.Max(m.MaxY, track.Y[i])
	}

	for i := 1; i < len(track.X); i++ {
		s := (speed[i-1] + speed[i]) / 2
		m.Segments = append(m.Segments, models.MapSegment{
			X1:    track.X[i-1],
			Y1:    track.Y[i-1],
			X2:    track.X[i],
			Y2:    track.Y[i],
			Speed: s,
			Color: Hex(Color(normalize(s, m.MinSpeed, m.MaxSpeed))),
		})
	}
	return m, nil
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return math.Min(1, math.Max(0, (v-lo)/(hi-lo)))
}

// Color interpolates the blue-green-yellow-red gradient at t in [0, 1].
func Color(t float64) color.RGBA {
	t = math.Min(1, math.Max(0, t))
	span := float64(len(gradient) - 1)
	i := int(t * span)
	if i >= len(gradient)-1 {
		return gradient[len(gradient)-1]
	}
	f := t*span - float64(i)
	a, b := gradient[i], gradient[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xff}
}

// Hex formats a colour as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RenderSVG draws the map with the y axis pointing up, scaled to width pixels
// plus a margin on every side.
func RenderSVG(w io.Writer, m models.CircuitMap, width float64) error {
	if len(m.Segments) == 0 {
		return types.ErrTrackUnavailable
	}
	if width <= 0 {
		width = DefaultWidth
	}

	spanX := m.MaxX - m.MinX
	spanY := m.MaxY - m.MinY
	if spanX <= 0 && spanY <= 0 {
		return types.ErrTrackUnavailable
	}
	scale := (width - 2*margin) / math.Max(spanX, spanY)
	height := spanY*scale + 2*margin
	imgWidth := spanX*scale + 2*margin

	px := func(x float64) float64 { return margin + (x-m.MinX)*scale }
	py := func(y float64) float64 { return height - margin - (y-m.MinY)*scale }

	dest := draw2dsvg.NewSvg()
	dest.Width = fmt.Sprintf("%d", int(math.Ceil(imgWidth)))
	dest.Height = fmt.Sprintf("%d", int(math.Ceil(height)))
	gc := draw2dsvg.NewGraphicContext(dest)

	gc.SetLineWidth(lineWidth)
	for _, s := range m.Segments {
		c, err := parseHex(s.Color)
		if err != nil {
			return err
		}
		gc.SetStrokeColor(c)
		gc.MoveTo(px(s.X1), py(s.Y1))
		gc.LineTo(px(s.X2), py(s.Y2))
		gc.Stroke()
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "\t")
	return enc.Encode(dest)
}

func parseHex(s string) (color.RGBA, error) {
	var c color.RGBA
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("parse colour %q: %w", s, err)
	}
	c.A = 0xff
	return c, nil
}
