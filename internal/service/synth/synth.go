// Package synth generates placeholder drivers, laps, telemetry and circuit layouts
// used when the timing data provider has nothing to offer.
package synth

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/Temutjin2k/lapla/internal/domain/models"
	"github.com/Temutjin2k/lapla/internal/domain/types"
)

const (
	DefaultTrackLength = 5000.0

	baseLapTime = 75.0
	hardFromLap = 15

	telemetryPoints = 500
	layoutPoints    = 200

	minLayoutSpeed = 80.0
	maxLayoutSpeed = 330.0
)

// sampleRoster is the fixed list of placeholder drivers.
var sampleRoster = []struct{ code, name, team string }{
	{"VER", "Max Verstappen", "Red Bull Racing"},
	{"LEC", "Charles Leclerc", "Ferrari"},
	{"HAM", "Lewis Hamilton", "Mercedes"},
	{"NOR", "Lando Norris", "McLaren"},
	{"PIA", "Oscar Piastri", "McLaren"},
	{"SAI", "Carlos Sainz", "Ferrari"},
	{"RUS", "George Russell", "Mercedes"},
	{"PER", "Sergio Perez", "Red Bull Racing"},
	{"ALO", "Fernando Alonso", "Aston Martin"},
	{"STR", "Lance Stroll", "Aston Martin"},
}

// Generator is safe for concurrent use; calls share one random source.
type Generator struct {
	TrackLength float64

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator drawing from rng. A nil rng is seeded from the clock.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{
		TrackLength: DefaultTrackLength,
		rng:         rng,
	}
}

// uniform returns a value in [lo, hi). The caller holds g.mu.
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// Drivers returns the ten sample drivers.
func (g *Generator) Drivers() []models.DriverInfo {
	out := make([]models.DriverInfo, 0, len(sampleRoster))
	for _, d := range sampleRoster {
		out = append(out, models.NewDriverInfo(d.code, d.name, d.team))
	}
	return out
}

// Laps generates count laps around a 75 s base time. Compound switches from MEDIUM
// to HARD at lap 15 and tyre life restarts there.
func (g *Generator) Laps(count int) []models.LapData {
	if count <= 0 {
		return []models.LapData{}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	laps := make([]models.LapData, 0, count)
	for n := 1; n <= count; n++ {
		noise := g.uniform(-2, 3)
		lapTime := baseLapTime + noise

		compound := types.CompoundMedium
		tyreLife := n
		if n >= hardFromLap {
			compound = types.CompoundHard
			tyreLife = n - hardFromLap
		}

		laps = append(laps, models.LapData{
			LapNumber:      n,
			LapTime:        models.Float(lapTime),
			Sector1Time:    models.Float(lapTime*0.3 + g.uniform(-0.5, 0.5)),
			Sector2Time:    models.Float(lapTime*0.4 + g.uniform(-0.5, 0.5)),
			Sector3Time:    models.Float(lapTime*0.3 + g.uniform(-0.5, 0.5)),
			IsPersonalBest: n > 5 && noise < -1.5,
			Compound:       models.String(string(compound)),
			TyreLife:       models.Int(tyreLife),
		})
	}
	return laps
}

// Telemetry generates one lap of car channels over a 5 km lap: two straights with DRS
// and corner sections in between.
func (g *Generator) Telemetry() models.TelemetryData {
	n := telemetryPoints
	t := models.TelemetryData{
		Distance: make([]float64, n),
		Speed:    make([]float64, n),
		Throttle: make([]float64, n),
		Brake:    make([]float64, n),
		Gear:     make([]int, n),
		DRS:      make([]int, n),
		Time:     make([]float64, n),
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range n {
		p := float64(i) / float64(n)
		t.Distance[i] = DefaultTrackLength * float64(i) / float64(n-1)
		t.Time[i] = float64(i) * 0.1

		var base, throttle, brake float64
		if onStraight(p) {
			base = 280 + 50*math.Sin(4*math.Pi*p)
			throttle = 95 + g.uniform(-5, 5)
			brake = 0
			t.Gear[i] = clampInt(int(base/40), 6, 8)
		} else {
			base = 120 + 40*math.Sin(8*math.Pi*p)
			throttle = 60 + g.uniform(-10, 15)
			brake = math.Max(0, 70-throttle+g.uniform(-10, 10))
			t.Gear[i] = clampInt(int(base/30), 3, 6)
		}

		t.Speed[i] = math.Max(50, base+g.uniform(-10, 10))
		t.Throttle[i] = clamp(throttle, 0, 100)
		t.Brake[i] = clamp(brake, 0, 100)
		if inDRSZone(p) {
			t.DRS[i] = 1
		}
	}
	return t
}

func onStraight(p float64) bool {
	return (p > 0.1 && p < 0.3) || (p > 0.6 && p < 0.8)
}

func inDRSZone(p float64) bool {
	return (p > 0.1 && p < 0.25) || (p > 0.65 && p < 0.8)
}

// Track generates a closed heart-shaped layout scaled to the nominal track length.
// Speed drops with the turning angle at each point, from 330 km/h on straights to 80 km/h
// in the tightest turn.
func (g *Generator) Track() models.TrackData {
	n := layoutPoints
	xs := make([]float64, 0, n+1)
	ys := make([]float64, 0, n+1)
	for i := range n {
		t := 2 * math.Pi * float64(i) / float64(n)
		s := math.Sin(t)
		xs = append(xs, 16*s*s*s)
		ys = append(ys, 13*math.Cos(t)-5*math.Cos(2*t)-2*math.Cos(3*t)-math.Cos(4*t))
	}
	xs = append(xs, xs[0])
	ys = append(ys, ys[0])

	perimeter := 0.0
	for i := 1; i < len(xs); i++ {
		perimeter += math.Hypot(xs[i]-xs[i-1], ys[i]-ys[i-1])
	}
	length := g.TrackLength
	if length <= 0 {
		length = DefaultTrackLength
	}
	scale := length / perimeter

	track := models.TrackData{
		X:        make([]float64, len(xs)),
		Y:        make([]float64, len(xs)),
		Distance: make([]float64, len(xs)),
		Speed:    make([]float64, len(xs)),
	}
	for i := range xs {
		track.X[i] = xs[i] * scale
		track.Y[i] = ys[i] * scale
		if i > 0 {
			track.Distance[i] = track.Distance[i-1] + math.Hypot(track.X[i]-track.X[i-1], track.Y[i]-track.Y[i-1])
		}
	}

	turns := turningAngles(xs[:n], ys[:n])
	maxTurn := 0.0
	for _, a := range turns {
		maxTurn = math.Max(maxTurn, a)
	}
	for i := range n {
		ratio := 0.0
		if maxTurn > 0 {
			ratio = turns[i] / maxTurn
		}
		track.Speed[i] = maxLayoutSpeed - (maxLayoutSpeed-minLayoutSpeed)*ratio
	}
	track.Speed[n] = track.Speed[0]
	return track
}

// turningAngles returns the absolute heading change at each vertex of a closed polygon.
func turningAngles(xs, ys []float64) []float64 {
	n := len(xs)
	out := make([]float64, n)
	for i := range n {
		prev, next := (i-1+n)%n, (i+1)%n
		h1 := math.Atan2(ys[i]-ys[prev], xs[i]-xs[prev])
		h2 := math.Atan2(ys[next]-ys[i], xs[next]-xs[i])
		d := math.Abs(h2 - h1)
		if d > math.Pi {
			d = 2*math.Pi - d
		}
		out[i] = d
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
