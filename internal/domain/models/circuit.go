package models

// MapSegment is one coloured piece of the circuit map between two consecutive points.
type MapSegment struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Speed float64 `json:"speed"`
	Color string  `json:"color"`
}

// MapPoint is one vertex of the circuit path.
type MapPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
}

// CircuitMap is a speed-coloured rendering model of a track layout.
type CircuitMap struct {
	Points   []MapPoint   `json:"points"`
	Segments []MapSegment `json:"segments"`
	MinSpeed float64      `json:"min_speed"`
	MaxSpeed float64      `json:"max_speed"`
	MinX     float64      `json:"min_x"`
	MaxX     float64      `json:"max_x"`
	MinY     float64      `json:"min_y"`
	MaxY     float64      `json:"max_y"`
}
