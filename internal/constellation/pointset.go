package constellation

import (
	"image/color"
	"math/rand"

	"github.com/olivierh59500/constellation-go/internal/config"
	"github.com/olivierh59500/constellation-go/internal/grid"
)

// Point is a single drifting dot
type Point struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity per tick
	Radius float64
	Color  color.NRGBA
	Cell   grid.Cell // Cell the index currently files this point under
	Phase  float64   // Twinkle noise offset
}

// PointSet owns every point and keeps the proximity index in step with them.
// Point i is filed in the index under id i.
type PointSet struct {
	Points        []Point
	Width, Height float64
	index         *grid.Index
}

// NewPointSet indexes the given points over a width x height surface.
// The slice is owned by the set afterwards.
func NewPointSet(points []Point, width, height, cellSize float64) *PointSet {
	s := &PointSet{
		Points: points,
		Width:  width,
		Height: height,
		index:  grid.New(width, height, cellSize),
	}
	for i := range s.Points {
		p := &s.Points[i]
		p.Cell = s.index.Insert(i, p.X, p.Y)
	}
	return s
}

// SpawnPointSet creates count points at random inset positions with random
// velocities from the configured speed band.
func SpawnPointSet(cfg config.Config, count int, width, height float64, rng *rand.Rand) *PointSet {
	pointColor := config.PointColor
	pointColor.A = config.PointAlpha

	points := make([]Point, count)
	for i := range points {
		points[i] = Point{
			X:      insetCoord(rng, width, cfg.PointRadius),
			Y:      insetCoord(rng, height, cfg.PointRadius),
			VX:     randomVelocity(rng, cfg.MinSpeed, cfg.MaxSpeed),
			VY:     randomVelocity(rng, cfg.MinSpeed, cfg.MaxSpeed),
			Radius: cfg.PointRadius,
			Color:  pointColor,
			Phase:  rng.Float64() * 100,
		}
	}
	return NewPointSet(points, width, height, cfg.CellSize)
}

// insetCoord keeps spawns two radii away from each edge so nothing starts
// stuck against a wall
func insetCoord(rng *rand.Rand, extent, radius float64) float64 {
	span := extent - 4*radius
	if span <= 0 {
		return extent / 2
	}
	return rng.Float64()*span + 2*radius
}

// randomVelocity picks a magnitude in [lo, hi) and a random sign
func randomVelocity(rng *rand.Rand, lo, hi float64) float64 {
	v := rng.Float64()*(hi-lo) + lo
	if rng.Float64() < 0.5 {
		return v
	}
	return -v
}

// Index exposes the proximity index for read-only queries.
func (s *PointSet) Index() *grid.Index {
	return s.index
}

// Len returns the number of points.
func (s *PointSet) Len() int {
	return len(s.Points)
}

// Advance moves every point by one tick. A velocity component is negated when
// the step would carry the point past that boundary, then the point moves and
// is refiled in the index.
func (s *PointSet) Advance() {
	for i := range s.Points {
		p := &s.Points[i]
		if nx := p.X + p.VX; nx > s.Width || nx < 0 {
			p.VX = -p.VX
		}
		if ny := p.Y + p.VY; ny > s.Height || ny < 0 {
			p.VY = -p.VY
		}
		p.X += p.VX
		p.Y += p.VY
		p.Cell = s.index.Reinsert(i, p.Cell, p.X, p.Y)
	}
}

// MoveTo places point i at (x, y) and refiles it. The tick loop never
// teleports points; this is a seam for placing them in tests.
func (s *PointSet) MoveTo(i int, x, y float64) {
	p := &s.Points[i]
	p.X, p.Y = x, y
	p.Cell = s.index.Reinsert(i, p.Cell, x, y)
}

// Candidates appends the ids strategy considers near point i.
func (s *PointSet) Candidates(strategy Strategy, i int, dst []int) []int {
	if strategy == NaiveStrategy {
		for j := range s.Points {
			if j != i {
				dst = append(dst, j)
			}
		}
		return dst
	}
	return s.index.Neighbors(i, s.Points[i].Cell, dst)
}
