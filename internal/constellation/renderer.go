package constellation

import (
	"image/color"
	"log"
	"math"
	"math/rand"

	"github.com/olivierh59500/constellation-go/internal/config"
)

// Surface is the drawing target the renderer paints on.
type Surface interface {
	Dimensions() (width, height float64)
	Clear()
	DrawCircle(x, y, radius float64, clr color.Color)
	DrawLine(x1, y1, x2, y2 float64, clr color.Color, width float64)
}

// Scheduler calls back once at the next display refresh.
type Scheduler interface {
	RequestFrame(callback func())
}

// State of the render loop
type State int

const (
	Uninitialized State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "uninitialized"
}

// Stats describes the last completed tick
type Stats struct {
	Strategy   Strategy
	Points     int
	Candidates int // Neighbour candidates distance-checked
	Lines      int
	Tick       int64
}

// Renderer drives the per-tick clear, move, connect, draw sequence.
// It is not safe for concurrent use; the host calls it from one loop.
type Renderer struct {
	cfg      config.Config
	surface  Surface
	rng      *rand.Rand
	set      *PointSet
	strategy Strategy
	twinkle  *twinkle
	state    State
	stats    Stats
	tick     int64
	buf      []int
}

// NewRenderer prepares a renderer; nothing is spawned until Start or the first Tick.
func NewRenderer(cfg config.Config, surface Surface, rng *rand.Rand) *Renderer {
	strategy := GridStrategy
	if cfg.Naive {
		strategy = NaiveStrategy
	}
	return &Renderer{
		cfg:      cfg,
		surface:  surface,
		rng:      rng,
		strategy: strategy,
		twinkle:  newTwinkle(cfg.Twinkle, rng.Int63()),
	}
}

// Start initialises state and arms the first frame. Every frame re-arms the
// next one after its tick completes.
func (r *Renderer) Start(s Scheduler) {
	r.initialize()
	var frame func()
	frame = func() {
		r.Tick()
		s.RequestFrame(frame)
	}
	s.RequestFrame(frame)
}

// Resize discards all points and the index and rebuilds them at the current
// surface dimensions.
func (r *Renderer) Resize() {
	if r.state != Running {
		return
	}
	r.initialize()
}

// SetStrategy switches the neighbour strategy and reinitialises.
func (r *Renderer) SetStrategy(s Strategy) {
	r.strategy = s
	if r.state == Running {
		r.initialize()
	}
}

// Strategy returns the active neighbour strategy.
func (r *Renderer) Strategy() Strategy {
	return r.strategy
}

// State returns the loop state.
func (r *Renderer) State() State {
	return r.state
}

// Stats returns counters for the last tick.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// PointSet returns the live point set, nil before initialisation.
func (r *Renderer) PointSet() *PointSet {
	return r.set
}

func (r *Renderer) initialize() {
	w, h := r.surface.Dimensions()
	count := r.cfg.PointCount(w)
	r.set = SpawnPointSet(r.cfg, count, w, h, r.rng)
	r.state = Running
	idx := r.set.Index()
	cols, rows := idx.Dims()
	log.Printf("constellation: %d points on %.0fx%.0f, %dx%d cells of %.0f, %s strategy",
		count, w, h, cols, rows, idx.CellSize(), r.strategy)
}

// Tick runs one frame. Lines are computed from post-move positions so they
// match the circles drawn in the same frame.
//
// A close pair is visited from both ends and so stroked twice. Each stroke is
// capped at MaxOpacity, but the two composite to roughly 1-(1-MaxOpacity)^2,
// about 0.91 at the default cap.
func (r *Renderer) Tick() {
	if r.state != Running {
		r.initialize()
	}
	r.tick++
	stats := Stats{Strategy: r.strategy, Points: r.set.Len(), Tick: r.tick}

	r.surface.Clear()
	r.set.Advance()

	threshold := r.cfg.ConnectDistance
	lineColor := config.PointColor
	for i := range r.set.Points {
		a := &r.set.Points[i]
		r.buf = r.set.Candidates(r.strategy, i, r.buf[:0])
		stats.Candidates += len(r.buf)
		for _, j := range r.buf {
			b := &r.set.Points[j]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d >= threshold {
				continue
			}
			lineColor.A = uint8(Opacity(d, threshold, r.cfg.MaxOpacity) * 255)
			r.surface.DrawLine(a.X, a.Y, b.X, b.Y, lineColor, r.cfg.LineWidth)
			stats.Lines++
		}
	}

	for i := range r.set.Points {
		p := &r.set.Points[i]
		clr := p.Color
		clr.A = uint8(float64(clr.A) * r.twinkle.factor(p.Phase, r.tick))
		r.surface.DrawCircle(p.X, p.Y, p.Radius, clr)
	}

	r.stats = stats
}

// Opacity fades a connection as it nears the threshold, capped at maxOpacity.
func Opacity(distance, threshold, maxOpacity float64) float64 {
	return math.Min(maxOpacity, 1-distance/threshold)
}
