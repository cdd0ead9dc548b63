package config

import (
	"errors"
	"fmt"
	"image/color"
)

// Window defaults
const (
	WindowWidth  = 1200
	WindowHeight = 800
	TPS          = 60
)

// Constellation tuning
const (
	// ConnectDistance is the distance under which two points get a line.
	ConnectDistance = 125.0
	// CellSize is roughly half of ConnectDistance so most true neighbours
	// land inside the 3x3 cell window.
	CellSize   = 75.0
	MaxOpacity = 0.7
	LineWidth  = 1.0

	PointRadius = 3.0

	MinSpeed = 0.1
	MaxSpeed = 0.35

	MinPoints      = 20
	MaxPoints      = 40
	PixelsPerPoint = 30

	// Twinkle is off by default so points keep a fixed colour.
	Twinkle = 0.0
)

// PointAlpha is the circle alpha, 0.7 opacity.
const PointAlpha uint8 = 178

// PointColor is the RGB shared by points and connecting lines.
var PointColor = color.NRGBA{R: 137, G: 221, B: 247, A: 255}

// Background fills the surface on every clear.
var Background = color.NRGBA{R: 12, G: 18, B: 28, A: 255}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds the runtime-tunable knobs. Zero value is not usable, start from Default.
type Config struct {
	Width, Height int
	TPS           int
	Seed          int64 // 0 means seed from the clock

	ConnectDistance float64
	CellSize        float64
	MaxOpacity      float64
	LineWidth       float64

	PointRadius float64
	MinSpeed    float64
	MaxSpeed    float64

	MinPoints      int
	MaxPoints      int
	PixelsPerPoint float64

	Twinkle   float64
	Naive     bool
	ShowStats bool
}

// Default returns the tuned configuration.
func Default() Config {
	return Config{
		Width:           WindowWidth,
		Height:          WindowHeight,
		TPS:             TPS,
		ConnectDistance: ConnectDistance,
		CellSize:        CellSize,
		MaxOpacity:      MaxOpacity,
		LineWidth:       LineWidth,
		PointRadius:     PointRadius,
		MinSpeed:        MinSpeed,
		MaxSpeed:        MaxSpeed,
		MinPoints:       MinPoints,
		MaxPoints:       MaxPoints,
		PixelsPerPoint:  PixelsPerPoint,
		Twinkle:         Twinkle,
	}
}

// Validate reports the first knob that would break the renderer.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.TPS)
	case c.ConnectDistance <= 0:
		return fmt.Errorf("%w: connect distance %v", ErrInvalid, c.ConnectDistance)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %v", ErrInvalid, c.CellSize)
	case c.MaxOpacity <= 0 || c.MaxOpacity > 1:
		return fmt.Errorf("%w: max opacity %v outside (0,1]", ErrInvalid, c.MaxOpacity)
	case c.PointRadius < 0:
		return fmt.Errorf("%w: point radius %v", ErrInvalid, c.PointRadius)
	case c.MinSpeed < 0 || c.MaxSpeed < c.MinSpeed:
		return fmt.Errorf("%w: speed band [%v,%v)", ErrInvalid, c.MinSpeed, c.MaxSpeed)
	case c.MinPoints < 0 || c.MaxPoints < c.MinPoints:
		return fmt.Errorf("%w: point range [%d,%d]", ErrInvalid, c.MinPoints, c.MaxPoints)
	case c.PixelsPerPoint <= 0:
		return fmt.Errorf("%w: pixels per point %v", ErrInvalid, c.PixelsPerPoint)
	case c.Twinkle < 0 || c.Twinkle > 1:
		return fmt.Errorf("%w: twinkle %v outside [0,1]", ErrInvalid, c.Twinkle)
	}
	return nil
}

// PointCount derives the number of points from the surface width,
// floor(width/PixelsPerPoint) clamped to [MinPoints, MaxPoints].
func (c Config) PointCount(width float64) int {
	n := int(width / c.PixelsPerPoint)
	if n < c.MinPoints {
		n = c.MinPoints
	}
	if n > c.MaxPoints {
		n = c.MaxPoints
	}
	return n
}
