package constellation

// Strategy selects how neighbour candidates are found
type Strategy int

const (
	// GridStrategy scans the 3x3 cell window around each point
	GridStrategy Strategy = iota
	// NaiveStrategy checks every other point, O(N^2) per tick
	NaiveStrategy
)

func (s Strategy) String() string {
	switch s {
	case GridStrategy:
		return "grid"
	case NaiveStrategy:
		return "naive"
	default:
		return "unknown"
	}
}

// Toggle flips between grid and naive.
func (s Strategy) Toggle() Strategy {
	if s == NaiveStrategy {
		return GridStrategy
	}
	return NaiveStrategy
}
