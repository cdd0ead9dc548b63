package grid

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

type pos struct{ x, y float64 }

// snapshot copies every bin so two index states can be compared
func snapshot(g *Index) [][]int {
	out := make([][]int, len(g.bins))
	for i, bin := range g.bins {
		b := slices.Clone(bin)
		slices.Sort(b)
		out[i] = b
	}
	return out
}

func sameBins(a, b [][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// TestNew_Dimensions tests column and row counts, including degenerate sizes
func TestNew_Dimensions(t *testing.T) {
	tests := []struct {
		w, h       float64
		cols, rows int
	}{
		{300, 300, 4, 4},
		{1200, 800, 16, 11},
		{301, 299, 5, 4},
		{0, 0, 1, 1},
		{0, 150, 1, 2},
	}
	for _, tt := range tests {
		g := New(tt.w, tt.h, 75)
		cols, rows := g.Dims()
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("New(%v, %v, 75).Dims() = %d,%d, want %d,%d", tt.w, tt.h, cols, rows, tt.cols, tt.rows)
		}
		if g.Len() != 0 {
			t.Errorf("new index has %d members", g.Len())
		}
	}
}

// TestNew_PanicsOnNonPositiveCell tests the cell size precondition
func TestNew_PanicsOnNonPositiveCell(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic for zero cell size")
		}
	}()
	New(100, 100, 0)
}

// TestCellOf_Clamps tests that positions on or past the boundary hash into edge cells
func TestCellOf_Clamps(t *testing.T) {
	g := New(300, 300, 75)
	tests := []struct {
		x, y float64
		want Cell
	}{
		{10, 10, Cell{0, 0}},
		{74.999, 75, Cell{0, 1}},
		{300, 300, Cell{3, 3}},
		{301.5, -0.2, Cell{3, 0}},
		{-40, 1000, Cell{0, 3}},
	}
	for _, tt := range tests {
		if got := g.CellOf(tt.x, tt.y); got != tt.want {
			t.Errorf("CellOf(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// TestInsertRemove_Symmetry tests that insert followed by remove restores every cell
func TestInsertRemove_Symmetry(t *testing.T) {
	g := New(300, 300, 75)
	g.Insert(0, 10, 10)
	g.Insert(1, 20, 20)
	g.Insert(2, 200, 120)
	before := snapshot(g)

	c := g.Insert(3, 15, 12)
	if c != (Cell{0, 0}) {
		t.Fatalf("Insert returned %v, want {0 0}", c)
	}
	g.Remove(3, c)

	if !sameBins(before, snapshot(g)) {
		t.Errorf("Grid differs after insert/remove round trip")
	}
	if g.Len() != 3 {
		t.Errorf("Len() = %d, want 3", g.Len())
	}
}

// TestRemove_SwapAndPop tests removal from the middle of a crowded cell
func TestRemove_SwapAndPop(t *testing.T) {
	g := New(300, 300, 75)
	var c Cell
	for id := 0; id < 5; id++ {
		c = g.Insert(id, 30, 30)
	}
	g.Remove(2, c)

	got := slices.Clone(g.At(c))
	slices.Sort(got)
	if !slices.Equal(got, []int{0, 1, 3, 4}) {
		t.Errorf("At(%v) = %v, want [0 1 3 4]", c, got)
	}
}

// TestRemove_PanicsWhenMissing tests that a double remove is reported
func TestRemove_PanicsWhenMissing(t *testing.T) {
	g := New(300, 300, 75)
	c := g.Insert(7, 10, 10)
	g.Remove(7, c)

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic on second remove")
		}
	}()
	g.Remove(7, c)
}

// TestReinsert_NoMovement tests that an unchanged position neither duplicates nor drops the id
func TestReinsert_NoMovement(t *testing.T) {
	g := New(300, 300, 75)
	c := g.Insert(0, 40, 40)
	g.Insert(1, 50, 50)

	for i := 0; i < 3; i++ {
		c = g.Reinsert(0, c, 40, 40)
	}

	if c != (Cell{0, 0}) {
		t.Errorf("Reinsert moved id to %v", c)
	}
	got := slices.Clone(g.At(c))
	slices.Sort(got)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("At(%v) = %v, want [0 1]", c, got)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

// TestReinsert_CrossesCell tests that moving across a cell edge updates membership
func TestReinsert_CrossesCell(t *testing.T) {
	g := New(300, 300, 75)
	c := g.Insert(0, 74, 10)
	c = g.Reinsert(0, c, 76, 10)

	if c != (Cell{1, 0}) {
		t.Fatalf("Reinsert returned %v, want {1 0}", c)
	}
	if len(g.At(Cell{0, 0})) != 0 {
		t.Errorf("Old cell still holds %v", g.At(Cell{0, 0}))
	}
	if !slices.Equal(g.At(c), []int{0}) {
		t.Errorf("New cell holds %v, want [0]", g.At(c))
	}
}

// TestNeighbors_EndToEnd tests the two-point scenario across a move
func TestNeighbors_EndToEnd(t *testing.T) {
	g := New(300, 300, 75)
	if cols, rows := g.Dims(); cols != 4 || rows != 4 {
		t.Fatalf("Dims() = %d,%d, want 4,4", cols, rows)
	}

	a := g.Insert(0, 10, 10)
	b := g.Insert(1, 20, 20)
	if a != (Cell{0, 0}) || b != (Cell{0, 0}) {
		t.Fatalf("Expected both points in {0 0}, got %v and %v", a, b)
	}

	if got := g.Neighbors(0, a, nil); !slices.Equal(got, []int{1}) {
		t.Errorf("Neighbors(0) = %v, want [1]", got)
	}

	b = g.Reinsert(1, b, 290, 290)
	if b != (Cell{3, 3}) {
		t.Fatalf("Reinsert returned %v, want {3 3}", b)
	}
	if got := g.Neighbors(0, a, nil); len(got) != 0 {
		t.Errorf("Neighbors(0) = %v, want empty", got)
	}
	if d := math.Hypot(290-10, 290-10); d <= 125 {
		t.Errorf("distance %v unexpectedly within threshold", d)
	}
}

// TestNeighbors_ClipsAtEdges tests that corner cells only scan in-range neighbours
func TestNeighbors_ClipsAtEdges(t *testing.T) {
	g := New(300, 300, 75)
	corner := g.Insert(0, 299, 299)
	g.Insert(1, 230, 230) // cell {3 3}
	g.Insert(2, 160, 160) // cell {2 2}
	g.Insert(3, 10, 299)  // cell {0 3}, not adjacent

	got := g.Neighbors(0, corner, nil)
	slices.Sort(got)
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("Neighbors(corner) = %v, want [1 2]", got)
	}
}

// TestNeighbors_MatchesBruteForce tests that every pair closer than one cell is found
func TestNeighbors_MatchesBruteForce(t *testing.T) {
	const (
		size     = 300.0
		cellSize = 75.0
	)
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(50)
		pts := make([]pos, n)
		cells := make([]Cell, n)
		g := New(size, size, cellSize)
		for i := range pts {
			pts[i] = pos{rng.Float64() * size, rng.Float64() * size}
			cells[i] = g.Insert(i, pts[i].x, pts[i].y)
		}

		for i := range pts {
			var want []int
			for j := range pts {
				if i != j && math.Hypot(pts[i].x-pts[j].x, pts[i].y-pts[j].y) < cellSize {
					want = append(want, j)
				}
			}

			var got []int
			for _, j := range g.Neighbors(i, cells[i], nil) {
				if math.Hypot(pts[i].x-pts[j].x, pts[i].y-pts[j].y) < cellSize {
					got = append(got, j)
				}
			}
			slices.Sort(got)

			if !slices.Equal(got, want) {
				t.Fatalf("trial %d point %d: grid %v, brute force %v", trial, i, got, want)
			}
		}
	}
}

func BenchmarkReinsert(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := New(1200, 800, 75)
	const n = 1000
	pts := make([]pos, n)
	cells := make([]Cell, n)
	for i := range pts {
		pts[i] = pos{rng.Float64() * 1200, rng.Float64() * 800}
		cells[i] = g.Insert(i, pts[i].x, pts[i].y)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := i % n
		p := &pts[id]
		p.x = math.Mod(p.x+0.3, 1200)
		cells[id] = g.Reinsert(id, cells[id], p.x, p.y)
	}
}

func BenchmarkNeighbors(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	g := New(1200, 800, 75)
	const n = 1000
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = g.Insert(i, rng.Float64()*1200, rng.Float64()*800)
	}
	var buf []int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := i % n
		buf = g.Neighbors(id, cells[id], buf[:0])
	}
}
