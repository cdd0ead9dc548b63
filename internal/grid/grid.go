// Package grid is a uniform spatial hash over a fixed-size surface.
//
// Members are identified by int ids (typically indices into the caller's flat
// point slice). The index never owns them, it only tracks which cell each id
// sits in. Callers keep the returned Cell next to the id and hand it back on
// Remove and Reinsert, which keeps both O(1) in the cell size.
package grid

import (
	"fmt"
	"math"
)

// Cell is a column/row coordinate in the grid.
type Cell struct {
	Col, Row int
}

// Index is a dense cols x rows table of cells, each an unordered list of ids.
type Index struct {
	cellSize float64
	cols     int
	rows     int
	bins     [][]int // index = row*cols + col
	count    int
}

// New allocates an empty index covering width x height.
// Zero dimensions collapse to a single cell.
func New(width, height, cellSize float64) *Index {
	if cellSize <= 0 {
		panic(fmt.Sprintf("grid: cell size must be positive, got %v", cellSize))
	}
	cols := max(int(math.Ceil(width/cellSize)), 1)
	rows := max(int(math.Ceil(height/cellSize)), 1)
	return &Index{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		bins:     make([][]int, cols*rows),
	}
}

// Dims returns the column and row counts.
func (g *Index) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// CellSize returns the edge length of one cell.
func (g *Index) CellSize() float64 {
	return g.cellSize
}

// Len returns the number of indexed ids.
func (g *Index) Len() int {
	return g.count
}

// CellOf hashes a position to its cell. Positions on or past the nominal
// boundary are clamped into the edge cells.
func (g *Index) CellOf(x, y float64) Cell {
	col := int(math.Floor(x / g.cellSize))
	row := int(math.Floor(y / g.cellSize))
	return Cell{
		Col: min(max(col, 0), g.cols-1),
		Row: min(max(row, 0), g.rows-1),
	}
}

// At returns a view of the ids in c. Callers must not modify it.
func (g *Index) At(c Cell) []int {
	if !g.inBounds(c.Col, c.Row) {
		return nil
	}
	return g.bins[c.Row*g.cols+c.Col]
}

// Insert adds id at (x, y) and returns the cell it was placed in.
func (g *Index) Insert(id int, x, y float64) Cell {
	c := g.CellOf(x, y)
	i := c.Row*g.cols + c.Col
	g.bins[i] = append(g.bins[i], id)
	g.count++
	return c
}

// Remove deletes id from cell c using swap-and-pop.
// Removing an id that is not in c is a caller bug and panics.
func (g *Index) Remove(id int, c Cell) {
	if !g.inBounds(c.Col, c.Row) {
		panic(fmt.Sprintf("grid: remove %d from out of range cell %v", id, c))
	}
	i := c.Row*g.cols + c.Col
	bin := g.bins[i]
	for j, v := range bin {
		if v != id {
			continue
		}
		last := len(bin) - 1
		bin[j] = bin[last]
		g.bins[i] = bin[:last]
		g.count--
		return
	}
	panic(fmt.Sprintf("grid: id %d not indexed at %v", id, c))
}

// Reinsert moves id from old to the cell for its new position (x, y).
// When the cell does not change the membership is left untouched.
func (g *Index) Reinsert(id int, old Cell, x, y float64) Cell {
	c := g.CellOf(x, y)
	if c == old {
		return c
	}
	g.Remove(id, old)
	i := c.Row*g.cols + c.Col
	g.bins[i] = append(g.bins[i], id)
	g.count++
	return c
}

// Neighbors appends to dst every id in the 3x3 block centred on c, except id
// itself, and returns the extended slice. Cells past the grid edge are skipped.
//
// Every id closer than one cell edge is always returned. Ids farther away are
// returned only when they share the window, so with CellSize at roughly half
// the connect distance a few near-threshold pairs are missed. That is accepted.
func (g *Index) Neighbors(id int, c Cell, dst []int) []int {
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			if !g.inBounds(col, row) {
				continue
			}
			for _, other := range g.bins[row*g.cols+col] {
				if other != id {
					dst = append(dst, other)
				}
			}
		}
	}
	return dst
}

func (g *Index) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}
