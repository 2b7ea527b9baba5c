package battleship

import (
	cerr "github.com/saeidalz13/seabattle/internal/error"
)

// Ship is a straight run of cells starting at from. The to endpoint is
// exclusive: a ship of size n built at (r, c) horizontally ends at (r, c+n).
type Ship struct {
	from Cell
	to   Cell
}

// NewShip validates that from and to share a row or a column and that to
// lies at least one step after from.
func NewShip(from, to Cell) (Ship, error) {
	sameRow := from.Row == to.Row
	sameColumn := from.Column == to.Column

	if sameRow == sameColumn {
		return Ship{}, cerr.ErrInvalidShipGeometry(from.Row, from.Column, to.Row, to.Column)
	}
	if (sameRow && to.Column <= from.Column) || (sameColumn && to.Row <= from.Row) {
		return Ship{}, cerr.ErrInvalidShipGeometry(from.Row, from.Column, to.Row, to.Column)
	}

	return Ship{from: from, to: to}, nil
}

func Vertical(at Cell, size int) Ship {
	return Ship{from: at, to: NewCell(at.Row+size, at.Column)}
}

func Horizontal(at Cell, size int) Ship {
	return Ship{from: at, to: NewCell(at.Row, at.Column+size)}
}

func (sh Ship) From() Cell { return sh.from }
func (sh Ship) To() Cell   { return sh.to }

func (sh Ship) Size() int {
	return max(sh.to.Column-sh.from.Column, sh.to.Row-sh.from.Row)
}

func (sh Ship) IsHorizontal() bool {
	return sh.from.Row == sh.to.Row
}

// Cells returns the occupied cells in ascending order along the ship's axis.
func (sh Ship) Cells() []Cell {
	size := sh.Size()
	if size <= 0 {
		return []Cell{}
	}

	cells := make([]Cell, 0, size)
	for i := 0; i < size; i++ {
		if sh.IsHorizontal() {
			cells = append(cells, NewCell(sh.from.Row, sh.from.Column+i))
		} else {
			cells = append(cells, NewCell(sh.from.Row+i, sh.from.Column))
		}
	}
	return cells
}

func (sh Ship) Contains(c Cell) bool {
	for _, occupied := range sh.Cells() {
		if occupied == c {
			return true
		}
	}
	return false
}

// NeighborCells returns the distinct in-range cells touching the ship,
// excluding the ship's own cells. These are revealed when the ship sinks.
func (sh Ship) NeighborCells() []Cell {
	cells := sh.Cells()
	seen := make(map[Cell]struct{}, len(cells)*3+6)
	for _, c := range cells {
		seen[c] = struct{}{}
	}

	neighbors := make([]Cell, 0, len(cells)*2+6)
	for _, c := range cells {
		for _, n := range c.Neighbors() {
			if _, prs := seen[n]; prs {
				continue
			}
			seen[n] = struct{}{}
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}
