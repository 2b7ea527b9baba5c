package battleship

// Grid is one player's board: a fixed set of ships plus every cell fired
// upon so far. A Grid is never modified after construction; Shoot and
// Restart return new values, so older snapshots stay valid.
type Grid struct {
	ships []Ship
	shots map[Cell]struct{}
}

// Creates a grid holding ships with nothing shot yet.
func NewGrid(ships []Ship) Grid {
	return Grid{
		ships: append([]Ship(nil), ships...),
		shots: make(map[Cell]struct{}),
	}
}

// Restart returns a grid with the same ships and an empty shot set.
func (g Grid) Restart() Grid {
	return NewGrid(g.ships)
}

func (g Grid) Ships() []Ship {
	return append([]Ship(nil), g.ships...)
}

func (g Grid) isShot(c Cell) bool {
	_, prs := g.shots[c]
	return prs
}

func (g Grid) isDrowned(ship Ship) bool {
	for _, c := range ship.Cells() {
		if !g.isShot(c) {
			return false
		}
	}
	return true
}

func (g Grid) isOccupied(c Cell) bool {
	for _, ship := range g.ships {
		if ship.Contains(c) {
			return true
		}
	}
	return false
}

// HasAfloat reports whether at least one ship is not drowned yet.
func (g Grid) HasAfloat() bool {
	for _, ship := range g.ships {
		if !g.isDrowned(ship) {
			return true
		}
	}
	return false
}

// IsPlayable reports whether c would be accepted by Shoot.
func (g Grid) IsPlayable(c Cell) bool {
	return c.InRange() && !g.isShot(c) && g.HasAfloat()
}

// The views below walk the grid in row-major order so that results are
// deterministic even though shots are kept in a set.

func (g Grid) Shots() []Cell {
	return g.collect(g.isShot)
}

func (g Grid) Hits() []Cell {
	return g.collect(func(c Cell) bool {
		return g.isShot(c) && g.isOccupied(c)
	})
}

func (g Grid) Misses() []Cell {
	return g.collect(func(c Cell) bool {
		return g.isShot(c) && !g.isOccupied(c)
	})
}

// PlayableCells is empty once every ship is drowned.
func (g Grid) PlayableCells() []Cell {
	if !g.HasAfloat() {
		return []Cell{}
	}
	return g.collect(func(c Cell) bool {
		return !g.isShot(c)
	})
}

func (g Grid) collect(keep func(Cell) bool) []Cell {
	cells := make([]Cell, 0, GridSize)
	for _, c := range FullGrid() {
		if keep(c) {
			cells = append(cells, c)
		}
	}
	return cells
}

// Shoot fires at (row, column). A cell that is not playable leaves the grid
// untouched and the same value is returned. When the shot completes a ship,
// every cell around that ship is added to the shots as well.
func (g Grid) Shoot(row, column int) Grid {
	at := NewCell(row, column)
	if !g.IsPlayable(at) {
		return g
	}

	shots := make(map[Cell]struct{}, len(g.shots)+1)
	for c := range g.shots {
		shots[c] = struct{}{}
	}
	shots[at] = struct{}{}

	for _, c := range g.drownReveal(at) {
		shots[c] = struct{}{}
	}

	return Grid{ships: g.ships, shots: shots}
}

// drownReveal returns the neighbor cells of the ship at c if every other
// cell of that ship has already been shot.
func (g Grid) drownReveal(at Cell) []Cell {
	for _, ship := range g.ships {
		if !ship.Contains(at) {
			continue
		}

		completes := true
		for _, c := range ship.Cells() {
			if c != at && !g.isShot(c) {
				completes = false
				break
			}
		}
		if completes {
			return ship.NeighborCells()
		}
	}
	return nil
}
