package battleship

// Board pairs the two players' grids with whose turn it is. Like Grid it is
// an immutable snapshot.
type Board struct {
	first       Grid
	second      Grid
	currentTurn Player
}

// NewBoard starts a game with Player1 to move.
func NewBoard(first, second Grid) Board {
	return Board{first: first, second: second, currentTurn: Player1}
}

func (b Board) First() Grid         { return b.first }
func (b Board) Second() Grid        { return b.second }
func (b Board) CurrentTurn() Player { return b.currentTurn }

// Grid returns the grid the given player shoots at.
func (b Board) Grid(p Player) Grid {
	if p == Player1 {
		return b.first
	}
	return b.second
}

// GameEnded is true once neither grid has a playable cell left.
func (b Board) GameEnded() bool {
	return len(b.first.PlayableCells()) == 0 && len(b.second.PlayableCells()) == 0
}

// Shoot fires at (row, column) on the current player's grid and passes the
// turn. Shots the grid ignores still pass the turn. An ended game returns b.
func (b Board) Shoot(row, column int) Board {
	if b.GameEnded() {
		return b
	}

	next := Board{first: b.first, second: b.second, currentTurn: b.currentTurn.Other()}
	if b.currentTurn == Player1 {
		next.first = b.first.Shoot(row, column)
	} else {
		next.second = b.second.Shoot(row, column)
	}
	return next
}

// Restart returns a fresh board over the same fleets.
func (b Board) Restart() Board {
	return NewBoard(b.first.Restart(), b.second.Restart())
}
