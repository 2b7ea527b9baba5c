package battleship

import (
	"github.com/google/uuid"
)

// Match keeps every Board snapshot of one game so moves can be undone.
// Snapshots share their grids freely since none of them is ever modified.
type Match struct {
	Uuid    string
	history []Board
}

func NewMatch(first, second Grid) *Match {
	return newMatch(uuid.NewString()[:6], first, second)
}

func newMatch(matchUuid string, first, second Grid) *Match {
	return &Match{
		Uuid:    matchUuid,
		history: []Board{NewBoard(first, second)},
	}
}

// Board returns the latest snapshot.
func (m *Match) Board() Board {
	return m.history[len(m.history)-1]
}

// Shoot applies a shot to the latest snapshot. Nothing is recorded once the
// game has ended.
func (m *Match) Shoot(row, column int) Board {
	current := m.Board()
	if current.GameEnded() {
		return current
	}

	next := current.Shoot(row, column)
	m.history = append(m.history, next)
	return next
}

// Undo drops the latest snapshot. The initial board cannot be undone.
func (m *Match) Undo() bool {
	if len(m.history) == 1 {
		return false
	}
	m.history = m.history[:len(m.history)-1]
	return true
}

// Moves returns how many shots have been recorded.
func (m *Match) Moves() int {
	return len(m.history) - 1
}

func (m *Match) History() []Board {
	return append([]Board(nil), m.history...)
}

// Rematch clears the history and starts over on the same fleets.
func (m *Match) Rematch() Board {
	board := m.history[0].Restart()
	m.history = []Board{board}
	return board
}
