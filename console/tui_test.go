package console

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		model, ok := next.(Model)
		if !ok {
			t.Fatalf("expected Model from Update\tgot: %T", next)
		}
		m = model
	}
	return m
}

func newTestModel() Model {
	return NewModel(mb.NewMatch(mb.NewGrid(mb.SingleShipFleet()), mb.NewGrid(mb.SingleShipFleet())))
}

func TestModelCursorMovement(t *testing.T) {
	tests := []struct {
		name     string
		keys     []tea.Msg
		expected mb.Cell
	}{
		{name: "stays inside top left", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyUp}, runeKey('h')}, expected: mb.NewCell(0, 0)},
		{name: "arrows", keys: []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}}, expected: mb.NewCell(1, 2)},
		{name: "vim keys", keys: []tea.Msg{runeKey('j'), runeKey('j'), runeKey('l'), runeKey('k')}, expected: mb.NewCell(1, 1)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := press(t, newTestModel(), test.keys...)
			if m.Cursor() != test.expected {
				t.Fatalf("expected cursor: %v\tgot: %v", test.expected, m.Cursor())
			}
		})
	}
}

func TestModelCursorStaysInsideBottomRight(t *testing.T) {
	m := newTestModel()
	for i := 0; i < mb.GridDimension+3; i++ {
		m = press(t, m, runeKey('j'), runeKey('l'))
	}
	if m.Cursor() != mb.NewCell(mb.LastCellOffset, mb.LastCellOffset) {
		t.Fatalf("expected cursor at the last cell\tgot: %v", m.Cursor())
	}
}

func TestModelShoot(t *testing.T) {
	m := press(t, newTestModel(), tea.KeyMsg{Type: tea.KeyEnter})

	board := m.Match().Board()
	if len(board.First().Hits()) != 1 {
		t.Fatalf("expected a hit on the first grid\tgot: %v", board.First().Hits())
	}
	if board.CurrentTurn() != mb.Player2 {
		t.Fatalf("expected turn: %s\tgot: %s", mb.Player2, board.CurrentTurn())
	}
	if !strings.Contains(m.Status(), "hit") {
		t.Fatalf("expected a hit status\tgot: %q", m.Status())
	}

	m = press(t, m, runeKey('j'), tea.KeyMsg{Type: tea.KeySpace})
	if len(m.Match().Board().Second().Misses()) != 1 {
		t.Fatalf("expected a miss on the second grid")
	}
	if !strings.Contains(m.Status(), "missed") {
		t.Fatalf("expected a miss status\tgot: %q", m.Status())
	}
}

func TestModelUndoAndRematch(t *testing.T) {
	m := press(t, newTestModel(), runeKey('u'))
	if m.Status() != "nothing to undo" {
		t.Fatalf("expected nothing to undo\tgot: %q", m.Status())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('u'))
	if m.Match().Moves() != 0 {
		t.Fatalf("expected undo to clear the move\tgot: %d", m.Match().Moves())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('r'))
	if m.Match().Moves() != 0 || m.Status() != "rematch started" {
		t.Fatalf("expected a rematch\tgot moves: %d status: %q", m.Match().Moves(), m.Status())
	}
}

func TestModelGameOver(t *testing.T) {
	m := newTestModel()
	for column := 0; column < 4; column++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter}, runeKey('l'))
	}

	if !m.Match().Board().GameEnded() {
		t.Fatalf("expected the game to end")
	}
	if !strings.Contains(m.View(), "Game over.") {
		t.Fatalf("expected game over in view\tgot: %s", m.View())
	}

	moves := m.Match().Moves()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Match().Moves() != moves {
		t.Fatalf("expected no move after the game ended")
	}
}

func TestModelQuit(t *testing.T) {
	_, cmd := newTestModel().Update(runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModelView(t *testing.T) {
	view := newTestModel().View()
	for _, want := range []string{"Player 1", "Player 2", "Player 1 to shoot"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view\tgot: %s", want, view)
		}
	}
}
