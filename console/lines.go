package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	commandUndo    = "u"
	commandRematch = "r"
	commandQuit    = "q"
)

// RunLines plays m over plain text: it prints the current player's target
// grid, reads one line and applies it until the game ends, the input runs
// out or the quit command is read.
func RunLines(r io.Reader, w io.Writer, m *mb.Match) error {
	scanner := bufio.NewScanner(r)

	for !m.Board().GameEnded() {
		board := m.Board()
		fmt.Fprintf(w, "%s to shoot\n", board.CurrentTurn())
		fmt.Fprint(w, RenderGrid(board.Grid(board.CurrentTurn())))
		fmt.Fprint(w, "row column> ")

		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case commandQuit:
			return nil
		case commandUndo:
			if !m.Undo() {
				fmt.Fprintln(w, "nothing to undo")
			}
			continue
		case commandRematch:
			m.Rematch()
			continue
		}

		row, column, err := ParseCoordinates(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		m.Shoot(row, column)
	}

	board := m.Board()
	fmt.Fprint(w, RenderGrid(board.First()))
	fmt.Fprintln(w)
	fmt.Fprint(w, RenderGrid(board.Second()))
	fmt.Fprintln(w, "Game over.")
	return nil
}
