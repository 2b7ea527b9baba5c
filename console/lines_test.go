package console

import (
	"bytes"
	"strings"
	"testing"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

func TestRunLinesPlaysToTheEnd(t *testing.T) {
	match := mb.NewMatch(mb.NewGrid(mb.SingleShipFleet()), mb.NewGrid(mb.SingleShipFleet()))
	input := strings.Join([]string{
		"0 0", "0 0",
		"oops",
		"0 1", "0 1",
		"0,2", "0,2",
		"0 3", "0 3",
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := RunLines(strings.NewReader(input), &out, match); err != nil {
		t.Fatal(err)
	}

	if !match.Board().GameEnded() {
		t.Fatalf("expected the game to end")
	}
	if !strings.Contains(out.String(), "Game over.") {
		t.Fatalf("expected game over banner\tgot: %s", out.String())
	}
	if !strings.Contains(out.String(), "coordinates must be two integers") {
		t.Fatalf("expected the bad line to be reported\tgot: %s", out.String())
	}
}

func TestRunLinesCommands(t *testing.T) {
	match := mb.NewMatch(mb.NewGrid(mb.SingleShipFleet()), mb.NewGrid(mb.SingleShipFleet()))
	input := "u\n5 5\n4 4\nu\nq\n"

	var out bytes.Buffer
	if err := RunLines(strings.NewReader(input), &out, match); err != nil {
		t.Fatal(err)
	}

	if match.Moves() != 1 {
		t.Fatalf("expected 1 move\tgot: %d", match.Moves())
	}
	if !strings.Contains(out.String(), "nothing to undo") {
		t.Fatalf("expected undo on a fresh match to be reported\tgot: %s", out.String())
	}
	if strings.Contains(out.String(), "Game over.") {
		t.Fatalf("expected quit before the game ended")
	}
}

func TestRunLinesStopsAtEndOfInput(t *testing.T) {
	match := mb.NewMatch(mb.NewGrid(mb.SingleShipFleet()), mb.NewGrid(mb.SingleShipFleet()))

	var out bytes.Buffer
	if err := RunLines(strings.NewReader("1 1\nr\n"), &out, match); err != nil {
		t.Fatal(err)
	}
	if match.Moves() != 0 {
		t.Fatalf("expected the rematch to clear moves\tgot: %d", match.Moves())
	}
}
