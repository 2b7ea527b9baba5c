package console

import (
	"strings"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	GlyphPlayable = ' '
	GlyphHit      = 'X'
	GlyphMiss     = '·'
	GlyphCovered  = ' '
)

// Glyphs lays the grid out as rows of runes. Cells revealed around a sunk
// ship are shots without a ship, so they are drawn as misses.
func Glyphs(g mb.Grid) [mb.GridDimension][mb.GridDimension]rune {
	var out [mb.GridDimension][mb.GridDimension]rune
	for row := range out {
		for column := range out[row] {
			out[row][column] = GlyphCovered
		}
	}

	for _, c := range g.PlayableCells() {
		out[c.Row][c.Column] = GlyphPlayable
	}
	for _, c := range g.Hits() {
		out[c.Row][c.Column] = GlyphHit
	}
	for _, c := range g.Misses() {
		out[c.Row][c.Column] = GlyphMiss
	}
	return out
}

// RenderGrid returns one line per row, each GridDimension runes wide.
func RenderGrid(g mb.Grid) string {
	glyphs := Glyphs(g)

	var sb strings.Builder
	for _, row := range glyphs {
		for _, r := range row {
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
