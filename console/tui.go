package console

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mb "github.com/saeidalz13/seabattle/models/battleship"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
	idleStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea front end for one match. The cursor always points
// at a cell of the grid the current player shoots at.
type Model struct {
	match  *mb.Match
	cursor mb.Cell
	status string
}

func NewModel(match *mb.Match) Model {
	return Model{match: match, cursor: mb.NewCell(0, 0)}
}

func (m Model) Cursor() mb.Cell  { return m.cursor }
func (m Model) Status() string   { return m.status }
func (m Model) Match() *mb.Match { return m.match }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.Type == tea.KeyEnter || keyMsg.Type == tea.KeySpace {
		m.shoot()
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case "down", "j":
		m.cursor.Row = min(m.cursor.Row+1, mb.LastCellOffset)
	case "left", "h":
		m.cursor.Column = max(m.cursor.Column-1, 0)
	case "right", "l":
		m.cursor.Column = min(m.cursor.Column+1, mb.LastCellOffset)
	case "u":
		if m.match.Undo() {
			m.status = "move undone"
		} else {
			m.status = "nothing to undo"
		}
	case "r":
		m.match.Rematch()
		m.status = "rematch started"
		log.Printf("match %s: rematch\n", m.match.Uuid)
	}
	return m, nil
}

func (m *Model) shoot() {
	before := m.match.Board()
	if before.GameEnded() {
		m.status = "game over, press r for a rematch"
		return
	}

	shooter := before.CurrentTurn()
	after := m.match.Shoot(m.cursor.Row, m.cursor.Column)
	log.Printf("match %s: %s shot (%d, %d)\n", m.match.Uuid, shooter, m.cursor.Row, m.cursor.Column)

	target := after.Grid(shooter)
	switch {
	case len(target.Shots()) == len(before.Grid(shooter).Shots()):
		m.status = fmt.Sprintf("%s wasted a shot", shooter)
	case containsCell(target.Hits(), m.cursor):
		m.status = fmt.Sprintf("%s hit (%d, %d)", shooter, m.cursor.Row, m.cursor.Column)
	default:
		m.status = fmt.Sprintf("%s missed (%d, %d)", shooter, m.cursor.Row, m.cursor.Column)
	}

	if after.GameEnded() {
		m.status = "game over, press r for a rematch"
		log.Printf("match %s: game ended after %d moves\n", m.match.Uuid, m.match.Moves())
	}
}

func (m Model) View() string {
	board := m.match.Board()
	turn := board.CurrentTurn()

	first := m.renderGrid(board.First(), turn == mb.Player1 && !board.GameEnded())
	second := m.renderGrid(board.Second(), turn == mb.Player2 && !board.GameEnded())

	firstStyle, secondStyle := idleStyle, idleStyle
	if turn == mb.Player1 {
		firstStyle = activeStyle
	} else {
		secondStyle = activeStyle
	}

	grids := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, mb.Player1.String(), firstStyle.Render(first)),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, mb.Player2.String(), secondStyle.Render(second)),
	)

	header := titleStyle.Render(fmt.Sprintf("Sea Battle  match %s  move %d", m.match.Uuid, m.match.Moves()))
	turnLine := fmt.Sprintf("%s to shoot", turn)
	if board.GameEnded() {
		turnLine = "Game over."
	}

	help := helpStyle.Render("arrows/hjkl move  enter/space shoot  u undo  r rematch  q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, turnLine, grids, m.status, help) + "\n"
}

func (m Model) renderGrid(g mb.Grid, withCursor bool) string {
	glyphs := Glyphs(g)

	var sb strings.Builder
	for row := range glyphs {
		for column, r := range glyphs[row] {
			cell := string(r)
			if r == GlyphHit {
				cell = hitStyle.Render(cell)
			}
			if withCursor && m.cursor == mb.NewCell(row, column) {
				cell = cursorStyle.Render(string(r))
			}
			sb.WriteString(cell)
		}
		if row < len(glyphs)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func containsCell(cells []mb.Cell, c mb.Cell) bool {
	for _, other := range cells {
		if other == c {
			return true
		}
	}
	return false
}
