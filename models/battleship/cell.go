package battleship

// GridDimension is the side length of a square grid. Change it to resize
// every board in the game.
const GridDimension = 10

const (
	GridSize       = GridDimension * GridDimension
	LastCellOffset = GridDimension - 1
)

type Cell struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func NewCell(row, column int) Cell {
	return Cell{Row: row, Column: column}
}

var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// InRange reports whether both coordinates lie in [0, LastCellOffset].
func (c Cell) InRange() bool {
	return c.Row >= 0 && c.Column >= 0 && c.Row <= LastCellOffset && c.Column <= LastCellOffset
}

// Neighbors returns the in-range cells around c in row-major offset order.
func (c Cell) Neighbors() []Cell {
	neighbors := make([]Cell, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		n := NewCell(c.Row+offset[0], c.Column+offset[1])
		if n.InRange() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// FullGrid returns every cell of the grid in row-major order.
func FullGrid() []Cell {
	cells := make([]Cell, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		cells = append(cells, NewCell(i/GridDimension, i%GridDimension))
	}
	return cells
}
