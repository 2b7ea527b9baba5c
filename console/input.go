package console

import (
	"strconv"
	"strings"
	"unicode"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

// ParseCoordinates reads "row column" or "row,column", zero based.
func ParseCoordinates(input string) (int, int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return 0, 0, cerr.ErrInvalidCoordinates(input)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, cerr.ErrInvalidCoordinates(input)
	}
	column, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, cerr.ErrInvalidCoordinates(input)
	}

	if !mb.NewCell(row, column).InRange() {
		return 0, 0, cerr.ErrXorYOutOfGridBound(row, column)
	}
	return row, column, nil
}
