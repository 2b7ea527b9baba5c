package battleship

import (
	"strconv"
	"strings"

	cerr "github.com/saeidalz13/seabattle/internal/error"
)

const (
	fleetEntrySeparator = ";"
	fleetFieldSeparator = ","

	orientationHorizontal = "h"
	orientationVertical   = "v"
)

// ClassicFleet is a fixed ten ship layout (4, 3, 3, 2, 2, 2, 1, 1, 1, 1)
// where no two ships touch on a 10x10 grid.
func ClassicFleet() []Ship {
	return []Ship{
		Horizontal(NewCell(0, 0), 4),
		Horizontal(NewCell(0, 6), 3),
		Vertical(NewCell(2, 0), 3),
		Vertical(NewCell(2, 9), 2),
		Horizontal(NewCell(3, 3), 2),
		Horizontal(NewCell(6, 6), 2),
		Horizontal(NewCell(9, 0), 1),
		Vertical(NewCell(7, 3), 1),
		Horizontal(NewCell(9, 9), 1),
		Vertical(NewCell(5, 2), 1),
	}
}

// SingleShipFleet holds one horizontal four cell ship in the top left corner.
func SingleShipFleet() []Ship {
	return []Ship{Horizontal(NewCell(0, 0), 4)}
}

// ParseFleet reads ships from text such as "h:0,0,4;v:2,5,3". Each entry is
// an orientation, then the row, column and size of the ship. Overlapping or
// touching ships are not rejected.
func ParseFleet(spec string) ([]Ship, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, cerr.ErrInvalidFleetSpec(spec)
	}

	entries := strings.Split(spec, fleetEntrySeparator)
	ships := make([]Ship, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		ship, err := parseFleetEntry(entry)
		if err != nil {
			return nil, err
		}
		ships = append(ships, ship)
	}

	if len(ships) == 0 {
		return nil, cerr.ErrInvalidFleetSpec(spec)
	}
	return ships, nil
}

func parseFleetEntry(entry string) (Ship, error) {
	orientation, rest, found := strings.Cut(entry, ":")
	if !found {
		return Ship{}, cerr.ErrInvalidFleetEntry(entry)
	}

	fields := strings.Split(rest, fleetFieldSeparator)
	if len(fields) != 3 {
		return Ship{}, cerr.ErrInvalidFleetEntry(entry)
	}

	var values [3]int
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return Ship{}, cerr.ErrInvalidFleetEntry(entry)
		}
		values[i] = v
	}
	at := NewCell(values[0], values[1])
	size := values[2]

	switch strings.ToLower(strings.TrimSpace(orientation)) {
	case orientationHorizontal:
		return NewShip(at, NewCell(at.Row, at.Column+size))
	case orientationVertical:
		return NewShip(at, NewCell(at.Row+size, at.Column))
	default:
		return Ship{}, cerr.ErrInvalidFleetEntry(entry)
	}
}
