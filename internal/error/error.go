package error

import "fmt"

func ErrInvalidShipGeometry(fromRow, fromColumn, toRow, toColumn int) error {
	return fmt.Errorf("ship endpoints must share a row or column and span at least one cell\tfrom: (%d, %d)\tto: (%d, %d)", fromRow, fromColumn, toRow, toColumn)
}

func ErrInvalidFleetSpec(spec string) error {
	return fmt.Errorf("fleet spec holds no ships:\t%q", spec)
}

func ErrInvalidFleetEntry(entry string) error {
	return fmt.Errorf("fleet entry must look like h:row,col,size or v:row,col,size:\t%q", entry)
}

func ErrInvalidCoordinates(input string) error {
	return fmt.Errorf("coordinates must be two integers, row then column:\t%q", input)
}

func ErrXorYOutOfGridBound(row, column int) error {
	return fmt.Errorf("incoming row or column is out of grid bound\trow: %d\tcolumn: %d", row, column)
}

func ErrMatchNotExists(matchUuid string) error {
	return fmt.Errorf("match with this uuid does not exist, uuid: %s", matchUuid)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrInvalidMode(mode string) error {
	return fmt.Errorf("invalid console mode: %s", mode)
}
