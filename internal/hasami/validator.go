package hasami

import (
	"errors"
	"fmt"
)

var (
	ErrNotOrthogonal = errors.New("move must travel along exactly one row or column")
	ErrWrongOwner    = errors.New("source square does not hold a piece of the active player")
	ErrPathBlocked   = errors.New("path is blocked")
)

// ValidateMove checks a move for the active player without touching the board.
// Checks run in order and stop at the first failure.
func ValidateMove(board *Board, active Color, src, dst Coordinate) error {
	if !src.OnBoard() {
		return fmt.Errorf("%w: source %s", ErrOutOfRange, src)
	}

	if !dst.OnBoard() {
		return fmt.Errorf("%w: destination %s", ErrOutOfRange, dst)
	}

	dir, err := moveDirection(src, dst)
	if err != nil {
		return err
	}

	if board.At(src) != active {
		return fmt.Errorf("%w: %s", ErrWrongOwner, src)
	}

	for cell := src.Step(dir); cell != dst; cell = cell.Step(dir) {
		if board.At(cell) != Empty {
			return fmt.Errorf("%w: %s is occupied", ErrPathBlocked, cell)
		}
	}

	if board.At(dst) != Empty {
		return fmt.Errorf("%w: destination %s is occupied", ErrPathBlocked, dst)
	}

	return nil
}

// moveDirection returns the unit step from src towards dst.
func moveDirection(src, dst Coordinate) (Direction, error) {
	sameRow := src.Row == dst.Row
	sameCol := src.Col == dst.Col

	switch {
	case sameRow && sameCol:
		return Direction{}, fmt.Errorf("%w: %s to itself", ErrNotOrthogonal, src)
	case !sameRow && !sameCol:
		return Direction{}, fmt.Errorf("%w: %s to %s", ErrNotOrthogonal, src, dst)
	case sameRow && dst.Col > src.Col:
		return Right, nil
	case sameRow:
		return Left, nil
	case dst.Row > src.Row:
		return Down, nil
	default:
		return Up, nil
	}
}
