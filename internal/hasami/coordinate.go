package hasami

import (
	"errors"
	"fmt"
	"strings"
)

// BoardSize is the number of rows and columns on the board.
const BoardSize = 9

const (
	firstRow    = 'a'
	firstColumn = '1'
)

var ErrOutOfRange = errors.New("coordinate is out of range")

// Coordinate is a zero-based (row, column) square on the board.
// Row 0 is "a" (Black's home row), column 0 is "1".
type Coordinate struct {
	Row int
	Col int
}

// ParseCoordinate converts the "letter+digit" notation, e.g. "e5", into a Coordinate.
func ParseCoordinate(notation string) (Coordinate, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrOutOfRange, notation)
	}

	coord := Coordinate{
		Row: int(toLower(notation[0])) - firstRow,
		Col: int(notation[1]) - firstColumn,
	}

	if !coord.OnBoard() {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrOutOfRange, notation)
	}

	return coord, nil
}

// MustParseCoordinate - like ParseCoordinate but panics on bad notation. Used for static tables.
func MustParseCoordinate(notation string) Coordinate {
	coord, err := ParseCoordinate(notation)
	if err != nil {
		panic(err)
	}

	return coord
}

// OnBoard reports whether the coordinate lies inside the 9x9 grid.
func (that Coordinate) OnBoard() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Step returns the neighbouring coordinate in the given direction. The result may be off the board.
func (that Coordinate) Step(dir Direction) Coordinate {
	return Coordinate{Row: that.Row + dir.dRow, Col: that.Col + dir.dCol}
}

func (that Coordinate) String() string {
	if !that.OnBoard() {
		return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
	}

	return string([]byte{byte(firstRow + that.Row), byte(firstColumn + that.Col)})
}

// RowLetter returns the notation letter of the given row index.
func RowLetter(row int) string {
	return string(rune(firstRow + row))
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}

	return b
}

// Direction is a unit step along one axis.
type Direction struct {
	dRow int
	dCol int
}

var (
	Up    = Direction{dRow: -1}
	Down  = Direction{dRow: 1}
	Left  = Direction{dCol: -1}
	Right = Direction{dCol: 1}

	// Orthogonals lists the four directions custodian captures are scanned in.
	Orthogonals = [4]Direction{Up, Down, Left, Right}
)
