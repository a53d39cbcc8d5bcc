package hasami

import (
	"strings"
)

// Color is the state of a single cell: Empty or occupied by one side.
type Color uint8

const (
	Empty Color = iota
	Black
	Red
)

const (
	blackName = "BLACK"
	redName   = "RED"

	blackMarker = 'B'
	redMarker   = 'R'
	emptyMarker = '.'
)

func (that Color) String() string {
	switch that {
	case Black:
		return blackName
	case Red:
		return redName
	default:
		return ""
	}
}

// Opponent returns the other side. Empty has no opponent.
func (that Color) Opponent() Color {
	switch that {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return Empty
	}
}

// Marker is the single character used for the color on a rendered board.
func (that Color) Marker() rune {
	switch that {
	case Black:
		return blackMarker
	case Red:
		return redMarker
	default:
		return emptyMarker
	}
}

// ParseColor accepts "black"/"red" in any case.
func ParseColor(name string) (Color, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case blackName:
		return Black, true
	case redName:
		return Red, true
	default:
		return Empty, false
	}
}

func colorFromMarker(marker rune) (Color, bool) {
	switch marker {
	case blackMarker:
		return Black, true
	case redMarker:
		return Red, true
	case emptyMarker:
		return Empty, true
	default:
		return Empty, false
	}
}

// Board is the 9x9 grid. Row 0 is "a".
type Board struct {
	cells [BoardSize][BoardSize]Color
}

// NewBoard returns the starting position: Black on row "a", Red on row "i".
func NewBoard() *Board {
	board := &Board{}
	for col := 0; col < BoardSize; col++ {
		board.cells[0][col] = Black
		board.cells[BoardSize-1][col] = Red
	}

	return board
}

// At returns the occupant of an on-board coordinate.
func (that *Board) At(coord Coordinate) Color {
	return that.cells[coord.Row][coord.Col]
}

// Set writes the occupant of an on-board coordinate.
func (that *Board) Set(coord Coordinate, color Color) {
	that.cells[coord.Row][coord.Col] = color
}

// Count returns how many cells hold the given color.
func (that *Board) Count(color Color) int {
	count := 0
	for row := range that.cells {
		for col := range that.cells[row] {
			if that.cells[row][col] == color {
				count++
			}
		}
	}

	return count
}

// Occupied returns the number of non-empty cells.
func (that *Board) Occupied() int {
	return that.Count(Black) + that.Count(Red)
}

func (that *Board) String() string {
	var sb strings.Builder

	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(firstColumn + col))
	}
	sb.WriteByte('\n')

	for row := 0; row < BoardSize; row++ {
		sb.WriteString(RowLetter(row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteRune(that.cells[row][col].Marker())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// rows renders each row as a string of markers, "BBBBBBBBB".
func (that *Board) rows() []string {
	rows := make([]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		line := make([]rune, BoardSize)
		for col := 0; col < BoardSize; col++ {
			line[col] = that.cells[row][col].Marker()
		}
		rows[row] = string(line)
	}

	return rows
}
