package hasami

import (
	"fmt"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/apperror"
)

// State is the game's position in its lifecycle.
type State uint8

const (
	InProgress State = iota
	BlackWon
	RedWon
)

const (
	stateInProgress = "UNFINISHED"
	stateBlackWon   = "BLACK_WON"
	stateRedWon     = "RED_WON"
)

func (that State) String() string {
	switch that {
	case BlackWon:
		return stateBlackWon
	case RedWon:
		return stateRedWon
	default:
		return stateInProgress
	}
}

// Winner returns the winning color of a terminal state, Empty otherwise.
func (that State) Winner() Color {
	switch that {
	case BlackWon:
		return Black
	case RedWon:
		return Red
	default:
		return Empty
	}
}

func wonBy(color Color) State {
	if color == Black {
		return BlackWon
	}

	return RedWon
}

// Outcome describes what a successful move did to the board.
type Outcome struct {
	Source        Coordinate
	Destination   Coordinate
	Captured      []Coordinate
	CornerCapture bool
	State         State
}

// Game is the authoritative state of one match. It is not safe for concurrent use.
type Game struct {
	board   *Board
	players [2]*Player
	turn    Color
	state   State
}

// NewGame sets up the starting position with Black to move.
func NewGame() *Game {
	return &Game{
		board:   NewBoard(),
		players: [2]*Player{newPlayer(Black), newPlayer(Red)},
		turn:    Black,
		state:   InProgress,
	}
}

func (that *Game) State() State {
	return that.state
}

// IsFinished reports whether the game reached a terminal state.
func (that *Game) IsFinished() bool {
	return that.state != InProgress
}

// ActivePlayer returns the color to move.
func (that *Game) ActivePlayer() Color {
	return that.turn
}

// CapturedCount returns how many pieces of the given color have been removed from the board.
func (that *Game) CapturedCount(color Color) int {
	player := that.player(color)
	if player == nil {
		return 0
	}

	return player.CapturedLost
}

// SquareOccupant returns the color on the square in "letter+digit" notation, Empty if none.
func (that *Game) SquareOccupant(notation string) (Color, error) {
	coord, err := ParseCoordinate(notation)
	if err != nil {
		return Empty, err
	}

	return that.board.At(coord), nil
}

// Board returns a copy of the current board.
func (that *Game) Board() Board {
	return *that.board
}

// MakeMove plays a move given in notation and reports whether it was accepted.
func (that *Game) MakeMove(source, destination string) bool {
	_, err := that.Play(source, destination)

	return err == nil
}

// Play parses both squares and applies the move.
func (that *Game) Play(source, destination string) (Outcome, error) {
	src, err := ParseCoordinate(source)
	if err != nil {
		return Outcome{}, fmt.Errorf("invalid source: %w", err)
	}

	dst, err := ParseCoordinate(destination)
	if err != nil {
		return Outcome{}, fmt.Errorf("invalid destination: %w", err)
	}

	return that.Move(src, dst)
}

// Move validates and applies a move for the active player. A rejected move leaves
// the board, scores and turn untouched.
func (that *Game) Move(src, dst Coordinate) (Outcome, error) {
	if that.IsFinished() {
		return Outcome{}, fmt.Errorf("%w: %s", apperror.ErrGameFinished, that.state)
	}

	if err := ValidateMove(that.board, that.turn, src, dst); err != nil {
		return Outcome{}, fmt.Errorf("illegal move: %w", err)
	}

	that.board.Set(src, Empty)
	that.board.Set(dst, that.turn)

	opponent := that.player(that.turn.Opponent())

	outcome := Outcome{
		Source:      src,
		Destination: dst,
		Captured:    resolveCustodian(that.board, dst, opponent),
	}

	if square, ok := resolveCorner(that.board, dst, opponent); ok {
		outcome.Captured = append(outcome.Captured, square)
		outcome.CornerCapture = true
	}

	if opponent.Defeated() {
		that.state = wonBy(that.turn)
	} else {
		that.advanceTurn()
	}

	outcome.State = that.state

	return outcome, nil
}

// advanceTurn is the only place the active color changes.
func (that *Game) advanceTurn() {
	that.turn = that.turn.Opponent()
}

func (that *Game) player(color Color) *Player {
	switch color {
	case Black:
		return that.players[0]
	case Red:
		return that.players[1]
	default:
		return nil
	}
}

func (that *Game) String() string {
	return that.board.String()
}
