package hasami

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidSnapshot = errors.New("invalid game snapshot")

// snapshot is the stored form of a Game.
type snapshot struct {
	Board    []string       `json:"board"`
	Turn     string         `json:"turn"`
	State    string         `json:"state"`
	Captured map[string]int `json:"captured"`
}

func (that *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshot{
		Board: that.board.rows(),
		Turn:  that.turn.String(),
		State: that.state.String(),
		Captured: map[string]int{
			blackName: that.CapturedCount(Black),
			redName:   that.CapturedCount(Red),
		},
	})
}

func (that *Game) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("failed to unmarshal game: %w", err)
	}

	restored, err := snap.restore()
	if err != nil {
		return err
	}

	*that = *restored

	return nil
}

func (that snapshot) restore() (*Game, error) {
	if len(that.Board) != BoardSize {
		return nil, fmt.Errorf("%w: %d rows", ErrInvalidSnapshot, len(that.Board))
	}

	board := &Board{}
	for row, line := range that.Board {
		markers := []rune(line)
		if len(markers) != BoardSize {
			return nil, fmt.Errorf("%w: row %s has %d cells", ErrInvalidSnapshot, RowLetter(row), len(markers))
		}

		for col, marker := range markers {
			color, ok := colorFromMarker(marker)
			if !ok {
				return nil, fmt.Errorf("%w: unknown marker %q", ErrInvalidSnapshot, marker)
			}
			board.cells[row][col] = color
		}
	}

	turn, ok := ParseColor(that.Turn)
	if !ok {
		return nil, fmt.Errorf("%w: turn %q", ErrInvalidSnapshot, that.Turn)
	}

	state, err := parseState(that.State)
	if err != nil {
		return nil, err
	}

	game := &Game{
		board:   board,
		players: [2]*Player{newPlayer(Black), newPlayer(Red)},
		turn:    turn,
		state:   state,
	}

	for _, player := range game.players {
		lost := that.Captured[player.Color.String()]
		if lost < 0 || lost+board.Count(player.Color) > PiecesPerSide {
			return nil, fmt.Errorf("%w: %s lost %d with %d on board", ErrInvalidSnapshot, player.Color, lost, board.Count(player.Color))
		}
		player.CapturedLost = lost
	}

	settled, err := settledState(game.players)
	if err != nil {
		return nil, err
	}

	if settled != state {
		return nil, fmt.Errorf("%w: state %s does not match the lost pieces", ErrInvalidSnapshot, state)
	}

	return game, nil
}

// settledState is the only state the loss counts allow.
func settledState(players [2]*Player) (State, error) {
	state := InProgress
	for _, player := range players {
		if !player.Defeated() {
			continue
		}

		if state != InProgress {
			return InProgress, fmt.Errorf("%w: both sides defeated", ErrInvalidSnapshot)
		}
		state = wonBy(player.Color.Opponent())
	}

	return state, nil
}

func parseState(name string) (State, error) {
	switch name {
	case stateInProgress:
		return InProgress, nil
	case stateBlackWon:
		return BlackWon, nil
	case stateRedWon:
		return RedWon, nil
	default:
		return InProgress, fmt.Errorf("%w: state %q", ErrInvalidSnapshot, name)
	}
}
