package hasami

import (
	"testing"
)

// boardWith builds an otherwise empty board holding the given pieces.
func boardWith(t *testing.T, pieces map[string]Color) *Board {
	t.Helper()

	board := &Board{}
	for notation, color := range pieces {
		board.Set(MustParseCoordinate(notation), color)
	}

	return board
}

// gameWith builds an in-progress game from a custom position.
func gameWith(t *testing.T, turn Color, pieces map[string]Color, blackLost, redLost int) *Game {
	t.Helper()

	game := NewGame()
	game.board = boardWith(t, pieces)
	game.turn = turn
	game.players[0].CapturedLost = blackLost
	game.players[1].CapturedLost = redLost

	return game
}

func at(notation string) Coordinate {
	return MustParseCoordinate(notation)
}
