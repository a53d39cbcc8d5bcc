package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/hasami"
)

func TestNewGame(t *testing.T) {
	// Given: two named players
	black := NewPlayer("alice", hasami.Black)
	red := NewPlayer("", hasami.Red)

	// When: a new game is created
	game := NewGame("123", black, red)

	// Then: the match starts with black to play
	assert.Equal(t, "123", game.ID)
	assert.False(t, game.IsFinished())
	assert.Equal(t, black, game.ActivePlayer())
	assert.Nil(t, game.Winner())
	assert.Equal(t, "RED", red.Name)
}

func TestGame_ActivePlayerFollowsTheTurn(t *testing.T) {
	// Given: a new game
	black := NewPlayer("alice", hasami.Black)
	red := NewPlayer("bob", hasami.Red)
	game := NewGame("123", black, red)

	// When: black moves
	require.True(t, game.Match.MakeMove("a5", "d5"))

	// Then: red is the active player
	assert.Equal(t, red, game.ActivePlayer())
}

func TestGame_JSON(t *testing.T) {
	// Given: a game with a move played
	game := NewGame("42", NewPlayer("alice", hasami.Black), NewPlayer("bob", hasami.Red))
	require.True(t, game.Match.MakeMove("a5", "d5"))

	// When: it goes through JSON
	data, err := json.Marshal(game)
	require.NoError(t, err)

	var restored Game
	require.NoError(t, json.Unmarshal(data, &restored))

	// Then: ids, players and position survive
	assert.Equal(t, game.ID, restored.ID)
	assert.Equal(t, game.Players, restored.Players)
	assert.Equal(t, hasami.Red, restored.Match.ActivePlayer())

	occupant, err := restored.Match.SquareOccupant("d5")
	require.NoError(t, err)
	assert.Equal(t, hasami.Black, occupant)
}

func TestPlayer_DisplayName(t *testing.T) {
	assert.Equal(t, "alice (BLACK)", NewPlayer("alice", hasami.Black).DisplayName())
	assert.Equal(t, "RED", NewPlayer("", hasami.Red).DisplayName())
}
