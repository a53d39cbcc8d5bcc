package entity

import (
	"time"

	"github.com/rocketscienceinc/hasamishogi-backend/internal/hasami"
)

// Game is a stored match: the engine state plus who is playing it.
type Game struct {
	ID        string       `json:"id"`
	Players   []*Player    `json:"players,omitempty"`
	Match     *hasami.Game `json:"match"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func NewGame(id string, players ...*Player) *Game {
	return &Game{
		ID:        id,
		Players:   players,
		Match:     hasami.NewGame(),
		UpdatedAt: time.Now().UTC(),
	}
}

// PlayerFor returns the player controlling the given color, nil if nobody is assigned.
func (that *Game) PlayerFor(color hasami.Color) *Player {
	for _, player := range that.Players {
		if player.Color == color.String() {
			return player
		}
	}

	return nil
}

// ActivePlayer returns the player whose turn it is.
func (that *Game) ActivePlayer() *Player {
	return that.PlayerFor(that.Match.ActivePlayer())
}

// Winner returns the winning player of a finished game.
func (that *Game) Winner() *Player {
	return that.PlayerFor(that.Match.State().Winner())
}

func (that *Game) IsFinished() bool {
	return that.Match.IsFinished()
}
