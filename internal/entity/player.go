package entity

import "github.com/rocketscienceinc/hasamishogi-backend/internal/hasami"

type Player struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func NewPlayer(name string, color hasami.Color) *Player {
	if name == "" {
		name = color.String()
	}

	return &Player{
		Name:  name,
		Color: color.String(),
	}
}

// DisplayName - "alice (BLACK)", or just the color when the name is the color.
func (that *Player) DisplayName() string {
	if that.Name == that.Color {
		return that.Color
	}

	return that.Name + " (" + that.Color + ")"
}
