package hasami

// PiecesPerSide is how many pieces each player starts with.
const PiecesPerSide = BoardSize

// LossLimit - once a side has lost this many pieces the opponent wins.
const LossLimit = PiecesPerSide - 1

// Player holds a side's identity and the number of its own pieces removed from the board.
type Player struct {
	Color        Color
	CapturedLost int
}

func newPlayer(color Color) *Player {
	return &Player{Color: color}
}

func (that *Player) lose(amount int) {
	that.CapturedLost += amount
}

// Defeated reports whether the player has lost enough pieces to end the game.
func (that *Player) Defeated() bool {
	return that.CapturedLost >= LossLimit
}
