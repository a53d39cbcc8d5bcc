package hasami

// resolveCustodian removes every opponent run sandwiched between the piece at dst
// and another piece of the same color, scanning each orthogonal direction once.
// It returns the removed squares.
func resolveCustodian(board *Board, dst Coordinate, opponent *Player) []Coordinate {
	var captured []Coordinate

	for _, dir := range Orthogonals {
		run := sandwichedRun(board, dst, dir)
		if len(run) == 0 {
			continue
		}

		for _, coord := range run {
			board.Set(coord, Empty)
		}
		opponent.lose(len(run))

		captured = append(captured, run...)
	}

	return captured
}

// sandwichedRun walks from dst in one direction collecting contiguous opponent
// pieces. The run counts only if it ends on a piece of the mover's color;
// an empty square or the board edge leaves it standing.
func sandwichedRun(board *Board, dst Coordinate, dir Direction) []Coordinate {
	mover := board.At(dst)
	enemy := mover.Opponent()

	var run []Coordinate
	for cell := dst.Step(dir); cell.OnBoard(); cell = cell.Step(dir) {
		switch board.At(cell) {
		case enemy:
			run = append(run, cell)
		case mover:
			return run
		default:
			return nil
		}
	}

	return nil
}

// corner is a board corner with the two squares that trap it.
type corner struct {
	square Coordinate
	traps  [2]Coordinate
}

var corners = [4]corner{
	{square: MustParseCoordinate("a1"), traps: [2]Coordinate{MustParseCoordinate("b1"), MustParseCoordinate("a2")}},
	{square: MustParseCoordinate("a9"), traps: [2]Coordinate{MustParseCoordinate("a8"), MustParseCoordinate("b9")}},
	{square: MustParseCoordinate("i9"), traps: [2]Coordinate{MustParseCoordinate("h9"), MustParseCoordinate("i8")}},
	{square: MustParseCoordinate("i1"), traps: [2]Coordinate{MustParseCoordinate("i2"), MustParseCoordinate("h1")}},
}

// cornerForTrap finds the corner guarded by dst and the other trap square of that corner.
func cornerForTrap(dst Coordinate) (corner, Coordinate, bool) {
	for _, c := range corners {
		switch dst {
		case c.traps[0]:
			return c, c.traps[1], true
		case c.traps[1]:
			return c, c.traps[0], true
		}
	}

	return corner{}, Coordinate{}, false
}

// resolveCorner captures an opponent piece sitting in a corner once the mover
// holds both trap squares of that corner. Only a move onto a trap square can trigger it.
func resolveCorner(board *Board, dst Coordinate, opponent *Player) (Coordinate, bool) {
	c, pair, ok := cornerForTrap(dst)
	if !ok {
		return Coordinate{}, false
	}

	mover := board.At(dst)
	if board.At(pair) != mover || board.At(c.square) != opponent.Color {
		return Coordinate{}, false
	}

	board.Set(c.square, Empty)
	opponent.lose(1)

	return c.square, true
}
