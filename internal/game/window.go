package game

// Windows are the cells of the four lines through the last move that can
// belong to a run completed by it. A run through p holds p's mark in every
// cell, so each line window stops at the first cell holding anything else and
// never reaches more than RunLength-1 cells to either side of p.

// columnWindow returns the top RunLength marks of the column ending at p.
func (that *Game) columnWindow(p Point) []Mark {
	column := that.columns[p.Col]
	top := min(p.Row+1, len(column))
	start := max(0, top-that.config.RunLength)

	return column[start:top]
}

// rowWindow returns the cells of the row around p, left to right.
func (that *Game) rowWindow(p Point) []Mark {
	return that.lineWindow(p, 1, 0)
}

// upwardDiagonal returns the cells (col+k, row+k) around p.
func (that *Game) upwardDiagonal(p Point) []Mark {
	return that.lineWindow(p, 1, 1)
}

// downwardDiagonal returns the cells (col+k, row-k) around p.
func (that *Game) downwardDiagonal(p Point) []Mark {
	return that.lineWindow(p, 1, -1)
}

// lineWindow walks k from the lower to the upper bound along the direction
// (colStep, rowStep), so k = 0 is p itself.
func (that *Game) lineWindow(p Point, colStep, rowStep int) []Mark {
	limit := that.config.RunLength - 1

	back := that.matchingSteps(p, -colStep, -rowStep, limit)
	forward := that.matchingSteps(p, colStep, rowStep, limit)

	window := make([]Mark, 0, back+forward+1)
	for k := -back; k <= forward; k++ {
		window = append(window, that.at(p.Col+k*colStep, p.Row+k*rowStep))
	}

	return window
}

// matchingSteps counts the cells after p in the direction (colStep, rowStep)
// holding the same mark as p, at most limit of them. Every counted cell is
// filled, so the walk never outgrows the number of moves.
func (that *Game) matchingSteps(p Point, colStep, rowStep, limit int) int {
	mark := that.at(p.Col, p.Row)
	if !mark.IsPlayer() {
		return 0
	}

	steps := 0
	for steps < limit && that.at(p.Col+(steps+1)*colStep, p.Row+(steps+1)*rowStep) == mark {
		steps++
	}

	return steps
}
