package game

// isWinningMove checks the column, the row and both diagonals through the
// mark placed at p, in that order, and stops at the first run.
func (that *Game) isWinningMove(p Point) bool {
	windows := []func(Point) []Mark{
		that.columnWindow,
		that.rowWindow,
		that.upwardDiagonal,
		that.downwardDiagonal,
	}

	for _, window := range windows {
		if hasRun(window(p), that.config.RunLength) {
			return true
		}
	}

	return false
}

// hasRun reports whether any runLength consecutive cells of the window hold
// the same player mark.
func hasRun(window []Mark, runLength int) bool {
	if runLength <= 0 {
		return false
	}

	for start := 0; start+runLength <= len(window); start++ {
		if isUniformPlayer(window[start : start+runLength]) {
			return true
		}
	}

	return false
}

func isUniformPlayer(cells []Mark) bool {
	first := cells[0]
	if !first.IsPlayer() {
		return false
	}

	for _, cell := range cells[1:] {
		if cell != first {
			return false
		}
	}

	return true
}
