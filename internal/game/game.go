package game

import (
	"fmt"

	"github.com/rocketscienceinc/connectz/internal/apperror"
)

// Game is the state of a single Connect-Z game. It is not safe for
// concurrent use; every game owns its own instance.
type Game struct {
	config Config

	// columns are stored sparsely and allocated on the first drop, a column
	// only holds filled cells from the bottom up.
	columns  map[int][]Mark
	lastMove Point
	turn     Mark
	winner   Mark
	moves    int
}

// New returns an empty game with Player1 to move. The config must already
// satisfy Config.Validate.
func New(config Config) *Game {
	return &Game{
		config:  config,
		columns: make(map[int][]Mark),
		turn:    Player1,
		winner:  Empty,
	}
}

// ApplyMove drops the current player's mark into the 1-based column, checks
// whether it completed a run and passes the turn to the other player.
//
// The game does not refuse moves once it is won, callers check IsWon first.
// A failed move leaves the game unchanged.
func (that *Game) ApplyMove(column int) error {
	placed, err := that.drop(column)
	if err != nil {
		return err
	}

	// the first completed run decides the game
	if that.winner == Empty && that.isWinningMove(placed) {
		that.winner = that.turn
	}

	that.turn = toggleMark(that.turn)

	return nil
}

func (that *Game) drop(column int) (Point, error) {
	col := column - 1

	if col < 0 || col >= that.config.Width {
		return Point{}, fmt.Errorf("%w: column %d of %d", apperror.ErrIllegalColumn, column, that.config.Width)
	}

	if len(that.columns[col]) >= that.config.Height {
		return Point{}, fmt.Errorf("%w: column %d holds %d marks", apperror.ErrIllegalRow, column, that.config.Height)
	}

	that.columns[col] = append(that.columns[col], that.turn)
	that.moves++
	that.lastMove = Point{Col: col, Row: len(that.columns[col]) - 1}

	return that.lastMove, nil
}

// IsWon reports whether a player has completed a run.
func (that *Game) IsWon() bool {
	return that.winner != Empty
}

// Winner returns the winning player, or Empty while nobody has won.
func (that *Game) Winner() Mark {
	return that.winner
}

// IsComplete reports whether every cell of the grid is filled.
func (that *Game) IsComplete() bool {
	return that.moves == that.config.Cells()
}

// Config returns the dimensions the game was created with.
func (that *Game) Config() Config {
	return that.config
}

// LastMove returns the coordinate of the most recent mark, (0, 0) before the
// first move.
func (that *Game) LastMove() Point {
	return that.lastMove
}

// Turn returns the player who makes the next move.
func (that *Game) Turn() Mark {
	return that.turn
}

// Moves returns the number of accepted moves.
func (that *Game) Moves() int {
	return that.moves
}

// Column returns a copy of the 0-based column, bottom first.
func (that *Game) Column(col int) []Mark {
	column := that.columns[col]

	out := make([]Mark, len(column))
	copy(out, column)

	return out
}

// at returns the mark at (col, row), Empty for unfilled or out of grid cells.
func (that *Game) at(col, row int) Mark {
	if col < 0 || col >= that.config.Width || row < 0 {
		return Empty
	}

	column := that.columns[col]
	if row >= len(column) {
		return Empty
	}

	return column[row]
}
