package game

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/connectz/internal/apperror"
)

// Mark is the content of a grid cell. Empty is the neutral mark and never
// belongs to a player.
type Mark uint8

const (
	Empty Mark = iota
	Player1
	Player2
)

// IsPlayer reports whether the mark belongs to one of the two players.
func (m Mark) IsPlayer() bool {
	return m == Player1 || m == Player2
}

func (m Mark) String() string {
	switch m {
	case Player1:
		return "1"
	case Player2:
		return "2"
	default:
		return "-"
	}
}

func toggleMark(current Mark) Mark {
	if current == Player1 {
		return Player2
	}
	return Player1
}

// Config holds the grid dimensions and the length of a winning run.
type Config struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	RunLength int `json:"run_length"`
}

// Validate checks that all dimensions are positive and that a run of
// RunLength fits into at least one of the grid axes.
func (that Config) Validate() error {
	if that.Width <= 0 || that.Height <= 0 || that.RunLength <= 0 {
		return fmt.Errorf("%w: %d %d %d", apperror.ErrMalformedDimensions, that.Width, that.Height, that.RunLength)
	}

	if that.RunLength > max(that.Width, that.Height) {
		return fmt.Errorf("%w: run of %d on a %dx%d grid", apperror.ErrUnwinnableGame, that.RunLength, that.Width, that.Height)
	}

	return nil
}

// Cells returns the number of cells in the grid, saturating at math.MaxInt.
func (that Config) Cells() int {
	if that.Width <= 0 || that.Height <= 0 {
		return 0
	}

	if that.Width > math.MaxInt/that.Height {
		return math.MaxInt
	}

	return that.Width * that.Height
}

// Point is a 0-based grid coordinate. Row 0 is the bottom of a column.
type Point struct {
	Col int `json:"col"`
	Row int `json:"row"`
}
