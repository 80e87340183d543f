package entity

import (
	"errors"
	"strconv"

	"github.com/rocketscienceinc/connectz/internal/apperror"
	"github.com/rocketscienceinc/connectz/internal/game"
)

// Outcome is the final classification of a move file. Its value is the code
// the program prints.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomePlayer1Win
	OutcomePlayer2Win
	OutcomeIncomplete
	OutcomeIllegalContinue
	OutcomeIllegalRow
	OutcomeIllegalColumn
	OutcomeIllegalGame
	OutcomeInvalidFile
	OutcomeFileError
)

var outcomeNames = map[Outcome]string{
	OutcomeDraw:            "draw",
	OutcomePlayer1Win:      "player 1 wins",
	OutcomePlayer2Win:      "player 2 wins",
	OutcomeIncomplete:      "incomplete",
	OutcomeIllegalContinue: "illegal continue",
	OutcomeIllegalRow:      "illegal row",
	OutcomeIllegalColumn:   "illegal column",
	OutcomeIllegalGame:     "illegal game",
	OutcomeInvalidFile:     "invalid file",
	OutcomeFileError:       "file error",
}

// Code returns the printed code of the outcome.
func (that Outcome) Code() int {
	return int(that)
}

func (that Outcome) String() string {
	if name, ok := outcomeNames[that]; ok {
		return name
	}

	return "outcome(" + strconv.Itoa(int(that)) + ")"
}

// OutcomeFromWinner returns the win outcome for a player mark.
func OutcomeFromWinner(winner game.Mark) (Outcome, bool) {
	switch winner {
	case game.Player1:
		return OutcomePlayer1Win, true
	case game.Player2:
		return OutcomePlayer2Win, true
	default:
		return OutcomeIncomplete, false
	}
}

// OutcomeFromError maps an application error to its outcome. Unknown errors
// are reported as false.
func OutcomeFromError(err error) (Outcome, bool) {
	switch {
	case errors.Is(err, apperror.ErrSourceUnavailable):
		return OutcomeFileError, true
	case errors.Is(err, apperror.ErrMalformedDimensions), errors.Is(err, apperror.ErrMalformedMove):
		return OutcomeInvalidFile, true
	case errors.Is(err, apperror.ErrUnwinnableGame):
		return OutcomeIllegalGame, true
	case errors.Is(err, apperror.ErrIllegalColumn):
		return OutcomeIllegalColumn, true
	case errors.Is(err, apperror.ErrIllegalRow):
		return OutcomeIllegalRow, true
	case errors.Is(err, apperror.ErrIllegalContinuation):
		return OutcomeIllegalContinue, true
	default:
		return OutcomeFileError, false
	}
}
