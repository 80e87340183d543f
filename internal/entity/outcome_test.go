package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/connectz/internal/apperror"
	"github.com/rocketscienceinc/connectz/internal/game"
)

func TestOutcome_Code(t *testing.T) {
	codes := map[Outcome]int{
		OutcomeDraw:            0,
		OutcomePlayer1Win:      1,
		OutcomePlayer2Win:      2,
		OutcomeIncomplete:      3,
		OutcomeIllegalContinue: 4,
		OutcomeIllegalRow:      5,
		OutcomeIllegalColumn:   6,
		OutcomeIllegalGame:     7,
		OutcomeInvalidFile:     8,
		OutcomeFileError:       9,
	}

	for outcome, code := range codes {
		assert.Equal(t, code, outcome.Code(), outcome.String())
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "draw", OutcomeDraw.String())
	assert.Equal(t, "illegal continue", OutcomeIllegalContinue.String())
	assert.Equal(t, "outcome(42)", Outcome(42).String())
}

func TestOutcomeFromWinner(t *testing.T) {
	outcome, ok := OutcomeFromWinner(game.Player1)
	assert.True(t, ok)
	assert.Equal(t, OutcomePlayer1Win, outcome)

	outcome, ok = OutcomeFromWinner(game.Player2)
	assert.True(t, ok)
	assert.Equal(t, OutcomePlayer2Win, outcome)

	_, ok = OutcomeFromWinner(game.Empty)
	assert.False(t, ok)
}

func TestOutcomeFromError(t *testing.T) {
	testCases := []struct {
		err  error
		want Outcome
	}{
		{err: apperror.ErrSourceUnavailable, want: OutcomeFileError},
		{err: apperror.ErrMalformedDimensions, want: OutcomeInvalidFile},
		{err: apperror.ErrMalformedMove, want: OutcomeInvalidFile},
		{err: apperror.ErrUnwinnableGame, want: OutcomeIllegalGame},
		{err: apperror.ErrIllegalColumn, want: OutcomeIllegalColumn},
		{err: apperror.ErrIllegalRow, want: OutcomeIllegalRow},
		{err: apperror.ErrIllegalContinuation, want: OutcomeIllegalContinue},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			// Given: the error wrapped the way the layers above wrap it
			err := fmt.Errorf("line 3: %w", tc.err)

			// When: the error is classified
			outcome, ok := OutcomeFromError(err)

			// Then: it maps to its outcome
			assert.True(t, ok)
			assert.Equal(t, tc.want, outcome)
		})
	}

	t.Run("Unknown error", func(t *testing.T) {
		_, ok := OutcomeFromError(errors.New("boom"))

		assert.False(t, ok)
	})
}
