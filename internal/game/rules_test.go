package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectz/internal/apperror"
)

func TestHasRun(t *testing.T) {
	testCases := []struct {
		name      string
		window    []Mark
		runLength int
		want      bool
	}{
		{name: "Exact run", window: []Mark{Player1, Player1, Player1}, runLength: 3, want: true},
		{name: "Run inside window", window: []Mark{e, Player2, Player2, Player2, e}, runLength: 3, want: true},
		{name: "Run at the end", window: []Mark{Player2, Player1, Player1}, runLength: 2, want: true},
		{name: "Neutral marks are never a run", window: []Mark{e, e, e, e}, runLength: 3, want: false},
		{name: "Broken run", window: []Mark{Player1, Player1, Player2, Player1}, runLength: 3, want: false},
		{name: "Window shorter than run", window: []Mark{Player1, Player1}, runLength: 3, want: false},
		{name: "Empty window", window: nil, runLength: 1, want: false},
		{name: "Single mark", window: []Mark{Player2}, runLength: 1, want: true},
		{name: "Non positive run length", window: []Mark{Player1}, runLength: 0, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, hasRun(tc.window, tc.runLength))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("Winnable games", func(t *testing.T) {
		for _, cfg := range []Config{
			{Width: 3, Height: 3, RunLength: 3},
			{Width: 7, Height: 6, RunLength: 4},
			{Width: 1, Height: 5, RunLength: 5},
			{Width: 5, Height: 1, RunLength: 5},
			{Width: 1, Height: 1, RunLength: 1},
		} {
			assert.NoError(t, cfg.Validate(), "%+v", cfg)
		}
	})

	t.Run("Unwinnable games", func(t *testing.T) {
		for _, cfg := range []Config{
			{Width: 3, Height: 3, RunLength: 4},
			{Width: 2, Height: 2, RunLength: 3},
			{Width: 1, Height: 1, RunLength: 2},
		} {
			assert.ErrorIs(t, cfg.Validate(), apperror.ErrUnwinnableGame, "%+v", cfg)
		}
	})

	t.Run("Non positive dimensions", func(t *testing.T) {
		for _, cfg := range []Config{
			{Width: 0, Height: 3, RunLength: 1},
			{Width: 3, Height: -1, RunLength: 1},
			{Width: 3, Height: 3, RunLength: 0},
		} {
			assert.ErrorIs(t, cfg.Validate(), apperror.ErrMalformedDimensions, "%+v", cfg)
		}
	})

	t.Run("Winnability for all small triples", func(t *testing.T) {
		for width := 1; width <= 6; width++ {
			for height := 1; height <= 6; height++ {
				for runLength := 1; runLength <= 8; runLength++ {
					cfg := Config{Width: width, Height: height, RunLength: runLength}
					err := cfg.Validate()

					if runLength <= max(width, height) {
						require.NoError(t, err, "%+v", cfg)
					} else {
						require.ErrorIs(t, err, apperror.ErrUnwinnableGame, "%+v", cfg)
					}
				}
			}
		}
	})
}

func TestConfig_Cells(t *testing.T) {
	assert.Equal(t, 42, Config{Width: 7, Height: 6}.Cells())
	assert.Equal(t, 0, Config{Width: 0, Height: 6}.Cells())
	assert.Equal(t, math.MaxInt, Config{Width: math.MaxInt / 2, Height: 3}.Cells())
}

func TestMark_String(t *testing.T) {
	assert.Equal(t, "1", Player1.String())
	assert.Equal(t, "2", Player2.String())
	assert.Equal(t, "-", Empty.String())
	assert.False(t, Empty.IsPlayer())
}
