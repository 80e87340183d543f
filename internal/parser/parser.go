// Package parser validates the raw lines of a move file: the dimension line
// that opens it and the move lines that follow.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectz/internal/apperror"
	"github.com/rocketscienceinc/connectz/internal/game"
)

const dimensionTokens = 3

var errEmptyToken = errors.New("empty token")

// ParseDimensions reads "width height runLength" separated by single spaces.
// A well-formed line describing a game nobody can win returns
// apperror.ErrUnwinnableGame, anything else malformed returns
// apperror.ErrMalformedDimensions.
func ParseDimensions(line string) (game.Config, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != dimensionTokens {
		return game.Config{}, fmt.Errorf("%w: want %d tokens, got %d", apperror.ErrMalformedDimensions, dimensionTokens, len(tokens))
	}

	values := make([]int, 0, dimensionTokens)
	for _, token := range tokens {
		value, err := parsePositive(token)
		if err != nil {
			return game.Config{}, fmt.Errorf("%w: %w", apperror.ErrMalformedDimensions, err)
		}

		values = append(values, value)
	}

	config := game.Config{Width: values[0], Height: values[1], RunLength: values[2]}
	if err := config.Validate(); err != nil {
		return game.Config{}, err
	}

	return config, nil
}

// ParseMove reads a single 1-based column index.
func ParseMove(line string) (int, error) {
	column, err := parsePositive(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrMalformedMove, err)
	}

	return column, nil
}

// parsePositive accepts a non-empty run of ASCII digits with a value above
// zero. Signs and whitespace are rejected.
func parsePositive(token string) (int, error) {
	if token == "" {
		return 0, errEmptyToken
	}

	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("token %q is not a decimal number", token)
		}
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("token %q: %w", token, err)
	}

	if value < 1 {
		return 0, fmt.Errorf("token %q is not positive", token)
	}

	return value, nil
}
