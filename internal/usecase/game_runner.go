package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectz/internal/apperror"
	"github.com/rocketscienceinc/connectz/internal/entity"
	"github.com/rocketscienceinc/connectz/internal/game"
	"github.com/rocketscienceinc/connectz/internal/parser"
	"github.com/rocketscienceinc/connectz/internal/repository"
)

var ErrUnclassified = errors.New("error has no outcome")

// GameRunner plays move lists. Every run builds its own game, so one runner
// can serve any number of sequential or concurrent runs.
type GameRunner struct {
	logger *slog.Logger
}

func NewGameRunner(logger *slog.Logger) *GameRunner {
	return &GameRunner{
		logger: logger.With("component", "game_runner"),
	}
}

// RunFile plays the move list stored at path.
func (that *GameRunner) RunFile(ctx context.Context, path string) (entity.Outcome, error) {
	log := that.logger.With("method", "RunFile", "path", path)

	source, err := repository.OpenMoveFile(path)
	if err != nil {
		log.Debug("move file is unavailable", "error", err)
		return entity.OutcomeFileError, nil
	}

	defer func() {
		if err = source.Close(); err != nil {
			log.Error("could not close move file", "error", err)
		}
	}()

	return that.Run(ctx, source)
}

// Run plays the move list read from source and classifies it. Invalid input
// is an outcome, not an error; the error is only set when ctx is done.
func (that *GameRunner) Run(ctx context.Context, source repository.LineSource) (entity.Outcome, error) {
	log := that.logger.With("method", "Run", "game_id", uuid.NewString())

	current, err := that.play(ctx, log, source)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return entity.OutcomeIncomplete, fmt.Errorf("game interrupted: %w", err)
		}

		outcome, ok := entity.OutcomeFromError(err)
		if !ok {
			return outcome, fmt.Errorf("%w: %w", ErrUnclassified, err)
		}

		log.Info("game stopped", "outcome", outcome.String(), "error", err)

		return outcome, nil
	}

	outcome := classify(current)
	log.Info("game finished", "outcome", outcome.String(), "moves", current.Moves())

	return outcome, nil
}

func (that *GameRunner) play(ctx context.Context, log *slog.Logger, source repository.LineSource) (*game.Game, error) {
	// a missing first line is parsed as an empty one
	first, _ := source.Next()
	if err := source.Err(); err != nil {
		return nil, err
	}

	config, err := parser.ParseDimensions(first)
	if err != nil {
		return nil, fmt.Errorf("line 1: %w", err)
	}

	current := game.New(config)
	log.Debug("game started", "width", config.Width, "height", config.Height, "run_length", config.RunLength)

	for {
		if err = ctx.Err(); err != nil {
			return current, err
		}

		line, ok := source.Next()
		if !ok {
			break
		}

		lineNumber := source.Line()

		column, err := parser.ParseMove(line)
		if err != nil {
			return current, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		if current.IsWon() {
			return current, fmt.Errorf("line %d: %w", lineNumber, apperror.ErrIllegalContinuation)
		}

		player := current.Turn()
		if err = current.ApplyMove(column); err != nil {
			return current, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		log.Debug("move applied", "line", lineNumber, "player", player.String(), "column", column, "won", current.IsWon())
	}

	if err = source.Err(); err != nil {
		return current, err
	}

	return current, nil
}

func classify(current *game.Game) entity.Outcome {
	if outcome, ok := entity.OutcomeFromWinner(current.Winner()); ok {
		return outcome
	}

	if current.IsComplete() {
		return entity.OutcomeDraw
	}

	return entity.OutcomeIncomplete
}
