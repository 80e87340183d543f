package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/connectz/internal/config"
	"github.com/rocketscienceinc/connectz/internal/entity"
	"github.com/rocketscienceinc/connectz/internal/usecase"
)

const usageMessage = "connectz: provide one input file"

const longDescription = `Play out a Connect-Z move list and print its outcome code.

The first line of the file holds "width height run-length", every following
line the 1-based column of the next move.

Codes:
  0 draw                 5 illegal row
  1 player 1 wins        6 illegal column
  2 player 2 wins        7 illegal game
  3 incomplete           8 invalid file
  4 illegal continue     9 file error`

type gameRunner interface {
	RunFile(ctx context.Context, path string) (entity.Outcome, error)
}

// NewCommand builds the root command. The outcome code goes to stdout, logs
// go to stderr.
func NewCommand(conf *config.Config, stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "connectz <file>",
		Short:         "Play out a Connect-Z move list",
		Long:          longDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), usageMessage)
				return err
			}

			level := conf.LogLevel
			if verbose {
				level = "debug"
			}

			logger := newLogger(level, conf.LogFormat, stderr)

			return play(cmd.Context(), usecase.NewGameRunner(logger), args[0], cmd.OutOrStdout())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every move to stderr")

	return cmd
}

func play(ctx context.Context, runner gameRunner, path string, out io.Writer) error {
	outcome, err := runner.RunFile(ctx, path)
	if err != nil {
		return fmt.Errorf("could not play %s: %w", path, err)
	}

	if _, err = fmt.Fprintln(out, outcome.Code()); err != nil {
		return fmt.Errorf("could not print outcome: %w", err)
	}

	return nil
}
