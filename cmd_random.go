package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/crillab/countdown/puzzle"
)

func (a *app) randomCmd() *cobra.Command {
	var (
		opts      searchOptions
		nbLarge   int
		seed      uint64
		printOnly bool
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Draws a random puzzle, then solves it",
		Example: `  countdown random --large 2
  countdown random --seed 42 --print-only > puzzle.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			p, err := puzzle.NewGenerator(seed).Generate(nbLarge)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"seed":   seed,
				"puzzle": p.String(),
			}).Info("drew puzzle")
			if printOnly {
				return p.Write(cmd.OutOrStdout())
			}
			return a.search(cmd, p, &opts)
		},
	}
	cmd.Flags().IntVarP(&nbLarge, "large", "l", 2, "how many large numbers to draw, between 0 and 4")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed of the random generator (defaults to the current time)")
	cmd.Flags().BoolVar(&printOnly, "print-only", false, "writes the puzzle as YAML instead of solving it")
	opts.addFlags(cmd.Flags())
	return cmd
}
