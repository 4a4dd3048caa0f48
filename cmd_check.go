package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crillab/countdown/puzzle"
	"github.com/crillab/countdown/solver"
)

func (a *app) checkCmd() *cobra.Command {
	var (
		puzzlePath string
		numbers    []int
		target     int
	)
	cmd := &cobra.Command{
		Use:   "check expression",
		Short: "Checks whether an expression is a valid answer to a puzzle",
		Example: `  countdown check --numbers 25,50,75,100,8,9 --target 952 "(25 + 9) * ((100 + 75) * 8 / 50)"
  countdown check --puzzle puzzle.yaml "100 * 9 + 50 + 2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				p   *puzzle.Puzzle
				err error
			)
			if puzzlePath != "" {
				if cmd.Flags().Changed("numbers") || cmd.Flags().Changed("target") {
					return errors.New("--numbers and --target cannot be used along with --puzzle")
				}
				p, err = puzzle.Load(puzzlePath)
			} else {
				p, err = puzzle.New(numbers, target)
			}
			if err != nil {
				return err
			}
			expr := strings.Join(args, " ")
			t, err := solver.ParseString(expr)
			if err != nil {
				return errors.Wrapf(err, "could not parse %q", expr)
			}
			if err := solver.Check(t, p.Numbers, p.Target); err != nil {
				return err
			}
			a.log.WithField("puzzle", p.String()).Debug("valid answer")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", t, t.Value())
			return err
		},
	}
	cmd.Flags().StringVarP(&puzzlePath, "puzzle", "p", "", "reads numbers and target from this YAML file")
	cmd.Flags().IntSliceVarP(&numbers, "numbers", "n", nil, "comma-separated available numbers")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "number to reach")
	return cmd
}
