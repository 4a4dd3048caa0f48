package main

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/crillab/countdown/metrics"
	"github.com/crillab/countdown/puzzle"
	"github.com/crillab/countdown/report"
	"github.com/crillab/countdown/solver"
)

// searchOptions are the options of the commands that run a search.
type searchOptions struct {
	timeout     time.Duration
	format      string
	metricsFile string
}

func (o *searchOptions) addFlags(fs *pflag.FlagSet) {
	fs.DurationVar(&o.timeout, "timeout", 0, "stops the search after this duration and prints partial results (0 means no limit)")
	fs.StringVarP(&o.format, "format", "f", "text", "output format, text or yaml")
	fs.StringVar(&o.metricsFile, "metrics-file", "", "if set, writes search metrics to this file in the Prometheus text format")
}

func (o *searchOptions) validate() error {
	if o.format != "text" && o.format != "yaml" {
		return errors.Errorf("invalid output format %q", o.format)
	}
	if o.timeout < 0 {
		return errors.Errorf("invalid negative timeout %s", o.timeout)
	}
	return nil
}

func (a *app) solveCmd() *cobra.Command {
	var (
		opts       searchOptions
		puzzlePath string
	)
	cmd := &cobra.Command{
		Use:   "solve [numbers...] target",
		Short: "Lists every expression reaching the target",
		Example: `  countdown solve 25 50 75 100 8 9 952
  countdown solve --puzzle puzzle.yaml --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			var (
				p   *puzzle.Puzzle
				err error
			)
			if puzzlePath != "" {
				if len(args) != 0 {
					return errors.New("numbers and target cannot be given along with a puzzle file")
				}
				p, err = puzzle.Load(puzzlePath)
			} else {
				p, err = parsePuzzleArgs(args)
			}
			if err != nil {
				return err
			}
			return a.search(cmd, p, &opts)
		},
	}
	cmd.Flags().StringVarP(&puzzlePath, "puzzle", "p", "", "reads numbers and target from this YAML file")
	opts.addFlags(cmd.Flags())
	return cmd
}

// parsePuzzleArgs parses numbers followed by a target.
func parsePuzzleArgs(args []string) (*puzzle.Puzzle, error) {
	if len(args) < 3 {
		return nil, errors.Errorf("expected at least two numbers and a target, got %d arguments", len(args))
	}
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Errorf("invalid number %q", arg)
		}
		values[i] = v
	}
	return puzzle.New(values[:len(values)-1], values[len(values)-1])
}

// search solves p and writes the report on cmd's output.
func (a *app) search(cmd *cobra.Command, p *puzzle.Puzzle, opts *searchOptions) error {
	runLog := a.log.WithFields(logrus.Fields{
		"run":    uuid.NewString(),
		"puzzle": p.String(),
	})
	s := solver.New(p.Numbers, p.Target)
	if a.verbose {
		s.Logger = runLog
	}
	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}
	runLog.Debug("starting search")
	start := time.Now()
	if err := s.RunContext(ctx); err != nil {
		runLog.WithError(err).Warn("search stopped before completion")
	}
	elapsed := time.Since(start)
	runLog.WithFields(logrus.Fields{
		"evaluated": s.Stats.NbEvaluated,
		"solutions": len(s.Solutions()),
		"elapsed":   elapsed,
	}).Info("search done")

	rep := report.New(p, s, elapsed)
	var err error
	if opts.format == "yaml" {
		err = rep.WriteYAML(cmd.OutOrStdout())
	} else {
		err = rep.WriteText(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}
	if opts.metricsFile != "" {
		rec := metrics.NewRecorder()
		rec.Observe(s, elapsed)
		if err := rec.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
		runLog.WithField("path", opts.metricsFile).Debug("wrote metrics")
	}
	return nil
}
