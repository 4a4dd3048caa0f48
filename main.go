package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	// The search allocates lots of small, short-lived terms.
	debug.SetGCPercent(300)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line args and returns the exit status.
// Results are written on stdout, logs on stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(stderr)
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		a.log.WithError(err).Error("command failed")
		return 1
	}
	return 0
}

// app holds the state shared by all commands.
type app struct {
	log       *logrus.Logger
	verbose   bool
	logFormat string
}

func newApp(stderr io.Writer) *app {
	log := logrus.New()
	log.SetOutput(stderr)
	return &app{log: log}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Finds every way of reaching a target number in the Countdown numbers round",
		Long: `countdown lists all the distinct expressions combining a set of numbers
with +, -, * and / that evaluate exactly to a target, every intermediate result
being a positive integer.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setupLogging,
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "sets verbose mode on")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "log format, text or json")
	cmd.AddCommand(
		a.solveCmd(),
		a.randomCmd(),
		a.rulesCmd(),
		a.checkCmd(),
	)
	return cmd
}

func (a *app) setupLogging(cmd *cobra.Command, args []string) error {
	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("invalid log format %q", a.logFormat)
	}
	if a.verbose {
		a.log.SetLevel(logrus.DebugLevel)
	} else {
		a.log.SetLevel(logrus.InfoLevel)
	}
	return nil
}
