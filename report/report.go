// Package report formats the results of a search.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/crillab/countdown/puzzle"
	"github.com/crillab/countdown/solver"
)

// A Solution is an expression reaching the target.
type Solution struct {
	Expression string `yaml:"expression"`
	Value      int    `yaml:"value"`
}

// A Report sums up a search.
type Report struct {
	Numbers   []int         `yaml:"numbers,flow"`
	Target    int           `yaml:"target"`
	Evaluated int           `yaml:"evaluated"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Complete  bool          `yaml:"complete"` // False if the search was interrupted
	Solutions []Solution    `yaml:"solutions"`
}

// New builds the report of the search made by s on p.
func New(p *puzzle.Puzzle, s *solver.Solver, elapsed time.Duration) *Report {
	r := &Report{
		Numbers:   p.Numbers,
		Target:    p.Target,
		Evaluated: s.Stats.NbEvaluated,
		Elapsed:   elapsed,
		Complete:  !s.Interrupted(),
		Solutions: make([]Solution, len(s.Solutions())),
	}
	for i, sol := range s.Solutions() {
		r.Solutions[i] = Solution{Expression: sol.String(), Value: sol.Value()}
	}
	return r
}

// WriteText writes a human-readable version of the report on w, such as
//
//	Starting numbers: [3, 4], target: 7
//	3 evaluated, 1 solutions
//	(4 + 3) = 7
func (r *Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}
	ew.printf("Starting numbers: %s, target: %d\n", puzzle.FormatNumbers(r.Numbers), r.Target)
	ew.printf("%d evaluated, %d solutions\n", r.Evaluated, len(r.Solutions))
	if !r.Complete {
		ew.printf("search interrupted, results are partial\n")
	}
	for _, sol := range r.Solutions {
		ew.printf("%s = %d\n", sol.Expression, sol.Value)
	}
	return errors.Wrap(ew.err, "could not write report")
}

// WriteYAML writes the report as a YAML document on w.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "could not write report")
	}
	return errors.Wrap(enc.Close(), "could not write report")
}

// errWriter remembers the first error met while writing, and ignores later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
