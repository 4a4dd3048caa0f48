package solver

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// How many recursive descents happen between two checks of the interruption condition.
const interruptInterval = 1024

// Stats are statistics about the search.
// They are provided for information purpose only.
type Stats struct {
	NbEvaluated int // How many operator applications produced a term
	NbDescents  int // How many times the search recursed over a pool
}

// A Solver looks for all the distinct expressions combining the numbers of a problem
// that evaluate to a given target. It is the main data structure.
type Solver struct {
	// If non-nil, each new solution is logged at debug level.
	Logger    logrus.FieldLogger
	Stats     Stats // Statistics about the search
	pool      pool  // Terms currently available, by decreasing value
	solutions []*Term
	target    int
	// Called from time to time during the search. When it returns true, the search stops.
	interrupted func() bool
	stopped     bool
	// Called each time a new solution is found.
	onSolution func(t *Term)
}

// New makes a solver for the given numbers and target.
// There must be at least two numbers and they must all be strictly positive.
// The target cannot be negative.
// Violating these preconditions is a programming error: New panics.
// User input should be validated beforehand, for instance with the puzzle package.
func New(numbers []int, target int) *Solver {
	if len(numbers) < 2 {
		panic(fmt.Sprintf("at least two numbers are needed, got %d", len(numbers)))
	}
	if target < 0 {
		panic(fmt.Sprintf("negative target %d", target))
	}
	p := make(pool, len(numbers))
	for i, n := range numbers {
		if n <= 0 {
			panic(fmt.Sprintf("non-positive number %d", n))
		}
		p[i] = Atom(n)
	}
	sortTerms(p)
	return &Solver{pool: p, target: target}
}

// Target returns the value the solver is looking for.
func (s *Solver) Target() int { return s.target }

// Solutions returns the distinct solutions found so far, in the order they were found.
// The returned slice must not be modified.
func (s *Solver) Solutions() []*Term { return s.solutions }

// Pool returns a copy of the terms currently available, by decreasing value.
// Out of a search, these are the atomic terms the solver was built with.
func (s *Solver) Pool() []*Term {
	res := make([]*Term, len(s.pool))
	copy(res, s.pool)
	return res
}

// Run searches for all the solutions.
// Once it returns, the solutions can be read with Solutions and the
// number of evaluated expressions with Stats.
// Run is meant to be called once on a given solver.
func (s *Solver) Run() {
	s.checkPool()
	s.solve()
}

// RunContext is like Run, but stops prematurely when ctx is done.
// In that case, the solutions found so far are kept and ctx's error is returned.
func (s *Solver) RunContext(ctx context.Context) error {
	s.interrupted = func() bool { return ctx.Err() != nil }
	defer func() { s.interrupted = nil }()
	s.Run()
	if s.stopped {
		return errors.Wrap(ctx.Err(), "search interrupted")
	}
	return nil
}

// Enumerate runs the search, writing each new solution on solutions as soon as it is found.
// If data is sent to stop, the search stops prematurely.
// In any case, solutions will be closed before the function returns.
// The search itself runs in the calling goroutine, so solutions must be read from another one.
// Enumerate returns the number of solutions found.
func (s *Solver) Enumerate(solutions chan *Term, stop chan struct{}) int {
	if solutions != nil {
		s.onSolution = func(t *Term) { solutions <- t }
		defer close(solutions)
	}
	if stop != nil {
		s.interrupted = func() bool {
			select {
			case <-stop:
				return true
			default:
				return false
			}
		}
	}
	defer func() { s.onSolution, s.interrupted = nil, nil }()
	s.Run()
	return len(s.solutions)
}

// Interrupted is true iff the last search was stopped before it was exhausted.
func (s *Solver) Interrupted() bool { return s.stopped }

// checkPool panics if the pool is not in a state a search can start from.
func (s *Solver) checkPool() {
	if len(s.pool) < 2 {
		panic(fmt.Sprintf("pool must contain at least two terms, got %d", len(s.pool)))
	}
	if !s.pool.sorted() {
		panic("pool is not sorted by decreasing value")
	}
}

// mustStop is called on each descent. It checks the interruption condition from time to time.
func (s *Solver) mustStop() bool {
	if s.stopped {
		return true
	}
	if s.interrupted != nil && s.Stats.NbDescents%interruptInterval == 0 && s.interrupted() {
		s.stopped = true
	}
	s.Stats.NbDescents++
	return s.stopped
}

// solve tries to combine each pair of terms from the pool.
// When it returns, the pool is in the same state as when it was called.
func (s *Solver) solve() {
	if s.mustStop() {
		return
	}
	n := len(s.pool)
	for i := 0; i < n && !s.stopped; i++ {
		a := s.pool.remove(i)
		// The pool is sorted, so a.value >= b.value.
		for j := i; j < n-1 && !s.stopped; j++ {
			b := s.pool.remove(j)
			for _, op := range ops {
				s.combine(op, a, b)
			}
			s.pool.insert(j, b)
		}
		s.pool.insert(i, a)
	}
}

// combine tries a op b. a's value must be >= b's.
// If the result is valid, it is tested against the target, then added to the pool
// so that the search goes on with it, and finally removed from the pool.
func (s *Solver) combine(op Op, a, b *Term) {
	v, ok := op.apply(a.value, b.value)
	if !ok {
		return
	}
	t := &Term{value: v, op: op, left: a, right: b}
	s.Stats.NbEvaluated++
	if v == s.target && !s.isSolution(t) {
		s.addSolution(t)
	}
	if len(s.pool) > 0 {
		pos := s.pool.position(v)
		s.pool.insert(pos, t)
		s.solve()
		s.pool.remove(pos)
	}
}

// isSolution is true iff t is structurally equal to an already known solution.
func (s *Solver) isSolution(t *Term) bool {
	for _, sol := range s.solutions {
		if Equal(sol, t) {
			return true
		}
	}
	return false
}

func (s *Solver) addSolution(t *Term) {
	s.solutions = append(s.solutions, t)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"solution":  t.String(),
			"evaluated": s.Stats.NbEvaluated,
		}).Debug("found solution")
	}
	if s.onSolution != nil {
		s.onSolution(t)
	}
}
