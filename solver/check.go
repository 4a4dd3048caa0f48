package solver

import "github.com/pkg/errors"

var (
	// ErrUnknownNumber is returned by Check when an expression uses a number
	// that is not available, or uses an available number too many times.
	ErrUnknownNumber = errors.New("number is not available")
	// ErrWrongValue is returned by Check when an expression does not evaluate to the target.
	ErrWrongValue = errors.New("expression does not reach the target")
)

// Check checks whether t is a valid answer for the given numbers and target:
// every intermediate value must be a positive integer, each number can be used
// at most as many times as it appears in numbers, and t must evaluate to target.
func Check(t *Term, numbers []int, target int) error {
	v, err := t.Eval()
	if err != nil {
		return errors.Wrap(err, "invalid expression")
	}
	avail := make(map[int]int, len(numbers))
	for _, n := range numbers {
		avail[n]++
	}
	for _, n := range t.Atoms() {
		if avail[n] == 0 {
			return errors.Wrapf(ErrUnknownNumber, "%d", n)
		}
		avail[n]--
	}
	if v != target {
		return errors.Wrapf(ErrWrongValue, "%s = %d, target is %d", t, v, target)
	}
	return nil
}
