package report

import (
	"io"

	"github.com/pkg/errors"
)

const rules = `Countdown numbers round

Six numbers are drawn: some large ones among 25, 50, 75 and 100 (each of them at most once),
and small ones from two copies of 1 to 10. A three-digit target, between 101 and 999,
is then drawn at random.

The goal is to reach the target exactly by combining some of the numbers with
additions, subtractions, multiplications and divisions:

  - each number can be used at most once, and not all of them need to be used,
  - every intermediate result must be a positive integer: no negative number,
    no zero, no fraction.

For instance, with 25, 50, 75, 100, 8 and 9, the target 952 can be reached as
(25 + 9) * ((100 + 75) * 8 / 50).

This program lists every distinct way of reaching the target exactly.
`

// WriteRules writes the rules of the game on w.
func WriteRules(w io.Writer) error {
	_, err := io.WriteString(w, rules)
	return errors.Wrap(err, "could not write rules")
}
