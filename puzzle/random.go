package puzzle

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

const (
	// Size is the number of numbers in a random puzzle.
	Size = 6
	// MinTarget is the smallest possible target of a random puzzle.
	MinTarget = 101
	// MaxTarget is the biggest possible target of a random puzzle.
	MaxTarget = 999
)

// Large are the large numbers a random puzzle can contain, each at most once.
var Large = []int{25, 50, 75, 100}

// Small are the small numbers a random puzzle can contain.
// Each of them appears twice, so it can be drawn twice.
var Small = []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10}

// A Generator draws random puzzles.
// It is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
// Two generators with the same seed draw the same puzzles.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate draws a puzzle with nbLarge large numbers, completed with small numbers.
// nbLarge must be between 0 and len(Large).
func (g *Generator) Generate(nbLarge int) (*Puzzle, error) {
	if err := validate.Var(nbLarge, "gte=0,lte=4"); err != nil {
		return nil, errors.Errorf("invalid number of large numbers %d: must be between 0 and %d", nbLarge, len(Large))
	}
	numbers := make([]int, 0, Size)
	numbers = append(numbers, g.draw(Large, nbLarge)...)
	numbers = append(numbers, g.draw(Small, Size-nbLarge)...)
	target := MinTarget + g.rng.IntN(MaxTarget-MinTarget+1)
	return New(numbers, target)
}

// draw returns n values drawn from values, without replacement.
func (g *Generator) draw(values []int, n int) []int {
	perm := g.rng.Perm(len(values))
	res := make([]int, n)
	for i := range res {
		res[i] = values[perm[i]]
	}
	return res
}
