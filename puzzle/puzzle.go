package puzzle

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// A Puzzle is a list of numbers and a target to reach with them.
type Puzzle struct {
	Numbers []int `yaml:"numbers,flow" validate:"min=2,dive,gt=0"`
	Target  int   `yaml:"target" validate:"gt=0"`
}

// New returns a puzzle for the given numbers and target, or an error if it is not valid.
func New(numbers []int, target int) (*Puzzle, error) {
	p := &Puzzle{Numbers: numbers, Target: target}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate returns an error if the puzzle cannot be given to the solver,
// i.e if it contains less than two numbers, if a number is not strictly positive
// or if the target is not strictly positive.
func (p *Puzzle) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "could not validate puzzle")
	}
	msgs := make([]string, len(verrs))
	for i, verr := range verrs {
		msgs[i] = describe(verr)
	}
	return errors.Errorf("invalid puzzle: %s", strings.Join(msgs, "; "))
}

func describe(verr validator.FieldError) string {
	switch verr.Tag() {
	case "min":
		return fmt.Sprintf("at least %s numbers are needed", verr.Param())
	case "gt":
		return fmt.Sprintf("%s must be positive, got %v", strings.ToLower(verr.Field()), verr.Value())
	default:
		return fmt.Sprintf("%s failed on %q", verr.Field(), verr.Tag())
	}
}

// String returns a representation of the puzzle such as "[25, 50, 75, 100, 8, 9] -> 952".
func (p *Puzzle) String() string {
	return fmt.Sprintf("%s -> %d", FormatNumbers(p.Numbers), p.Target)
}

// FormatNumbers returns a representation of numbers such as "[25, 50, 75]".
func FormatNumbers(numbers []int) string {
	strs := make([]string, len(numbers))
	for i, n := range numbers {
		strs[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(strs, ", ") + "]"
}

// Parse reads a YAML puzzle from r and validates it.
func Parse(r io.Reader) (*Puzzle, error) {
	var p Puzzle
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return nil, errors.New("empty puzzle file")
		}
		return nil, errors.Wrap(err, "could not parse puzzle")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads the YAML puzzle file at path.
func Load(path string) (*Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", path)
	}
	defer func() { _ = f.Close() }()
	p, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load %q", path)
	}
	return p, nil
}

// Write writes the puzzle as a YAML document on w.
func (p *Puzzle) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(err, "could not write puzzle")
	}
	return errors.Wrap(enc.Close(), "could not write puzzle")
}
