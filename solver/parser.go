package solver

import (
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/pkg/errors"
)

type parser struct {
	s     scanner.Scanner
	eof   bool   // Have we reached eof yet?
	tok   rune   // Last token read
	token string // Text of the last token read
	err   error  // First error reported by the scanner, if any
}

// Parse parses an arithmetic expression from the given input Reader.
// It returns the corresponding Term.
// Expressions are made of positive integers and of the following operators,
// from lowest to highest priority :
//
// - "+" and "-",
// - "*" and "/".
//
// Operators with the same priority are left-associative.
// Parentheses can be used to group subexpressions.
// Every intermediate result must be a positive integer, as in the solver,
// so "3 - 5" and "7 / 2" are rejected.
// The output of Term.String can always be parsed back to an equal term.
func Parse(r io.Reader) (*Term, error) {
	p := &parser{}
	p.s.Init(r)
	p.s.Mode = scanner.ScanInts
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = errors.Errorf("%s at %s", msg, s.Pos())
		}
	}
	p.scan()
	if p.eof {
		return nil, errors.New("expected expression, found EOF")
	}
	t, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if !p.eof {
		return nil, errors.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	return t, nil
}

// ParseString parses the expression in s.
func ParseString(s string) (*Term, error) {
	return Parse(strings.NewReader(s))
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.tok = p.s.Scan()
	p.eof = p.tok == scanner.EOF
	p.token = p.s.TokenText()
}

func (p *parser) parseSum() (*Term, error) {
	t, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for !p.eof && (p.token == "+" || p.token == "-") {
		op := Add
		if p.token == "-" {
			op = Sub
		}
		p.scan()
		t2, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		if t, err = NewTerm(op, t, t2); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *parser) parseProduct() (*Term, error) {
	t, err := p.parseBasic()
	if err != nil {
		return nil, err
	}
	for !p.eof && (p.token == "*" || p.token == "/") {
		op := Mul
		if p.token == "/" {
			op = Div
		}
		p.scan()
		t2, err := p.parseBasic()
		if err != nil {
			return nil, err
		}
		if t, err = NewTerm(op, t, t2); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *parser) parseBasic() (*Term, error) {
	if p.eof {
		return nil, errors.New("unexpected EOF")
	}
	if p.token == "(" {
		p.scan()
		t, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.eof {
			return nil, errors.Errorf("expected closing parenthesis, found EOF at %s", p.s.Pos())
		}
		if p.token != ")" {
			return nil, errors.Errorf("expected closing parenthesis, found %q at %s", p.token, p.s.Pos())
		}
		p.scan()
		return t, nil
	}
	if p.tok != scanner.Int {
		return nil, errors.Errorf("unexpected token %q at %s", p.token, p.s.Pos())
	}
	v, err := strconv.Atoi(p.token)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid number %q at %s", p.token, p.s.Pos())
	}
	if v <= 0 {
		return nil, errors.Errorf("number %d at %s is not positive", v, p.s.Pos())
	}
	p.scan()
	return Atom(v), nil
}
