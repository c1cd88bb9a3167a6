package svgpath

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/benoitkugler/svgedit/svgxform"
)

// ErrMalformedPath is wrapped by every error returned by Parse.
var ErrMalformedPath = errors.New("svgpath: malformed path data")

// SyntaxError locates a parsing failure in the path data.
type SyntaxError struct {
	Offset   int    // byte offset in the input
	Fragment string // input text starting at Offset
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("svgpath: %s at offset %d (near %q)", e.Msg, e.Offset, e.Fragment)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformedPath }

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) fail(at int, format string, args ...interface{}) error {
	end := at + 12
	if end > len(s.src) {
		end = len(s.src)
	}
	return &SyntaxError{Offset: at, Fragment: s.src[at:end], Msg: fmt.Sprintf(format, args...)}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// skip jumps over white spaces and at most one comma
func (s *pathScanner) skip() {
	comma := false
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if isSpace(c) {
			s.pos++
		} else if c == ',' && !comma {
			comma = true
			s.pos++
		} else {
			return
		}
	}
}

func (s *pathScanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *pathScanner) startsNumber() bool {
	if s.atEnd() {
		return false
	}
	c := s.src[s.pos]
	return c == '-' || c == '+' || c == '.' || ('0' <= c && c <= '9')
}

// number reads one float, accepting the compact forms
// "1-2" (two numbers) and "0.5.5" (0.5 and .5)
func (s *pathScanner) number() (float64, error) {
	start := s.pos
	end := svgxform.ScanNumber(s.src, start)
	if end == start {
		return 0, s.fail(start, "expected number")
	}
	v, err := strconv.ParseFloat(s.src[start:end], 64)
	if err != nil {
		return 0, s.fail(start, "invalid number %q", s.src[start:end])
	}
	s.pos = end
	return v, nil
}

// flag reads an arc flag, which may be packed without separator ("a1 1 0 11 2 3")
func (s *pathScanner) flag() (float64, error) {
	if s.atEnd() || (s.src[s.pos] != '0' && s.src[s.pos] != '1') {
		return 0, s.fail(s.pos, "expected arc flag")
	}
	v := float64(s.src[s.pos] - '0')
	s.pos++
	return v, nil
}

// Parse reads svg path data. An empty (or blank) input yields an empty path.
// Implicit repetitions are split into explicit commands, so that
// "M0 0 10 10" is returned as "M0 0 L10 10".
// The returned error wraps ErrMalformedPath and is a *SyntaxError.
func Parse(data string) (Path, error) {
	s := pathScanner{src: data}
	var out Path
	for {
		s.skip()
		if s.atEnd() {
			return out, nil
		}
		at := s.pos
		op := s.src[s.pos]
		if !isCommand(op) {
			return nil, s.fail(at, "unexpected character %q", op)
		}
		if len(out) == 0 && upper(op) != 'M' {
			return nil, s.fail(at, "path must start with a move command")
		}
		s.pos++
		if upper(op) == 'Z' {
			out = append(out, Command{Op: op})
			continue
		}
		n := argCount[upper(op)]
		for first := true; ; first = false {
			s.skip()
			if !first && !s.startsNumber() {
				break
			}
			args := make([]float64, n)
			for i := range args {
				if i > 0 {
					s.skip()
				}
				var err error
				if upper(op) == 'A' && (i == 3 || i == 4) {
					args[i], err = s.flag()
				} else {
					args[i], err = s.number()
				}
				if err != nil {
					return nil, err
				}
			}
			out = append(out, Command{Op: op, Args: args})
			// implicit commands after a move are line-to
			if op == 'M' {
				op = 'L'
			} else if op == 'm' {
				op = 'l'
			}
		}
	}
}

// MustParse is like Parse but panics on invalid input.
func MustParse(data string) Path {
	p, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return p
}
