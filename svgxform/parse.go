package svgxform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTransform is returned for transform attributes
// which can't be parsed.
var ErrMalformedTransform = errors.New("malformed transform attribute")

// ParseTransform reads a transform attribute. The empty string
// (or only whitespace) gives the empty transform.
func ParseTransform(v string) (Transform, error) {
	var out Transform
	ts := strings.Split(v, ")")
	for i, t := range ts {
		t = strings.TrimSpace(strings.TrimLeft(t, " \t\n\r,"))
		if len(t) == 0 {
			continue
		}
		if i == len(ts)-1 {
			return Transform{}, fmt.Errorf("%w: unterminated %q", ErrMalformedTransform, t)
		}
		d := strings.Split(t, "(")
		if len(d) != 2 {
			return Transform{}, fmt.Errorf("%w: %q", ErrMalformedTransform, t)
		}
		args, err := ParseNumbers(d[1])
		if err != nil {
			return Transform{}, fmt.Errorf("%w: %s", ErrMalformedTransform, err)
		}
		desc, err := readDescriptor(strings.TrimSpace(d[0]), args)
		if err != nil {
			return Transform{}, err
		}
		out.entries = append(out.entries, newEntry(desc))
	}
	return out, nil
}

func readDescriptor(name string, args []float64) (Descriptor, error) {
	ln := len(args)
	mismatch := fmt.Errorf("%w: %s expects other arguments than %v", ErrMalformedTransform, name, args)
	switch strings.ToLower(name) {
	case "matrix":
		if ln != 6 {
			return nil, mismatch
		}
		return MatrixOp{args[0], args[1], args[2], args[3], args[4], args[5]}, nil
	case "translate":
		switch ln {
		case 1:
			return Translate{X: args[0]}, nil
		case 2:
			return Translate{args[0], args[1]}, nil
		}
	case "scale":
		switch ln {
		case 1:
			return Scale{args[0], args[0]}, nil
		case 2:
			return Scale{args[0], args[1]}, nil
		}
	case "rotate":
		switch ln {
		case 1:
			return Rotate{Angle: args[0]}, nil
		case 2: // missing cy, taken as 0
			return Rotate{Angle: args[0], CX: args[1], HasPivot: true}, nil
		case 3:
			return Rotate{Angle: args[0], CX: args[1], CY: args[2], HasPivot: true}, nil
		}
	case "skewx":
		if ln == 1 {
			return SkewX{args[0]}, nil
		}
	case "skewy":
		if ln == 1 {
			return SkewY{args[0]}, nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown function %q", ErrMalformedTransform, name)
	}
	return nil, mismatch
}

// ScanNumber returns the end of the number starting at s[start],
// or start if there is none. Numbers may be packed without
// separator: "1-2" and "0.5.5" hold two numbers each.
// An 'e' not followed by digits is not part of the number.
func ScanNumber(s string, start int) int {
	i := start
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return start
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		k := j
		for k < len(s) && '0' <= s[k] && s[k] <= '9' {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isListSeparator(c byte) bool {
	return c == ',' || c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// ParseNumbers reads a list of numbers separated by commas and/or
// whitespace (or packed, see ScanNumber), as used by transform
// functions, viewBox and points.
func ParseNumbers(s string) ([]float64, error) {
	out := make([]float64, 0, 8)
	i := 0
	for {
		for i < len(s) && isListSeparator(s[i]) {
			i++
		}
		if i >= len(s) {
			return out, nil
		}
		end := ScanNumber(s, i)
		if end == i {
			return nil, fmt.Errorf("invalid number at offset %d in %q", i, s)
		}
		v, err := strconv.ParseFloat(s[i:end], 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		i = end
	}
}
