// Implements an abstract representation of
// svg path data, keeping each command as written
// (letter case included), so that edits can be
// serialized back faithfully.
package svgpath

import (
	"strings"

	"github.com/benoitkugler/svgedit/svgxform"
)

type Point = svgxform.Point

// Command is one path command: its letter (upper case for
// absolute coordinates, lower case for relative ones) and its arguments.
type Command struct {
	Op   byte
	Args []float64
}

// argCount is the number of arguments for each (upper case) command
var argCount = [...]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6,
	'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

func isCommand(r byte) bool {
	switch upper(r) {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func upper(op byte) byte { return op &^ 0x20 }
func lower(op byte) byte { return op | 0x20 }

// Cmd is a convenience constructor.
func Cmd(op byte, args ...float64) Command { return Command{Op: op, Args: args} }

// Kind returns the upper case letter of the command.
func (c Command) Kind() byte { return upper(c.Op) }

// IsRelative is true for lower case commands.
func (c Command) IsRelative() bool { return c.Op >= 'a' }

// Clone returns a deep copy.
func (c Command) Clone() Command {
	return Command{Op: c.Op, Args: append([]float64(nil), c.Args...)}
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteByte(c.Op)
	for i, a := range c.Args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(svgxform.FormatNumber(a))
	}
	return sb.String()
}

// mapPairs returns an absolute command where each coordinate
// pair has been mapped by f. H and V only see the axis they carry;
// for arcs, only the end point is mapped.
func (c Command) mapPairs(f func(Point) Point, cur Point) Command {
	out := c.Clone()
	switch c.Kind() {
	case 'H':
		out.Args[0] = f(Point{c.Args[0], cur.Y}).X
	case 'V':
		out.Args[0] = f(Point{cur.X, c.Args[0]}).Y
	case 'A':
		p := f(Point{c.Args[5], c.Args[6]})
		out.Args[5], out.Args[6] = p.X, p.Y
	default:
		for i := 0; i+1 < len(c.Args); i += 2 {
			p := f(Point{c.Args[i], c.Args[i+1]})
			out.Args[i], out.Args[i+1] = p.X, p.Y
		}
	}
	return out
}

// absolute converts c, which starts at cur, to absolute coordinates
func (c Command) absolute(cur Point) Command {
	if !c.IsRelative() {
		return c.Clone()
	}
	out := c.Clone()
	out.Op = upper(c.Op)
	switch out.Op {
	case 'H':
		out.Args[0] += cur.X
	case 'V':
		out.Args[0] += cur.Y
	case 'A':
		out.Args[5] += cur.X
		out.Args[6] += cur.Y
	default:
		for i := 0; i+1 < len(out.Args); i += 2 {
			out.Args[i] += cur.X
			out.Args[i+1] += cur.Y
		}
	}
	return out
}

// relative converts the absolute command c, which starts at cur,
// to relative coordinates. Arc radii, rotation and flags are kept.
func (c Command) relative(cur Point) Command {
	out := c.Clone()
	out.Op = lower(c.Op)
	switch upper(c.Op) {
	case 'H':
		out.Args[0] -= cur.X
	case 'V':
		out.Args[0] -= cur.Y
	case 'A':
		out.Args[5] -= cur.X
		out.Args[6] -= cur.Y
	default:
		for i := 0; i+1 < len(out.Args); i += 2 {
			out.Args[i] -= cur.X
			out.Args[i+1] -= cur.Y
		}
	}
	return out
}

// advance returns the current point and the sub-path start after
// the absolute command c.
func (c Command) advance(cur, start Point) (Point, Point) {
	switch c.Kind() {
	case 'Z':
		return start, start
	case 'H':
		return Point{c.Args[0], cur.Y}, start
	case 'V':
		return Point{cur.X, c.Args[0]}, start
	case 'M':
		p := Point{c.Args[0], c.Args[1]}
		return p, p
	}
	n := len(c.Args)
	return Point{c.Args[n-2], c.Args[n-1]}, start
}
