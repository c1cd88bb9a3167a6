package svgpath

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgedit/svgxform"
)

// Path is a list of commands, as found in the 'd' attribute.
type Path []Command

// String returns the path data, suitable for the 'd' attribute.
func (p Path) String() string {
	chunks := make([]string, len(p))
	for i, c := range p {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, " ")
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, c := range p {
		out[i] = c.Clone()
	}
	return out
}

// absolute returns the absolute version of each command,
// alongside the current point before each command.
func (p Path) absolute() (Path, []Point) {
	out := make(Path, len(p))
	starts := make([]Point, len(p))
	var cur, start Point
	for i, c := range p {
		starts[i] = cur
		out[i] = c.absolute(cur)
		cur, start = out[i].advance(cur, start)
	}
	return out, starts
}

// Absolute returns a copy of the path using only absolute commands.
func (p Path) Absolute() Path {
	out, _ := p.absolute()
	return out
}

// IterFunc is called on each command, converted to absolute coordinates,
// with its index and the current point at which it starts.
// It must return an absolute command with the same letter.
type IterFunc = func(cmd Command, index int, start Point) Command

// SafeIterate calls fn on every command, seen in absolute coordinates,
// and replaces each command by the returned one. Commands originally
// written in relative coordinates are converted back, relative to
// the updated previous point, so that the written style of the path is
// preserved.
func (p Path) SafeIterate(fn IterFunc) {
	abs, starts := p.absolute()
	for i, c := range abs {
		abs[i] = fn(c, i, starts[i])
	}
	var cur, start Point
	for i, c := range abs {
		if p[i].IsRelative() {
			p[i] = c.relative(cur)
		} else {
			p[i] = c
		}
		cur, start = c.advance(cur, start)
	}
}

// Move translates every point of the path by (dx, dy).
func (p Path) Move(dx, dy float64) {
	d := Point{dx, dy}
	p.SafeIterate(func(c Command, _ int, start Point) Command {
		return c.mapPairs(func(q Point) Point { return q.Add(d) }, start)
	})
}

// Scale scales every point of the path by (sx, sy), around origin.
// Arc radii are scaled, and the sweep flag is flipped when the
// scaling reverses the orientation.
func (p Path) Scale(sx, sy float64, origin Point) {
	f := func(q Point) Point {
		return Point{origin.X + (q.X-origin.X)*sx, origin.Y + (q.Y-origin.Y)*sy}
	}
	p.SafeIterate(func(c Command, _ int, start Point) Command {
		out := c.mapPairs(f, start)
		if c.Kind() == 'A' {
			out.Args[0] *= math.Abs(sx)
			out.Args[1] *= math.Abs(sy)
			if sx*sy < 0 {
				out.Args[2] = -out.Args[2]
				out.Args[4] = 1 - out.Args[4]
			}
		}
		return out
	})
}

// Transform returns the path mapped through m, in normalized form
// (see Normalize), since an affine map does not preserve
// horizontal lines or axis aligned ellipses.
func (p Path) Transform(m svgxform.Matrix2D) Path {
	out := p.Normalize()
	for i, c := range out {
		out[i] = c.mapPairs(m.Apply, Point{})
	}
	return out
}
