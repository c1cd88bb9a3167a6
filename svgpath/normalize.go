package svgpath

import "github.com/benoitkugler/svgedit/svgxform"

// Normalize returns an equivalent path using only absolute
// M, L, C, Q and Z commands :
//   - H and V become L
//   - S and T are expanded by reflecting the previous control point
//   - arcs are approximated by cubic curves
func (p Path) Normalize() Path {
	abs, starts := p.absolute()
	out := make(Path, 0, len(abs))
	var (
		prevKind  byte
		lastCubic Point // second control point of the previous C or S
		lastQuad  Point // control point of the previous Q or T
	)
	for i, c := range abs {
		cur := starts[i]
		switch c.Kind() {
		case 'H':
			out = append(out, Cmd('L', c.Args[0], cur.Y))
		case 'V':
			out = append(out, Cmd('L', cur.X, c.Args[0]))
		case 'S':
			ctrl := cur
			if prevKind == 'C' || prevKind == 'S' {
				ctrl = cur.Scale(2).Sub(lastCubic)
			}
			out = append(out, Cmd('C', ctrl.X, ctrl.Y, c.Args[0], c.Args[1], c.Args[2], c.Args[3]))
			lastCubic = Point{c.Args[0], c.Args[1]}
		case 'C':
			out = append(out, c)
			lastCubic = Point{c.Args[2], c.Args[3]}
		case 'T':
			ctrl := cur
			if prevKind == 'Q' || prevKind == 'T' {
				ctrl = cur.Scale(2).Sub(lastQuad)
			}
			out = append(out, Cmd('Q', ctrl.X, ctrl.Y, c.Args[0], c.Args[1]))
			lastQuad = ctrl
		case 'Q':
			out = append(out, c)
			lastQuad = Point{c.Args[0], c.Args[1]}
		case 'A':
			out = append(out, arcToCubics(cur, c.Args)...)
		default: // M, L, Z
			out = append(out, c)
		}
		prevKind = c.Kind()
	}
	return out
}

// Vertexes returns every coordinate pair of the normalized path,
// control points included. Z commands contribute nothing.
func (p Path) Vertexes() []Point {
	var out []Point
	for _, c := range p.Normalize() {
		for i := 0; i+1 < len(c.Args); i += 2 {
			out = append(out, Point{c.Args[i], c.Args[i+1]})
		}
	}
	return out
}

// Bounds returns the bounding box of the vertexes of the path.
// Since control points are included, it may be larger than
// the area actually covered by the curve. See ExactBounds.
func (p Path) Bounds() svgxform.Box {
	return svgxform.BoxOf(p.Vertexes()...)
}
