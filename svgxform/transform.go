package svgxform

import "strings"

// Side selects the end of a transform list an operation is added to.
// Left is the outermost end (applied last, in the parent frame),
// Right the innermost one (applied first, in the element's own frame).
type Side uint8

const (
	Right Side = iota
	Left
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// entry keeps a descriptor together with its cached matrix,
// so that both never diverge.
type entry struct {
	desc Descriptor
	m    Matrix2D
}

func newEntry(d Descriptor) entry { return entry{desc: d, m: d.Matrix()} }

// Transform is an ordered list of descriptors, as found in
// a transform attribute. The zero value is the empty transform,
// which stands for "no transform".
type Transform struct {
	entries []entry
}

// NewTransform builds a transform from descriptors, without merging them.
func NewTransform(descs ...Descriptor) Transform {
	var t Transform
	for _, d := range descs {
		t.entries = append(t.entries, newEntry(d))
	}
	return t
}

func (t Transform) Len() int            { return len(t.entries) }
func (t Transform) IsEmpty() bool       { return len(t.entries) == 0 }
func (t Transform) At(i int) Descriptor { return t.entries[i].desc }

// Descriptors returns a copy of the descriptor list.
func (t Transform) Descriptors() []Descriptor {
	out := make([]Descriptor, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.desc
	}
	return out
}

// Matrices returns the matrix of each descriptor, index-wise.
func (t Transform) Matrices() []Matrix2D {
	out := make([]Matrix2D, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.m
	}
	return out
}

// Matrix folds the list into one affine map.
func (t Transform) Matrix() Matrix2D {
	m := Identity
	for _, e := range t.entries {
		m = m.Mult(e.m)
	}
	return m
}

// Append adds d at the given end of the list. When the adjacent
// descriptor can absorb d (same kind, or either one is a matrix)
// the two are combined in place and the list does not grow.
func (t *Transform) Append(d Descriptor, side Side) {
	n := len(t.entries)
	if n == 0 {
		t.entries = []entry{newEntry(d)}
		return
	}
	if side == Left {
		if merged, ok := merge(d, t.entries[0].desc); ok {
			t.entries[0] = newEntry(merged)
			return
		}
		t.entries = append([]entry{newEntry(d)}, t.entries...)
		return
	}
	if merged, ok := merge(t.entries[n-1].desc, d); ok {
		t.entries[n-1] = newEntry(merged)
		return
	}
	t.entries = append(t.entries, newEntry(d))
}

// AppendAll adds descs as a block at the given end, keeping
// their relative order: on the Left side, descs[0] ends up outermost.
func (t *Transform) AppendAll(descs []Descriptor, side Side) {
	if side == Left {
		for i := len(descs) - 1; i >= 0; i-- {
			t.Append(descs[i], Left)
		}
		return
	}
	for _, d := range descs {
		t.Append(d, Right)
	}
}

// Normalize replaces every pivoted rotate by its
// translate/rotate/translate expansion.
func (t Transform) Normalize() Transform {
	var out Transform
	for _, e := range t.entries {
		if r, ok := e.desc.(Rotate); ok && r.HasPivot {
			for _, d := range r.Expand() {
				out.entries = append(out.entries, newEntry(d))
			}
			continue
		}
		out.entries = append(out.entries, e)
	}
	return out
}

// String returns the attribute syntax; the empty transform gives "".
func (t Transform) String() string {
	chunks := make([]string, len(t.entries))
	for i, e := range t.entries {
		chunks[i] = e.desc.String()
	}
	return strings.Join(chunks, " ")
}
