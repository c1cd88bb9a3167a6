package svgxform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestTranslateMerge(t *testing.T) {
	var tr Transform
	tr.Append(Translate{3, 4}, Right)
	tr.Append(Translate{1, -1}, Right)
	require.Equal(t, 1, tr.Len())
	assert.Equal(t, Translate{4, 3}, tr.At(0))
	assert.Equal(t, "translate(4 3)", tr.String())
}

func TestMatrixAbsorbsNeighbour(t *testing.T) {
	for _, side := range []Side{Left, Right} {
		tr := NewTransform(MatrixOp{1, 0, 0, 1, 5, 5})
		tr.Append(Scale{2, 2}, side)
		require.Equal(t, 1, tr.Len(), side)
		_, isMatrix := tr.At(0).(MatrixOp)
		assert.True(t, isMatrix)
	}

	tr := NewTransform(MatrixOp{1, 0, 0, 1, 5, 5})
	tr.Append(Scale{2, 2}, Left)
	// scale applied after the translation
	assert.True(t, tr.Matrix().Near(Matrix2D{2, 0, 0, 2, 10, 10}, tol))

	tr = NewTransform(MatrixOp{1, 0, 0, 1, 5, 5})
	tr.Append(Scale{2, 2}, Right)
	assert.True(t, tr.Matrix().Near(Matrix2D{2, 0, 0, 2, 5, 5}, tol))
}

func TestMergeRules(t *testing.T) {
	tests := []struct {
		existing, added Descriptor
		wantLen         int
		want            Descriptor
	}{
		{Scale{2, 3}, Scale{2, 0.5}, 1, Scale{4, 1.5}},
		{Rotate{Angle: 10}, Rotate{Angle: 20}, 1, Rotate{Angle: 30}},
		{Rotate{Angle: 10, CX: 1, CY: 2, HasPivot: true}, Rotate{Angle: 5, CX: 1, CY: 2, HasPivot: true}, 1,
			Rotate{Angle: 15, CX: 1, CY: 2, HasPivot: true}},
		{Rotate{Angle: 10, CX: 1, CY: 2, HasPivot: true}, Rotate{Angle: 5}, 2, nil},
		{Rotate{Angle: 10, CX: 1, CY: 2, HasPivot: true}, Rotate{Angle: 5, CX: 2, CY: 2, HasPivot: true}, 2, nil},
		{Translate{1, 1}, Scale{2, 2}, 2, nil},
	}
	for _, tt := range tests {
		tr := NewTransform(tt.existing)
		tr.Append(tt.added, Right)
		require.Equal(t, tt.wantLen, tr.Len())
		if tt.want != nil {
			assert.Equal(t, tt.want, tr.At(0))
		}
	}
}

func TestSkewMerge(t *testing.T) {
	tr := NewTransform(SkewX{30})
	tr.Append(SkewX{15}, Left)
	require.Equal(t, 1, tr.Len())
	got := tr.At(0).(SkewX).Angle
	want := math.Atan(math.Tan(math.Pi/6)+math.Tan(math.Pi/12)) * 180 / math.Pi
	assert.InDelta(t, want, got, tol)
	// the merged skew has the same matrix as the two separate ones
	sep := NewTransform(SkewX{15}, SkewX{30})
	assert.True(t, tr.Matrix().Near(sep.Matrix(), tol))
}

func TestMergePreservesMatrix(t *testing.T) {
	descs := []Descriptor{
		Translate{3, -2}, Translate{1, 1}, Scale{2, 2}, Scale{0.5, 3},
		Rotate{Angle: 20, CX: 4, CY: 4, HasPivot: true}, Rotate{Angle: 25, CX: 4, CY: 4, HasPivot: true},
		SkewY{10}, SkewY{5}, MatrixOp{1, 0.2, 0, 1, 3, 3}, Translate{7, 7},
	}
	var merged Transform
	for _, d := range descs {
		merged.Append(d, Right)
	}
	plain := NewTransform(descs...)
	assert.Less(t, merged.Len(), plain.Len())
	assert.True(t, merged.Matrix().Near(plain.Matrix(), 1e-7))
	assert.Equal(t, merged.Len(), len(merged.Matrices()))
}

func TestAppendAllKeepsOrder(t *testing.T) {
	var tr Transform
	tr.Append(Rotate{Angle: 45}, Right)
	block := []Descriptor{Translate{10, 0}, Scale{2, 2}, Translate{-10, 0}}
	tr.AppendAll(block, Left)
	assert.Equal(t, "translate(10 0) scale(2) translate(-10 0) rotate(45)", tr.String())
}

func TestRotatePivot(t *testing.T) {
	r := Rotate{Angle: 90, CX: 10, CY: 10, HasPivot: true}
	p := r.Matrix().Apply(Point{20, 10})
	assert.InDelta(t, 10, p.X, tol)
	assert.InDelta(t, 20, p.Y, tol)

	expanded := NewTransform(r.Expand()...)
	assert.Equal(t, 3, expanded.Len())
	assert.True(t, expanded.Matrix().Near(r.Matrix(), tol))

	norm := NewTransform(Scale{2, 2}, r).Normalize()
	assert.Equal(t, 4, norm.Len())
}

func TestParseTransform(t *testing.T) {
	tr, err := ParseTransform("translate(10,20) rotate(30 5 5)  scale(2)skewX(10)")
	require.NoError(t, err)
	require.Equal(t, 4, tr.Len())
	assert.Equal(t, Translate{10, 20}, tr.At(0))
	assert.Equal(t, Rotate{Angle: 30, CX: 5, CY: 5, HasPivot: true}, tr.At(1))
	assert.Equal(t, Scale{2, 2}, tr.At(2))
	assert.Equal(t, SkewX{10}, tr.At(3))
	assert.Equal(t, "translate(10 20) rotate(30 5 5) scale(2) skewX(10)", tr.String())

	tr, err = ParseTransform("rotate(45, 3)")
	require.NoError(t, err)
	assert.Equal(t, Rotate{Angle: 45, CX: 3, HasPivot: true}, tr.At(0))

	tr, err = ParseTransform("   ")
	require.NoError(t, err)
	assert.True(t, tr.IsEmpty())

	tr, err = ParseTransform("translate(10-5)rotate(.5.5-1e1)")
	require.NoError(t, err)
	assert.Equal(t, Translate{10, -5}, tr.At(0))
	assert.Equal(t, Rotate{Angle: 0.5, CX: 0.5, CY: -10, HasPivot: true}, tr.At(1))

	for _, bad := range []string{"translate(1 2 3)", "matrix(1 2)", "wobble(3)", "scale(a)", "rotate(1"} {
		_, err = ParseTransform(bad)
		assert.ErrorIs(t, err, ErrMalformedTransform, bad)
	}
}

func TestParseNumbers(t *testing.T) {
	for _, test := range []struct {
		in       string
		expected []float64
	}{
		{"", []float64{}},
		{" 1, 2\t3\n", []float64{1, 2, 3}},
		{"0,0 10-5 20,5", []float64{0, 0, 10, -5, 20, 5}},
		{".5.5", []float64{0.5, 0.5}},
		{"1e2-3E-1", []float64{100, -0.3}},
		{"+4.e1", []float64{40}},
	} {
		got, err := ParseNumbers(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.expected, got, test.in)
	}

	for _, bad := range []string{"1 a", "-", "1 . 2", "3e"} {
		_, err := ParseNumbers(bad)
		assert.Error(t, err, bad)
	}
}

func TestInvert(t *testing.T) {
	m := Identity.Translate(4, -3).Rotate(0.7).Scale(2, 0.5).SkewX(0.2)
	inv, ok := m.Invert()
	require.True(t, ok)
	assert.True(t, m.Mult(inv).IsIdentity())
	_, ok = Matrix2D{1, 2, 2, 4, 0, 0}.Invert()
	assert.False(t, ok)
}

func TestBoxTransform(t *testing.T) {
	b := BoxOf(Point{0, 0}, Point{10, 10})
	r := b.Transform(Rotate{Angle: 45, CX: 5, CY: 5, HasPivot: true}.Matrix())
	half := 5 * math.Sqrt2
	assert.InDelta(t, 5-half, r.Min.X, tol)
	assert.InDelta(t, 5+half, r.Max.Y, tol)
	assert.True(t, Box{}.IsEmpty())
	assert.Equal(t, b, Box{}.Union(b))
}

func TestViewBoxTransform(t *testing.T) {
	vb := ViewBox{0, 0, 100, 50}
	m := ViewBoxTransform(vb, 0, 0, 200, 200, AspectRatio{})
	// uniform scale 2, content centered vertically
	assert.True(t, m.Near(Matrix2D{2, 0, 0, 2, 0, 50}, tol))

	m = ViewBoxTransform(vb, 10, 0, 200, 200, AspectRatio{Align: AlignNone})
	assert.True(t, m.Near(Matrix2D{2, 0, 0, 4, 10, 0}, tol))

	ar, err := ParseAspectRatio("xMinYMax slice")
	require.NoError(t, err)
	m = ViewBoxTransform(ViewBox{10, 10, 100, 50}, 0, 0, 200, 200, ar)
	assert.True(t, m.Near(Matrix2D{4, 0, 0, 4, -40, -40}, tol))

	_, err = ParseAspectRatio("middle")
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0.3", FormatNumber(0.1+0.2))
	assert.Equal(t, "0", FormatNumber(-1e-12))
	assert.Equal(t, "-2.5", FormatNumber(-2.5))
	assert.Equal(t, "100", FormatNumber(100))
}
