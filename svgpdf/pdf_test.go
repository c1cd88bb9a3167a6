package svgpdf

import (
	"bytes"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgedit/shaper"
	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgunits"
	"github.com/benoitkugler/svgedit/svgxform"
	"github.com/benoitkugler/svgedit/textmetrics"
	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEnv = shaper.Env{
	Units:  svgunits.Standard{},
	Text:   textmetrics.BasicProvider{},
	Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
}

// renderUncompressed returns the PDF content, with readable streams
func renderUncompressed(t *testing.T, doc *svgdoc.Document, opts Options) string {
	t.Helper()
	pdf := gofpdf.New("", "pt", "", "")
	pdf.SetCompression(false)
	require.NoError(t, NewRenderer(pdf).Render(doc, opts))
	var b bytes.Buffer
	require.NoError(t, pdf.Output(&b))
	return b.String()
}

func newDoc(t *testing.T) (*svgdoc.Document, svgdoc.NodeID) {
	t.Helper()
	doc := svgdoc.NewDocument(svgdoc.NewElement(svgdoc.KindSVG, "width", "20", "height", "20"))
	r, err := doc.AddChild(doc.Root(), svgdoc.NewElement(svgdoc.KindRect,
		"x", "5", "y", "5", "width", "10", "height", "10", "fill", "#ff0000", "stroke", "blue", "stroke-width", "2"))
	require.NoError(t, err)
	return doc, r
}

func TestRender(t *testing.T) {
	doc, _ := newDoc(t)
	content := renderUncompressed(t, doc, Options{Env: testEnv})

	assert.True(t, strings.HasPrefix(content, "%PDF-"))
	// page of 15pt x 15pt, y axis pointing up
	assert.Contains(t, content, "[0 0 15.00 15.00]")
	assert.Contains(t, content, "3.75 11.25 m")
	assert.Contains(t, content, "11.25 11.25 l")
	assert.Contains(t, content, "1.000 0.000 0.000 rg")
	assert.Contains(t, content, "\nf\n")
	// stroke width of 2px
	assert.Contains(t, content, "1.50 w")
	assert.Contains(t, content, "\nS\n")
}

func TestRenderSelection(t *testing.T) {
	doc, r := newDoc(t)
	s, err := shaper.New(doc, r, testEnv)
	require.NoError(t, err)
	content := renderUncompressed(t, doc, Options{Env: testEnv, Selection: []shaper.Shape{s}})
	assert.Contains(t, content, "[3.00 1.50] 0.00 d")
}

func TestRenderEmptyCanvas(t *testing.T) {
	doc := svgdoc.NewDocument(svgdoc.NewElement(svgdoc.KindSVG))
	err := WriteProof(io.Discard, doc, Options{Env: testEnv})
	assert.Error(t, err)
}

func TestQuadraticCurves(t *testing.T) {
	pdf := gofpdf.New("", "pt", "", "")
	pdf.SetCompression(false)
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: 30, Ht: 30})
	rd := NewRenderer(pdf)
	rd.FillPath(svgpath.MustParse("M0 0 Q 15 30 30 0 Z"), svgxform.Identity, testRed, 1, true)
	var b bytes.Buffer
	require.NoError(t, pdf.Output(&b))
	// control points at 2/3 of the quadratic one
	assert.Contains(t, b.String(), "10.00000 10.00000 20.00000 10.00000 30.00000 30.00000 c")
}

func TestWriteProofFile(t *testing.T) {
	src := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 40 40">
		<g transform="rotate(45 20 20)"><ellipse cx="20" cy="20" rx="15" ry="5" fill="green"/></g>
	</svg>`
	out := filepath.Join(t.TempDir(), "proof.pdf")
	require.NoError(t, RenderSVGToPDF(strings.NewReader(src), out))
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

var testRed = color.NRGBA{R: 0xff, A: 0xff}
