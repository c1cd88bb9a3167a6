// Implements a PDF backend to write proofs of SVG documents,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"errors"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/svgedit/shaper"
	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgstyle"
	"github.com/benoitkugler/svgedit/svgxform"
	"github.com/jung-kurt/gofpdf"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// PixelToPoint is the size of a CSS pixel, in PDF points.
const PixelToPoint = 0.75

var _ rasterx.Adder = (*pather)(nil)

type Renderer struct {
	pdf *gofpdf.Fpdf
}

// implements the path commands, writing
// them to the current page
type pather struct {
	pdf *gofpdf.Fpdf
	a   fixed.Point26_6 // current point, used to raise quadratic curves
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
	p.a = a
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
	p.a = b
}

// QuadBezier is written as the equivalent cubic curve, since
// gofpdf CurveTo uses the current point as first control point.
func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	x0, y0 := fixedTof(p.a)
	bx, by := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveBezierCubicTo(x0+2./3*(bx-x0), y0+2./3*(by-y0), x+2./3*(bx-x), y+2./3*(by-y), x, y)
	p.a = c
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	p.a = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func clampAlpha(opacity float64, c color.NRGBA) float64 {
	return math.Max(0, math.Min(1, opacity*float64(c.A)/0xff))
}

// FillPath fills p, mapped by m to the page space.
func (r Renderer) FillPath(p svgpath.Path, m svgxform.Matrix2D, c color.NRGBA, opacity float64, useNonZeroWinding bool) {
	r.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(clampAlpha(opacity, c), "")
	p.AddTo(&pather{pdf: r.pdf}, m)
	styleStr := "f*"
	if useNonZeroWinding {
		styleStr = "f"
	}
	r.pdf.DrawPath(styleStr)
}

var (
	lineJoins = map[string]string{"miter": "miter", "miter-clip": "miter", "arcs": "miter", "round": "round", "bevel": "bevel"}
	lineCaps  = map[string]string{"butt": "butt", "round": "round", "square": "square"}
)

// StrokePath strokes p, mapped by m to the page space.
// The stroke width and dashes are given in the page space.
func (r Renderer) StrokePath(p svgpath.Path, m svgxform.Matrix2D, c color.NRGBA, opacity float64, options svgstyle.StrokeOptions) {
	r.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	r.pdf.SetAlpha(clampAlpha(opacity, c), "")
	r.pdf.SetLineWidth(options.Width)
	join, ok := lineJoins[options.LineJoin]
	if !ok {
		join = "miter"
	}
	r.pdf.SetLineJoinStyle(join)
	lineCap, ok := lineCaps[options.LineCap]
	if !ok {
		lineCap = "butt"
	}
	r.pdf.SetLineCapStyle(lineCap)
	r.pdf.SetDashPattern(options.Dash, options.DashOffset)
	p.AddTo(&pather{pdf: r.pdf}, m)
	r.pdf.DrawPath("D")
}

// Options controls the proof of a document.
type Options struct {
	// Selection is drawn on top of the shapes,
	// as the boxes of the given shapes.
	Selection []shaper.Shape
	// SelectionColor defaults to a plain blue.
	SelectionColor color.NRGBA
	Env            shaper.Env
}

var defaultSelectionColor = color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}

// Render writes the shapes of doc on a new page, whose size
// is the canvas size of the document, then the selection boxes.
func (r Renderer) Render(doc *svgdoc.Document, opts Options) error {
	env := opts.Env.WithDefaults()
	w, h, origin := shaper.CanvasSize(doc, env)
	if w <= 0 || h <= 0 {
		return errors.New("svgpdf: empty canvas")
	}
	r.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w * PixelToPoint, Ht: h * PixelToPoint})
	view := svgxform.Identity.Scale(PixelToPoint, PixelToPoint).Translate(-origin.X, -origin.Y)

	err := shaper.WalkOutlines(doc, env, func(s *shaper.Shaper, outline svgpath.Path, m svgxform.Matrix2D) error {
		m = view.Mult(m)
		st := svgstyle.Resolve(doc, s.ID(), env.Units)
		if st.Hidden {
			return nil
		}
		if fill, ok := st.Fill(); ok {
			r.FillPath(outline, m, fill, st.Opacity*st.FillOpacity, st.NonZero())
		}
		if stroke, ok := st.Stroke(); ok {
			options := st.Line.Scaled(math.Sqrt(math.Abs(m.Det())))
			r.StrokePath(outline, m, stroke, st.Opacity*st.StrokeOpacity, options)
		}
		return nil
	})
	if err != nil {
		return err
	}

	selColor := opts.SelectionColor
	if selColor == (color.NRGBA{}) {
		selColor = defaultSelectionColor
	}
	for _, sel := range opts.Selection {
		p, m, err := shaper.SelectionOutline(sel)
		if err != nil {
			return err
		}
		options := svgstyle.DefaultStrokeOptions
		options.Width = 0.5
		options.Dash = []float64{3, 1.5}
		r.StrokePath(p, view.Mult(m), selColor, 1, options)
	}
	return r.pdf.Error()
}

// WriteProof renders doc to a one page PDF file, written to w.
func WriteProof(w io.Writer, doc *svgdoc.Document, opts Options) error {
	pdf := gofpdf.New("", "pt", "", "")
	if err := NewRenderer(pdf).Render(doc, opts); err != nil {
		return err
	}
	return pdf.Output(w)
}

// RenderSVGToPDF decodes an SVG document and writes
// its proof to the file pdfName.
func RenderSVGToPDF(svg io.Reader, pdfName string) error {
	doc, err := svgdoc.Decode(svg, svgdoc.DecodeOptions{ErrorMode: svgdoc.IgnoreErrorMode})
	if err != nil {
		return err
	}
	pdf := gofpdf.New("", "pt", "", "")
	if err := NewRenderer(pdf).Render(doc, Options{}); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(pdfName)
}
