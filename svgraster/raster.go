// Implements a raster backend to preview SVG documents,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/svgedit/shaper"
	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpath"
	"github.com/benoitkugler/svgedit/svgstyle"
	"github.com/benoitkugler/svgedit/svgxform"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// If scanner is nil, a default scanner rasterx.ScannerGV is used,
// drawing into a new image of size (width, height).
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	if scanner == nil {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		scanner = rasterx.NewScannerGV(width, height, img, img.Bounds())
	}
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

func (rd *Renderer) SetWinding(useNonZeroWinding bool) {
	rd.dasher.SetWinding(useNonZeroWinding)
	rd.filler.SetWinding(useNonZeroWinding)
}

// withOpacity merges the alpha of c and opacity; rasterx.ApplyOpacity
// expects an opaque color.
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	opacity *= float64(c.A) / 0xff
	c.A = 0xff
	return rasterx.ApplyOpacity(c, opacity)
}

var (
	joinModes = map[string]rasterx.JoinMode{
		"round":      rasterx.Round,
		"bevel":      rasterx.Bevel,
		"miter":      rasterx.Miter,
		"miter-clip": rasterx.MiterClip,
		"arcs":       rasterx.Arc,
	}

	capFuncs = map[string]rasterx.CapFunc{
		"butt":   rasterx.ButtCap,
		"square": rasterx.SquareCap,
		"round":  rasterx.RoundCap,
	}
)

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func (rd *Renderer) setStrokeOptions(options svgstyle.StrokeOptions) {
	join, ok := joinModes[options.LineJoin]
	if !ok {
		join = rasterx.Miter
	}
	capFunc, ok := capFuncs[options.LineCap]
	if !ok {
		capFunc = rasterx.ButtCap
	}
	gap := rasterx.FlatGap
	if join == rasterx.Round {
		gap = rasterx.RoundGap
	}
	rd.dasher.SetStroke(toFixed(options.Width), toFixed(options.MiterLimit),
		capFunc, capFunc, gap, join, options.Dash, options.DashOffset)
}

// FillPath fills p, mapped by m, with the color c.
func (rd *Renderer) FillPath(p svgpath.Path, m svgxform.Matrix2D, c color.NRGBA, opacity float64) {
	rd.filler.Clear()
	rd.filler.SetColor(withOpacity(c, opacity))
	p.AddTo(rd.filler, m)
	rd.filler.Draw()
}

// StrokePath strokes p, mapped by m, with the color c.
// The stroke width is given in the output space.
func (rd *Renderer) StrokePath(p svgpath.Path, m svgxform.Matrix2D, c color.NRGBA, opacity float64, options svgstyle.StrokeOptions) {
	rd.dasher.Clear()
	rd.setStrokeOptions(options)
	rd.dasher.SetColor(withOpacity(c, opacity))
	p.AddTo(rd.dasher, m)
	rd.dasher.Draw()
}

// Options controls the preview of a document.
type Options struct {
	// Size of the output image; a zero value is
	// replaced by the size of the root element.
	Width, Height int
	// Selection is stroked on top of the shapes,
	// as the boxes of the given shapes.
	Selection []shaper.Shape
	// SelectionColor defaults to a plain blue.
	SelectionColor color.NRGBA
	Env            shaper.Env
}

var defaultSelectionColor = color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}

// Rasterize uses a ScannerGV instance to render the shapes of doc into
// an image: each supported shape is filled and stroked with its
// resolved plain color paints, then the selection boxes are drawn.
func Rasterize(doc *svgdoc.Document, opts Options) (*image.RGBA, error) {
	env := opts.Env.WithDefaults()
	w, h, origin := shaper.CanvasSize(doc, env)
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = int(math.Ceil(w))
	}
	if height <= 0 {
		height = int(math.Ceil(h))
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New("svgraster: empty output size")
	}
	view := svgxform.Identity
	if w > 0 && h > 0 {
		view = view.Scale(float64(width)/w, float64(height)/h)
	}
	view = view.Translate(-origin.X, -origin.Y)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	rd := NewRenderer(width, height, scanner)

	err := shaper.WalkOutlines(doc, env, func(s *shaper.Shaper, outline svgpath.Path, m svgxform.Matrix2D) error {
		rd.drawShape(doc, s.ID(), outline, view.Mult(m), env)
		return nil
	})
	if err != nil {
		return nil, err
	}

	selColor := opts.SelectionColor
	if selColor == (color.NRGBA{}) {
		selColor = defaultSelectionColor
	}
	for _, sel := range opts.Selection {
		if err := rd.drawSelection(sel, view, selColor); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// RasterSVGToImage decodes an SVG document and renders it
// with default options.
func RasterSVGToImage(svg io.Reader) (*image.RGBA, error) {
	doc, err := svgdoc.Decode(svg, svgdoc.DecodeOptions{ErrorMode: svgdoc.IgnoreErrorMode})
	if err != nil {
		return nil, err
	}
	return Rasterize(doc, Options{})
}

func (rd *Renderer) drawShape(doc *svgdoc.Document, id svgdoc.NodeID, outline svgpath.Path, m svgxform.Matrix2D, env shaper.Env) {
	st := svgstyle.Resolve(doc, id, env.Units)
	if st.Hidden {
		return
	}
	if fill, ok := st.Fill(); ok {
		rd.SetWinding(st.NonZero())
		rd.FillPath(outline, m, fill, st.Opacity*st.FillOpacity)
	}
	if stroke, ok := st.Stroke(); ok {
		options := st.Line.Scaled(math.Sqrt(math.Abs(m.Det())))
		rd.StrokePath(outline, m, stroke, st.Opacity*st.StrokeOpacity, options)
	}
}

// drawSelection strokes the box of the shape, in its own
// (possibly rotated) frame
func (rd *Renderer) drawSelection(sel shaper.Shape, view svgxform.Matrix2D, c color.NRGBA) error {
	p, m, err := shaper.SelectionOutline(sel)
	if err != nil {
		return err
	}
	options := svgstyle.DefaultStrokeOptions
	options.Dash = []float64{4, 2}
	rd.StrokePath(p, view.Mult(m), c, 1, options)
	return nil
}
