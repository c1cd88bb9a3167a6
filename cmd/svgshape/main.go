// Command svgshape edits the geometry of the elements of an SVG file,
// and writes previews of the result.
//
//	svgshape -in drawing.svg -select r1,c2 -op move -dx 10 -out moved.svg -png moved.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/benoitkugler/svgedit/internal/config"
	"github.com/benoitkugler/svgedit/internal/logging"
	"github.com/benoitkugler/svgedit/shaper"
	"github.com/benoitkugler/svgedit/svgdoc"
	"github.com/benoitkugler/svgedit/svgpdf"
	"github.com/benoitkugler/svgedit/svgraster"
	"github.com/benoitkugler/svgedit/svgunits"
	"github.com/benoitkugler/svgedit/textmetrics"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	in, out, png, pdf, config string
	selection                 string
	op                        string
	dx, dy, x, y, w, h, angle float64
	anchor                    string
	paint                     string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("svgshape", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.in, "in", "", "input SVG file (required)")
	fs.StringVar(&o.out, "out", "", "output SVG file")
	fs.StringVar(&o.png, "png", "", "output PNG preview, with the selection boxes")
	fs.StringVar(&o.pdf, "pdf", "", "output PDF proof, with the selection boxes")
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.StringVar(&o.selection, "select", "", "comma separated element ids")
	fs.StringVar(&o.op, "op", "info", "info|move|center|resize|rotate|fill|stroke")
	fs.Float64Var(&o.dx, "dx", 0, "horizontal move")
	fs.Float64Var(&o.dy, "dy", 0, "vertical move")
	fs.Float64Var(&o.x, "x", 0, "new center abscissa")
	fs.Float64Var(&o.y, "y", 0, "new center ordinate")
	fs.Float64Var(&o.w, "w", 0, "new width")
	fs.Float64Var(&o.h, "h", 0, "new height")
	fs.Float64Var(&o.angle, "angle", 0, "rotation, in degrees")
	fs.StringVar(&o.anchor, "anchor", "center", "fixed point of a resize: tl|tr|bl|br|center")
	fs.StringVar(&o.paint, "paint", "", "fill or stroke value")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.in == "" {
		fs.Usage()
		return o, errors.New("missing -in")
	}
	return o, nil
}

func envFromConfig(cfg config.Config, logger *slog.Logger) shaper.Env {
	env := shaper.Env{
		Units:  svgunits.Standard{DPI: cfg.Units.DPI, FontSize: cfg.Units.FontSize},
		Logger: logger,
	}
	if cfg.Text.Metrics == "basic" {
		env.Text = textmetrics.BasicProvider{}
	} else {
		env.Text = textmetrics.NewFaceProvider()
	}
	return env
}

var decodeModes = map[string]svgdoc.ErrorMode{
	"ignore": svgdoc.IgnoreErrorMode,
	"warn":   svgdoc.WarnErrorMode,
	"strict": svgdoc.StrictErrorMode,
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}
	logging.Init(logging.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := logging.WithComponent("cli")

	doc, err := svgdoc.DecodeFile(o.in, svgdoc.DecodeOptions{ErrorMode: decodeModes[cfg.Decode.Mode], Logger: l})
	if err != nil {
		return err
	}
	env := envFromConfig(cfg, l)
	l.Debug("decoded", slog.String("file", o.in))

	shape, err := selectShape(doc, o.selection, env)
	if err != nil {
		return err
	}
	if err := apply(shape, o, stdout); err != nil {
		l.Error("operation failed", slog.String("op", o.op), slog.Any("err", err))
		return err
	}
	return writeOutputs(doc, shape, o, cfg, env)
}

// selectShape returns a Shaper for a single id, a MultiShaper for several,
// and the root element for an empty selection.
func selectShape(doc *svgdoc.Document, selection string, env shaper.Env) (shaper.Shape, error) {
	var ids []svgdoc.NodeID
	for _, name := range strings.Split(selection, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		id := doc.Lookup(name)
		if id == svgdoc.NoNode {
			return nil, fmt.Errorf("no element with id %q", name)
		}
		ids = append(ids, id)
	}
	switch len(ids) {
	case 0:
		return shaper.New(doc, doc.Root(), env)
	case 1:
		return shaper.New(doc, ids[0], env)
	default:
		return shaper.NewMulti(doc, ids, env)
	}
}

func anchorPoint(s shaper.Shape, anchor string) (shaper.Point, error) {
	switch anchor {
	case "tl":
		return s.TopLeft()
	case "tr":
		return s.TopRight()
	case "bl":
		return s.BottomLeft()
	case "br":
		return s.BottomRight()
	case "center", "":
		return s.Center()
	}
	return shaper.Point{}, fmt.Errorf("invalid anchor %q", anchor)
}

func apply(s shaper.Shape, o options, stdout io.Writer) error {
	switch o.op {
	case "info":
		return printInfo(s, stdout)
	case "move":
		return s.Move(shaper.Point{X: o.dx, Y: o.dy})
	case "center":
		return s.SetCenter(shaper.Point{X: o.x, Y: o.y})
	case "resize":
		a, err := anchorPoint(s, o.anchor)
		if err != nil {
			return err
		}
		return s.ResizeAnchored(shaper.Point{X: o.w, Y: o.h}, a)
	case "rotate":
		return s.Rotate(o.angle)
	case "fill", "stroke":
		p, err := svgdoc.ParsePaint(o.paint)
		if err != nil {
			return err
		}
		if o.op == "fill" {
			return s.SetFill(p)
		}
		return s.SetStroke(p)
	}
	return fmt.Errorf("unknown operation %q", o.op)
}

func printInfo(s shaper.Shape, w io.Writer) error {
	c, err := s.Center()
	if err != nil {
		return err
	}
	size, err := s.Size()
	if err != nil {
		return err
	}
	m, err := s.ComposedTransform()
	if err != nil {
		return err
	}
	b, err := s.Bounds()
	if err != nil {
		return err
	}
	fill, err := s.Fill()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "center:    %g %g\n", c.X, c.Y)
	fmt.Fprintf(w, "size:      %g %g\n", size.X, size.Y)
	fmt.Fprintf(w, "bounds:    %g %g %g %g\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
	fmt.Fprintf(w, "transform: %s\n", m)
	fmt.Fprintf(w, "fill:      %s\n", fill)
	return nil
}

func selectionOf(s shaper.Shape) []shaper.Shape {
	if ms, ok := s.(*shaper.MultiShaper); ok {
		out := make([]shaper.Shape, 0, len(ms.Members()))
		for _, m := range ms.Members() {
			out = append(out, m)
		}
		return out
	}
	return []shaper.Shape{s}
}

func writeOutputs(doc *svgdoc.Document, shape shaper.Shape, o options, cfg config.Config, env shaper.Env) error {
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		if err := svgdoc.Encode(f, doc); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	var selColor svgdoc.Paint
	if cfg.Preview.SelectionColor != "" {
		var err error
		if selColor, err = svgdoc.ParsePaint(cfg.Preview.SelectionColor); err != nil {
			return fmt.Errorf("selection color: %w", err)
		}
	}
	var selection []shaper.Shape
	if strings.TrimSpace(o.selection) != "" {
		selection = selectionOf(shape)
	}
	if o.png != "" {
		w, h, _ := shaper.CanvasSize(doc, env)
		img, err := svgraster.Rasterize(doc, svgraster.Options{
			Width:          int(w*cfg.Preview.Scale + 0.5),
			Height:         int(h*cfg.Preview.Scale + 0.5),
			Selection:      selection,
			SelectionColor: selColor.Color,
			Env:            env,
		})
		if err != nil {
			return err
		}
		f, err := os.Create(o.png)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	if o.pdf != "" {
		f, err := os.Create(o.pdf)
		if err != nil {
			return err
		}
		err = svgpdf.WriteProof(f, doc, svgpdf.Options{Selection: selection, SelectionColor: selColor.Color, Env: env})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}
