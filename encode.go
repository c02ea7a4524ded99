package piechart

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
)

// Encoder turns recorded drawing instructions into a self-contained image.
type Encoder interface {
	Encode(instrs []*DrawingInstruction, width, height int) ([]byte, error)
	MediaType() string
	Extension() string
}

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// NewEncoder returns the encoder for format.
func NewEncoder(format string) (Encoder, error) {
	switch strings.ToLower(format) {
	case FormatPNG, "":
		return PNGEncoder{}, nil
	case FormatSVG:
		return SVGEncoder{}, nil
	}
	return nil, fmt.Errorf("%w: unknown image format %q", ErrConfiguration, format)
}

// PNGEncoder rasterizes instructions and encodes them as PNG.
type PNGEncoder struct{}

// MediaType implements the Encoder interface
func (PNGEncoder) MediaType() string { return "image/png" }

// Extension implements the Encoder interface
func (PNGEncoder) Extension() string { return FormatPNG }

// Encode implements the Encoder interface
func (PNGEncoder) Encode(instrs []*DrawingInstruction, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidInput, width, height)
	}

	dc := gg.NewContext(width, height)
	for _, di := range instrs {
		switch di.Kind {
		case MoveInstruction:
			dc.MoveTo(di.M[0], di.M[1])
		case LineInstruction:
			dc.LineTo(di.M[0], di.M[1])
		case ArcInstruction:
			dc.DrawArc(di.M[0], di.M[1], di.Radius, di.StartAngle, di.EndAngle)
		case CircleInstruction:
			dc.DrawCircle(di.M[0], di.M[1], di.Radius)
		case CloseInstruction:
			dc.ClosePath()
		case PaintInstruction:
			fill, err := ParseColor(*di.Fill)
			if err != nil {
				return nil, err
			}
			dc.SetColor(fill)
			if *di.StrokeWidth <= 0 {
				dc.Fill()
				continue
			}
			dc.FillPreserve()

			stroke, err := ParseColor(*di.Stroke)
			if err != nil {
				return nil, err
			}
			dc.SetColor(stroke)
			dc.SetLineWidth(*di.StrokeWidth)
			dc.Stroke()
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("error encoding png: %s", err)
	}
	return buf.Bytes(), nil
}

// SVGEncoder writes instructions as SVG path elements. Colors are passed
// through to the document as given.
type SVGEncoder struct{}

// MediaType implements the Encoder interface
func (SVGEncoder) MediaType() string { return "image/svg+xml" }

// Extension implements the Encoder interface
func (SVGEncoder) Extension() string { return FormatSVG }

// Encode implements the Encoder interface
func (SVGEncoder) Encode(instrs []*DrawingInstruction, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidInput, width, height)
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)

	var d []string
	for _, di := range instrs {
		switch di.Kind {
		case MoveInstruction:
			d = append(d, "M"+coords(di.M[0], di.M[1]))
		case LineInstruction:
			d = append(d, "L"+coords(di.M[0], di.M[1]))
		case ArcInstruction:
			d = append(d, arcPath(di))
		case CircleInstruction:
			d = append(d, circlePath(di))
		case CloseInstruction:
			d = append(d, "Z")
		case PaintInstruction:
			style := "fill:" + *di.Fill
			if *di.StrokeWidth > 0 {
				style += ";stroke:" + *di.Stroke + ";stroke-width:" + num(*di.StrokeWidth)
			}
			canvas.Path(strings.Join(d, " "), style)
			d = d[:0]
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}

// arcPath continues the current path with a line to the arc start and a
// clockwise elliptical arc command to its end.
func arcPath(di *DrawingInstruction) string {
	cx, cy, r := di.M[0], di.M[1], di.Radius
	x0, y0 := cx+r*math.Cos(di.StartAngle), cy+r*math.Sin(di.StartAngle)
	x1, y1 := cx+r*math.Cos(di.EndAngle), cy+r*math.Sin(di.EndAngle)

	large := "0"
	if di.EndAngle-di.StartAngle > math.Pi {
		large = "1"
	}
	return "L" + coords(x0, y0) + " A" + coords(r, r) + " 0 " + large + " 1 " + coords(x1, y1)
}

// circlePath draws a full circle as two half arcs, a single SVG arc can't
// end where it starts.
func circlePath(di *DrawingInstruction) string {
	cx, cy, r := di.M[0], di.M[1], di.Radius
	return "M" + coords(cx+r, cy) +
		" A" + coords(r, r) + " 0 1 1 " + coords(cx-r, cy) +
		" A" + coords(r, r) + " 0 1 1 " + coords(cx+r, cy) + " Z"
}

func coords(x, y float64) string {
	return num(x) + "," + num(y)
}

func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
