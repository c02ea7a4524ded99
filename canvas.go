package piechart

import mt "github.com/rustyoz/Mtransform"

// Canvas is the immediate-mode drawing surface the renderer draws on. The
// calls mirror a 2D canvas: build a path with MoveTo, Arc, LineTo, Circle
// and ClosePath, then Paint fills and strokes it and starts a new path.
type Canvas interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	Circle(x, y, radius float64)
	ClosePath()
	Paint(fill, stroke string, lineWidth float64)
}

// Recorder is a Canvas that keeps every call as a DrawingInstruction.
// Coordinates are mapped through a scale transform so a chart laid out in
// logical pixels can be recorded for a denser device.
type Recorder struct {
	Transform    *mt.Transform
	scale        float64
	instructions []*DrawingInstruction
}

// NewRecorder returns a Recorder scaling all geometry by scale. A scale of
// zero or less records in logical pixels.
func NewRecorder(scale float64) *Recorder {
	r := &Recorder{Transform: mt.NewTransform(), scale: 1}
	if scale > 0 {
		r.Transform.Scale(scale, scale)
		r.scale = scale
	}
	return r
}

// Scale returns the factor applied to recorded geometry.
func (r *Recorder) Scale() float64 {
	return r.scale
}

// Instructions returns the recorded instructions in call order.
func (r *Recorder) Instructions() []*DrawingInstruction {
	return r.instructions
}

func (r *Recorder) point(x, y float64) *Tuple {
	tx, ty := r.Transform.Apply(x, y)
	return &Tuple{tx, ty}
}

func (r *Recorder) add(di *DrawingInstruction) {
	r.instructions = append(r.instructions, di)
}

// MoveTo implements the Canvas interface
func (r *Recorder) MoveTo(x, y float64) {
	r.add(&DrawingInstruction{Kind: MoveInstruction, M: r.point(x, y)})
}

// LineTo implements the Canvas interface
func (r *Recorder) LineTo(x, y float64) {
	r.add(&DrawingInstruction{Kind: LineInstruction, M: r.point(x, y)})
}

// Arc implements the Canvas interface
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64) {
	r.add(&DrawingInstruction{
		Kind:       ArcInstruction,
		M:          r.point(x, y),
		Radius:     radius * r.scale,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	})
}

// Circle implements the Canvas interface
func (r *Recorder) Circle(x, y, radius float64) {
	r.add(&DrawingInstruction{Kind: CircleInstruction, M: r.point(x, y), Radius: radius * r.scale})
}

// ClosePath implements the Canvas interface
func (r *Recorder) ClosePath() {
	r.add(&DrawingInstruction{Kind: CloseInstruction})
}

// Paint implements the Canvas interface
func (r *Recorder) Paint(fill, stroke string, lineWidth float64) {
	scaled := lineWidth * r.scale
	r.add(&DrawingInstruction{
		Kind:        PaintInstruction,
		Fill:        &fill,
		Stroke:      &stroke,
		StrokeWidth: &scaled,
	})
}
