package piechart

// Tuple is an X,Y coordinate
type Tuple [2]float64

// InstructionType tells an encoder which drawing primitive it has to
// replay
type InstructionType int

// These are instruction types that the Recorder emits
const (
	MoveInstruction InstructionType = iota
	ArcInstruction
	LineInstruction
	CircleInstruction
	CloseInstruction
	PaintInstruction
)

func (k InstructionType) String() string {
	switch k {
	case MoveInstruction:
		return "move"
	case ArcInstruction:
		return "arc"
	case LineInstruction:
		return "line"
	case CircleInstruction:
		return "circle"
	case CloseInstruction:
		return "close"
	case PaintInstruction:
		return "paint"
	}
	return "unknown"
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw a cluster icon.
//
// M is the target point of moves and lines and the center of arcs and
// circles. Angles are in radians, 0 pointing right and growing clockwise on
// the y-down canvas. Fill, Stroke and StrokeWidth are only set on a
// PaintInstruction, which fills and then strokes the current path.
type DrawingInstruction struct {
	Kind        InstructionType
	M           *Tuple
	Radius      float64
	StartAngle  float64
	EndAngle    float64
	Fill        *string
	Stroke      *string
	StrokeWidth *float64
}
