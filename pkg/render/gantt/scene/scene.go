// Package scene models a chart as an ordered tree of drawing primitives.
//
// The primitives carry geometry and style-class names only; all visual
// attributes live in the tree's stylesheet. Any serializer can walk the
// node list and emit its own format.
package scene

// Node is one drawing primitive. The set is closed: serializers switch
// over the concrete types.
type Node interface {
	node()
}

// Line is a straight stroke between two points.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Class  string
}

// Rect is a rectangle with rounded corners.
type Rect struct {
	X, Y  float64
	W, H  float64
	RX    float64 // Corner radius, both axes
	Class string
}

// Diamond is a milestone marker: a square rotated 45 degrees, centered
// horizontally on CX with its top vertex at Y.
type Diamond struct {
	CX    float64
	Y     float64 // Top of the row band; the vertical center is Y + R
	R     float64 // Half diagonal
	Class string
}

// Text is an anchored string.
type Text struct {
	X, Y    float64
	Class   string
	Content string
}

// Group keeps related primitives together under one name.
type Group struct {
	Class string
	Nodes []Node
}

func (Line) node()    {}
func (Rect) node()    {}
func (Diamond) node() {}
func (Text) node()    {}
func (Group) node()   {}

// Tree is the complete drawing: canvas size, background, stylesheet, and
// the primitives in document order.
type Tree struct {
	Width      float64
	Height     float64
	Background string
	Styles     string
	Nodes      []Node
}
