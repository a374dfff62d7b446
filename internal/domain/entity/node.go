package entity

// Node is a positioned visual element. Position is the element's anchor
// point (its center for sprites), in screen pixels.
type Node struct {
	X, Y    float64
	Alpha   float64
	Scale   float64
	Visible bool

	// Texture names the asset drawn for this node; empty means none.
	Texture string
}

// NewNode creates a fully opaque, visible node at (x, y)
func NewNode(x, y float64) *Node {
	return &Node{X: x, Y: y, Alpha: 1, Scale: 1, Visible: true}
}

// Field returns a pointer to the animatable property, nil if unsupported
func (n *Node) Field(p Property) *float64 {
	switch p {
	case PropX:
		return &n.X
	case PropY:
		return &n.Y
	case PropAlpha:
		return &n.Alpha
	case PropScale:
		return &n.Scale
	default:
		return nil
	}
}

// SetPosition moves the node to (x, y)
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// Position returns the node position
func (n *Node) Position() Point {
	return Point{X: n.X, Y: n.Y}
}
