package entity

// Property identifies an animatable scalar of a visual element
type Property uint8

const (
	PropX Property = iota
	PropY
	PropAlpha
	PropScale
)

// String returns the property name
func (p Property) String() string {
	switch p {
	case PropX:
		return "X"
	case PropY:
		return "Y"
	case PropAlpha:
		return "Alpha"
	case PropScale:
		return "Scale"
	default:
		return "Unknown"
	}
}

// Point is a 2D position in screen pixels
type Point struct {
	X, Y float64
}
