package entity

// Rect is an axis-aligned rectangle in integer pixel coordinates
type Rect struct {
	X, Y int
	W, H int
}

// Left returns the left edge
func (r Rect) Left() int { return r.X }

// Right returns the right edge (exclusive)
func (r Rect) Right() int { return r.X + r.W }

// Top returns the top edge
func (r Rect) Top() int { return r.Y }

// Bottom returns the bottom edge (exclusive)
func (r Rect) Bottom() int { return r.Y + r.H }

// Offset returns r moved by dx, dy
func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects reports whether the rectangles overlap by at least one pixel.
// Rectangles that only share an edge do not intersect, and empty
// rectangles never intersect anything.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Facing is the horizontal direction an entity looks at
type Facing int

const (
	FacingLeft  Facing = -1
	FacingNone  Facing = 0
	FacingRight Facing = 1
)

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "none"
	}
}
