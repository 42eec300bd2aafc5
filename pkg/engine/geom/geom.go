// Package geom provides integer 2D geometry primitives used by the
// rendering engine: points, sizes and rectangles in pixel or tile units.
package geom

// Point is a 2D integer coordinate.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Mul returns the point scaled by an integer factor.
func (p Point) Mul(f int) Point {
	return Point{p.X * f, p.Y * f}
}

// Div returns the point divided by an integer factor.
func (p Point) Div(f int) Point {
	return Point{p.X / f, p.Y / f}
}

// Size is a 2D integer extent.
type Size struct {
	W int
	H int
}

// IsValid returns true when both dimensions are positive.
func (s Size) IsValid() bool {
	return s.W > 0 && s.H > 0
}

// Add returns the component-wise sum of two sizes.
func (s Size) Add(o Size) Size {
	return Size{s.W + o.W, s.H + o.H}
}

// Sub returns the component-wise difference of two sizes.
func (s Size) Sub(o Size) Size {
	return Size{s.W - o.W, s.H - o.H}
}

// Mul returns the size scaled by an integer factor.
func (s Size) Mul(f int) Size {
	return Size{s.W * f, s.H * f}
}

// Point returns the size reinterpreted as a point offset.
func (s Size) Point() Point {
	return Point{s.W, s.H}
}

// Area returns W*H.
func (s Size) Area() int {
	return s.W * s.H
}

// ScaledToFit returns the largest size with this size's aspect ratio that
// fits inside bounds. Used when mapping a destination rect back onto the
// framebuffer source area.
func (s Size) ScaledToFit(bounds Size) Size {
	if !s.IsValid() || !bounds.IsValid() {
		return Size{}
	}
	w := bounds.W
	h := w * s.H / s.W
	if h > bounds.H {
		h = bounds.H
		w = h * s.W / s.H
	}
	return Size{w, h}
}

// Rect is an axis-aligned integer rectangle described by its top-left
// corner and size. The zero Rect is invalid.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// NewRect builds a rect from a top-left point and a size.
func NewRect(topLeft Point, size Size) Rect {
	return Rect{topLeft.X, topLeft.Y, size.W, size.H}
}

// IsValid returns true when the rect has a positive extent.
func (r Rect) IsValid() bool {
	return r.W > 0 && r.H > 0
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{r.X, r.Y}
}

// Center returns the center point (rounded toward the top-left).
func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}

// Size returns the rect extent.
func (r Rect) Size() Size {
	return Size{r.W, r.H}
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translated returns the rect moved by the given offset.
func (r Rect) Translated(p Point) Rect {
	return Rect{r.X + p.X, r.Y + p.Y, r.W, r.H}
}

// Intersection returns the overlapping area of two rects, or an invalid
// rect when they do not overlap.
func (r Rect) Intersection(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{x, y, right - x, bottom - y}
}
