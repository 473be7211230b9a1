package core

// Point represents a 2D cell coordinate
type Point struct {
	X, Y int
}

// Area represents a rectangular target region in cell coordinates
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains returns true if the point lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Intersects returns true if the two areas overlap
func (a Area) Intersects(b Area) bool {
	return a.X < b.X+b.Width && b.X < a.X+a.Width &&
		a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
}

// Rect is a float-precision bounding box for particle simulation.
// Particles move in continuous coordinates; Rect decides containment
// before positions are quantized to cells for rendering
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect builds a Rect from an origin and dimensions
func NewRect(x, y, width, height float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + width, MaxY: y + height}
}

// Pad returns a copy expanded by p on all sides.
// Negative p shrinks the rect; no clamping is performed
func (r Rect) Pad(p float64) Rect {
	return Rect{
		MinX: r.MinX - p,
		MinY: r.MinY - p,
		MaxX: r.MaxX + p,
		MaxY: r.MaxY + p,
	}
}

// Contains returns true if the point lies inside the rect
func (r Rect) Contains(x, y float64) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}
