// pkg/physics/collision.go
package physics

// Circle represents a circular collision shape
type Circle struct {
	Center Vector2D
	Radius float64
}

// Collides checks if two circles overlap. Touching circles (distance equal
// to the sum of radii) do not collide. The test runs on squared distances.
func (c Circle) Collides(other Circle) bool {
	reach := c.Radius + other.Radius
	return c.Center.DistanceSquared(other.Center) < reach*reach
}

// Contains reports whether point lies inside the circle, boundary included.
func (c Circle) Contains(point Vector2D) bool {
	return c.Center.DistanceSquared(point) <= c.Radius*c.Radius
}

// Rect represents an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	Min    Vector2D
	Width  float64
	Height float64
}

// NewPlayfield returns the rectangle [0,width] x [0,height].
func NewPlayfield(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Outside reports whether point has left the rectangle. Points exactly on
// an edge are still inside.
func (r Rect) Outside(point Vector2D) bool {
	return point.X < r.Min.X ||
		point.X > r.Min.X+r.Width ||
		point.Y < r.Min.Y ||
		point.Y > r.Min.Y+r.Height
}

// Contains is the negation of Outside.
func (r Rect) Contains(point Vector2D) bool {
	return !r.Outside(point)
}
