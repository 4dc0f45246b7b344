// pkg/physics/vector.go
package physics

import "math"

// Vector2D represents a 2D vector with x and y components.
// Coordinates are screen coordinates: +X points right, +Y points down.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns magnitude squared (optimization for comparisons)
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between two points.
func (v Vector2D) DistanceSquared(other Vector2D) float64 {
	return v.Sub(other).LengthSquared()
}

// FromHeading creates a vector of the given magnitude pointing along heading.
// Heading 0 points along +X and positive headings turn towards screen-up,
// so the Y component is negated relative to the math convention.
func FromHeading(heading float64, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * math.Cos(heading),
		Y: -magnitude * math.Sin(heading),
	}
}
