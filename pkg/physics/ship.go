package physics

import "math"

var (
	// triangleBaseAngle is the angular offset of the two base vertices
	// from the ship heading.
	triangleBaseAngle = math.Pi - math.Atan(0.5)
	// triangleBaseScale stretches the base vertices so they sit one radius
	// behind the center and half a radius to either side.
	triangleBaseScale = math.Sqrt(5) / 2
)

// MovementState tracks ship kinematics. Ships have no inertia: the
// position only changes while thrust is held.
type MovementState struct {
	Position      Vector2D
	Heading       float64 // radians
	Speed         float64
	RotationSpeed float64
}

// UpdateMovement integrates one step of thrust along the heading and
// rotation. forwardInput and turnInput are in [-1, 1]; a positive
// turnInput rotates clockwise on screen.
func UpdateMovement(state *MovementState, deltaTime float64, forwardInput float64, turnInput float64) {
	step := FromHeading(state.Heading, state.Speed*forwardInput*deltaTime)
	state.Position = state.Position.Add(step)
	state.Heading -= state.RotationSpeed * turnInput * deltaTime
}

// ShipTriangle returns the three vertices of an isosceles arrow centered
// at center. The apex sits radius units along heading.
func ShipTriangle(center Vector2D, heading float64, radius float64) [3]Vector2D {
	base := radius * triangleBaseScale
	return [3]Vector2D{
		center.Add(FromHeading(heading, radius)),
		center.Add(FromHeading(heading+triangleBaseAngle, base)),
		center.Add(FromHeading(heading-triangleBaseAngle, base)),
	}
}

// PointInTriangle reports whether p lies inside (or on an edge of) the
// triangle abc, independent of winding order.
func PointInTriangle(p Vector2D, tri [3]Vector2D) bool {
	d1 := cross(p, tri[0], tri[1])
	d2 := cross(p, tri[1], tri[2])
	d3 := cross(p, tri[2], tri[0])

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(p, a, b Vector2D) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
