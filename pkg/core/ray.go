package core

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform moves the ray into the frame m. The origin is translated when
// translate is set; the direction never is.
func (r Ray) Transform(m Mat4, translate bool) Ray {
	return Ray{
		Origin:    m.Transform(r.Origin, translate),
		Direction: m.Transform(r.Direction, false),
	}
}

// Hit describes a successful ray-primitive intersection.
type Hit struct {
	Point      Vec3    // Point of intersection
	Distance   float64 // Parameter t along the ray, > 0
	Normal     Vec3    // Unit surface normal
	MaterialID int     // Index into the scene material table
	U, V       float64 // Surface parametric coordinates
}
