package core

// Ray is a half-line: an origin point plus a unit-length direction.
// Once constructed, a Ray is immutable — nothing in the integrator
// mutates Origin or Direction after NewRay returns.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay builds a ray from an origin and a direction, normalizing the
// direction so every Ray in the system carries a unit-length Direction.
func NewRay(origin Point3, direction Vec3) Ray {
	direction.Normalize()
	return Ray{Origin: origin, Direction: direction}
}

// NewRayTo builds a ray from an origin aimed at a target point.
func NewRayTo(origin, target Point3) Ray {
	return NewRay(origin, target.Sub(origin))
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
