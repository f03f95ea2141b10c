package gm

import "math"

// Rot is a 2d rotation stored as a unit complex number. Keeping the cosine
// and sine around avoids evaluating trigonometric functions every time a
// vector is transformed.
type Rot struct {
	Cos, Sin float64
}

// IdentityRot is the rotation by zero degrees.
var IdentityRot = Rot{Cos: 1}

// RotOf returns the rotation by the given angle.
func RotOf(angle Rad) Rot {
	return Rot{Cos: angle.Cos(), Sin: angle.Sin()}
}

// Angle returns the rotation angle in the range [-π, π].
func (r Rot) Angle() Rad {
	return Rad(math.Atan2(r.Sin, r.Cos))
}

// Mul composes the two rotations.
func (r Rot) Mul(other Rot) Rot {
	return Rot{
		Cos: r.Cos*other.Cos - r.Sin*other.Sin,
		Sin: r.Sin*other.Cos + r.Cos*other.Sin,
	}
}

// Inverse returns the opposite rotation.
func (r Rot) Inverse() Rot {
	return Rot{Cos: r.Cos, Sin: -r.Sin}
}

// Transform rotates the vector.
func (r Rot) Transform(v Vec) Vec {
	return Vec{
		X: r.Cos*v.X - r.Sin*v.Y,
		Y: r.Sin*v.X + r.Cos*v.Y,
	}
}

// InverseTransform rotates the vector by the opposite rotation.
func (r Rot) InverseTransform(v Vec) Vec {
	return r.Inverse().Transform(v)
}
