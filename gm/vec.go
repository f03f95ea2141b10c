package gm

import (
	"fmt"
	"math"
)

type Scalar interface {
	float32 | float64
}

type Vec64 = VecType[float64]

type Vec = Vec64

func VecOf[S Scalar](x, y S) VecType[S] {
	return VecType[S]{X: x, Y: y}
}

type VecType[S Scalar] struct {
	X, Y S
}

func (v VecType[S]) Add(other VecType[S]) VecType[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v VecType[S]) Sub(other VecType[S]) VecType[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v VecType[S]) Mul(scalar S) VecType[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

// Dot returns the dot product of the two vectors.
func (v VecType[S]) Dot(other VecType[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2d cross product, i.e. the z component of the 3d cross
// product of the two vectors lifted into the xy plane.
func (v VecType[S]) Cross(other VecType[S]) S {
	return v.X*other.Y - v.Y*other.X
}

// Perp returns the vector rotated by 90 degrees counter clockwise.
func (v VecType[S]) Perp() VecType[S] {
	return VecType[S]{X: -v.Y, Y: v.X}
}

func (v VecType[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func (v VecType[S]) Normalized() VecType[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v VecType[S]) Length() S {
	return S(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v VecType[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

// Valid returns false if any component is NaN or infinite.
func (v VecType[S]) Valid() bool {
	x, y := float64(v.X), float64(v.Y)

	return !math.IsNaN(x) && !math.IsInf(x, 0) &&
		!math.IsNaN(y) && !math.IsInf(y, 0)
}
