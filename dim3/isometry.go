package dim3

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Isometry is a rigid transformation, a rotation followed by a translation.
// It describes the world-space pose of a body. The rotation is always a
// unit quaternion.
type Isometry struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
}

// IdentityIsometry returns the pose at the origin without rotation.
func IdentityIsometry() Isometry {
	return Isometry{Rotation: mgl64.QuatIdent()}
}

// TransformPoint maps a body-local point into world space.
func (iso Isometry) TransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return iso.Rotation.Rotate(p).Add(iso.Translation)
}

// InverseTransformPoint maps a world-space point into body-local space.
func (iso Isometry) InverseTransformPoint(p mgl64.Vec3) mgl64.Vec3 {
	return iso.Rotation.Conjugate().Rotate(p.Sub(iso.Translation))
}
