package dim2

import (
	"github.com/oliverbestmann/rebound/gm"
)

// Isometry is a rigid transformation, a rotation followed by a translation.
// It describes the world-space pose of a body.
type Isometry struct {
	Translation gm.Vec
	Rotation    gm.Rot
}

// IdentityIsometry returns the pose at the origin without rotation.
func IdentityIsometry() Isometry {
	return Isometry{Rotation: gm.IdentityRot}
}

// TransformPoint maps a body-local point into world space.
func (iso Isometry) TransformPoint(p gm.Vec) gm.Vec {
	return iso.Rotation.Transform(p).Add(iso.Translation)
}

// InverseTransformPoint maps a world-space point into body-local space.
func (iso Isometry) InverseTransformPoint(p gm.Vec) gm.Vec {
	return iso.Rotation.InverseTransform(p.Sub(iso.Translation))
}
