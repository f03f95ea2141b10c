// Package dim3 implements the three-dimensional rigid-body store.
//
// A BodySet owns the bodies of a simulation and a ColliderSet owns the
// shapes attached to them. Both are addressed through generational handles,
// stale handles fail with rebound.ErrBodyNotFound or
// rebound.ErrColliderNotFound instead of resolving to a reused slot.
//
// Rotations are unit quaternions, torques and angular velocities are
// axis-scaled vectors, inertia is a full tensor. All linear algebra uses
// the mgl64 types from github.com/go-gl/mathgl. The two-dimensional
// equivalent with plain angle rotations lives in the dim2 package.
package dim3
