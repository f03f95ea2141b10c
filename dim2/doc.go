// Package dim2 implements the two-dimensional rigid-body store.
//
// A BodySet owns the bodies of a simulation and a ColliderSet owns the
// shapes attached to them. Both are addressed through generational handles,
// stale handles fail with rebound.ErrBodyNotFound or
// rebound.ErrColliderNotFound instead of resolving to a reused slot.
//
// Rotations are plain angles (gm.Rad), torques are scalars. The
// three-dimensional equivalent with quaternion rotations lives in the dim3
// package.
package dim2
