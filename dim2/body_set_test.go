package dim2

import (
	"math"
	"testing"

	"github.com/oliverbestmann/rebound"
	"github.com/oliverbestmann/rebound/gm"
	"github.com/stretchr/testify/require"
)

func insertDynamicBall(t *testing.T, bodies *BodySet, colliders *ColliderSet) BodyHandle {
	t.Helper()

	handle := bodies.Insert(MakeBodyDef())

	_, err := colliders.Insert(MakeColliderDef(Circle{Radius: 1}), handle, bodies)
	require.NoError(t, err)

	return handle
}

func TestBodySet_TranslationRoundTrip(t *testing.T) {
	bodies := NewBodySet()
	handle := bodies.Insert(MakeBodyDef())

	p := gm.Vec{X: 12.5, Y: -3.25}
	require.NoError(t, bodies.SetTranslation(handle, p, true))

	got, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.Equal(t, p, got)
}

func TestBodySet_RotationRoundTrip(t *testing.T) {
	bodies := NewBodySet()
	handle := bodies.Insert(MakeBodyDef())

	for range 100 {
		angle := gm.RandomAngle().Normalized()

		require.NoError(t, bodies.SetRotation(handle, angle, true))

		got, err := bodies.Rotation(handle)
		require.NoError(t, err)
		require.InDelta(t, angle.Radians(), got.Radians(), 1e-9)
	}
}

func TestBodySet_DegenerateRotationIgnored(t *testing.T) {
	bodies := NewBodySet()
	handle := bodies.Insert(MakeBodyDef())

	require.NoError(t, bodies.SetRotation(handle, 1.5, true))

	require.NoError(t, bodies.SetRotation(handle, gm.Rad(math.NaN()), true))
	require.NoError(t, bodies.SetRotation(handle, gm.Rad(math.Inf(1)), true))

	got, err := bodies.Rotation(handle)
	require.NoError(t, err)
	require.InDelta(t, 1.5, got.Radians(), 1e-9)
}

func TestBodySet_NonFiniteVelocityIgnored(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Awake = false
	handle := bodies.Insert(def)

	require.NoError(t, bodies.SetLinearVelocity(handle, gm.Vec{X: math.NaN()}))
	require.NoError(t, bodies.SetAngularVelocity(handle, math.Inf(1)))

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{}, velocity)

	angular, err := bodies.AngularVelocity(handle)
	require.NoError(t, err)
	require.Zero(t, angular)

	// the rejected writes did not wake the body either
	sleeping, err := bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.True(t, sleeping)

	// finite values still pass and wake as usual
	require.NoError(t, bodies.SetAngularVelocity(handle, 1.5))

	angular, err = bodies.AngularVelocity(handle)
	require.NoError(t, err)
	require.Equal(t, 1.5, angular)

	sleeping, err = bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.False(t, sleeping)
}

func TestBodySet_NotFound(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := bodies.Insert(MakeBodyDef())
	require.NoError(t, bodies.Remove(handle, colliders))

	_, err := bodies.Translation(handle)
	require.ErrorIs(t, err, rebound.ErrBodyNotFound)

	_, err = bodies.LinearVelocity(handle)
	require.ErrorIs(t, err, rebound.ErrBodyNotFound)

	err = bodies.SetTranslation(handle, gm.Vec{}, true)
	require.ErrorIs(t, err, rebound.ErrBodyNotFound)

	err = bodies.ApplyForce(handle, gm.Vec{X: 1}, true)
	require.ErrorIs(t, err, rebound.ErrBodyNotFound)

	require.False(t, bodies.Contains(handle))
}

func TestBodySet_RemoveDestroysColliders(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := bodies.Insert(MakeBodyDef())

	first, err := colliders.Insert(MakeColliderDef(Circle{Radius: 1}), handle, bodies)
	require.NoError(t, err)
	second, err := colliders.Insert(MakeColliderDef(Box{HalfWidth: 1, HalfHeight: 1}), handle, bodies)
	require.NoError(t, err)

	require.Equal(t, 2, colliders.Len())

	require.NoError(t, bodies.Remove(handle, colliders))

	require.False(t, colliders.Contains(first))
	require.False(t, colliders.Contains(second))
	require.Equal(t, 0, colliders.Len())
}

func TestBodySet_ImpulseChangesVelocity(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := insertDynamicBall(t, bodies, colliders)

	mass, err := bodies.Mass(handle)
	require.NoError(t, err)
	require.Greater(t, mass, 0.0)

	impulse := gm.Vec{X: 10, Y: -4}
	require.NoError(t, bodies.ApplyImpulse(handle, impulse, true))

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, impulse.X/mass, velocity.X, 1e-12)
	require.InDelta(t, impulse.Y/mass, velocity.Y, 1e-12)
}

func TestBodySet_ImpulseOnStaticBody(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Status = rebound.BodyStatusStatic
	handle := bodies.Insert(def)

	require.NoError(t, bodies.ApplyImpulse(handle, gm.Vec{X: 100}, true))
	require.NoError(t, bodies.ApplyForce(handle, gm.Vec{X: 100}, true))
	require.NoError(t, bodies.ApplyTorque(handle, 100, true))

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{}, velocity)

	angular, err := bodies.AngularVelocity(handle)
	require.NoError(t, err)
	require.Zero(t, angular)
}

func TestBodySet_TorqueImpulse(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := insertDynamicBall(t, bodies, colliders)

	// circle of radius 1, density 1: inertia = m r² / 2
	mass, err := bodies.Mass(handle)
	require.NoError(t, err)
	inertia := 0.5 * mass

	require.NoError(t, bodies.ApplyTorqueImpulse(handle, 3, true))

	angular, err := bodies.AngularVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, 3/inertia, angular, 1e-12)
}

func TestBodySet_ImpulseAtPoint(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := insertDynamicBall(t, bodies, colliders)

	mass, err := bodies.Mass(handle)
	require.NoError(t, err)
	inertia := 0.5 * mass

	// impulse along +y with a lever arm of one unit along +x
	impulse := gm.Vec{Y: 2}
	point := gm.Vec{X: 1}
	require.NoError(t, bodies.ApplyImpulseAtPoint(handle, impulse, point, true))

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, 2/mass, velocity.Y, 1e-12)

	angular, err := bodies.AngularVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, 2/inertia, angular, 1e-12)
}

func TestBodySet_WakeUpIdempotent(t *testing.T) {
	bodies := NewBodySet()
	handle := bodies.Insert(MakeBodyDef())

	require.NoError(t, bodies.WakeUp(handle))

	sleeping, err := bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.False(t, sleeping)

	require.NoError(t, bodies.WakeUp(handle))

	sleeping, err = bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.False(t, sleeping)
}

func TestBodySet_PoseWriteWithoutWakeUp(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Awake = false
	handle := bodies.Insert(def)

	sleeping, err := bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.True(t, sleeping)

	// the pose is authoritative and applies even while sleeping
	p := gm.Vec{X: 5}
	require.NoError(t, bodies.SetTranslation(handle, p, false))

	got, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.Equal(t, p, got)

	sleeping, err = bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.True(t, sleeping)

	// with the flag set the body wakes before the mutation applies
	require.NoError(t, bodies.SetTranslation(handle, gm.Vec{X: 6}, true))

	sleeping, err = bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.False(t, sleeping)
}

func TestBodySet_BodyTypeQueries(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Status = rebound.BodyStatusKinematic
	handle := bodies.Insert(def)

	status, err := bodies.Status(handle)
	require.NoError(t, err)
	require.Equal(t, rebound.BodyStatusKinematic, status)

	kinematic, err := bodies.IsKinematic(handle)
	require.NoError(t, err)
	require.True(t, kinematic)

	dynamic, err := bodies.IsDynamic(handle)
	require.NoError(t, err)
	require.False(t, dynamic)

	static, err := bodies.IsStatic(handle)
	require.NoError(t, err)
	require.False(t, static)
}

func TestBodySet_PredictedPoseDefaultsToCurrent(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Position = gm.Vec{X: 3, Y: 4}
	def.Rotation = 0.5
	handle := bodies.Insert(def)

	predicted, err := bodies.PredictedTranslation(handle)
	require.NoError(t, err)
	require.Equal(t, def.Position, predicted)

	angle, err := bodies.PredictedRotation(handle)
	require.NoError(t, err)
	require.InDelta(t, 0.5, angle.Radians(), 1e-9)
}

func TestBodySet_SetNextKinematicPose(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Status = rebound.BodyStatusKinematic
	def.Awake = false
	handle := bodies.Insert(def)

	target := gm.Vec{X: 1, Y: 2}
	require.NoError(t, bodies.SetNextKinematicTranslation(handle, target))
	require.NoError(t, bodies.SetNextKinematicRotation(handle, 0.25))

	predicted, err := bodies.PredictedTranslation(handle)
	require.NoError(t, err)
	require.Equal(t, target, predicted)

	angle, err := bodies.PredictedRotation(handle)
	require.NoError(t, err)
	require.InDelta(t, 0.25, angle.Radians(), 1e-9)

	// the current pose is untouched and the body is not woken
	current, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{}, current)

	sleeping, err := bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.True(t, sleeping)

	// a degenerate rotation target is ignored
	require.NoError(t, bodies.SetNextKinematicRotation(handle, gm.Rad(math.NaN())))

	angle, err = bodies.PredictedRotation(handle)
	require.NoError(t, err)
	require.InDelta(t, 0.25, angle.Radians(), 1e-9)
}

func TestBodySet_NumColliders(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := bodies.Insert(MakeBodyDef())

	count, err := bodies.NumColliders(handle)
	require.NoError(t, err)
	require.Zero(t, count)

	first, err := colliders.Insert(MakeColliderDef(Circle{Radius: 1}), handle, bodies)
	require.NoError(t, err)

	count, err = bodies.NumColliders(handle)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	attached, err := bodies.Colliders(handle)
	require.NoError(t, err)
	require.Equal(t, []ColliderHandle{first}, attached)

	require.NoError(t, colliders.Remove(first, bodies))

	count, err = bodies.NumColliders(handle)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestBodySet_HandleNotResurrectedByReuse(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	stale := bodies.Insert(MakeBodyDef())
	require.NoError(t, bodies.Remove(stale, colliders))

	// the new body reuses the slot but the stale handle stays dead
	fresh := bodies.Insert(MakeBodyDef())
	require.NotEqual(t, stale, fresh)
	require.True(t, bodies.Contains(fresh))
	require.False(t, bodies.Contains(stale))
}
