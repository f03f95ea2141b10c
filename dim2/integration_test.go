package dim2

import (
	"testing"

	"github.com/oliverbestmann/rebound"
	"github.com/oliverbestmann/rebound/gm"
	"github.com/stretchr/testify/require"
)

var gravity = gm.Vec{Y: -10}

func TestStep_FreeFall(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := insertDynamicBall(t, bodies, colliders)

	params := rebound.DefaultIntegrationParameters()
	bodies.Step(params, gravity)

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, gravity.Y*params.Dt, velocity.Y, 1e-12)

	translation, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.InDelta(t, velocity.Y*params.Dt, translation.Y, 1e-12)
}

func TestStep_ForceAccumulatorCleared(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := insertDynamicBall(t, bodies, colliders)

	mass, err := bodies.Mass(handle)
	require.NoError(t, err)

	params := rebound.DefaultIntegrationParameters()

	force := gm.Vec{X: 50}
	require.NoError(t, bodies.ApplyForce(handle, force, true))

	bodies.Step(params, gm.Vec{})

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, force.X/mass*params.Dt, velocity.X, 1e-12)

	// the accumulator was cleared, a second step adds no more velocity
	bodies.Step(params, gm.Vec{})

	after, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, velocity.X, after.X, 1e-12)
}

func TestStep_StaticBodyDoesNotMove(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Status = rebound.BodyStatusStatic
	def.Position = gm.Vec{X: 1, Y: 2}
	handle := bodies.Insert(def)

	params := rebound.DefaultIntegrationParameters()
	bodies.Step(params, gravity)

	translation, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.Equal(t, def.Position, translation)
}

func TestStep_KinematicTargetDrive(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Status = rebound.BodyStatusKinematic
	handle := bodies.Insert(def)

	params := rebound.DefaultIntegrationParameters()

	target := gm.Vec{X: 1}
	require.NoError(t, bodies.SetNextKinematicTranslation(handle, target))
	require.NoError(t, bodies.SetNextKinematicRotation(handle, 0.5))

	bodies.Step(params, gravity)

	// the body reached its target and carries the derived velocity
	translation, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.Equal(t, target, translation)

	angle, err := bodies.Rotation(handle)
	require.NoError(t, err)
	require.InDelta(t, 0.5, angle.Radians(), 1e-9)

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, target.X/params.Dt, velocity.X, 1e-9)

	angular, err := bodies.AngularVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, 0.5/params.Dt, angular, 1e-9)

	// gravity never applies to kinematic bodies
	require.InDelta(t, 0, velocity.Y, 1e-9)

	// without a new target the derived velocity decays to zero
	bodies.Step(params, gravity)

	velocity, err = bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.InDelta(t, 0, velocity.X, 1e-9)
}

func TestStep_SleepingKinematicStillDriven(t *testing.T) {
	bodies := NewBodySet()

	def := MakeBodyDef()
	def.Status = rebound.BodyStatusKinematic
	def.Awake = false
	handle := bodies.Insert(def)

	target := gm.Vec{X: 2}
	require.NoError(t, bodies.SetNextKinematicTranslation(handle, target))

	params := rebound.DefaultIntegrationParameters()
	bodies.Step(params, gravity)

	// kinematic bodies are externally driven, sleep does not gate them
	translation, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.Equal(t, target, translation)
}

func TestStep_IdleBodyFallsAsleep(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := insertDynamicBall(t, bodies, colliders)

	params := rebound.DefaultIntegrationParameters()

	steps := int(params.TimeUntilSleep/params.Dt) + 1
	for range steps {
		bodies.Step(params, gm.Vec{})
	}

	sleeping, err := bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.True(t, sleeping)
}

func TestStep_SleepDisallowed(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	def := MakeBodyDef()
	def.CanSleep = false
	handle := bodies.Insert(def)

	_, err := colliders.Insert(MakeColliderDef(Circle{Radius: 1}), handle, bodies)
	require.NoError(t, err)

	params := rebound.DefaultIntegrationParameters()

	steps := int(params.TimeUntilSleep/params.Dt) + 1
	for range steps {
		bodies.Step(params, gm.Vec{})
	}

	sleeping, err := bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.False(t, sleeping)
}

func TestStep_SleepingBodyExcluded(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	def := MakeBodyDef()
	def.Awake = false
	handle := bodies.Insert(def)

	_, err := colliders.Insert(MakeColliderDef(Circle{Radius: 1}), handle, bodies)
	require.NoError(t, err)

	params := rebound.DefaultIntegrationParameters()

	// a force without the wake-up flag is discarded by the sleeping body
	require.NoError(t, bodies.ApplyForce(handle, gm.Vec{X: 100}, false))
	bodies.Step(params, gravity)

	translation, err := bodies.Translation(handle)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{}, translation)

	// the same force with the flag set wakes the body and moves it
	require.NoError(t, bodies.ApplyForce(handle, gm.Vec{X: 100}, true))
	bodies.Step(params, gravity)

	translation, err = bodies.Translation(handle)
	require.NoError(t, err)
	require.Greater(t, translation.X, 0.0)
}

func TestStep_WakingClearsNoStaleMotion(t *testing.T) {
	bodies := NewBodySet()
	colliders := NewColliderSet()

	handle := insertDynamicBall(t, bodies, colliders)

	require.NoError(t, bodies.ApplyImpulse(handle, gm.Vec{X: 5}, true))

	params := rebound.DefaultIntegrationParameters()

	// run until the body slept; falling asleep zeroes the velocities
	require.NoError(t, bodies.SetLinearVelocity(handle, gm.Vec{}))
	steps := int(params.TimeUntilSleep/params.Dt) + 1
	for range steps {
		bodies.Step(params, gm.Vec{})
	}

	sleeping, err := bodies.IsSleeping(handle)
	require.NoError(t, err)
	require.True(t, sleeping)

	require.NoError(t, bodies.WakeUp(handle))

	velocity, err := bodies.LinearVelocity(handle)
	require.NoError(t, err)
	require.Equal(t, gm.Vec{}, velocity)
}
