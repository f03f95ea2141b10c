package dim3

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/rebound"
)

// BodyHandle identifies a body within a BodySet.
type BodyHandle rebound.Handle

// BodyDef holds the data needed to construct a body. Definitions can be
// re-used for multiple Insert calls. Colliders are attached after
// construction via ColliderSet.Insert.
type BodyDef struct {
	// Status selects static, dynamic or kinematic simulation.
	Status rebound.BodyStatus

	// Position is the initial world-space translation.
	Position mgl64.Vec3

	// Rotation is the initial world-space orientation. The zero value is
	// treated as the identity rotation, any other value is normalized.
	Rotation mgl64.Quat

	// LinearVelocity is the initial velocity of the body origin.
	LinearVelocity mgl64.Vec3

	// AngularVelocity is the initial angular velocity in rad/s around the
	// vector's axis.
	AngularVelocity mgl64.Vec3

	// CanSleep allows the integrator to put the body to sleep when it has
	// been idle for long enough.
	CanSleep bool

	// Awake controls whether the body starts out awake.
	Awake bool
}

// MakeBodyDef returns a body definition with the default values:
// a dynamic, awake body at the origin that is allowed to sleep.
func MakeBodyDef() BodyDef {
	return BodyDef{
		Status:   rebound.BodyStatusDynamic,
		Rotation: mgl64.QuatIdent(),
		CanSleep: true,
		Awake:    true,
	}
}

type body struct {
	status rebound.BodyStatus

	position  Isometry
	predicted Isometry

	linvel mgl64.Vec3
	angvel mgl64.Vec3

	force  mgl64.Vec3
	torque mgl64.Vec3

	mass    float64
	invMass float64

	// inertia tensor about the center of mass, in body-local axes
	inertiaLocal    mgl64.Mat3
	invInertiaLocal mgl64.Mat3

	localCom mgl64.Vec3

	activation rebound.Activation
	canSleep   bool

	colliders []ColliderHandle
}

func (b *body) worldCom() mgl64.Vec3 {
	return b.position.TransformPoint(b.localCom)
}

// invInertiaWorld returns the world-space inverse inertia tensor,
// R * I⁻¹ * Rᵀ for the current orientation.
func (b *body) invInertiaWorld() mgl64.Mat3 {
	r := b.position.Rotation.Mat4().Mat3()
	return r.Mul3(b.invInertiaLocal).Mul3(r.Transpose())
}

func (b *body) wake() {
	b.activation.WakeUp()
}

// fallAsleep zeroes the velocities and accumulators so that waking the body
// later does not replay stale motion.
func (b *body) fallAsleep() {
	b.activation.State = rebound.Sleeping
	b.activation.IdleTime = 0
	b.linvel = mgl64.Vec3{}
	b.angvel = mgl64.Vec3{}
	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}
}

func (b *body) belowSleepThresholds(params rebound.IntegrationParameters) bool {
	if !b.canSleep {
		return false
	}

	return b.linvel.Len() < params.SleepLinearThreshold &&
		b.angvel.Len() < params.SleepAngularThreshold
}
