package dim2

import (
	"github.com/oliverbestmann/rebound"
	"github.com/oliverbestmann/rebound/gm"
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
	Position gm.Vec

	// Rotation is the initial world-space rotation angle.
	Rotation gm.Rad

	// LinearVelocity is the initial velocity of the body origin.
	LinearVelocity gm.Vec

	// AngularVelocity is the initial angular velocity in rad/s.
	AngularVelocity float64

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
		CanSleep: true,
		Awake:    true,
	}
}

type body struct {
	status rebound.BodyStatus

	position  Isometry
	predicted Isometry

	linvel gm.Vec
	angvel float64

	force  gm.Vec
	torque float64

	mass    float64
	invMass float64

	// rotational inertia about the center of mass
	inertia    float64
	invInertia float64

	localCom gm.Vec

	activation rebound.Activation
	canSleep   bool

	colliders []ColliderHandle
}

func (b *body) worldCom() gm.Vec {
	return b.position.TransformPoint(b.localCom)
}

func (b *body) wake() {
	b.activation.WakeUp()
}

// fallAsleep zeroes the velocities and accumulators so that waking the body
// later does not replay stale motion.
func (b *body) fallAsleep() {
	b.activation.State = rebound.Sleeping
	b.activation.IdleTime = 0
	b.linvel = gm.Vec{}
	b.angvel = 0
	b.force = gm.Vec{}
	b.torque = 0
}

func (b *body) belowSleepThresholds(params rebound.IntegrationParameters) bool {
	if !b.canSleep {
		return false
	}

	return b.linvel.LengthSqr() < params.SleepLinearThreshold*params.SleepLinearThreshold &&
		b.angvel*b.angvel < params.SleepAngularThreshold*params.SleepAngularThreshold
}
