package dim3

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/rebound"
)

// Step advances the simulation by one timestep of params.Dt seconds using
// semi-implicit Euler integration.
//
// Dynamic awake bodies integrate their accumulated forces plus gravity and
// clear the accumulators. Kinematic bodies are carried onto their predicted
// pose and get an artificial velocity derived from it; being externally
// driven, they follow their target regardless of sleep state. Static and
// sleeping dynamic bodies are skipped.
//
// A dynamic body that stays below the sleep thresholds for
// params.TimeUntilSleep seconds is put to sleep at the end of its step.
func (s *BodySet) Step(params rebound.IntegrationParameters, gravity mgl64.Vec3) {
	for _, b := range s.bodies.All() {
		switch b.status {
		case rebound.BodyStatusKinematic:
			s.stepKinematic(b, params.Dt)

		case rebound.BodyStatusDynamic:
			s.stepDynamic(b, params, gravity)
		}
	}
}

func (s *BodySet) stepKinematic(b *body, dt float64) {
	// the artificial velocity that carries the body onto its target pose.
	// In a full pipeline it drives interactions with dynamic bodies.
	b.linvel = b.predicted.Translation.Sub(b.position.Translation).Mul(1 / dt)

	// qDelta rotates the current orientation onto the target. For small
	// steps the vector part is half the rotation vector, so the angular
	// velocity is 2 * qDelta.V / dt, with the sign fixed to the short arc.
	qDelta := b.predicted.Rotation.Mul(b.position.Rotation.Conjugate())
	scale := 2 / dt
	if qDelta.W < 0 {
		scale = -scale
	}
	b.angvel = qDelta.V.Mul(scale)

	b.position = b.predicted
}

func (s *BodySet) stepDynamic(b *body, params rebound.IntegrationParameters, gravity mgl64.Vec3) {
	if b.activation.Sleeping() {
		return
	}

	dt := params.Dt

	b.linvel = b.linvel.Add(gravity.Add(b.force.Mul(b.invMass)).Mul(dt))
	b.angvel = b.angvel.Add(b.invInertiaWorld().Mul3x1(b.torque).Mul(dt))

	// advance the center of mass, then derive the origin transform from it
	com := b.worldCom().Add(b.linvel.Mul(dt))

	// q' = q + dt/2 * (0, ω) * q, renormalized to stay a unit quaternion
	omega := mgl64.Quat{V: b.angvel}
	qdot := omega.Mul(b.position.Rotation).Scale(0.5 * dt)
	rotation := b.position.Rotation.Add(qdot).Normalize()

	b.position.Rotation = rotation
	b.position.Translation = com.Sub(rotation.Rotate(b.localCom))

	b.predicted = b.position

	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}

	b.activation.Advance(b.belowSleepThresholds(params), dt, params.TimeUntilSleep)
	if b.activation.Sleeping() {
		b.fallAsleep()
	}
}
