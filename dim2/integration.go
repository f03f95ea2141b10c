package dim2

import (
	"github.com/oliverbestmann/rebound"
	"github.com/oliverbestmann/rebound/gm"
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
func (s *BodySet) Step(params rebound.IntegrationParameters, gravity gm.Vec) {
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
	b.angvel = b.predicted.Rotation.Angle().DifferenceTo(b.position.Rotation.Angle()).Radians() / dt

	b.position = b.predicted
}

func (s *BodySet) stepDynamic(b *body, params rebound.IntegrationParameters, gravity gm.Vec) {
	if b.activation.Sleeping() {
		return
	}

	dt := params.Dt

	b.linvel = b.linvel.Add(gravity.Add(b.force.Mul(b.invMass)).Mul(dt))
	b.angvel += b.invInertia * b.torque * dt

	// advance the center of mass, then derive the origin transform from it
	com := b.worldCom().Add(b.linvel.Mul(dt))

	rotation := b.position.Rotation.Mul(gm.RotOf(gm.Rad(b.angvel * dt)))
	b.position.Rotation = rotation
	b.position.Translation = com.Sub(rotation.Transform(b.localCom))

	b.predicted = b.position

	b.force = gm.Vec{}
	b.torque = 0

	b.activation.Advance(b.belowSleepThresholds(params), dt, params.TimeUntilSleep)
	if b.activation.Sleeping() {
		b.fallAsleep()
	}
}
