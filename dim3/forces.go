package dim3

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/rebound"
)

// Force, torque and impulse application.
//
// All of these follow the same contract: only dynamic bodies are affected,
// anything else is silently left untouched. With wakeUp set the body is
// woken before the input is applied; without it a sleeping body discards
// the input, the call is a logical no-op until something wakes the body.

// ApplyForce adds a world-space force acting at the center of mass to the
// force accumulator. The accumulator is cleared by the next Step.
func (s *BodySet) ApplyForce(handle BodyHandle, force mgl64.Vec3, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status != rebound.BodyStatusDynamic {
		return nil
	}

	b.activation.Apply(wakeUp)
	if b.activation.Sleeping() {
		return nil
	}

	b.force = b.force.Add(force)
	return nil
}

// ApplyTorque adds a world-space torque to the torque accumulator. The
// accumulator is cleared by the next Step.
func (s *BodySet) ApplyTorque(handle BodyHandle, torque mgl64.Vec3, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status != rebound.BodyStatusDynamic {
		return nil
	}

	b.activation.Apply(wakeUp)
	if b.activation.Sleeping() {
		return nil
	}

	b.torque = b.torque.Add(torque)
	return nil
}

// ApplyForceAtPoint adds a world-space force acting at a world-space point.
// The lever arm relative to the center of mass contributes a torque.
func (s *BodySet) ApplyForceAtPoint(handle BodyHandle, force, point mgl64.Vec3, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status != rebound.BodyStatusDynamic {
		return nil
	}

	b.activation.Apply(wakeUp)
	if b.activation.Sleeping() {
		return nil
	}

	b.force = b.force.Add(force)
	b.torque = b.torque.Add(point.Sub(b.worldCom()).Cross(force))
	return nil
}

// ApplyImpulse instantaneously changes the linear velocity by
// impulse * 1/mass.
func (s *BodySet) ApplyImpulse(handle BodyHandle, impulse mgl64.Vec3, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status != rebound.BodyStatusDynamic {
		return nil
	}

	b.activation.Apply(wakeUp)
	if b.activation.Sleeping() {
		return nil
	}

	b.linvel = b.linvel.Add(impulse.Mul(b.invMass))
	return nil
}

// ApplyTorqueImpulse instantaneously changes the angular velocity by
// I⁻¹ * impulse, with the inertia tensor taken in world space.
func (s *BodySet) ApplyTorqueImpulse(handle BodyHandle, impulse mgl64.Vec3, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status != rebound.BodyStatusDynamic {
		return nil
	}

	b.activation.Apply(wakeUp)
	if b.activation.Sleeping() {
		return nil
	}

	b.angvel = b.angvel.Add(b.invInertiaWorld().Mul3x1(impulse))
	return nil
}

// ApplyImpulseAtPoint instantaneously changes both velocities as if the
// impulse acted at the given world-space point.
func (s *BodySet) ApplyImpulseAtPoint(handle BodyHandle, impulse, point mgl64.Vec3, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status != rebound.BodyStatusDynamic {
		return nil
	}

	b.activation.Apply(wakeUp)
	if b.activation.Sleeping() {
		return nil
	}

	b.linvel = b.linvel.Add(impulse.Mul(b.invMass))

	angularImpulse := point.Sub(b.worldCom()).Cross(impulse)
	b.angvel = b.angvel.Add(b.invInertiaWorld().Mul3x1(angularImpulse))
	return nil
}
