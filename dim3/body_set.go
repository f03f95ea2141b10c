package dim3

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/rebound"
)

// BodySet owns all rigid bodies of a simulation. Bodies are addressed by
// BodyHandle and never leak out of the set: accessors return copied values,
// so callers can not alias into the set across mutations.
//
// All operations complete synchronously. The set is not safe for concurrent
// use.
type BodySet struct {
	bodies rebound.Arena[body]
}

// NewBodySet returns an empty body set.
func NewBodySet() *BodySet {
	return &BodySet{}
}

// Insert creates a new body from the definition and returns its handle.
// The body starts without colliders and with zero mass until the first
// collider is attached; dynamic bodies fall back to unit mass.
func (s *BodySet) Insert(def BodyDef) BodyHandle {
	rotation := def.Rotation
	if rotation.Len() == 0 {
		rotation = mgl64.QuatIdent()
	}

	b := body{
		status:   def.Status,
		canSleep: def.CanSleep,
		position: Isometry{
			Translation: def.Position,
			Rotation:    rotation.Normalize(),
		},
	}

	b.predicted = b.position

	if def.Status == rebound.BodyStatusDynamic {
		// a dynamic body must never have zero mass
		b.mass = 1
		b.invMass = 1
	}

	if def.Status != rebound.BodyStatusStatic {
		b.linvel = def.LinearVelocity
		b.angvel = def.AngularVelocity
	}

	if !def.Awake {
		b.fallAsleep()
	}

	return BodyHandle(s.bodies.Insert(b))
}

// Remove destroys the body and all colliders attached to it. The handle and
// the handles of the attached colliders go stale.
func (s *BodySet) Remove(handle BodyHandle, colliders *ColliderSet) error {
	b, ok := s.bodies.Remove(rebound.Handle(handle))
	if !ok {
		return rebound.ErrBodyNotFound
	}

	if colliders != nil {
		for _, collider := range b.colliders {
			colliders.colliders.Remove(rebound.Handle(collider))
		}
	}

	return nil
}

// Contains returns true if the handle resolves to a live body.
func (s *BodySet) Contains(handle BodyHandle) bool {
	return s.bodies.Contains(rebound.Handle(handle))
}

// Len returns the number of live bodies.
func (s *BodySet) Len() int {
	return s.bodies.Len()
}

// All iterates over all live bodies.
func (s *BodySet) All() iter.Seq[BodyHandle] {
	return func(yield func(BodyHandle) bool) {
		for handle := range s.bodies.All() {
			if !yield(BodyHandle(handle)) {
				return
			}
		}
	}
}

func (s *BodySet) get(handle BodyHandle) (*body, error) {
	b := s.bodies.Get(rebound.Handle(handle))
	if b == nil {
		return nil, rebound.ErrBodyNotFound
	}

	return b, nil
}

// Translation returns the world-space translation of the body.
func (s *BodySet) Translation(handle BodyHandle) (mgl64.Vec3, error) {
	b, err := s.get(handle)
	if err != nil {
		return mgl64.Vec3{}, err
	}

	return b.position.Translation, nil
}

// Rotation returns the world-space orientation of the body as a unit
// quaternion.
func (s *BodySet) Rotation(handle BodyHandle) (mgl64.Quat, error) {
	b, err := s.get(handle)
	if err != nil {
		return mgl64.Quat{}, err
	}

	return b.position.Rotation, nil
}

// PredictedTranslation returns the translation forecast for the next
// timestep. For kinematic bodies this is the target set via
// SetNextKinematicTranslation, for all other bodies it equals the current
// translation.
func (s *BodySet) PredictedTranslation(handle BodyHandle) (mgl64.Vec3, error) {
	b, err := s.get(handle)
	if err != nil {
		return mgl64.Vec3{}, err
	}

	return b.predicted.Translation, nil
}

// PredictedRotation returns the orientation forecast for the next timestep,
// with the same semantics as PredictedTranslation.
func (s *BodySet) PredictedRotation(handle BodyHandle) (mgl64.Quat, error) {
	b, err := s.get(handle)
	if err != nil {
		return mgl64.Quat{}, err
	}

	return b.predicted.Rotation, nil
}

// SetTranslation teleports the body to the given world-space translation.
// The new pose applies even to a sleeping body; pass wakeUp to also bring
// the body back into the simulation.
func (s *BodySet) SetTranslation(handle BodyHandle, translation mgl64.Vec3, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	b.activation.Apply(wakeUp)
	b.position.Translation = translation

	if b.status != rebound.BodyStatusKinematic {
		b.predicted = b.position
	}

	return nil
}

// SetRotation overwrites the world-space orientation of the body. The
// quaternion is normalized before it is stored; a zero quaternion is
// silently ignored and leaves the pose unchanged.
func (s *BodySet) SetRotation(handle BodyHandle, rotation mgl64.Quat, wakeUp bool) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if rotation.Len() == 0 {
		return nil
	}

	b.activation.Apply(wakeUp)
	b.position.Rotation = rotation.Normalize()

	if b.status != rebound.BodyStatusKinematic {
		b.predicted = b.position
	}

	return nil
}

// SetNextKinematicTranslation sets the translation the body should reach
// after the next timestep. The integrator derives an artificial velocity
// from it, which in a full pipeline drives interactions with dynamic
// bodies. The body is not woken; kinematic bodies are driven externally.
//
// For non-kinematic bodies this only overwrites the predicted pose and has
// no effect on the simulation.
func (s *BodySet) SetNextKinematicTranslation(handle BodyHandle, translation mgl64.Vec3) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	b.predicted.Translation = translation
	return nil
}

// SetNextKinematicRotation sets the orientation the body should reach after
// the next timestep, with the same semantics as
// SetNextKinematicTranslation. A zero quaternion is silently ignored.
func (s *BodySet) SetNextKinematicRotation(handle BodyHandle, rotation mgl64.Quat) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if rotation.Len() == 0 {
		return nil
	}

	b.predicted.Rotation = rotation.Normalize()
	return nil
}

// LinearVelocity returns the current linear velocity of the body.
func (s *BodySet) LinearVelocity(handle BodyHandle) (mgl64.Vec3, error) {
	b, err := s.get(handle)
	if err != nil {
		return mgl64.Vec3{}, err
	}

	return b.linvel, nil
}

// AngularVelocity returns the current angular velocity in rad/s around the
// vector's axis.
func (s *BodySet) AngularVelocity(handle BodyHandle) (mgl64.Vec3, error) {
	b, err := s.get(handle)
	if err != nil {
		return mgl64.Vec3{}, err
	}

	return b.angvel, nil
}

// SetLinearVelocity overwrites the linear velocity. Static bodies keep
// their zero velocity. Setting a non-zero velocity wakes the body. A
// non-finite velocity is silently ignored, like a zero rotation quaternion.
func (s *BodySet) SetLinearVelocity(handle BodyHandle, velocity mgl64.Vec3) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status == rebound.BodyStatusStatic || !finiteVec(velocity) {
		return nil
	}

	if velocity.Len() > 0 {
		b.wake()
	}

	b.linvel = velocity
	return nil
}

// SetAngularVelocity overwrites the angular velocity. Static bodies keep
// their zero velocity. Setting a non-zero velocity wakes the body. A
// non-finite velocity is silently ignored, like a zero rotation quaternion.
func (s *BodySet) SetAngularVelocity(handle BodyHandle, velocity mgl64.Vec3) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	if b.status == rebound.BodyStatusStatic || !finiteVec(velocity) {
		return nil
	}

	if velocity.Len() > 0 {
		b.wake()
	}

	b.angvel = velocity
	return nil
}

func finiteVec(v mgl64.Vec3) bool {
	for _, value := range v {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
	}

	return true
}

// Mass returns the mass of the body, derived from its attached colliders.
func (s *BodySet) Mass(handle BodyHandle) (float64, error) {
	b, err := s.get(handle)
	if err != nil {
		return 0, err
	}

	return b.mass, nil
}

// Status returns the body status.
func (s *BodySet) Status(handle BodyHandle) (rebound.BodyStatus, error) {
	b, err := s.get(handle)
	if err != nil {
		return 0, err
	}

	return b.status, nil
}

// IsStatic returns true if the body is static.
func (s *BodySet) IsStatic(handle BodyHandle) (bool, error) {
	status, err := s.Status(handle)
	return status == rebound.BodyStatusStatic, err
}

// IsKinematic returns true if the body is kinematic.
func (s *BodySet) IsKinematic(handle BodyHandle) (bool, error) {
	status, err := s.Status(handle)
	return status == rebound.BodyStatusKinematic, err
}

// IsDynamic returns true if the body is dynamic.
func (s *BodySet) IsDynamic(handle BodyHandle) (bool, error) {
	status, err := s.Status(handle)
	return status == rebound.BodyStatusDynamic, err
}

// IsSleeping returns true if the body is currently asleep.
func (s *BodySet) IsSleeping(handle BodyHandle) (bool, error) {
	b, err := s.get(handle)
	if err != nil {
		return false, err
	}

	return b.activation.Sleeping(), nil
}

// WakeUp forces the body awake and resets its idle timer. Waking an awake
// body is a no-op.
func (s *BodySet) WakeUp(handle BodyHandle) error {
	b, err := s.get(handle)
	if err != nil {
		return err
	}

	b.wake()
	return nil
}

// NumColliders returns the number of colliders attached to the body.
func (s *BodySet) NumColliders(handle BodyHandle) (int, error) {
	b, err := s.get(handle)
	if err != nil {
		return 0, err
	}

	return len(b.colliders), nil
}

// Colliders returns the handles of the colliders attached to the body.
// The returned slice is a copy and may be retained by the caller.
func (s *BodySet) Colliders(handle BodyHandle) ([]ColliderHandle, error) {
	b, err := s.get(handle)
	if err != nil {
		return nil, err
	}

	colliders := make([]ColliderHandle, len(b.colliders))
	copy(colliders, b.colliders)
	return colliders, nil
}
