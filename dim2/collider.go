package dim2

import (
	"math"

	"github.com/oliverbestmann/rebound"
	"github.com/oliverbestmann/rebound/gm"
)

// ColliderHandle identifies a collider within a ColliderSet.
type ColliderHandle rebound.Handle

// Shape computes the mass properties of a collider shape.
type Shape interface {
	// MassProperties returns the mass properties of the shape for the
	// given density, relative to the shape's own origin.
	MassProperties(density float64) MassProperties
}

// MassProperties describes how a shape contributes to the mass of its body.
type MassProperties struct {
	Mass float64

	// Com is the center of mass relative to the shape origin.
	Com gm.Vec

	// Inertia is the rotational inertia about Com.
	Inertia float64
}

// Circle is a circle shape centered on the collider origin.
type Circle struct {
	Radius float64
}

func (c Circle) MassProperties(density float64) MassProperties {
	mass := density * math.Pi * c.Radius * c.Radius

	return MassProperties{
		Mass:    mass,
		Inertia: 0.5 * mass * c.Radius * c.Radius,
	}
}

// Box is a rectangle shape centered on the collider origin.
type Box struct {
	HalfWidth, HalfHeight float64
}

func (b Box) MassProperties(density float64) MassProperties {
	mass := density * 4 * b.HalfWidth * b.HalfHeight

	return MassProperties{
		Mass:    mass,
		Inertia: mass * (b.HalfWidth*b.HalfWidth + b.HalfHeight*b.HalfHeight) / 3,
	}
}

// Segment is a line segment shape between two endpoints given relative to
// the collider origin, typically used for static geometry like floors and
// walls.
type Segment struct {
	A, B gm.Vec
}

// MassProperties of a segment are degenerate: it encloses no area, so it
// contributes no mass and no inertia, only its midpoint as center.
func (s Segment) MassProperties(density float64) MassProperties {
	return MassProperties{
		Com: s.A.Add(s.B).Mul(0.5),
	}
}

// ColliderDef holds the data needed to attach a collider to a body.
type ColliderDef struct {
	Shape Shape

	// Density in mass per area, used to derive the mass contribution.
	Density float64

	// Offset is the collider translation relative to the body origin.
	Offset gm.Vec
}

// MakeColliderDef returns a collider definition for the shape with the
// default density of 1.
func MakeColliderDef(shape Shape) ColliderDef {
	return ColliderDef{
		Shape:   shape,
		Density: 1,
	}
}

type collider struct {
	shape   Shape
	density float64
	offset  gm.Vec
	parent  BodyHandle
}

// ColliderSet owns all colliders. Colliders reference their parent body by
// handle, bodies keep a back-reference to their colliders; both sides are
// updated together by Insert and Remove.
type ColliderSet struct {
	colliders rebound.Arena[collider]
}

// NewColliderSet returns an empty collider set.
func NewColliderSet() *ColliderSet {
	return &ColliderSet{}
}

// Insert attaches a new collider to the parent body and recomputes the
// body's mass properties.
func (cs *ColliderSet) Insert(def ColliderDef, parent BodyHandle, bodies *BodySet) (ColliderHandle, error) {
	b, err := bodies.get(parent)
	if err != nil {
		return 0, err
	}

	handle := ColliderHandle(cs.colliders.Insert(collider{
		shape:   def.Shape,
		density: def.Density,
		offset:  def.Offset,
		parent:  parent,
	}))

	b.colliders = append(b.colliders, handle)
	bodies.resetMassData(b, cs)

	return handle, nil
}

// Remove detaches and destroys the collider, recomputing the parent body's
// mass properties.
func (cs *ColliderSet) Remove(handle ColliderHandle, bodies *BodySet) error {
	c, ok := cs.colliders.Remove(rebound.Handle(handle))
	if !ok {
		return rebound.ErrColliderNotFound
	}

	if b, err := bodies.get(c.parent); err == nil {
		for idx, attached := range b.colliders {
			if attached == handle {
				b.colliders = append(b.colliders[:idx], b.colliders[idx+1:]...)
				break
			}
		}

		bodies.resetMassData(b, cs)
	}

	return nil
}

// Contains returns true if the handle resolves to a live collider.
func (cs *ColliderSet) Contains(handle ColliderHandle) bool {
	return cs.colliders.Contains(rebound.Handle(handle))
}

// Len returns the number of live colliders.
func (cs *ColliderSet) Len() int {
	return cs.colliders.Len()
}

func (cs *ColliderSet) get(handle ColliderHandle) (*collider, error) {
	c := cs.colliders.Get(rebound.Handle(handle))
	if c == nil {
		return nil, rebound.ErrColliderNotFound
	}

	return c, nil
}

// Parent returns the handle of the body the collider is attached to.
func (cs *ColliderSet) Parent(handle ColliderHandle) (BodyHandle, error) {
	c, err := cs.get(handle)
	if err != nil {
		return 0, err
	}

	return c.parent, nil
}

// Density returns the collider density.
func (cs *ColliderSet) Density(handle ColliderHandle) (float64, error) {
	c, err := cs.get(handle)
	if err != nil {
		return 0, err
	}

	return c.density, nil
}

// Shape returns the collider shape.
func (cs *ColliderSet) Shape(handle ColliderHandle) (Shape, error) {
	c, err := cs.get(handle)
	if err != nil {
		return nil, err
	}

	return c.shape, nil
}

// resetMassData recomputes mass, center of mass and inertia from the
// attached colliders. Static and kinematic bodies always have zero mass;
// a dynamic body without mass contributions falls back to unit mass.
func (s *BodySet) resetMassData(b *body, colliders *ColliderSet) {
	oldWorldCom := b.worldCom()

	b.mass = 0
	b.invMass = 0
	b.inertia = 0
	b.invInertia = 0
	b.localCom = gm.Vec{}

	if b.status != rebound.BodyStatusDynamic {
		return
	}

	com := gm.Vec{}
	var inertia float64

	for _, handle := range b.colliders {
		c := colliders.colliders.Get(rebound.Handle(handle))
		if c == nil || c.density == 0 {
			continue
		}

		props := c.shape.MassProperties(c.density)
		center := c.offset.Add(props.Com)

		b.mass += props.Mass
		com = com.Add(center.Mul(props.Mass))

		// inertia about the body origin via the parallel axis theorem
		inertia += props.Inertia + props.Mass*center.LengthSqr()
	}

	if b.mass > 0 {
		b.invMass = 1 / b.mass
		com = com.Mul(b.invMass)
	} else {
		b.mass = 1
		b.invMass = 1
	}

	// re-center the inertia about the center of mass
	inertia -= b.mass * com.LengthSqr()
	if inertia > 0 {
		b.inertia = inertia
		b.invInertia = 1 / inertia
	}

	b.localCom = com

	// the center of mass moved, keep its velocity consistent
	shift := b.worldCom().Sub(oldWorldCom)
	b.linvel = b.linvel.Add(shift.Perp().Mul(b.angvel))
}
