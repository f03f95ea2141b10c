package dim3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/rebound"
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
	Com mgl64.Vec3

	// Inertia is the inertia tensor about Com, in shape-local axes.
	Inertia mgl64.Mat3
}

// Ball is a sphere shape centered on the collider origin.
type Ball struct {
	Radius float64
}

func (b Ball) MassProperties(density float64) MassProperties {
	mass := density * 4.0 / 3.0 * math.Pi * b.Radius * b.Radius * b.Radius
	inertia := 0.4 * mass * b.Radius * b.Radius

	return MassProperties{
		Mass:    mass,
		Inertia: mgl64.Diag3(mgl64.Vec3{inertia, inertia, inertia}),
	}
}

// Cuboid is an axis-aligned box shape centered on the collider origin,
// described by its half extents.
type Cuboid struct {
	HalfExtents mgl64.Vec3
}

func (c Cuboid) MassProperties(density float64) MassProperties {
	he := c.HalfExtents
	mass := density * 8 * he.X() * he.Y() * he.Z()

	return MassProperties{
		Mass: mass,
		Inertia: mgl64.Diag3(mgl64.Vec3{
			mass / 3 * (he.Y()*he.Y() + he.Z()*he.Z()),
			mass / 3 * (he.X()*he.X() + he.Z()*he.Z()),
			mass / 3 * (he.X()*he.X() + he.Y()*he.Y()),
		}),
	}
}

// ColliderDef holds the data needed to attach a collider to a body.
type ColliderDef struct {
	Shape Shape

	// Density in mass per volume, used to derive the mass contribution.
	Density float64

	// Offset is the collider translation relative to the body origin.
	Offset mgl64.Vec3
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
	offset  mgl64.Vec3
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

// shiftInertia is the parallel axis term for moving an inertia tensor by
// the offset d: m * ((d·d)·E − d·dᵀ).
func shiftInertia(mass float64, d mgl64.Vec3) mgl64.Mat3 {
	outer := mgl64.Mat3{
		d.X() * d.X(), d.Y() * d.X(), d.Z() * d.X(),
		d.X() * d.Y(), d.Y() * d.Y(), d.Z() * d.Y(),
		d.X() * d.Z(), d.Y() * d.Z(), d.Z() * d.Z(),
	}

	return mgl64.Ident3().Mul(d.Dot(d)).Sub(outer).Mul(mass)
}

// resetMassData recomputes mass, center of mass and inertia from the
// attached colliders. Static and kinematic bodies always have zero mass;
// a dynamic body without mass contributions falls back to unit mass.
func (s *BodySet) resetMassData(b *body, colliders *ColliderSet) {
	oldWorldCom := b.worldCom()

	b.mass = 0
	b.invMass = 0
	b.inertiaLocal = mgl64.Mat3{}
	b.invInertiaLocal = mgl64.Mat3{}
	b.localCom = mgl64.Vec3{}

	if b.status != rebound.BodyStatusDynamic {
		return
	}

	com := mgl64.Vec3{}
	inertia := mgl64.Mat3{}

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
		inertia = inertia.Add(props.Inertia).Add(shiftInertia(props.Mass, center))
	}

	if b.mass > 0 {
		b.invMass = 1 / b.mass
		com = com.Mul(b.invMass)
	} else {
		b.mass = 1
		b.invMass = 1
	}

	// re-center the inertia about the center of mass
	inertia = inertia.Sub(shiftInertia(b.mass, com))

	b.localCom = com
	b.inertiaLocal = inertia

	// Inv returns the zero matrix for a singular tensor, which matches the
	// zero rotational response of a body without rotational inertia
	b.invInertiaLocal = inertia.Inv()

	// the center of mass moved, keep its velocity consistent
	shift := b.worldCom().Sub(oldWorldCom)
	b.linvel = b.linvel.Add(b.angvel.Cross(shift))
}
