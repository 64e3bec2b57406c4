package sprig

import "strings"

// Target is anything an action can run against. Actions never depend on a
// concrete type; they query the capability interfaces below and skip their
// effect when the target does not offer what they need.
type Target any

// Capability is a bit set of the target features an action touches.
type Capability uint32

const (
	CapPosition Capability = 1 << iota
	CapRotation
	CapScale
	CapFade
	CapResize
	CapTexture
	CapColor
	CapHide
	CapRemove
	CapPhysics
	CapField
	CapWarp
	CapPathOrient
	CapSpeed
	CapIK
)

var capabilityNames = [...]string{
	"position", "rotation", "scale", "fade", "resize", "texture", "color",
	"hide", "remove", "physics", "field", "warp", "pathOrient", "speed", "ik",
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for i, name := range capabilityNames {
		if c&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether every bit of other is set in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Positionable targets expose a 2D position.
type Positionable interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
}

// Rotatable targets expose a rotation in radians.
type Rotatable interface {
	Angle() float64
	SetAngle(radians float64)
}

// Scalable targets expose independent X and Y scale factors.
type Scalable interface {
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
}

// Fadeable targets expose an opacity in [0, 1].
type Fadeable interface {
	Opacity() float64
	SetOpacity(a float64)
}

// Resizable targets expose a display size independent of scale.
type Resizable interface {
	Size() (w, h float64)
	SetSize(w, h float64)
}

// Texturable targets display a texture region and an optional normal map.
type Texturable interface {
	Texture() TextureRegion
	SetTexture(r TextureRegion)
	NormalTexture() TextureRegion
	SetNormalTexture(r TextureRegion)
}

// Colorable targets expose a tint color and the blend factor mixing it with
// the texture.
type Colorable interface {
	Tint() (c Color, blend float64)
	SetTint(c Color, blend float64)
}

// Hideable targets can be hidden without being removed.
type Hideable interface {
	Hidden() bool
	SetHidden(hidden bool)
}

// ParentRemovable targets can detach themselves from their parent.
type ParentRemovable interface {
	RemoveFromParent()
}

// PhysicsBacked targets own a physics body. PhysicsBody may return nil.
type PhysicsBacked interface {
	PhysicsBody() PhysicsBody
}

// FieldBacked targets own a force field's parameters.
type FieldBacked interface {
	FieldStrength() float64
	SetFieldStrength(v float64)
	FieldFalloff() float64
	SetFieldFalloff(v float64)
}

// Warpable targets expose deformable grid geometry. Warp returns nil when
// the target has no grid.
type Warpable interface {
	Warp() *WarpGrid
	SetWarp(g *WarpGrid)
}

// PathOrientable targets can both follow a path and face along it.
type PathOrientable interface {
	Positionable
	Rotatable
}

// SpeedAdjustable targets scale the time of every action running on them.
type SpeedAdjustable interface {
	ActionSpeed() float64
	SetActionSpeed(s float64)
}

// IKJointed targets are joints in a transform hierarchy. JointParent returns
// nil at the top of the hierarchy.
type IKJointed interface {
	Rotatable
	JointParent() IKJointed
	WorldPosition() (x, y float64)
	JointConstraint() (ReachConstraint, bool)
}

// CapabilityReporter lets a target that statically implements a capability
// interface decline it at runtime, e.g. a container node that has no texture.
type CapabilityReporter interface {
	Supports(c Capability) bool
}

// capability returns target as T when it implements T and, if it is a
// CapabilityReporter, also reports c as supported.
func capability[T any](target Target, c Capability) (T, bool) {
	v, ok := target.(T)
	if !ok {
		return v, false
	}
	if p, ok := target.(CapabilityReporter); ok && !p.Supports(c) {
		var zero T
		return zero, false
	}
	return v, true
}

// CapabilitiesOf reports every capability target currently offers.
func CapabilitiesOf(target Target) Capability {
	var c Capability
	mark := func(ok bool, bit Capability) {
		if ok {
			c |= bit
		}
	}
	_, ok := capability[Positionable](target, CapPosition)
	mark(ok, CapPosition)
	_, ok = capability[Rotatable](target, CapRotation)
	mark(ok, CapRotation)
	_, ok = capability[Scalable](target, CapScale)
	mark(ok, CapScale)
	_, ok = capability[Fadeable](target, CapFade)
	mark(ok, CapFade)
	_, ok = capability[Resizable](target, CapResize)
	mark(ok, CapResize)
	_, ok = capability[Texturable](target, CapTexture)
	mark(ok, CapTexture)
	_, ok = capability[Colorable](target, CapColor)
	mark(ok, CapColor)
	_, ok = capability[Hideable](target, CapHide)
	mark(ok, CapHide)
	_, ok = capability[ParentRemovable](target, CapRemove)
	mark(ok, CapRemove)
	_, ok = capability[PhysicsBacked](target, CapPhysics)
	mark(ok, CapPhysics)
	_, ok = capability[FieldBacked](target, CapField)
	mark(ok, CapField)
	_, ok = capability[Warpable](target, CapWarp)
	mark(ok, CapWarp)
	_, ok = capability[PathOrientable](target, CapPathOrient)
	mark(ok, CapPathOrient)
	_, ok = capability[SpeedAdjustable](target, CapSpeed)
	mark(ok, CapSpeed)
	_, ok = capability[IKJointed](target, CapIK)
	mark(ok, CapIK)
	return c
}
