package sprig

// FixedPhysicsStep is the simulation step continuous force and torque actions
// integrate over, independent of the frame's actual dt.
const FixedPhysicsStep = 1.0 / 60.0

// PhysicsBody is the slice of a physics engine's body the action system
// touches. Actions only push velocity; integration belongs to the engine.
type PhysicsBody interface {
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	AngularVelocity() float64
	SetAngularVelocity(w float64)
	// Mass is used to turn forces and impulses into velocity changes.
	// Values <= 0 are treated as 1.
	Mass() float64
}

// Stepper is a physics collaborator advanced by the scene once per tick,
// after actions have run.
type Stepper interface {
	Step(dt float64)
}

// Body is a minimal PhysicsBody for targets without an external engine.
type Body struct {
	VX, VY   float64
	Spin     float64
	BodyMass float64
}

func (b *Body) Velocity() (float64, float64) { return b.VX, b.VY }
func (b *Body) SetVelocity(vx, vy float64)   { b.VX, b.VY = vx, vy }
func (b *Body) AngularVelocity() float64     { return b.Spin }
func (b *Body) SetAngularVelocity(w float64) { b.Spin = w }
func (b *Body) Mass() float64                { return b.BodyMass }

// Field holds the parameters of a force field node (gravity well, vortex,
// drag region). The physics engine reads them; actions tween them.
type Field struct {
	Strength float64
	// Falloff is the exponent of distance attenuation; 0 means uniform.
	Falloff float64
	// Region limits the field's extent in the node's local space. A zero
	// Rect means unbounded.
	Region Rect
}

func effectiveMass(b PhysicsBody) float64 {
	if m := b.Mass(); m > 0 {
		return m
	}
	return 1
}
