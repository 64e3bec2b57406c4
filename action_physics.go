package sprig

func bodyOf(target Target) (PhysicsBody, bool) {
	pb, ok := capability[PhysicsBacked](target, CapPhysics)
	if !ok {
		return nil, false
	}
	b := pb.PhysicsBody()
	return b, b != nil
}

// pushKind selects what a push changes.
type pushKind uint8

const (
	pushForce pushKind = iota
	pushTorque
	pushImpulse
	pushAngularImpulse
)

// push forwards a force, torque or impulse to the target's physics body.
// Forces and torques integrate over FixedPhysicsStep on every evaluated tick;
// impulses fire once. Every push is divided by the body's mass, with a mass
// of zero or less counted as 1, so a unit-mass body sees force*FixedPhysicsStep.
type push struct {
	kind   pushKind
	dx, dy float64 // force or impulse vector
	w      float64 // torque or angular impulse
}

func (s *push) step(target Target, _ float64) {
	b, ok := bodyOf(target)
	if !ok {
		return
	}
	invMass := 1 / effectiveMass(b)
	switch s.kind {
	case pushForce:
		vx, vy := b.Velocity()
		b.SetVelocity(vx+s.dx*invMass*FixedPhysicsStep, vy+s.dy*invMass*FixedPhysicsStep)
	case pushImpulse:
		vx, vy := b.Velocity()
		b.SetVelocity(vx+s.dx*invMass, vy+s.dy*invMass)
	case pushTorque:
		b.SetAngularVelocity(b.AngularVelocity() + s.w*invMass*FixedPhysicsStep)
	case pushAngularImpulse:
		b.SetAngularVelocity(b.AngularVelocity() + s.w*invMass)
	}
}

func (s *push) clone() stepper {
	c := *s
	return &c
}

func (s *push) requires() Capability { return CapPhysics }

// ApplyForce pushes the target's body with force (fx, fy) on every tick for
// duration seconds: each tick adds (fx, fy)/mass*FixedPhysicsStep to the
// velocity. A zero duration pushes for one tick; math.Inf(1) pushes until
// removed.
func ApplyForce(fx, fy, duration float64) Action {
	return newStepAction(duration, &push{kind: pushForce, dx: fx, dy: fy})
}

// ApplyTorque spins the target's body with torque on every tick for
// duration seconds, adding torque/mass*FixedPhysicsStep to the angular
// velocity each tick.
func ApplyTorque(torque, duration float64) Action {
	return newStepAction(duration, &push{kind: pushTorque, w: torque})
}

// ApplyImpulse changes the body's velocity by (ix, iy)/mass once.
func ApplyImpulse(ix, iy float64) Action {
	return newStepAction(0, &push{kind: pushImpulse, dx: ix, dy: iy})
}

// ApplyAngularImpulse changes the body's angular velocity by impulse/mass
// once.
func ApplyAngularImpulse(impulse float64) Action {
	return newStepAction(0, &push{kind: pushAngularImpulse, w: impulse})
}
