package sprig

import "testing"

func bodyNode(mass float64) (*Node, *Body) {
	n := NewContainer("body")
	b := &Body{BodyMass: mass}
	n.Body = b
	return n, b
}

func TestApplyImpulse(t *testing.T) {
	n, b := bodyNode(2)
	b.VX = 1
	_, done := evaluateTicks(ApplyImpulse(4, -6), n, 1.0/60.0, 3)
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
	// Fires once: (4, -6) / 2 added to (1, 0).
	if b.VX != 3 || b.VY != -3 {
		t.Errorf("velocity = (%v,%v), want (3,-3)", b.VX, b.VY)
	}
}

func TestApplyAngularImpulse(t *testing.T) {
	n, b := bodyNode(4)
	evaluateTicks(ApplyAngularImpulse(2), n, 0, 1)
	assertNear(t, "spin", b.Spin, 0.5)
}

func TestApplyForceIntegratesPerTick(t *testing.T) {
	n, b := bodyNode(1)
	// 4 ticks of 0.25s: the force integrates over FixedPhysicsStep on each.
	_, done := evaluateTicks(ApplyForce(60, 120, 1), n, 0.25, 4)
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
	assertNear(t, "vx", b.VX, 4)
	assertNear(t, "vy", b.VY, 8)
}

func TestApplyForceDividesByMass(t *testing.T) {
	n, b := bodyNode(2)
	evaluateTicks(ApplyForce(60, -30, 0), n, 0, 1)
	// 60/2 * FixedPhysicsStep and -30/2 * FixedPhysicsStep.
	assertNear(t, "vx", b.VX, 0.5)
	assertNear(t, "vy", b.VY, -0.25)
}

func TestApplyForceZeroDurationPushesOnce(t *testing.T) {
	n, b := bodyNode(1)
	evaluateTicks(ApplyForce(60, 0, 0), n, 0.5, 3)
	assertNear(t, "vx", b.VX, 1)
}

func TestApplyTorque(t *testing.T) {
	n, b := bodyNode(2)
	evaluateTicks(ApplyTorque(120, 0.5), n, 0.25, 2)
	assertNear(t, "spin", b.Spin, 2)
}

func TestPhysicsZeroMassCountsAsOne(t *testing.T) {
	n, b := bodyNode(0)
	evaluateTicks(ApplyImpulse(5, 0), n, 0, 1)
	if b.VX != 5 {
		t.Errorf("vx = %v, want 5", b.VX)
	}
}

func TestPhysicsActionsWithoutBody(t *testing.T) {
	n := NewContainer("n")
	_, done := evaluateTicks(Sequence(ApplyImpulse(1, 1), ApplyForce(1, 1, 0.5)), n, 0.25, 2)
	if done != 1 {
		t.Errorf("done = %d, want 1", done)
	}
	if n.Capabilities().Has(CapPhysics) {
		t.Error("bodiless node reports physics")
	}
}

// countingStepper records the dt of every step.
type countingStepper struct{ steps []float64 }

func (s *countingStepper) Step(dt float64) { s.steps = append(s.steps, dt) }

func TestSceneStepsPhysicsAfterActions(t *testing.T) {
	s := NewScene()
	n, b := bodyNode(1)
	s.Root().AddChild(n)
	p := &countingStepper{}
	s.SetPhysics(p)

	var seen float64
	p2 := stepperFunc(func(float64) { seen = b.VX })
	n.RunAction(ApplyImpulse(3, 0))
	s.Step(0.1)
	s.SetPhysics(p2)
	n.RunAction(ApplyImpulse(3, 0))
	s.Step(0.1)

	if len(p.steps) != 1 || p.steps[0] != FixedPhysicsStep {
		t.Errorf("steps = %v, want one FixedPhysicsStep", p.steps)
	}
	if seen != 6 {
		t.Errorf("stepper saw vx = %v, want 6 after the tick's impulse", seen)
	}
}

type stepperFunc func(dt float64)

func (f stepperFunc) Step(dt float64) { f(dt) }
