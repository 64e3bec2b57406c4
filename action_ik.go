package sprig

import "math"

// ikReach swings the end effector's parent joint toward a goal. The swing is
// measured about the chain's root: the signed angle between root->joint and
// root->goal, scaled by progress, is added to the joint's starting rotation.
// The chain from the effector up to (not including) root must hold at least
// the effector and one joint, or nothing happens.
type ikReach struct {
	goalX, goalY float64
	goalNode     Handle
	followNode   bool
	root         Handle

	startAngle float64
	captured   bool
}

func (e *ikReach) goal() (float64, float64, bool) {
	if !e.followNode {
		return e.goalX, e.goalY, true
	}
	n, ok := e.goalNode.Resolve()
	if !ok {
		return 0, 0, false
	}
	x, y := n.WorldPosition()
	return x, y, true
}

// joint returns the joint to rotate and the pivot the swing is measured
// about. The pivot is the root, or the top of the hierarchy for a zero root
// handle. It reports false when the chain is too short or the root has been
// disposed.
func (e *ikReach) joint(effector IKJointed) (j, pivot IKJointed, ok bool) {
	var root IKJointed
	if e.root.node != nil {
		n, alive := e.root.Resolve()
		if !alive {
			return nil, nil, false
		}
		root = n
		if effector == root {
			return nil, nil, false
		}
	}
	j = effector.JointParent()
	if j == nil || (root != nil && j == root) {
		return nil, nil, false
	}
	if root != nil {
		return j, root, true
	}
	pivot = j
	for p := j.JointParent(); p != nil; p = p.JointParent() {
		pivot = p
	}
	return j, pivot, true
}

func (e *ikReach) apply(target Target, p float64) {
	effector, ok := capability[IKJointed](target, CapIK)
	if !ok {
		return
	}
	j, pivot, ok := e.joint(effector)
	if !ok {
		return
	}
	gx, gy, ok := e.goal()
	if !ok {
		return
	}
	if !e.captured {
		e.startAngle = j.Angle()
		e.captured = true
	}

	rx, ry := pivot.WorldPosition()
	if gx == rx && gy == ry {
		return
	}
	// Rotating the joint never moves it, so root->joint is stable across ticks.
	jx, jy := j.WorldPosition()
	delta := normalizeAngle(math.Atan2(gy-ry, gx-rx) - math.Atan2(jy-ry, jx-rx))

	r := e.startAngle + delta*p
	if c, ok := j.JointConstraint(); ok {
		r = c.clamp(r)
	}
	j.SetAngle(r)
}

func (e *ikReach) reset() { e.captured = false }

func (e *ikReach) clone() effect {
	c := *e
	c.captured = false
	return &c
}

func (e *ikReach) requires() Capability { return CapIK }

// ReachTo rotates the target's parent joint so the target points at the
// world point (x, y). The chain stops below root; pass a zero Handle to use
// the whole ancestry.
func ReachTo(x, y float64, root Handle, duration float64) Action {
	return newTween(duration, &ikReach{goalX: x, goalY: y, root: root})
}

// ReachToNode is ReachTo with a moving goal: the goal node's world position
// is read every tick. Once the goal is disposed the action does nothing.
func ReachToNode(goal, root Handle, duration float64) Action {
	return newTween(duration, &ikReach{goalNode: goal, followNode: true, root: root})
}
