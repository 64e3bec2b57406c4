package sprig

import "math"

// --- Sequence ---

type sequence struct {
	actionCore
	children []Action
	index    int
}

// Sequence runs actions one after another. Each action is copied, so the
// arguments stay reusable templates. Time left over when a child finishes
// flows into the next child on the same tick.
func Sequence(actions ...Action) Action {
	s := &sequence{children: copyAll(actions)}
	total := 0.0
	for _, c := range s.children {
		total += c.Duration()
	}
	s.actionCore = newCore(total)
	return s
}

func (s *sequence) Evaluate(target Target, dt float64) bool {
	if s.complete {
		return false
	}
	step := s.advance(dt)
	for s.index < len(s.children) {
		c := s.children[s.index]
		if !c.Evaluate(target, step) {
			return false
		}
		step = c.Overflow()
		s.index++
	}
	s.finish(step)
	return true
}

func (s *sequence) Reset() {
	s.resetCore()
	s.index = 0
	for _, c := range s.children {
		c.Reset()
	}
}

func (s *sequence) Copy() Action {
	return &sequence{actionCore: s.actionCore.configOnly(), children: copyAll(s.children)}
}

func (s *sequence) Requires() Capability { return unionRequires(s.children) }

// --- Group ---

type group struct {
	actionCore
	children []Action
}

// Group runs actions side by side. It completes when its longest child does.
func Group(actions ...Action) Action {
	g := &group{children: copyAll(actions)}
	longest := 0.0
	for _, c := range g.children {
		longest = math.Max(longest, c.Duration())
	}
	g.actionCore = newCore(longest)
	return g
}

func (g *group) Evaluate(target Target, dt float64) bool {
	if g.complete {
		return false
	}
	step := g.advance(dt)
	done := true
	leftover := step
	for _, c := range g.children {
		if c.IsComplete() {
			continue
		}
		if c.Evaluate(target, step) {
			leftover = math.Min(leftover, c.Overflow())
			continue
		}
		done = false
	}
	if !done {
		return false
	}
	g.finish(leftover)
	return true
}

func (g *group) Reset() {
	g.resetCore()
	for _, c := range g.children {
		c.Reset()
	}
}

func (g *group) Copy() Action {
	return &group{actionCore: g.actionCore.configOnly(), children: copyAll(g.children)}
}

func (g *group) Requires() Capability { return unionRequires(g.children) }

// --- Repeat ---

type repeat struct {
	actionCore
	child     Action
	count     int
	forever   bool
	iteration int
}

// Repeat runs action count times, resetting it between iterations so each
// iteration captures fresh start values. A count below one runs nothing and
// completes on the first tick.
func Repeat(action Action, count int) Action {
	if count < 0 {
		count = 0
	}
	child := orEmpty(action).Copy()
	r := &repeat{child: child, count: count}
	total := 0.0
	if count > 0 {
		total = child.Duration() * float64(count)
	}
	r.actionCore = newCore(total)
	return r
}

// RepeatForever runs action until it is removed from its target.
func RepeatForever(action Action) Action {
	r := &repeat{child: orEmpty(action).Copy(), forever: true}
	r.actionCore = newCore(math.Inf(1))
	return r
}

// Iteration returns how many iterations have completed in the current run.
func (r *repeat) Iteration() int { return r.iteration }

func (r *repeat) Evaluate(target Target, dt float64) bool {
	if r.complete {
		return false
	}
	step := r.advance(dt)
	if !r.forever && r.iteration >= r.count {
		r.finish(step)
		return true
	}
	for {
		if !r.child.Evaluate(target, step) {
			return false
		}
		r.iteration++
		step = r.child.Overflow()
		if !r.forever && r.iteration >= r.count {
			r.finish(step)
			return true
		}
		r.child.Reset()
		// An instant body repeated forever would never yield.
		if r.forever && r.child.Duration() <= 0 {
			return false
		}
		if step <= 0 && r.child.Duration() > 0 {
			return false
		}
	}
}

func (r *repeat) Reset() {
	r.resetCore()
	r.iteration = 0
	r.child.Reset()
}

func (r *repeat) Copy() Action {
	return &repeat{
		actionCore: r.actionCore.configOnly(),
		child:      r.child.Copy(),
		count:      r.count,
		forever:    r.forever,
	}
}

func (r *repeat) Requires() Capability { return r.child.Requires() }

// --- Speed ---

type speedAction struct {
	actionCore
	child      Action
	multiplier float64
}

// Speed runs action with its time scaled by multiplier. Its duration is the
// child's duration divided by multiplier.
func Speed(action Action, multiplier float64) Action {
	child := orEmpty(action).Copy()
	a := &speedAction{child: child, multiplier: multiplier}
	a.actionCore = newCore(child.Duration() / multiplier)
	return a
}

func (a *speedAction) Evaluate(target Target, dt float64) bool {
	if a.complete {
		return false
	}
	step := a.advance(dt)
	if !a.child.Evaluate(target, step*a.multiplier) {
		// The child may have been completed before this tick.
		if !a.child.IsComplete() {
			return false
		}
	}
	leftover := 0.0
	if a.multiplier > 0 {
		leftover = a.child.Overflow() / a.multiplier
	}
	a.finish(leftover)
	return true
}

func (a *speedAction) Reset() {
	a.resetCore()
	a.child.Reset()
}

func (a *speedAction) Copy() Action {
	return &speedAction{
		actionCore: a.actionCore.configOnly(),
		child:      a.child.Copy(),
		multiplier: a.multiplier,
	}
}

func (a *speedAction) Requires() Capability { return a.child.Requires() }

// --- Reversed ---

type reversed struct {
	actionCore
	child Tween
}

// Reversed plays a tween backwards: progress p is applied as 1-p, and the
// child's easing is mirrored so the curve is replayed in reverse time. The
// child still captures its start value on first use, so a reversed "to"
// action begins at the destination and returns to where the target was.
func Reversed(t Tween) Tween {
	if t == nil {
		t = emptyTween()
	}
	child := t.Copy().(Tween)
	r := &reversed{child: child}
	r.actionCore = newCore(child.Duration())
	r.speed = child.Speed()
	r.easing = mirrorEasing(child.TimingMode(), child.Easing())
	return r
}

func (r *reversed) Apply(target Target, progress float64) {
	r.child.Apply(target, 1-clamp01(progress))
}

func (r *reversed) Evaluate(target Target, dt float64) bool {
	if !evaluateTween(r, &r.actionCore, target, dt) {
		return false
	}
	r.finishOn(target)
	return true
}

func (r *reversed) finishOn(target Target) {
	if c, ok := r.child.(completer); ok {
		c.finishOn(target)
	}
}

func (r *reversed) Reset() {
	r.resetCore()
	r.child.Reset()
}

func (r *reversed) Copy() Action {
	return &reversed{actionCore: r.actionCore.configOnly(), child: r.child.Copy().(Tween)}
}

func (r *reversed) Requires() Capability { return r.child.Requires() }

// --- helpers ---

// noEffect stands in for a nil child. It takes no time and touches nothing.
type noEffect struct{}

func (noEffect) apply(Target, float64) {}
func (noEffect) reset()                {}
func (noEffect) clone() effect         { return noEffect{} }
func (noEffect) requires() Capability  { return 0 }

func emptyTween() Tween { return newTween(0, noEffect{}) }

func orEmpty(a Action) Action {
	if a == nil {
		return emptyTween()
	}
	return a
}

func copyAll(actions []Action) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a == nil {
			continue
		}
		out = append(out, a.Copy())
	}
	return out
}

func unionRequires(actions []Action) Capability {
	var c Capability
	for _, a := range actions {
		c |= a.Requires()
	}
	return c
}
