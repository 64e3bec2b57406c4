package sprig

// Action is a reusable, stateful program node that mutates a target over
// time. Templates built by the factory functions are never run directly: the
// runner and every combinator hold their own Copy.
//
// Evaluate advances the action by one tick and reports true exactly once, on
// the tick completion is first observed. Once complete, Evaluate is a no-op
// until Reset.
type Action interface {
	// Duration is the length of one run in the action's own timeline.
	// It is math.Inf(1) for actions that never finish on their own.
	Duration() float64
	Evaluate(target Target, dt float64) bool
	IsComplete() bool
	// Elapsed is the time accumulated so far in the action's own timeline.
	Elapsed() float64
	// Overflow is the caller-time left unconsumed on the completion tick.
	Overflow() float64
	// Reset clears run state and every captured start value.
	Reset()
	// Copy returns an independent action with the same configuration and
	// fresh run state.
	Copy() Action

	Speed() float64
	SetSpeed(s float64)
	TimingMode() TimingMode
	SetTimingMode(m TimingMode)
	Easing() EasingFunc
	SetEasing(fn EasingFunc)

	// Requires reports the target capabilities the action touches.
	Requires() Capability
}

// Tween is an action whose effect at any moment is a pure function of its
// progress. Only tweens can be reversed.
type Tween interface {
	Action
	// Apply writes the state for progress in [0, 1] to target, capturing the
	// start value on first use.
	Apply(target Target, progress float64)
}

// WithTiming sets a's timing mode and returns it, for inline construction.
func WithTiming[A Action](a A, m TimingMode) A {
	a.SetTimingMode(m)
	return a
}

// WithEasing sets a's custom easing and returns it.
func WithEasing[A Action](a A, fn EasingFunc) A {
	a.SetEasing(fn)
	return a
}

// WithSpeed sets a's speed and returns it.
func WithSpeed[A Action](a A, s float64) A {
	a.SetSpeed(s)
	return a
}

// actionCore is the configuration and run state every action shares.
type actionCore struct {
	duration float64
	mode     TimingMode
	easing   EasingFunc
	speed    float64

	elapsed  float64
	overflow float64
	complete bool
}

func newCore(duration float64) actionCore {
	if globalDebug {
		debugCheckDuration(duration)
	}
	return actionCore{duration: duration, speed: 1}
}

func (c *actionCore) Duration() float64          { return c.duration }
func (c *actionCore) Elapsed() float64           { return c.elapsed }
func (c *actionCore) IsComplete() bool           { return c.complete }
func (c *actionCore) Overflow() float64          { return c.overflow }
func (c *actionCore) Speed() float64             { return c.speed }
func (c *actionCore) SetSpeed(s float64)         { c.speed = s }
func (c *actionCore) TimingMode() TimingMode     { return c.mode }
func (c *actionCore) SetTimingMode(m TimingMode) { c.mode = m }
func (c *actionCore) Easing() EasingFunc         { return c.easing }
func (c *actionCore) SetEasing(fn EasingFunc)    { c.easing = fn }

// configOnly returns a copy of c with run state cleared.
func (c actionCore) configOnly() actionCore {
	c.resetCore()
	return c
}

func (c *actionCore) resetCore() {
	c.elapsed = 0
	c.overflow = 0
	c.complete = false
}

// instant reports whether the action fires once instead of running over time.
// Negative and NaN durations count as instant.
func (c *actionCore) instant() bool {
	return !(c.duration > 0)
}

// advance accumulates one tick and returns the step in the action's own
// timeline. Elapsed never decreases.
func (c *actionCore) advance(dt float64) float64 {
	step := dt * c.speed
	if !(step > 0) {
		step = 0
	}
	c.elapsed += step
	return step
}

// progress is the eased progress for the current elapsed time, clamped to
// [0, 1].
func (c *actionCore) progress() float64 {
	raw := clamp01(c.elapsed / c.duration)
	if c.easing != nil {
		return clamp01(c.easing(raw))
	}
	return clamp01(c.mode.Apply(raw))
}

// reachedEpsilon is the relative tolerance for completion. Steps such as 0.1
// summed in floating point fall short of the exact total by a few ulps.
const reachedEpsilon = 1e-9

// reached reports whether elapsed covers the duration, snapping elapsed onto
// the duration when it is within reachedEpsilon of it.
func (c *actionCore) reached() bool {
	if c.elapsed >= c.duration {
		return true
	}
	if c.elapsed >= c.duration-reachedEpsilon*c.duration {
		c.elapsed = c.duration
		return true
	}
	return false
}

// finish marks the action complete. leftover is in the action's own timeline
// and is converted back to the caller's.
func (c *actionCore) finish(leftover float64) {
	c.complete = true
	c.overflow = 0
	if c.speed > 0 && leftover > 0 {
		c.overflow = leftover / c.speed
	}
}

// effect is the target mutation behind a tween: a pure function of progress
// plus the start values it captures on first use.
type effect interface {
	apply(target Target, progress float64)
	// reset forgets captured start values.
	reset()
	// clone returns a copy with the same parameters and nothing captured.
	clone() effect
	requires() Capability
}

// finisher is an effect with cleanup to run on the completion tick.
type finisher interface {
	finish(target Target)
}

// completer is a tween that forwards completion cleanup to its effect.
// Wrappers call it on the child when they complete.
type completer interface {
	finishOn(target Target)
}

// tween runs an effect over a duration.
type tween struct {
	actionCore
	fx effect
}

func newTween(duration float64, fx effect) *tween {
	return &tween{actionCore: newCore(duration), fx: fx}
}

func (t *tween) Apply(target Target, progress float64) {
	t.fx.apply(target, clamp01(progress))
}

func (t *tween) Evaluate(target Target, dt float64) bool {
	if !evaluateTween(t, &t.actionCore, target, dt) {
		return false
	}
	t.finishOn(target)
	return true
}

// finishOn runs the effect's completion cleanup, if it has any.
func (t *tween) finishOn(target Target) {
	if f, ok := t.fx.(finisher); ok {
		f.finish(target)
	}
}

func (t *tween) Reset() {
	t.resetCore()
	t.fx.reset()
}

func (t *tween) Copy() Action {
	return &tween{actionCore: t.actionCore.configOnly(), fx: t.fx.clone()}
}

func (t *tween) Requires() Capability { return t.fx.requires() }

// evaluateTween is the evaluation state machine shared by every tween.
func evaluateTween(t Tween, c *actionCore, target Target, dt float64) bool {
	if c.complete {
		return false
	}
	c.advance(dt)
	if c.instant() {
		t.Apply(target, 1)
		c.finish(c.elapsed)
		return true
	}
	done := c.reached()
	t.Apply(target, c.progress())
	if done {
		c.finish(c.elapsed - c.duration)
		return true
	}
	return false
}

// stepper is a per-tick side effect that does not depend on progress:
// continuous forces, callbacks, and one-shot changes.
type stepper interface {
	// step is called on every evaluated tick with elapsed clamped to the
	// action's duration. Zero-duration actions step exactly once.
	step(target Target, elapsed float64)
	clone() stepper
	requires() Capability
}

// stepAction drives a stepper for a fixed duration.
type stepAction struct {
	actionCore
	st stepper
}

func newStepAction(duration float64, st stepper) *stepAction {
	return &stepAction{actionCore: newCore(duration), st: st}
}

func (a *stepAction) Evaluate(target Target, dt float64) bool {
	if a.complete {
		return false
	}
	a.advance(dt)
	if a.instant() {
		a.st.step(target, 0)
		a.finish(a.elapsed)
		return true
	}
	done := a.reached()
	a.st.step(target, min(a.elapsed, a.duration))
	if done {
		a.finish(a.elapsed - a.duration)
		return true
	}
	return false
}

func (a *stepAction) Reset() { a.resetCore() }

func (a *stepAction) Copy() Action {
	return &stepAction{actionCore: a.actionCore.configOnly(), st: a.st.clone()}
}

func (a *stepAction) Requires() Capability { return a.st.requires() }
