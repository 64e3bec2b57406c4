package sprig

type idle struct{}

func (idle) step(Target, float64) {}
func (idle) clone() stepper       { return idle{} }
func (idle) requires() Capability { return 0 }

// Wait does nothing for duration seconds. Use it to space out a Sequence.
func Wait(duration float64) Action {
	return newStepAction(duration, idle{})
}

// callback runs a func once, with or without the target.
type callback struct {
	fn   func()
	onFn func(Target)
}

func (c *callback) step(target Target, _ float64) {
	if c.fn != nil {
		c.fn()
	}
	if c.onFn != nil {
		c.onFn(target)
	}
}

func (c *callback) clone() stepper {
	cp := *c
	return &cp
}

func (c *callback) requires() Capability { return 0 }

// Run calls fn once. Every copy of the action shares fn.
func Run(fn func()) Action {
	return newStepAction(0, &callback{fn: fn})
}

// RunOn calls fn once with the target the action runs on.
func RunOn(fn func(target Target)) Action {
	return newStepAction(0, &callback{onFn: fn})
}

// custom calls fn every tick with the elapsed time.
type custom struct {
	fn func(target Target, elapsed float64)
}

func (c *custom) step(target Target, elapsed float64) {
	if c.fn != nil {
		c.fn(target, elapsed)
	}
}

func (c *custom) clone() stepper { return &custom{fn: c.fn} }

func (c *custom) requires() Capability { return 0 }

// Custom calls fn on every tick for duration seconds with the elapsed time,
// which never exceeds duration.
func Custom(duration float64, fn func(target Target, elapsed float64)) Action {
	return newStepAction(duration, &custom{fn: fn})
}

type setHidden bool

func (h setHidden) step(target Target, _ float64) {
	if t, ok := capability[Hideable](target, CapHide); ok {
		t.SetHidden(bool(h))
	}
}

func (h setHidden) clone() stepper       { return h }
func (h setHidden) requires() Capability { return CapHide }

// Hide hides the target once.
func Hide() Action { return newStepAction(0, setHidden(true)) }

// Unhide shows the target once.
func Unhide() Action { return newStepAction(0, setHidden(false)) }

type removeSelf struct{}

func (removeSelf) step(target Target, _ float64) {
	if t, ok := capability[ParentRemovable](target, CapRemove); ok {
		t.RemoveFromParent()
	}
}

func (removeSelf) clone() stepper       { return removeSelf{} }
func (removeSelf) requires() Capability { return CapRemove }

// RemoveFromParent detaches the target from its parent once. The target's
// other actions keep running if it is added back.
func RemoveFromParent() Action { return newStepAction(0, removeSelf{}) }
