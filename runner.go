package sprig

// actionSlot is one running action on a target.
type actionSlot struct {
	key     string
	action  Action
	done    func()
	removed bool
}

// ActionRunner owns the actions running on one target. Every attach copies
// its template, so one template can run on many targets at once.
//
// Actions are evaluated in attachment order. Actions attached while Update is
// running start on the next Update; removals take effect immediately.
type ActionRunner struct {
	// Paused stops time for every action on the runner.
	Paused bool

	slots    []*actionSlot
	updating bool
}

// Run attaches a copy of template and returns the running copy.
func (r *ActionRunner) Run(template Action) Action {
	return r.attach(template, "", nil)
}

// RunWithKey attaches a copy of template under key, removing any action
// already running under the same key.
func (r *ActionRunner) RunWithKey(template Action, key string) Action {
	if key != "" {
		r.Remove(key)
	}
	return r.attach(template, key, nil)
}

// RunThen attaches a copy of template and calls done on the tick it
// completes. done is not called if the action is removed early.
func (r *ActionRunner) RunThen(template Action, done func()) Action {
	return r.attach(template, "", done)
}

func (r *ActionRunner) attach(template Action, key string, done func()) Action {
	if template == nil {
		return nil
	}
	a := template.Copy()
	r.slots = append(r.slots, &actionSlot{key: key, action: a, done: done})
	return a
}

// Action returns the running action under key, or nil.
func (r *ActionRunner) Action(key string) Action {
	for _, s := range r.slots {
		if !s.removed && s.key == key {
			return s.action
		}
	}
	return nil
}

// Remove stops the action running under key. Mutations it already made stay.
func (r *ActionRunner) Remove(key string) {
	for _, s := range r.slots {
		if !s.removed && s.key == key {
			s.removed = true
		}
	}
	r.compact()
}

// RemoveAll stops every action on the runner.
func (r *ActionRunner) RemoveAll() {
	for _, s := range r.slots {
		s.removed = true
	}
	r.compact()
}

// HasActions reports whether any action is still attached.
func (r *ActionRunner) HasActions() bool {
	return r.Len() > 0
}

// Len returns the number of attached actions.
func (r *ActionRunner) Len() int {
	n := 0
	for _, s := range r.slots {
		if !s.removed {
			n++
		}
	}
	return n
}

// Update evaluates every attached action against target for one tick and
// detaches those that complete. dt is scaled by the target's action speed
// when it has one. Returns whether any action is still running.
func (r *ActionRunner) Update(target Target, dt float64) bool {
	if r.updating {
		return r.HasActions()
	}
	if r.Paused {
		return r.HasActions()
	}
	if s, ok := capability[SpeedAdjustable](target, CapSpeed); ok {
		dt *= s.ActionSpeed()
	}

	r.updating = true
	n := len(r.slots)
	for i := 0; i < n; i++ {
		s := r.slots[i]
		if s.removed {
			continue
		}
		if !s.action.Evaluate(target, dt) && !s.action.IsComplete() {
			continue
		}
		s.removed = true
		if s.done != nil {
			s.done()
		}
	}
	r.updating = false
	r.compact()
	return r.HasActions()
}

// compact drops removed slots unless an Update is iterating over them.
func (r *ActionRunner) compact() {
	if r.updating {
		return
	}
	kept := r.slots[:0]
	for _, s := range r.slots {
		if !s.removed {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(r.slots); i++ {
		r.slots[i] = nil
	}
	r.slots = kept
}
