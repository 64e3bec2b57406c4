package sprig

// warpTween morphs a target's grid toward a destination grid.
type warpTween struct {
	to *WarpGrid

	start    *WarpGrid
	scratch  *WarpGrid
	captured bool
}

func (e *warpTween) apply(target Target, p float64) {
	w, ok := capability[Warpable](target, CapWarp)
	if !ok {
		return
	}
	if !e.captured {
		cur := w.Warp()
		if !cur.compatible(e.to) {
			return
		}
		e.start = cur.Clone()
		e.scratch = cur.Clone()
		e.captured = true
	}
	for i := range e.scratch.Positions {
		a, b := e.start.Positions[i], e.to.Positions[i]
		e.scratch.Positions[i] = Vec2{X: lerp(a.X, b.X, p), Y: lerp(a.Y, b.Y, p)}
	}
	w.SetWarp(e.scratch)
}

func (e *warpTween) reset() {
	e.captured = false
	e.start = nil
}

func (e *warpTween) clone() effect {
	return &warpTween{to: e.to}
}

func (e *warpTween) requires() Capability { return CapWarp }

// WarpTo morphs the target's warp grid into grid. Grids with a different
// shape than the target's are ignored. grid is copied.
func WarpTo(grid *WarpGrid, duration float64) Tween {
	return newTween(duration, &warpTween{to: grid.Clone()})
}

// warpFrames steps through whole grids like a flip book.
type warpFrames struct {
	grids   []*WarpGrid
	restore bool

	last     int
	original *WarpGrid
	captured bool
}

func (e *warpFrames) apply(target Target, p float64) {
	if len(e.grids) == 0 {
		return
	}
	w, ok := capability[Warpable](target, CapWarp)
	if !ok {
		return
	}
	if !e.captured {
		e.original = w.Warp().Clone()
		e.captured = true
	}
	i := min(int(p*float64(len(e.grids))), len(e.grids)-1)
	if i == e.last {
		return
	}
	e.last = i
	w.SetWarp(e.grids[i])
}

func (e *warpFrames) finish(target Target) {
	if !e.restore || !e.captured || e.original == nil {
		return
	}
	if w, ok := capability[Warpable](target, CapWarp); ok {
		w.SetWarp(e.original)
		e.last = -1
	}
}

func (e *warpFrames) reset() {
	e.captured = false
	e.original = nil
	e.last = -1
}

func (e *warpFrames) clone() effect {
	return &warpFrames{grids: e.grids, restore: e.restore, last: -1}
}

func (e *warpFrames) requires() Capability { return CapWarp }

// AnimateWarps shows each grid for timePerFrame seconds. With restore set
// the original geometry comes back on completion. The grids are copied.
func AnimateWarps(grids []*WarpGrid, timePerFrame float64, restore bool) Tween {
	owned := make([]*WarpGrid, 0, len(grids))
	for _, g := range grids {
		if g != nil {
			owned = append(owned, g.Clone())
		}
	}
	fx := &warpFrames{grids: owned, restore: restore, last: -1}
	return newTween(float64(len(owned))*timePerFrame, fx)
}
