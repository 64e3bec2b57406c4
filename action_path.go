package sprig

import "math"

// orientLookahead is how far ahead in progress the heading is sampled.
const orientLookahead = 0.01

// PathOptions configures FollowPath.
type PathOptions struct {
	// AsOffset treats path coordinates as relative to the target's position
	// when the action starts.
	AsOffset bool
	// OrientToPath rotates the target to face along the path.
	OrientToPath bool
}

type pathFollow struct {
	path Path
	opts PathOptions

	ox, oy   float64
	captured bool
}

func (e *pathFollow) apply(target Target, p float64) {
	pos, ok := capability[Positionable](target, CapPosition)
	if !ok || e.path == nil {
		return
	}
	if !e.captured {
		if e.opts.AsOffset {
			e.ox, e.oy = pos.Position()
		}
		e.captured = true
	}
	x, y := e.path.PointAt(p)
	pos.SetPosition(e.ox+x, e.oy+y)

	// The heading from the last sample would look past the end of the path.
	if !e.opts.OrientToPath || p >= 1 {
		return
	}
	o, ok := capability[PathOrientable](target, CapPathOrient)
	if !ok {
		return
	}
	nx, ny := e.path.PointAt(math.Min(p+orientLookahead, 1))
	if nx == x && ny == y {
		return
	}
	o.SetAngle(math.Atan2(ny-y, nx-x))
}

func (e *pathFollow) reset() {
	e.captured = false
	e.ox, e.oy = 0, 0
}

func (e *pathFollow) clone() effect {
	return &pathFollow{path: e.path, opts: e.opts}
}

func (e *pathFollow) requires() Capability {
	if e.opts.OrientToPath {
		return CapPosition | CapPathOrient
	}
	return CapPosition
}

// FollowPath moves the target along path over duration. path is shared by
// every copy and must not change while running.
func FollowPath(path Path, duration float64, opts PathOptions) Tween {
	return newTween(duration, &pathFollow{path: path, opts: opts})
}

// FollowPathAtSpeed moves the target along path at speed units per second.
// The duration is fixed from the path's length at construction.
func FollowPathAtSpeed(path Path, speed float64, opts PathOptions) Tween {
	duration := 0.0
	if path != nil && speed > 0 {
		duration = path.Length() / speed
	}
	return FollowPath(path, duration, opts)
}
