package sprig

// scalarChannel reads and writes one float property of a target. get reports
// false when the target lacks the capability.
type scalarChannel struct {
	cap Capability
	get func(t Target) (float64, bool)
	set func(t Target, v float64)
}

// vectorChannel is scalarChannel for paired properties.
type vectorChannel struct {
	cap Capability
	get func(t Target) (float64, float64, bool)
	set func(t Target, x, y float64)
}

// endMode decides how a tween's destination is derived from its start.
type endMode uint8

const (
	endAbsolute endMode = iota // value is the destination
	endRelative                // value is added to the start
	endShortest                // value is an angle reached along the short arc
)

// scalarTween interpolates one channel from its captured start.
type scalarTween struct {
	ch    scalarChannel
	value float64
	mode  endMode

	start, end float64
	captured   bool
}

func (e *scalarTween) apply(target Target, p float64) {
	cur, ok := e.ch.get(target)
	if !ok {
		return
	}
	if !e.captured {
		e.start = cur
		switch e.mode {
		case endRelative:
			e.end = cur + e.value
		case endShortest:
			e.end = cur + normalizeAngle(e.value-cur)
		default:
			e.end = e.value
		}
		e.captured = true
	}
	e.ch.set(target, lerp(e.start, e.end, p))
}

func (e *scalarTween) reset() { e.captured = false }

func (e *scalarTween) clone() effect {
	c := *e
	c.captured = false
	return &c
}

func (e *scalarTween) requires() Capability { return e.ch.cap }

// vectorTween interpolates both components of a channel from its captured
// start.
type vectorTween struct {
	ch       vectorChannel
	vx, vy   float64
	relative bool

	sx, sy, ex, ey float64
	captured       bool
}

func (e *vectorTween) apply(target Target, p float64) {
	x, y, ok := e.ch.get(target)
	if !ok {
		return
	}
	if !e.captured {
		e.sx, e.sy = x, y
		e.ex, e.ey = e.vx, e.vy
		if e.relative {
			e.ex, e.ey = x+e.vx, y+e.vy
		}
		e.captured = true
	}
	e.ch.set(target, lerp(e.sx, e.ex, p), lerp(e.sy, e.ey, p))
}

func (e *vectorTween) reset() { e.captured = false }

func (e *vectorTween) clone() effect {
	c := *e
	c.captured = false
	return &c
}

func (e *vectorTween) requires() Capability { return e.ch.cap }

func scalarTo(ch scalarChannel, v, duration float64) Tween {
	return newTween(duration, &scalarTween{ch: ch, value: v})
}

func scalarBy(ch scalarChannel, delta, duration float64) Tween {
	return newTween(duration, &scalarTween{ch: ch, value: delta, mode: endRelative})
}

func vectorTo(ch vectorChannel, x, y, duration float64) Tween {
	return newTween(duration, &vectorTween{ch: ch, vx: x, vy: y})
}

func vectorBy(ch vectorChannel, dx, dy, duration float64) Tween {
	return newTween(duration, &vectorTween{ch: ch, vx: dx, vy: dy, relative: true})
}

// --- Channels ---

var positionChannel = vectorChannel{
	cap: CapPosition,
	get: func(t Target) (float64, float64, bool) {
		p, ok := capability[Positionable](t, CapPosition)
		if !ok {
			return 0, 0, false
		}
		x, y := p.Position()
		return x, y, true
	},
	set: func(t Target, x, y float64) {
		if p, ok := capability[Positionable](t, CapPosition); ok {
			p.SetPosition(x, y)
		}
	},
}

// Single-axis channels write one component and re-read the other on every
// write, so a concurrent action on the other axis is never overwritten.
var (
	positionXChannel = axisOf(positionChannel, 0)
	positionYChannel = axisOf(positionChannel, 1)
	scaleXChannel    = axisOf(scaleChannel, 0)
	scaleYChannel    = axisOf(scaleChannel, 1)
	widthChannel     = axisOf(sizeChannel, 0)
	heightChannel    = axisOf(sizeChannel, 1)
)

func axisOf(v vectorChannel, axis int) scalarChannel {
	return scalarChannel{
		cap: v.cap,
		get: func(t Target) (float64, bool) {
			x, y, ok := v.get(t)
			if axis == 0 {
				return x, ok
			}
			return y, ok
		},
		set: func(t Target, val float64) {
			x, y, ok := v.get(t)
			if !ok {
				return
			}
			if axis == 0 {
				v.set(t, val, y)
			} else {
				v.set(t, x, val)
			}
		},
	}
}

var rotationChannel = scalarChannel{
	cap: CapRotation,
	get: func(t Target) (float64, bool) {
		r, ok := capability[Rotatable](t, CapRotation)
		if !ok {
			return 0, false
		}
		return r.Angle(), true
	},
	set: func(t Target, v float64) {
		if r, ok := capability[Rotatable](t, CapRotation); ok {
			r.SetAngle(v)
		}
	},
}

var scaleChannel = vectorChannel{
	cap: CapScale,
	get: func(t Target) (float64, float64, bool) {
		s, ok := capability[Scalable](t, CapScale)
		if !ok {
			return 0, 0, false
		}
		x, y := s.Scale()
		return x, y, true
	},
	set: func(t Target, x, y float64) {
		if s, ok := capability[Scalable](t, CapScale); ok {
			s.SetScale(x, y)
		}
	},
}

// --- Move ---

// MoveTo moves the target to (x, y).
func MoveTo(x, y, duration float64) Tween {
	return vectorTo(positionChannel, x, y, duration)
}

// MoveBy moves the target by (dx, dy) from wherever it is when the action
// starts.
func MoveBy(dx, dy, duration float64) Tween {
	return vectorBy(positionChannel, dx, dy, duration)
}

// MoveToX moves only the X coordinate.
func MoveToX(x, duration float64) Tween {
	return scalarTo(positionXChannel, x, duration)
}

// MoveToY moves only the Y coordinate.
func MoveToY(y, duration float64) Tween {
	return scalarTo(positionYChannel, y, duration)
}

// MoveByX moves only the X coordinate, by dx.
func MoveByX(dx, duration float64) Tween {
	return scalarBy(positionXChannel, dx, duration)
}

// MoveByY moves only the Y coordinate, by dy.
func MoveByY(dy, duration float64) Tween {
	return scalarBy(positionYChannel, dy, duration)
}

// --- Rotate ---

// RotateTo rotates the target to an absolute angle in radians. The rotation
// may go the long way around; see RotateToShortest.
func RotateTo(radians, duration float64) Tween {
	return scalarTo(rotationChannel, radians, duration)
}

// RotateBy rotates the target by delta radians.
func RotateBy(delta, duration float64) Tween {
	return scalarBy(rotationChannel, delta, duration)
}

// RotateToShortest rotates to the angle along the shorter arc. The signed
// delta is normalized into (-π, π] when the action starts.
func RotateToShortest(radians, duration float64) Tween {
	return newTween(duration, &scalarTween{ch: rotationChannel, value: radians, mode: endShortest})
}

// --- Scale ---

// ScaleTo scales both axes to s.
func ScaleTo(s, duration float64) Tween {
	return vectorTo(scaleChannel, s, s, duration)
}

// ScaleToXY scales each axis to its own factor.
func ScaleToXY(sx, sy, duration float64) Tween {
	return vectorTo(scaleChannel, sx, sy, duration)
}

// ScaleBy adds ds to both scale factors.
func ScaleBy(ds, duration float64) Tween {
	return vectorBy(scaleChannel, ds, ds, duration)
}

// ScaleByXY adds dsx and dsy to the scale factors.
func ScaleByXY(dsx, dsy, duration float64) Tween {
	return vectorBy(scaleChannel, dsx, dsy, duration)
}

// ScaleXTo scales only the X axis.
func ScaleXTo(sx, duration float64) Tween {
	return scalarTo(scaleXChannel, sx, duration)
}

// ScaleYTo scales only the Y axis.
func ScaleYTo(sy, duration float64) Tween {
	return scalarTo(scaleYChannel, sy, duration)
}

// ScaleXBy adds dsx to the X scale only.
func ScaleXBy(dsx, duration float64) Tween {
	return scalarBy(scaleXChannel, dsx, duration)
}

// ScaleYBy adds dsy to the Y scale only.
func ScaleYBy(dsy, duration float64) Tween {
	return scalarBy(scaleYChannel, dsy, duration)
}
