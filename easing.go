package sprig

import "github.com/tanema/gween/ease"

// TimingMode selects one of the built-in easing curves applied to an action's
// normalized time before it reaches Apply.
type TimingMode uint8

const (
	Linear    TimingMode = iota // progress equals time
	EaseIn                      // slow start
	EaseOut                     // slow finish
	EaseInOut                   // slow start and finish
)

func (m TimingMode) String() string {
	switch m {
	case Linear:
		return "linear"
	case EaseIn:
		return "easeIn"
	case EaseOut:
		return "easeOut"
	case EaseInOut:
		return "easeInOut"
	default:
		return "unknown"
	}
}

// EasingFunc maps normalized time t in [0, 1] to progress. Implementations
// should return 0 at 0 and 1 at 1; the result is clamped before use either way.
type EasingFunc func(t float64) float64

// timingCurves is the process-wide, read-only curve table. Linear is nil and
// handled without a float32 round trip.
var timingCurves = [...]ease.TweenFunc{
	Linear:    nil,
	EaseIn:    ease.InQuad,
	EaseOut:   ease.OutQuad,
	EaseInOut: ease.InOutQuad,
}

// Apply evaluates the curve at t.
func (m TimingMode) Apply(t float64) float64 {
	if int(m) >= len(timingCurves) || timingCurves[m] == nil {
		return t
	}
	return evalTween(timingCurves[m], t)
}

// EasingFromTween adapts any gween curve (ease.OutBounce, ease.InOutBack, ...)
// to an EasingFunc.
func EasingFromTween(fn ease.TweenFunc) EasingFunc {
	if fn == nil {
		return nil
	}
	return func(t float64) float64 {
		return evalTween(fn, t)
	}
}

// evalTween runs a gween curve over the unit interval. The endpoints are
// pinned so float32 rounding never leaves a finished action short of its
// target.
func evalTween(fn ease.TweenFunc, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// mirrorEasing returns the curve that, fed 1-p back through the original,
// replays the original in reverse time: r -> 1 - f(1 - r).
func mirrorEasing(mode TimingMode, fn EasingFunc) EasingFunc {
	if fn == nil {
		if mode == Linear {
			return nil
		}
		fn = mode.Apply
	}
	return func(t float64) float64 {
		return 1 - fn(1-t)
	}
}
