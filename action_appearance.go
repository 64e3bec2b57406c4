package sprig

var opacityChannel = scalarChannel{
	cap: CapFade,
	get: func(t Target) (float64, bool) {
		f, ok := capability[Fadeable](t, CapFade)
		if !ok {
			return 0, false
		}
		return f.Opacity(), true
	},
	set: func(t Target, v float64) {
		if f, ok := capability[Fadeable](t, CapFade); ok {
			f.SetOpacity(v)
		}
	},
}

var sizeChannel = vectorChannel{
	cap: CapResize,
	get: func(t Target) (float64, float64, bool) {
		r, ok := capability[Resizable](t, CapResize)
		if !ok {
			return 0, 0, false
		}
		w, h := r.Size()
		return w, h, true
	},
	set: func(t Target, w, h float64) {
		if r, ok := capability[Resizable](t, CapResize); ok {
			r.SetSize(w, h)
		}
	},
}

var fieldStrengthChannel = scalarChannel{
	cap: CapField,
	get: func(t Target) (float64, bool) {
		f, ok := capability[FieldBacked](t, CapField)
		if !ok {
			return 0, false
		}
		return f.FieldStrength(), true
	},
	set: func(t Target, v float64) {
		if f, ok := capability[FieldBacked](t, CapField); ok {
			f.SetFieldStrength(v)
		}
	},
}

var fieldFalloffChannel = scalarChannel{
	cap: CapField,
	get: func(t Target) (float64, bool) {
		f, ok := capability[FieldBacked](t, CapField)
		if !ok {
			return 0, false
		}
		return f.FieldFalloff(), true
	},
	set: func(t Target, v float64) {
		if f, ok := capability[FieldBacked](t, CapField); ok {
			f.SetFieldFalloff(v)
		}
	},
}

var actionSpeedChannel = scalarChannel{
	cap: CapSpeed,
	get: func(t Target) (float64, bool) {
		s, ok := capability[SpeedAdjustable](t, CapSpeed)
		if !ok {
			return 0, false
		}
		return s.ActionSpeed(), true
	},
	set: func(t Target, v float64) {
		if s, ok := capability[SpeedAdjustable](t, CapSpeed); ok {
			s.SetActionSpeed(v)
		}
	},
}

// --- Fade ---

// FadeTo fades the target's opacity to alpha.
func FadeTo(alpha, duration float64) Tween {
	return scalarTo(opacityChannel, alpha, duration)
}

// FadeBy changes the target's opacity by delta.
func FadeBy(delta, duration float64) Tween {
	return scalarBy(opacityChannel, delta, duration)
}

// FadeIn fades to fully opaque.
func FadeIn(duration float64) Tween { return FadeTo(1, duration) }

// FadeOut fades to fully transparent.
func FadeOut(duration float64) Tween { return FadeTo(0, duration) }

// --- Resize ---

// ResizeTo resizes the target to w x h. Unlike ScaleTo this changes the
// display size, not the transform, so children are unaffected.
func ResizeTo(w, h, duration float64) Tween {
	return vectorTo(sizeChannel, w, h, duration)
}

// ResizeBy grows the target by dw x dh.
func ResizeBy(dw, dh, duration float64) Tween {
	return vectorBy(sizeChannel, dw, dh, duration)
}

// ResizeToWidth resizes only the width.
func ResizeToWidth(w, duration float64) Tween {
	return scalarTo(widthChannel, w, duration)
}

// ResizeToHeight resizes only the height.
func ResizeToHeight(h, duration float64) Tween {
	return scalarTo(heightChannel, h, duration)
}

// --- Color ---

// colorTween blends the tint color and its blend factor. A nil color keeps
// whatever color the target has each frame and animates only the blend.
type colorTween struct {
	color *Color
	blend float64

	startColor Color
	startBlend float64
	captured   bool
}

func (e *colorTween) apply(target Target, p float64) {
	c, ok := capability[Colorable](target, CapColor)
	if !ok {
		return
	}
	cur, blend := c.Tint()
	if !e.captured {
		e.startColor, e.startBlend = cur, blend
		e.captured = true
	}
	col := cur
	if e.color != nil {
		col = lerpColor(e.startColor, *e.color, p)
	}
	c.SetTint(col, lerp(e.startBlend, e.blend, p))
}

func (e *colorTween) reset() { e.captured = false }

func (e *colorTween) clone() effect {
	c := *e
	c.captured = false
	return &c
}

func (e *colorTween) requires() Capability { return CapColor }

// ColorizeTo tints the target toward color, ending at the given blend factor
// (0 shows the texture untouched, 1 shows the tint fully).
func ColorizeTo(color Color, blend, duration float64) Tween {
	return newTween(duration, &colorTween{color: &color, blend: blend})
}

// ColorizeBlendTo animates only the blend factor, keeping the current color.
func ColorizeBlendTo(blend, duration float64) Tween {
	return newTween(duration, &colorTween{blend: blend})
}

// --- Field ---

// FieldStrengthTo animates a force field's strength.
func FieldStrengthTo(v, duration float64) Tween {
	return scalarTo(fieldStrengthChannel, v, duration)
}

// FieldStrengthBy changes a force field's strength by delta.
func FieldStrengthBy(delta, duration float64) Tween {
	return scalarBy(fieldStrengthChannel, delta, duration)
}

// FieldFalloffTo animates a force field's falloff exponent.
func FieldFalloffTo(v, duration float64) Tween {
	return scalarTo(fieldFalloffChannel, v, duration)
}

// FieldFalloffBy changes a force field's falloff exponent by delta.
func FieldFalloffBy(delta, duration float64) Tween {
	return scalarBy(fieldFalloffChannel, delta, duration)
}

// --- Action speed ---

// ActionSpeedTo animates the time scale of every action on the target,
// including this one.
func ActionSpeedTo(s, duration float64) Tween {
	return scalarTo(actionSpeedChannel, s, duration)
}

// ActionSpeedBy changes the target's action time scale by delta.
func ActionSpeedBy(delta, duration float64) Tween {
	return scalarBy(actionSpeedChannel, delta, duration)
}
