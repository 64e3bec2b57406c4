package sprig

import "sort"

// textureSlot selects which of a target's textures an action writes.
type textureSlot uint8

const (
	slotDiffuse textureSlot = iota
	slotNormal
)

func (s textureSlot) get(t Texturable) TextureRegion {
	if s == slotNormal {
		return t.NormalTexture()
	}
	return t.Texture()
}

func (s textureSlot) set(t Texturable, r TextureRegion) {
	if s == slotNormal {
		t.SetNormalTexture(r)
		return
	}
	t.SetTexture(r)
}

// resizeToRegion sets the target's size to the region's untrimmed size.
func resizeToRegion(target Target, r TextureRegion) {
	if rs, ok := capability[Resizable](target, CapResize); ok {
		rs.SetSize(float64(r.OriginalW), float64(r.OriginalH))
	}
}

// --- Instant swap ---

type setTexture struct {
	region TextureRegion
	slot   textureSlot
	resize bool
}

func (s *setTexture) step(target Target, _ float64) {
	t, ok := capability[Texturable](target, CapTexture)
	if !ok {
		return
	}
	s.slot.set(t, s.region)
	if s.resize && s.slot == slotDiffuse {
		resizeToRegion(target, s.region)
	}
}

func (s *setTexture) clone() stepper {
	c := *s
	return &c
}

func (s *setTexture) requires() Capability {
	if s.resize {
		return CapTexture | CapResize
	}
	return CapTexture
}

// SetTexture swaps the displayed texture once. With resize set the target
// also takes the region's untrimmed size.
func SetTexture(region TextureRegion, resize bool) Action {
	return newStepAction(0, &setTexture{region: region, resize: resize})
}

// SetNormalTexture swaps the normal map once.
func SetNormalTexture(region TextureRegion) Action {
	return newStepAction(0, &setTexture{region: region, slot: slotNormal})
}

// --- Frame animation ---

// AnimateOptions tunes texture animations.
type AnimateOptions struct {
	// Resize sets the target's size to each frame's untrimmed size.
	Resize bool
	// Restore puts back the texture (and size, with Resize) the target had
	// before the animation once it completes.
	Restore bool
}

// frameAnimation shows one of several textures depending on progress. ends
// holds each frame's end time as a fraction of the whole animation.
type frameAnimation struct {
	frames []TextureRegion
	ends   []float64
	slot   textureSlot
	opts   AnimateOptions

	last      int
	original  TextureRegion
	originalW float64
	originalH float64
	hadSize   bool
	captured  bool
}

func newFrameAnimation(frames []TextureRegion, times []float64, slot textureSlot, opts AnimateOptions) (*frameAnimation, float64) {
	total := 0.0
	for _, t := range times {
		total += max(t, 0)
	}
	ends := make([]float64, len(times))
	acc := 0.0
	for i, t := range times {
		acc += max(t, 0)
		if total > 0 {
			ends[i] = acc / total
		} else {
			ends[i] = float64(i+1) / float64(len(times))
		}
	}
	fa := &frameAnimation{
		frames: append([]TextureRegion(nil), frames...),
		ends:   ends,
		slot:   slot,
		opts:   opts,
		last:   -1,
	}
	return fa, total
}

// index maps progress to a frame. Progress 1 lands on the last frame.
func (e *frameAnimation) index(p float64) int {
	i := sort.Search(len(e.ends), func(i int) bool { return e.ends[i] > p })
	return min(i, len(e.frames)-1)
}

func (e *frameAnimation) apply(target Target, p float64) {
	if len(e.frames) == 0 {
		return
	}
	t, ok := capability[Texturable](target, CapTexture)
	if !ok {
		return
	}
	if !e.captured {
		e.original = e.slot.get(t)
		if rs, ok := capability[Resizable](target, CapResize); ok {
			e.originalW, e.originalH = rs.Size()
			e.hadSize = true
		}
		e.captured = true
	}
	i := e.index(p)
	if i == e.last {
		return
	}
	e.last = i
	e.slot.set(t, e.frames[i])
	if e.opts.Resize && e.slot == slotDiffuse {
		resizeToRegion(target, e.frames[i])
	}
}

// finish restores the original texture when asked to.
func (e *frameAnimation) finish(target Target) {
	if !e.opts.Restore || !e.captured {
		return
	}
	t, ok := capability[Texturable](target, CapTexture)
	if !ok {
		return
	}
	e.slot.set(t, e.original)
	e.last = -1
	if e.opts.Resize && e.hadSize {
		if rs, ok := capability[Resizable](target, CapResize); ok {
			rs.SetSize(e.originalW, e.originalH)
		}
	}
}

func (e *frameAnimation) reset() {
	e.captured = false
	e.last = -1
}

func (e *frameAnimation) clone() effect {
	c := *e
	c.captured = false
	c.last = -1
	return &c
}

func (e *frameAnimation) requires() Capability {
	if e.opts.Resize {
		return CapTexture | CapResize
	}
	return CapTexture
}

func uniformTimes(n int, timePerFrame float64) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = timePerFrame
	}
	return times
}

// AnimateTextures plays frames at a fixed rate. Its duration is
// len(frames) × timePerFrame.
func AnimateTextures(frames []TextureRegion, timePerFrame float64, opts AnimateOptions) Tween {
	fa, total := newFrameAnimation(frames, uniformTimes(len(frames), timePerFrame), slotDiffuse, opts)
	return newTween(total, fa)
}

// AnimateTexturesTimed plays frames with individual display times. times is
// matched to frames by index; missing entries count as zero.
func AnimateTexturesTimed(frames []TextureRegion, times []float64, opts AnimateOptions) Tween {
	padded := make([]float64, len(frames))
	copy(padded, times)
	fa, total := newFrameAnimation(frames, padded, slotDiffuse, opts)
	return newTween(total, fa)
}

// AnimateNormalTextures plays normal maps at a fixed rate, usually alongside
// a matching AnimateTextures in a Group.
func AnimateNormalTextures(frames []TextureRegion, timePerFrame float64, restore bool) Tween {
	fa, total := newFrameAnimation(frames, uniformTimes(len(frames), timePerFrame), slotNormal, AnimateOptions{Restore: restore})
	return newTween(total, fa)
}
