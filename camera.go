package sprig

import (
	"math"

	"github.com/tanema/gween/ease"
)

// scrollActionKey is the runner key ScrollTo uses, so a new scroll replaces
// the one in flight.
const scrollActionKey = "sprig.camera.scroll"

// Camera controls the view into the scene: position, zoom, rotation, and
// viewport. A camera is an action target: position actions pan it, rotation
// actions turn it, and scale actions change Zoom.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	followTarget  Handle
	following     bool
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	actions ActionRunner
}

// newCamera creates a Camera with default values and the given viewport.
func newCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Follow makes the camera track a target node with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(node *Node, offsetX, offsetY, lerp float64) {
	c.followTarget = node.Handle()
	c.following = true
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (c *Camera) Unfollow() {
	c.following = false
	c.followTarget = Handle{}
}

// ScrollTo animates the camera to the given world position over duration
// seconds using any gween curve. A nil curve scrolls linearly.
func (c *Camera) ScrollTo(x, y float64, duration float64, easeFn ease.TweenFunc) {
	c.actions.RunWithKey(WithEasing(MoveTo(x, y, duration), EasingFromTween(easeFn)), scrollActionKey)
}

// ScrollToTile scrolls to the center of the given tile in a tile-based layout.
func (c *Camera) ScrollToTile(tileX, tileY int, tileW, tileH float64, duration float64, easeFn ease.TweenFunc) {
	worldX := float64(tileX)*tileW + tileW/2
	worldY := float64(tileY)*tileH + tileH/2
	c.ScrollTo(worldX, worldY, duration, easeFn)
}

// IsScrolling reports whether a ScrollTo is in flight.
func (c *Camera) IsScrolling() bool {
	return c.actions.Action(scrollActionKey) != nil
}

// RunAction starts a copy of the action on the camera.
func (c *Camera) RunAction(a Action) Action {
	return c.actions.Run(a)
}

// RunActionWithKey starts a copy of the action under key.
func (c *Camera) RunActionWithKey(a Action, key string) Action {
	return c.actions.RunWithKey(a, key)
}

// RemoveAllActions stops every action on the camera.
func (c *Camera) RemoveAllActions() {
	c.actions.RemoveAll()
}

// HasActions reports whether any action is running on the camera.
func (c *Camera) HasActions() bool {
	return c.actions.HasActions()
}

// --- Capability surface ---

// Position returns the camera center.
func (c *Camera) Position() (float64, float64) { return c.X, c.Y }

// SetPosition moves the camera center.
func (c *Camera) SetPosition(x, y float64) {
	c.X, c.Y = x, y
	c.dirty = true
}

// Angle returns the camera rotation.
func (c *Camera) Angle() float64 { return c.Rotation }

// SetAngle sets the camera rotation.
func (c *Camera) SetAngle(r float64) {
	c.Rotation = r
	c.dirty = true
}

// Scale reports Zoom on both axes.
func (c *Camera) Scale() (float64, float64) { return c.Zoom, c.Zoom }

// SetScale sets Zoom from the average of the two factors; cameras zoom
// uniformly.
func (c *Camera) SetScale(sx, sy float64) {
	c.Zoom = (sx + sy) / 2
	c.dirty = true
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update runs camera actions, then follow and bounds clamping. Called from
// Scene.Step after node actions, so a followed node's new position is seen
// on the same tick.
func (c *Camera) update(dt float64) {
	prevX, prevY := c.X, c.Y
	prevZoom, prevRot := c.Zoom, c.Rotation

	c.actions.Update(c, dt)

	if c.following {
		if node, ok := c.followTarget.Resolve(); ok {
			wx, wy := node.WorldPosition()
			targetX := wx + c.followOffsetX
			targetY := wy + c.followOffsetY
			c.X += (targetX - c.X) * c.followLerp
			c.Y += (targetY - c.Y) * c.followLerp
		} else {
			c.Unfollow()
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	if c.X != prevX || c.Y != prevY || c.Zoom != prevZoom || c.Rotation != prevRot {
		c.dirty = true
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	c.viewMatrix = [6]float64{
		z * cos, z * sin,
		-z * sin, z * cos,
		cx + z*(-cos*c.X+sin*c.Y),
		cy + z*(-sin*c.X-cos*c.Y),
	}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	return transformPoint(c.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

// VisibleBounds returns the axis-aligned world rectangle the viewport shows.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx, vy := c.Viewport.X, c.Viewport.Y
	vr, vb := vx+c.Viewport.Width, vy+c.Viewport.Height

	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
