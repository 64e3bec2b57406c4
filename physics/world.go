// Package physics is a small kinematic physics stepper for sprig scenes,
// built on a resolv collision space. Bodies are attached to nodes; force and
// impulse actions change their velocity and World.Step moves them, stopping
// them at solids.
package physics

import (
	"github.com/phanxgames/sprig"

	"github.com/solarlune/resolv"
)

// DefaultSolidTag is the resolv tag given to static solids.
const DefaultSolidTag = "solid"

// WorldConfig sizes the collision space and sets world-wide forces.
type WorldConfig struct {
	// Width and Height are the extent of the collision space in world units.
	Width, Height int
	// CellWidth and CellHeight are the resolv cell size. Zero means 16.
	CellWidth, CellHeight int
	// Gravity is added to every body's vertical velocity, in units/s².
	Gravity float64
	// SolidTag overrides DefaultSolidTag.
	SolidTag string
}

// World owns a resolv space and the bodies moving through it. It implements
// sprig.Stepper; pass it to Scene.SetPhysics.
type World struct {
	cfg    WorldConfig
	space  *resolv.Space
	bodies []*Body
}

// NewWorld creates an empty world.
func NewWorld(cfg WorldConfig) *World {
	if cfg.CellWidth <= 0 {
		cfg.CellWidth = 16
	}
	if cfg.CellHeight <= 0 {
		cfg.CellHeight = 16
	}
	if cfg.SolidTag == "" {
		cfg.SolidTag = DefaultSolidTag
	}
	return &World{
		cfg:   cfg,
		space: resolv.NewSpace(cfg.Width, cfg.Height, cfg.CellWidth, cfg.CellHeight),
	}
}

// Space exposes the underlying resolv space for custom queries.
func (w *World) Space() *resolv.Space { return w.space }

// AddSolid adds a static rectangle bodies cannot pass through.
func (w *World) AddSolid(x, y, width, height float64) *resolv.Object {
	obj := resolv.NewObject(x, y, width, height, w.cfg.SolidTag)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	w.space.Add(obj)
	return obj
}

// AddBody attaches a width x height body to node, with its top-left corner
// at the node's position. The node's Body field is set so physics actions
// reach it. Bodies follow the node's local position, so nodes with bodies
// belong directly under an untransformed parent.
func (w *World) AddBody(node *sprig.Node, width, height, mass float64) *Body {
	obj := resolv.NewObject(node.X, node.Y, width, height)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	w.space.Add(obj)
	b := &Body{obj: obj, node: node.Handle(), mass: mass}
	w.bodies = append(w.bodies, b)
	node.Body = b
	return b
}

// RemoveBody takes b out of the world and detaches it from its node.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.space.Remove(b.obj)
	if n, ok := b.node.Resolve(); ok && n.Body == sprig.PhysicsBody(b) {
		n.Body = nil
	}
}

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.bodies) }

// Step moves every body by its velocity over dt, resolving collisions with
// solids one axis at a time. Bodies whose node was disposed are dropped.
func (w *World) Step(dt float64) {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		n, ok := b.node.Resolve()
		if !ok {
			w.space.Remove(b.obj)
			continue
		}
		kept = append(kept, b)
		w.stepBody(b, n, dt)
	}
	for i := len(kept); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = kept
}

func (w *World) stepBody(b *Body, n *sprig.Node, dt float64) {
	// Actions may have moved the node since the last step.
	b.obj.X, b.obj.Y = n.X, n.Y

	b.vy += w.cfg.Gravity * dt
	tag := w.cfg.SolidTag

	dx := b.vx * dt
	if dx != 0 {
		if check := b.obj.Check(dx, 0, tag); check != nil {
			if solids := check.ObjectsByTags(tag); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
				b.vx = 0
			}
		}
		b.obj.X += dx
	}

	dy := b.vy * dt
	// Check one unit further down so a resting body keeps its ground contact.
	reach := dy
	if dy >= 0 {
		reach++
	}
	b.OnGround = false
	if check := b.obj.Check(0, reach, tag); check != nil {
		if solids := check.ObjectsByTags(tag); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			b.OnGround = b.vy >= 0
			b.vy = 0
		}
	}
	b.obj.Y += dy
	b.obj.Update()

	n.SetPosition(b.obj.X, b.obj.Y)
	if b.spin != 0 {
		n.SetAngle(n.Angle() + b.spin*dt)
	}
}
