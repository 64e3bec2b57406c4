package physics

import (
	"github.com/phanxgames/sprig"

	"github.com/solarlune/resolv"
)

// Body is a kinematic box in a World. It implements sprig.PhysicsBody.
type Body struct {
	obj  *resolv.Object
	node sprig.Handle

	vx, vy float64
	spin   float64
	mass   float64

	// OnGround is true after a step that ended resting on a solid.
	OnGround bool
}

func (b *Body) Velocity() (float64, float64) { return b.vx, b.vy }
func (b *Body) SetVelocity(vx, vy float64)   { b.vx, b.vy = vx, vy }
func (b *Body) AngularVelocity() float64     { return b.spin }
func (b *Body) SetAngularVelocity(w float64) { b.spin = w }
func (b *Body) Mass() float64                { return b.mass }

// Object returns the body's resolv object.
func (b *Body) Object() *resolv.Object { return b.obj }
