package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionsData owns the actions running on one entity.
type ActionsData struct {
	Runner sprig.ActionRunner
}

// Actions is the component type for ActionsData.
var Actions = donburi.NewComponentType[ActionsData]()

// TransformData is a 2D transform actions can animate. It supports the
// position, rotation, scale, fade and hide capabilities.
type TransformData struct {
	X, Y           float64
	Rotation       float64
	ScaleX, ScaleY float64
	Alpha          float64
	Invisible      bool
}

// NewTransform returns an identity transform at (x, y).
func NewTransform(x, y float64) *TransformData {
	return &TransformData{X: x, Y: y, ScaleX: 1, ScaleY: 1, Alpha: 1}
}

// Position returns the entity's position.
func (t *TransformData) Position() (float64, float64) { return t.X, t.Y }

// SetPosition moves the entity to (x, y).
func (t *TransformData) SetPosition(x, y float64) { t.X, t.Y = x, y }

// Angle returns the rotation in radians.
func (t *TransformData) Angle() float64 { return t.Rotation }

// SetAngle sets the rotation in radians.
func (t *TransformData) SetAngle(r float64) { t.Rotation = r }

// Scale returns the scale factors.
func (t *TransformData) Scale() (float64, float64) { return t.ScaleX, t.ScaleY }

// SetScale sets the scale factors.
func (t *TransformData) SetScale(sx, sy float64) { t.ScaleX, t.ScaleY = sx, sy }

// Opacity returns the alpha in [0, 1].
func (t *TransformData) Opacity() float64 { return t.Alpha }

// SetOpacity sets the alpha.
func (t *TransformData) SetOpacity(a float64) { t.Alpha = a }

// Hidden reports whether the entity is hidden.
func (t *TransformData) Hidden() bool { return t.Invisible }

// SetHidden hides or shows the entity.
func (t *TransformData) SetHidden(h bool) { t.Invisible = h }

// Transform is the component type for TransformData. Entities created
// without a value start with the zero transform; set one with
// Transform.Set(entry, NewTransform(x, y)).
var Transform = donburi.NewComponentType[TransformData]()

// ActionsFinishedEvent reports an entity whose last action completed.
type ActionsFinishedEvent struct {
	Entity donburi.Entity
}

// ActionsFinished is published by Update. Subscribe to it and drain it with
// ProcessEvents like any other Donburi event.
var ActionsFinished = events.NewEventType[ActionsFinishedEvent]()

// RunAction starts a copy of a on the entity and returns the running copy.
// The entity must have the Actions component.
func RunAction(entry *donburi.Entry, a sprig.Action) sprig.Action {
	return Actions.Get(entry).Runner.Run(a)
}

// RunActionWithKey starts a copy of a under key, replacing any action
// already running under that key.
func RunActionWithKey(entry *donburi.Entry, a sprig.Action, key string) sprig.Action {
	return Actions.Get(entry).Runner.RunWithKey(a, key)
}

// noTarget stands in for entities without a transform. Every action on it
// still advances and completes; effects that need a capability are skipped.
type noTarget struct{}

// Update advances every entity's actions by dt. Entities without a
// Transform component run their actions against an empty target.
func Update(world donburi.World, dt float64) {
	Actions.Each(world, func(entry *donburi.Entry) {
		data := Actions.Get(entry)
		if !data.Runner.HasActions() {
			return
		}
		var target sprig.Target = noTarget{}
		if entry.HasComponent(Transform) {
			target = Transform.Get(entry)
		}
		if !data.Runner.Update(target, dt) {
			ActionsFinished.Publish(world, ActionsFinishedEvent{Entity: entry.Entity()})
		}
	})
}
