// Package ecs runs sprig actions on Donburi entities.
//
// Entities carry an [ActionsData] component holding an action runner and,
// optionally, a [TransformData] component the actions animate. Call [Update]
// once per tick; when an entity's last action finishes an
// [ActionsFinishedEvent] is published to [ActionsFinished].
//
// Usage:
//
//	entry := world.Entry(world.Create(ecs.Actions, ecs.Transform))
//	ecs.RunAction(entry, sprig.MoveTo(100, 50, 0.5))
//	...
//	ecs.Update(world, dt)
//	ecs.ActionsFinished.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
