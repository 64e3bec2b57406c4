// Package sprig is a composable action engine for 2D scene nodes on
// [Ebitengine].
//
// An [Action] mutates a target over time, for example moving it or swapping
// its texture. Actions are small reusable templates built by factory
// functions and combined with [Sequence], [Group], [Repeat], [RepeatForever],
// [Speed] and [Reversed]. Running an action always copies the template, so
// one template can drive any number of targets.
//
// # Quick start
//
//	scene := sprig.NewScene()
//	hero := sprig.NewSprite("hero", atlas.Region("hero_idle"))
//	scene.Root().AddChild(hero)
//
//	hero.RunAction(sprig.Sequence(
//		sprig.WithTiming(sprig.MoveTo(200, 100, 0.5), sprig.EaseOut),
//		sprig.Wait(0.25),
//		sprig.Group(sprig.FadeOut(0.3), sprig.ScaleTo(2, 0.3)),
//		sprig.RemoveFromParent(),
//	))
//
//	sprig.RunGame(scene, sprig.RunConfig{Title: "demo", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [Scene.Update]
// (one tick at 1/TPS) or [Scene.Step] (any dt) from it.
//
// # Targets and capabilities
//
// Actions never depend on a concrete type. A target is any value; actions
// query it for small capability interfaces such as [Positionable] or
// [Texturable]. When a target lacks what an action needs, that effect is
// skipped for the tick while time still advances, so the action completes
// on schedule. [Node], [Camera] and ecs.TransformData are targets out of the
// box. Debug mode ([Scene.SetDebugMode]) reports the missing capabilities
// when an action is attached.
//
// # Timing
//
// Every action has a duration, a [TimingMode] or custom [EasingFunc], and a
// speed. Start values are captured on the first tick an action touches its
// target, which is why "by" actions compose: Repeat(MoveBy(10, 0, 1), 3)
// moves 30 units. Time left over when a child finishes flows into the next
// child on the same tick.
//
// # Subpackages
//
// sprig/ecs runs actions on [Donburi] entities, sprig/physics is a
// [resolv]-backed body stepper for the physics actions, and sprig/tiledpath
// loads [Tiled] polylines as paths for [FollowPath].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [resolv]: https://github.com/solarlune/resolv
// [Tiled]: https://www.mapeditor.org
package sprig
