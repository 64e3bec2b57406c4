package sprig

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, cameras, atlas
// pages, and the optional physics stepper. It drives every action runner once
// per tick.
type Scene struct {
	root  *Node
	debug bool

	// Cameras
	cameras []*Camera

	// Atlas pages, indexed by TextureRegion.Page.
	pages    []*ebiten.Image
	nextPage int

	physics    Stepper
	updateFunc func(dt float64)

	// Reused between ticks.
	active     []*Node
	lastActive int
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update advances the scene by one ebiten tick.
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances the scene by dt seconds:
//
//  1. the update hook, if set
//  2. node actions, parents before children
//  3. camera actions, follow and bounds
//  4. the physics stepper, with FixedPhysicsStep
//  5. world transforms
func (s *Scene) Step(dt float64) {
	var start time.Time
	if s.debug {
		start = time.Now()
	}

	if s.updateFunc != nil {
		s.updateFunc(dt)
	}

	// Snapshot first: actions may reparent or remove nodes mid-tick.
	visited := 0
	s.active = s.active[:0]
	s.active, visited = collectActive(s.root, s.active, visited)

	var stats debugStats
	stats.nodesVisited = visited
	for _, n := range s.active {
		if n.disposed {
			continue
		}
		stats.nodesActive++
		stats.actionsRun += n.actions.Len()
		n.actions.Update(n, dt)
	}
	clear(s.active)
	s.lastActive = stats.nodesActive

	for _, cam := range s.cameras {
		stats.actionsRun += cam.actions.Len()
		cam.update(dt)
	}

	if s.physics != nil {
		s.physics.Step(FixedPhysicsStep)
	}

	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if s.debug {
		stats.stepTime = time.Since(start)
		s.debugLog(stats)
	}
}

// ActiveNodes returns how many nodes ran actions during the last Step.
func (s *Scene) ActiveNodes() int {
	return s.lastActive
}

// collectActive appends, in pre-order, every node in the subtree that has
// running actions.
func collectActive(n *Node, out []*Node, visited int) ([]*Node, int) {
	visited++
	if n.actions.HasActions() {
		out = append(out, n)
	}
	for _, child := range n.children {
		out, visited = collectActive(child, out, visited)
	}
	return out, visited
}

// SetPhysics sets the stepper advanced after actions every tick. Pass nil to
// remove it.
func (s *Scene) SetPhysics(p Stepper) {
	s.physics = p
}

// SetUpdateFunc sets a callback run at the start of every Step.
func (s *Scene) SetUpdateFunc(fn func(dt float64)) {
	s.updateFunc = fn
}

// NewCamera creates a camera with the given viewport and adds it to the scene.
func (s *Scene) NewCamera(viewport Rect) *Camera {
	cam := newCamera(viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// RemoveCamera removes a camera from the scene.
func (s *Scene) RemoveCamera(cam *Camera) {
	for i, c := range s.cameras {
		if c == cam {
			s.cameras = append(s.cameras[:i], s.cameras[i+1:]...)
			return
		}
	}
}

// Cameras returns the scene's camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, suspicious durations and missing capabilities are reported,
// and per-tick stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// RegisterPage stores an atlas page image at the given index.
func (s *Scene) RegisterPage(index int, img *ebiten.Image) {
	for len(s.pages) <= index {
		s.pages = append(s.pages, nil)
	}
	s.pages[index] = img
}

// Page returns the atlas page registered at index, or nil.
func (s *Scene) Page(index uint16) *ebiten.Image {
	if int(index) >= len(s.pages) {
		return nil
	}
	return s.pages[index]
}

// LoadAtlas parses TexturePacker JSON, registers the pages with the scene,
// and returns the Atlas for region lookups. Pages are registered starting at
// the next available page index.
func (s *Scene) LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	atlas, err := LoadAtlas(jsonData, uint16(s.nextPage))
	if err != nil {
		return nil, err
	}
	for i, page := range pages {
		s.RegisterPage(s.nextPage+i, page)
	}
	s.nextPage += len(pages)
	return atlas, nil
}
