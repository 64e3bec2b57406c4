package sprig

import "github.com/hajimehoshi/ebiten/v2"

// nodeIDCounter is a plain counter; sprig is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// ReachConstraint limits the rotation an inverse-kinematics reach may give a
// joint, in radians.
type ReachConstraint struct {
	Min, Max float64
}

func (c ReachConstraint) clamp(r float64) float64 {
	if r < c.Min {
		return c.Min
	}
	if r > c.Max {
		return c.Max
	}
	return r
}

// Node is the scene graph element actions run against. A single flat struct
// is used for all node types; Type decides which optional capabilities the
// node reports through Supports.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Size in local units, independent of scale (sprites and meshes).
	Width, Height float64

	// Computed during Scene.Step
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Alpha   float64
	Visible bool

	// Metadata
	UserData any

	// Sprite fields (NodeTypeSprite)
	TextureRegion TextureRegion
	NormalRegion  TextureRegion
	Color         Color
	ColorBlend    float64

	// Mesh fields (NodeTypeMesh)
	Vertices  []ebiten.Vertex
	Indices   []uint16
	MeshImage *ebiten.Image
	warp      *WarpGrid

	// Physics collaborators (nil when absent)
	Body  PhysicsBody
	Field *Field

	// Reach limits this node's rotation when it is moved by an IK reach.
	Reach *ReachConstraint

	// Speed scales the time of every action on this node.
	Speed float64

	actions  ActionRunner
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Speed = 1
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that displays a texture region. Its size
// starts at the region's untrimmed size.
func NewSprite(name string, region TextureRegion) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, TextureRegion: region}
	nodeDefaults(n)
	n.Width = float64(region.OriginalW)
	n.Height = float64(region.OriginalH)
	return n
}

// NewFieldNode creates a node carrying force field parameters.
func NewFieldNode(name string, field Field) *Node {
	n := &Node{Name: name, Type: NodeTypeField, Field: &field}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("sprig: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("sprig: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent = nil
	}
	if index < 0 || index > len(n.children) {
		panic("sprig: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
	}
	if child.Parent != n {
		panic("sprig: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// ChildByName returns the first direct child with the given name, or nil.
func (n *Node) ChildByName(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// --- Disposal ---

// Dispose removes this node from its parent, stops its actions, marks it as
// disposed, and recursively disposes all descendants. Handles to disposed
// nodes stop resolving.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	n.actions.RemoveAll()
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Body = nil
	n.Field = nil
	n.Reach = nil
	n.MeshImage = nil
	n.Vertices = nil
	n.warp = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Handles ---

// Handle is a weak reference to a node. It stops resolving once the node is
// disposed, so actions holding one degrade to no-ops instead of touching a
// dead node.
type Handle struct {
	node *Node
	id   uint32
}

// Handle returns a weak reference to n.
func (n *Node) Handle() Handle {
	return Handle{node: n, id: n.ID}
}

// Resolve returns the referenced node while it is alive.
func (h Handle) Resolve() (*Node, bool) {
	if h.node == nil || h.node.disposed || h.node.ID != h.id {
		return nil, false
	}
	return h.node, true
}

// --- Actions ---

// Actions returns the node's action runner.
func (n *Node) Actions() *ActionRunner {
	return &n.actions
}

// RunAction starts a copy of the action template on this node and returns
// the running copy.
func (n *Node) RunAction(a Action) Action {
	if globalDebug {
		debugCheckCapabilities(n, a)
	}
	return n.actions.Run(a)
}

// RunActionWithKey starts a copy of the action under key, replacing any
// action already running under that key.
func (n *Node) RunActionWithKey(a Action, key string) Action {
	if globalDebug {
		debugCheckCapabilities(n, a)
	}
	return n.actions.RunWithKey(a, key)
}

// RunActionThen starts a copy of the action and calls done when it completes.
func (n *Node) RunActionThen(a Action, done func()) Action {
	if globalDebug {
		debugCheckCapabilities(n, a)
	}
	return n.actions.RunThen(a, done)
}

// ActionForKey returns the running action under key, or nil.
func (n *Node) ActionForKey(key string) Action {
	return n.actions.Action(key)
}

// RemoveAction stops the action running under key.
func (n *Node) RemoveAction(key string) {
	n.actions.Remove(key)
}

// RemoveAllActions stops every action on this node.
func (n *Node) RemoveAllActions() {
	n.actions.RemoveAll()
}

// HasActions reports whether any action is running on this node.
func (n *Node) HasActions() bool {
	return n.actions.HasActions()
}

// --- Capabilities ---

const nodeBaseCaps = CapPosition | CapRotation | CapScale | CapFade | CapHide |
	CapRemove | CapPathOrient | CapSpeed | CapIK

// Capabilities reports which capability interfaces this node honors.
func (n *Node) Capabilities() Capability {
	if n.disposed {
		return 0
	}
	c := nodeBaseCaps
	switch n.Type {
	case NodeTypeSprite:
		c |= CapResize | CapTexture | CapColor
	case NodeTypeMesh:
		c |= CapResize | CapColor
		if n.warp != nil {
			c |= CapWarp
		}
	}
	if n.Body != nil {
		c |= CapPhysics
	}
	if n.Field != nil {
		c |= CapField
	}
	return c
}

// Supports implements CapabilityReporter.
func (n *Node) Supports(c Capability) bool {
	return n.Capabilities().Has(c)
}

// Size returns the node's display size.
func (n *Node) Size() (float64, float64) {
	return n.Width, n.Height
}

// SetSize sets the node's display size. Warp meshes are re-laid out.
func (n *Node) SetSize(w, h float64) {
	n.Width, n.Height = w, h
	n.syncWarpVertices()
}

// Texture returns the displayed texture region.
func (n *Node) Texture() TextureRegion { return n.TextureRegion }

// SetTexture replaces the displayed texture region.
func (n *Node) SetTexture(r TextureRegion) { n.TextureRegion = r }

// NormalTexture returns the normal-map region used for lighting.
func (n *Node) NormalTexture() TextureRegion { return n.NormalRegion }

// SetNormalTexture replaces the normal-map region.
func (n *Node) SetNormalTexture(r TextureRegion) { n.NormalRegion = r }

// Tint returns the node's color and blend factor.
func (n *Node) Tint() (Color, float64) { return n.Color, n.ColorBlend }

// SetTint sets the node's color and blend factor.
func (n *Node) SetTint(c Color, blend float64) {
	n.Color = c
	n.ColorBlend = blend
}

// Hidden reports whether the node is hidden.
func (n *Node) Hidden() bool { return !n.Visible }

// SetHidden shows or hides the node and its subtree.
func (n *Node) SetHidden(hidden bool) { n.Visible = !hidden }

// PhysicsBody returns the node's body, or nil.
func (n *Node) PhysicsBody() PhysicsBody { return n.Body }

// FieldStrength returns the field's strength, or 0 without a field.
func (n *Node) FieldStrength() float64 {
	if n.Field == nil {
		return 0
	}
	return n.Field.Strength
}

// SetFieldStrength sets the field's strength. No-op without a field.
func (n *Node) SetFieldStrength(v float64) {
	if n.Field != nil {
		n.Field.Strength = v
	}
}

// FieldFalloff returns the field's falloff exponent, or 0 without a field.
func (n *Node) FieldFalloff() float64 {
	if n.Field == nil {
		return 0
	}
	return n.Field.Falloff
}

// SetFieldFalloff sets the field's falloff exponent. No-op without a field.
func (n *Node) SetFieldFalloff(v float64) {
	if n.Field != nil {
		n.Field.Falloff = v
	}
}

// Warp returns the mesh's warp grid, or nil. The grid is owned by the node;
// use SetWarp to change it.
func (n *Node) Warp() *WarpGrid { return n.warp }

// SetWarp copies g's positions into the node's grid and updates the mesh
// vertices. Grids of a different shape are ignored.
func (n *Node) SetWarp(g *WarpGrid) {
	if !n.warp.compatible(g) {
		return
	}
	copy(n.warp.Positions, g.Positions)
	n.syncWarpVertices()
}

// ActionSpeed returns the node's action time scale.
func (n *Node) ActionSpeed() float64 { return n.Speed }

// SetActionSpeed sets the node's action time scale.
func (n *Node) SetActionSpeed(s float64) { n.Speed = s }

// JointParent returns the parent as an IK joint, or nil at the root.
func (n *Node) JointParent() IKJointed {
	if n.Parent == nil {
		return nil
	}
	return n.Parent
}

// JointConstraint returns the node's reach limits, if any.
func (n *Node) JointConstraint() (ReachConstraint, bool) {
	if n.Reach == nil {
		return ReachConstraint{}, false
	}
	return *n.Reach, true
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
