package sprig

import "testing"

// --- WarpGrid ---

func TestNewWarpGridLayout(t *testing.T) {
	g := NewWarpGrid(2, 1)
	if len(g.Positions) != 6 {
		t.Fatalf("len = %d, want 6", len(g.Positions))
	}
	want := []Vec2{{0, 0}, {0.5, 0}, {1, 0}, {0, 1}, {0.5, 1}, {1, 1}}
	for i, p := range want {
		if g.Positions[i] != p {
			t.Errorf("Positions[%d] = %v, want %v", i, g.Positions[i], p)
		}
	}
}

func TestNewWarpGridClampsCells(t *testing.T) {
	g := NewWarpGrid(0, -3)
	if g.Cols != 1 || g.Rows != 1 || len(g.Positions) != 4 {
		t.Errorf("grid = %dx%d with %d positions, want 1x1 with 4", g.Cols, g.Rows, len(g.Positions))
	}
}

func TestWarpGridSetAt(t *testing.T) {
	g := NewWarpGrid(2, 2)
	g.Set(1, 2, Vec2{X: 0.7, Y: 1.2})
	if got := g.At(1, 2); got != (Vec2{X: 0.7, Y: 1.2}) {
		t.Errorf("At(1,2) = %v", got)
	}
	if g.Positions[7] != (Vec2{X: 0.7, Y: 1.2}) {
		t.Error("Set wrote the wrong row-major slot")
	}
}

func TestWarpGridClone(t *testing.T) {
	g := NewWarpGrid(1, 1)
	c := g.Clone()
	c.Set(0, 0, Vec2{X: -1, Y: -1})
	if g.At(0, 0) != (Vec2{}) {
		t.Error("Clone shares positions with the source")
	}
	var nilGrid *WarpGrid
	if nilGrid.Clone() != nil {
		t.Error("nil Clone should be nil")
	}
}

func TestWarpGridCompatible(t *testing.T) {
	a := NewWarpGrid(2, 2)
	if !a.compatible(NewWarpGrid(2, 2)) {
		t.Error("same shape should be compatible")
	}
	if a.compatible(NewWarpGrid(2, 3)) {
		t.Error("different shape reported compatible")
	}
	if a.compatible(nil) {
		t.Error("nil reported compatible")
	}
	broken := NewWarpGrid(2, 2)
	broken.Positions = broken.Positions[:4]
	if a.compatible(broken) {
		t.Error("short positions reported compatible")
	}
}

// --- Warp mesh nodes ---

func TestNewWarpMeshGeometry(t *testing.T) {
	n := NewWarpMesh("m", nil, 100, 50, 2, 1)
	if n.Type != NodeTypeMesh {
		t.Fatalf("Type = %v, want mesh", n.Type)
	}
	if len(n.Vertices) != 6 {
		t.Fatalf("vertices = %d, want 6", len(n.Vertices))
	}
	if len(n.Indices) != 12 {
		t.Fatalf("indices = %d, want 12", len(n.Indices))
	}
	// First cell: tl=0 bl=3 tr=1 | tr=1 bl=3 br=4.
	first := []uint16{0, 3, 1, 1, 3, 4}
	for i, v := range first {
		if n.Indices[i] != v {
			t.Errorf("Indices[%d] = %d, want %d", i, n.Indices[i], v)
		}
	}
	last := n.Vertices[5]
	if last.DstX != 100 || last.DstY != 50 {
		t.Errorf("corner vertex = (%v,%v), want (100,50)", last.DstX, last.DstY)
	}
	if n.Vertices[1].DstX != 50 {
		t.Errorf("mid vertex DstX = %v, want 50", n.Vertices[1].DstX)
	}
}

func TestWarpMeshCapabilities(t *testing.T) {
	n := NewWarpMesh("m", nil, 10, 10, 1, 1)
	if !n.Capabilities().Has(CapWarp | CapResize | CapColor) {
		t.Errorf("caps = %v", n.Capabilities())
	}
	if n.Capabilities().Has(CapTexture) {
		t.Error("mesh should not report texture")
	}
}

func TestWarpMeshSetSizeResyncs(t *testing.T) {
	n := NewWarpMesh("m", nil, 10, 10, 1, 1)
	n.SetSize(40, 20)
	v := n.Vertices[3]
	if v.DstX != 40 || v.DstY != 20 {
		t.Errorf("corner after resize = (%v,%v), want (40,20)", v.DstX, v.DstY)
	}
}

func TestWarpMeshSetWarp(t *testing.T) {
	n := NewWarpMesh("m", nil, 100, 100, 1, 1)
	g := NewWarpGrid(1, 1)
	g.Set(1, 1, Vec2{X: 1.5, Y: 1.25})
	n.SetWarp(g)
	if v := n.Vertices[3]; v.DstX != 150 || v.DstY != 125 {
		t.Errorf("warped corner = (%v,%v), want (150,125)", v.DstX, v.DstY)
	}
	// The node keeps its own grid.
	g.Set(1, 1, Vec2{})
	if n.Warp().At(1, 1) != (Vec2{X: 1.5, Y: 1.25}) {
		t.Error("SetWarp aliased the caller's grid")
	}
}

func TestWarpMeshSetWarpIncompatible(t *testing.T) {
	n := NewWarpMesh("m", nil, 100, 100, 1, 1)
	bad := NewWarpGrid(3, 3)
	bad.Set(0, 0, Vec2{X: 9, Y: 9})
	n.SetWarp(bad)
	if v := n.Vertices[0]; v.DstX != 0 || v.DstY != 0 {
		t.Errorf("incompatible grid applied: (%v,%v)", v.DstX, v.DstY)
	}
}

func TestWarpMeshDisposeDropsGeometry(t *testing.T) {
	n := NewWarpMesh("m", nil, 10, 10, 1, 1)
	n.Dispose()
	if n.Vertices != nil || n.Warp() != nil {
		t.Error("Dispose kept mesh geometry")
	}
}
