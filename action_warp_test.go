package sprig

import "testing"

func bulged(cols, rows int, dx float64) *WarpGrid {
	g := NewWarpGrid(cols, rows)
	for i := range g.Positions {
		g.Positions[i].X += dx
	}
	return g
}

func TestWarpTo(t *testing.T) {
	m := NewWarpMesh("m", nil, 100, 50, 2, 2)
	dest := bulged(2, 2, 0.5)
	run := WarpTo(dest, 1).Copy()

	run.Evaluate(m, 0.5)
	assertNear(t, "mid X", m.Warp().At(2, 0).X, 1.25)
	assertNear(t, "mid DstX", float64(m.Vertices[2].DstX), 125)

	run.Evaluate(m, 0.5)
	for i, p := range m.Warp().Positions {
		if p != dest.Positions[i] {
			t.Fatalf("vertex %d = %v, want %v", i, p, dest.Positions[i])
		}
	}
}

func TestWarpToCopiesGrid(t *testing.T) {
	m := NewWarpMesh("m", nil, 10, 10, 1, 1)
	dest := bulged(1, 1, 1)
	a := WarpTo(dest, 0)
	dest.Positions[0].X = 99
	evaluateTicks(a, m, 0, 1)
	if m.Warp().At(0, 0).X != 1 {
		t.Errorf("X = %v, want 1 from the grid at construction", m.Warp().At(0, 0).X)
	}
}

func TestWarpToIncompatibleGrid(t *testing.T) {
	m := NewWarpMesh("m", nil, 10, 10, 2, 2)
	_, done := evaluateTicks(WarpTo(bulged(3, 3, 1), 0.5), m, 0.25, 2)
	if done != 1 {
		t.Fatal("incompatible warp did not complete")
	}
	if m.Warp().At(1, 1).X != 0.5 {
		t.Errorf("grid changed to %v", m.Warp().At(1, 1))
	}
}

func TestWarpSkipsPlainMesh(t *testing.T) {
	n := NewSprite("s", TextureRegion{})
	_, done := evaluateTicks(WarpTo(NewWarpGrid(1, 1), 0), n, 0, 1)
	if done != 1 || n.Warp() != nil {
		t.Error("warp on a sprite misbehaved")
	}
}

func TestAnimateWarps(t *testing.T) {
	m := NewWarpMesh("m", nil, 10, 10, 1, 1)
	grids := []*WarpGrid{bulged(1, 1, 1), bulged(1, 1, 2)}
	a := AnimateWarps(grids, 0.5, true)
	if a.Duration() != 1 {
		t.Fatalf("Duration = %v, want 1", a.Duration())
	}
	run := a.Copy()
	run.Evaluate(m, 0.25)
	if m.Warp().At(0, 0).X != 1 {
		t.Errorf("frame 0 X = %v, want 1", m.Warp().At(0, 0).X)
	}
	run.Evaluate(m, 0.5)
	if m.Warp().At(0, 0).X != 2 {
		t.Errorf("frame 1 X = %v, want 2", m.Warp().At(0, 0).X)
	}
	run.Evaluate(m, 0.25)
	if !run.IsComplete() || m.Warp().At(0, 0).X != 0 {
		t.Errorf("after restore X = %v, want 0", m.Warp().At(0, 0).X)
	}
}

func TestAnimateWarpsWithoutRestore(t *testing.T) {
	m := NewWarpMesh("m", nil, 10, 10, 1, 1)
	evaluateTicks(AnimateWarps([]*WarpGrid{bulged(1, 1, 1), nil, bulged(1, 1, 3)}, 0.5, false), m, 2, 1)
	if m.Warp().At(0, 0).X != 3 {
		t.Errorf("X = %v, want the last grid", m.Warp().At(0, 0).X)
	}
}

// countingWarp is a Warpable that records how often its grid is set.
type countingWarp struct {
	grid *WarpGrid
	sets int
}

func (c *countingWarp) Warp() *WarpGrid { return c.grid }

func (c *countingWarp) SetWarp(g *WarpGrid) {
	c.grid = g
	c.sets++
}

func TestAnimateWarpsWritesOncePerFrame(t *testing.T) {
	grids := []*WarpGrid{bulged(1, 1, 1), bulged(1, 1, 2), bulged(1, 1, 3), bulged(1, 1, 4)}
	c := &countingWarp{grid: NewWarpGrid(1, 1)}
	_, done := evaluateTicks(AnimateWarps(grids, 0.25, false), c, 0.125, 8)
	if done != 1 {
		t.Fatalf("done = %d, want 1", done)
	}
	if c.sets != 4 {
		t.Errorf("SetWarp called %d times over 8 ticks, want 4", c.sets)
	}
	if c.grid.At(0, 0).X != 4 {
		t.Errorf("X = %v, want the last grid", c.grid.At(0, 0).X)
	}
}
