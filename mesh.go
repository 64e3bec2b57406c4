package sprig

import "github.com/hajimehoshi/ebiten/v2"

// WarpGrid is deformable grid geometry: (Cols+1)*(Rows+1) vertex positions,
// row-major, in normalized [0, 1] coordinates of the mesh's size. Positions
// outside [0, 1] stretch the image past its bounds.
type WarpGrid struct {
	Cols, Rows int
	Positions  []Vec2
}

// NewWarpGrid returns the undeformed grid for cols x rows cells.
func NewWarpGrid(cols, rows int) *WarpGrid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g := &WarpGrid{Cols: cols, Rows: rows, Positions: make([]Vec2, (cols+1)*(rows+1))}
	for r := 0; r <= rows; r++ {
		for c := 0; c <= cols; c++ {
			g.Positions[r*(cols+1)+c] = Vec2{X: float64(c) / float64(cols), Y: float64(r) / float64(rows)}
		}
	}
	return g
}

// Clone returns a deep copy.
func (g *WarpGrid) Clone() *WarpGrid {
	if g == nil {
		return nil
	}
	out := &WarpGrid{Cols: g.Cols, Rows: g.Rows, Positions: make([]Vec2, len(g.Positions))}
	copy(out.Positions, g.Positions)
	return out
}

// Set moves one grid vertex.
func (g *WarpGrid) Set(col, row int, p Vec2) {
	g.Positions[row*(g.Cols+1)+col] = p
}

// At returns one grid vertex.
func (g *WarpGrid) At(col, row int) Vec2 {
	return g.Positions[row*(g.Cols+1)+col]
}

// compatible reports whether two grids can be interpolated vertex by vertex.
func (g *WarpGrid) compatible(other *WarpGrid) bool {
	return g != nil && other != nil && g.Cols == other.Cols && g.Rows == other.Rows &&
		len(g.Positions) == len(other.Positions) &&
		len(g.Positions) == (g.Cols+1)*(g.Rows+1)
}

// NewWarpMesh creates a mesh node of size w x h covered by a cols x rows
// warp grid. img may be nil for an untextured mesh.
func NewWarpMesh(name string, img *ebiten.Image, w, h float64, cols, rows int) *Node {
	grid := NewWarpGrid(cols, rows)
	vcols := grid.Cols + 1
	verts := make([]ebiten.Vertex, len(grid.Positions))
	inds := make([]uint16, 0, grid.Cols*grid.Rows*6)

	var imgW, imgH float32
	if img != nil {
		b := img.Bounds()
		imgW, imgH = float32(b.Dx()), float32(b.Dy())
	}
	for i, p := range grid.Positions {
		verts[i] = ebiten.Vertex{
			SrcX: float32(p.X) * imgW, SrcY: float32(p.Y) * imgH,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			tl := uint16(r*vcols + c)
			tr := tl + 1
			bl := uint16((r+1)*vcols + c)
			br := bl + 1
			inds = append(inds, tl, bl, tr, tr, bl, br)
		}
	}

	n := &Node{Name: name, Type: NodeTypeMesh, MeshImage: img, Vertices: verts, Indices: inds}
	nodeDefaults(n)
	n.Width, n.Height = w, h
	n.warp = grid
	n.syncWarpVertices()
	return n
}

// syncWarpVertices writes the warp grid into vertex destination positions.
func (n *Node) syncWarpVertices() {
	if n.warp == nil || len(n.Vertices) != len(n.warp.Positions) {
		return
	}
	for i, p := range n.warp.Positions {
		n.Vertices[i].DstX = float32(p.X * n.Width)
		n.Vertices[i].DstY = float32(p.Y * n.Height)
	}
}
