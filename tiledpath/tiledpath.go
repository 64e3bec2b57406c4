// Package tiledpath turns polyline and polygon objects drawn in the Tiled map
// editor into sprig paths for FollowPath.
package tiledpath

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
	"github.com/phanxgames/sprig"
)

// ErrNoPath is returned for objects that carry no polyline or polygon.
var ErrNoPath = errors.New("tiledpath: object has no polyline or polygon")

// FromObject converts a Tiled object into a path in map coordinates. Tiled
// stores points relative to the object's position; they are offset here.
// Polygons become closed polylines.
func FromObject(o *tiled.Object) (*sprig.Polyline, error) {
	if o == nil {
		return nil, ErrNoPath
	}
	for _, pl := range o.PolyLines {
		if pl != nil && pl.Points != nil && len(*pl.Points) > 0 {
			return sprig.NewPolyline(false, toVecs(o, *pl.Points)...), nil
		}
	}
	for _, pg := range o.Polygons {
		if pg != nil && pg.Points != nil && len(*pg.Points) > 0 {
			return sprig.NewPolyline(true, toVecs(o, *pg.Points)...), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (id %d)", ErrNoPath, o.Name, o.ID)
}

func toVecs(o *tiled.Object, pts tiled.Points) []sprig.Vec2 {
	out := make([]sprig.Vec2, 0, len(pts))
	for _, p := range pts {
		if p == nil {
			continue
		}
		out = append(out, sprig.Vec2{X: o.X + p.X, Y: o.Y + p.Y})
	}
	return out
}

// FromMap returns every path in the object group named group, keyed by
// object name. Objects without a name or without points are skipped.
func FromMap(m *tiled.Map, group string) map[string]*sprig.Polyline {
	paths := make(map[string]*sprig.Polyline)
	for _, og := range m.ObjectGroups {
		if og.Name != group {
			continue
		}
		for _, o := range og.Objects {
			if o.Name == "" {
				continue
			}
			if p, err := FromObject(o); err == nil {
				paths[o.Name] = p
			}
		}
	}
	return paths
}

// Load reads a TMX file from fsys and returns the paths in group. It takes
// an fs.FS so callers can pass an embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath, group string) (map[string]*sprig.Polyline, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("tiledpath: load TMX %s: %w", tmxPath, err)
	}
	return FromMap(m, group), nil
}
