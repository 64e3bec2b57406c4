package sprig

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"
)

// TextureRegion describes a sub-rectangle within an atlas page. It is an
// opaque, caller-owned handle: actions copy it by value and never mutate it.
type TextureRegion struct {
	Page      uint16 // atlas page index
	X, Y      uint16 // top-left corner of the sub-image rect within the page
	Width     uint16 // width of the sub-image rect (may differ from OriginalW if trimmed)
	Height    uint16 // height of the sub-image rect (may differ from OriginalH if trimmed)
	OriginalW uint16 // untrimmed sprite width as authored
	OriginalH uint16 // untrimmed sprite height as authored
	OffsetX   int16  // horizontal trim offset
	OffsetY   int16  // vertical trim offset
	Rotated   bool   // stored 90 degrees clockwise in the page
}

// IsZero reports whether r is the zero region (no texture).
func (r TextureRegion) IsZero() bool {
	return r == TextureRegion{}
}

// Atlas maps frame names to texture regions.
type Atlas struct {
	regions map[string]TextureRegion
}

// NewAtlas builds an atlas from an explicit name-to-region map.
func NewAtlas(regions map[string]TextureRegion) *Atlas {
	a := &Atlas{regions: make(map[string]TextureRegion, len(regions))}
	for name, r := range regions {
		a.regions[name] = r
	}
	return a
}

// Region returns the TextureRegion for the given name. Unknown names return
// the placeholder region on page PlaceholderPage and log in debug mode.
func (a *Atlas) Region(name string) TextureRegion {
	if r, ok := a.regions[name]; ok {
		return r
	}
	if globalDebug {
		log.Printf("sprig: atlas region %q not found, using placeholder", name)
	}
	return placeholderRegion()
}

// Frames returns every region whose name starts with prefix, ordered by name.
// Use it to feed AnimateTextures from a sprite sheet ("walk_00", "walk_01"...).
func (a *Atlas) Frames(prefix string) []TextureRegion {
	var names []string
	for name := range a.regions {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]TextureRegion, len(names))
	for i, name := range names {
		out[i] = a.regions[name]
	}
	return out
}

// Len returns the number of named regions.
func (a *Atlas) Len() int { return len(a.regions) }

// PlaceholderPage is the sentinel page index of the region returned for
// unknown atlas names. It never collides with real pages.
const PlaceholderPage = 0xFFFF

func placeholderRegion() TextureRegion {
	return TextureRegion{
		Page:      PlaceholderPage,
		Width:     1,
		Height:    1,
		OriginalW: 1,
		OriginalH: 1,
	}
}

// LoadAtlas parses TexturePacker JSON. Both the hash format (single "frames"
// object) and the array format ("textures" with per-page frame lists) are
// supported; page indices start at firstPage.
func LoadAtlas(jsonData []byte, firstPage uint16) (*Atlas, error) {
	var head struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &head); err != nil {
		return nil, fmt.Errorf("sprig: parse atlas JSON: %w", err)
	}

	atlas := &Atlas{regions: make(map[string]TextureRegion)}
	switch {
	case head.Textures != nil:
		var pages []struct {
			Frames map[string]jsonFrame `json:"frames"`
		}
		if err := json.Unmarshal(head.Textures, &pages); err != nil {
			return nil, fmt.Errorf("sprig: parse atlas textures: %w", err)
		}
		for i, p := range pages {
			for name, f := range p.Frames {
				atlas.regions[name] = f.region(firstPage + uint16(i))
			}
		}
	case head.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(head.Frames, &frames); err != nil {
			return nil, fmt.Errorf("sprig: parse atlas frames: %w", err)
		}
		for name, f := range frames {
			atlas.regions[name] = f.region(firstPage)
		}
	default:
		return nil, fmt.Errorf("sprig: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       struct {
		W int `json:"w"`
		H int `json:"h"`
	} `json:"sourceSize"`
}

func (f jsonFrame) region(page uint16) TextureRegion {
	return TextureRegion{
		Page:      page,
		X:         uint16(f.Frame.X),
		Y:         uint16(f.Frame.Y),
		Width:     uint16(f.Frame.W),
		Height:    uint16(f.Frame.H),
		OriginalW: uint16(f.SourceSize.W),
		OriginalH: uint16(f.SourceSize.H),
		OffsetX:   int16(f.SpriteSourceSize.X),
		OffsetY:   int16(f.SpriteSourceSize.Y),
		Rotated:   f.Rotated,
	}
}
