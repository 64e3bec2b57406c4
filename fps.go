package sprig

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay is the readout RunGame draws when RunConfig.ShowStats is set.
// The image is redrawn every half second.
type statsOverlay struct {
	img   *ebiten.Image
	since float64
}

func (o *statsOverlay) update(s *Scene, dt float64) {
	o.since += dt
	if o.img != nil && o.since < 0.5 {
		return
	}
	o.since = 0
	if o.img == nil {
		// Enough for three short lines of debug text.
		o.img = ebiten.NewImage(120, 48)
	}
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nActive: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.ActiveNodes()))
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	if o.img != nil {
		screen.DrawImage(o.img, nil)
	}
}
