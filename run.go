package sprig

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and game loop started by RunGame.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the window and logical screen size. Zero means
	// 640x480.
	Width, Height int
	// TPS is the fixed tick rate. Zero keeps ebiten's default of 60.
	TPS int
	// Debug turns on the scene's debug mode.
	Debug bool
	// ShowStats draws an FPS, TPS and active node readout over the frame.
	ShowStats bool
	// Draw renders the scene. Rendering is up to the caller; a nil Draw
	// leaves the screen cleared.
	Draw func(s *Scene, screen *ebiten.Image)
}

// gameShell adapts a Scene to ebiten.Game.
type gameShell struct {
	scene *Scene
	cfg   RunConfig
	stats statsOverlay
}

func (g *gameShell) Update() error {
	g.scene.Update()
	if g.cfg.ShowStats {
		g.stats.update(g.scene, 1.0/float64(ebiten.TPS()))
	}
	return nil
}

func (g *gameShell) Draw(screen *ebiten.Image) {
	if g.cfg.Draw != nil {
		g.cfg.Draw(g.scene, screen)
	}
	if g.cfg.ShowStats {
		g.stats.draw(screen)
	}
}

func (g *gameShell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// RunGame opens a window and ticks scene until the window closes. It blocks.
func RunGame(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	scene.SetDebugMode(cfg.Debug)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&gameShell{scene: scene, cfg: cfg}); err != nil {
		return fmt.Errorf("sprig: run game: %w", err)
	}
	return nil
}
