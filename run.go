package showcase

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// OnUpdate runs after the scene update each tick. Returning an error (for
	// example ebiten.Termination) ends the game loop.
	OnUpdate func() error
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene    *Scene
	onUpdate func() error
}

func (g *game) Update() error {
	g.scene.Update()
	if g.onUpdate != nil {
		return g.onUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout uses the window size as the logical screen size, so a window
// resize reaches the scene as a viewport change.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetViewportSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the scene until the window closes.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.SetViewportSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(&game{scene: scene, onUpdate: cfg.OnUpdate}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
