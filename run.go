package sandpack

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS attaches a debug overlay widget to the scene root.
	ShowFPS bool
	// Resizable allows the window to be resized. OnResize, if set, receives
	// the new layout dimensions (typically Hero.Resize).
	Resizable bool
	OnResize  func(width, height float64)
}

// game adapts a Scene to the ebiten.Game interface.
type game struct {
	scene    *Scene
	width    int
	height   int
	onResize func(width, height float64)
}

func (g *game) Update() error {
	return g.scene.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.onResize == nil {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.onResize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run creates a window and drives the scene's update/draw loop until the
// window closes. Returns the error that ended the loop, if any.
func Run(scene *Scene, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if cfg.ShowFPS {
		scene.Root().AddChild(NewDebugOverlay())
	}

	return ebiten.RunGame(&game{
		scene:    scene,
		width:    cfg.Width,
		height:   cfg.Height,
		onResize: cfg.OnResize,
	})
}
