package sandpack

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// NewDebugOverlay creates a Node that displays the current FPS and TPS,
// refreshed about twice a second. It draws on top of everything.
func NewDebugOverlay() *Node {
	// 120x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(120, 32)

	node := NewBox("debug_overlay", 120, 32, ColorWhite)
	node.SetImage(img)
	node.SetZIndex(1 << 16)

	var lastUpdate float64

	node.OnUpdate = func(dt float64) {
		lastUpdate += dt
		if lastUpdate < 0.5 {
			return
		}
		lastUpdate = 0

		img.Clear()
		// Semi-transparent background for readability
		img.Fill(color.RGBA{0, 0, 0, 128})

		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps))
	}

	return node
}
