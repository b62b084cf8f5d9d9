package sandpack

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// HeroConfig sizes the hero section and supplies the embedded editor's
// static configuration.
type HeroConfig struct {
	// ViewportWidth and ViewportHeight are the visible window dimensions.
	ViewportWidth  float64
	ViewportHeight float64
	// ContentHeight is the hero container's total rendered height. The
	// scrollable distance is ContentHeight minus ViewportHeight. Defaults to
	// 2.5x the viewport height.
	ContentHeight float64
	// Top is the hero container's offset from the document origin.
	Top float64
	// Editor is handed to the embedded editor pane untouched.
	Editor EditorConfig
}

// heroLayout adapts the configured dimensions to the Layout measurement
// interface. It is detached until the hero mounts.
type heroLayout struct {
	top, height, width float64
	attached           bool
}

func (l *heroLayout) OffsetTop() float64    { return l.top }
func (l *heroLayout) OffsetHeight() float64 { return l.height }
func (l *heroLayout) OffsetWidth() float64  { return l.width }
func (l *heroLayout) Attached() bool        { return l.attached }

// Hero wires geometry tracking, scrolling, the choreography, and the
// completion detector into a retained node tree. Every element is created
// once at mount and mutated in place, so each transform animates
// continuously instead of restarting from a default pose on rebuilds.
type Hero struct {
	scene  *Scene
	cfg    HeroConfig
	layout *heroLayout

	tracker    *GeometryTracker
	scroll     *ScrollView
	chor       *Choreography
	completion *CompletionDetector

	root      *Node
	container *Node
	logoGroup *Node
	logoLeft  *Node
	logoRight *Node
	subtitle  *Node

	editorPane    *Node
	previewGroup  *Node
	previewInner  *Node
	staticPreview *Node
	livePreview   *Node

	disposed bool
}

// Pane sizing as fractions of the viewport.
const (
	paneWidthFraction  = 0.35
	paneHeightFraction = 0.6
)

// NewHero builds the hero element tree under the scene root, measures the
// initial geometry, and applies the frame for offset zero.
func NewHero(scene *Scene, cfg HeroConfig) *Hero {
	if cfg.ContentHeight == 0 {
		cfg.ContentHeight = cfg.ViewportHeight * 2.5
	}
	if cfg.ViewportHeight <= 0 {
		panic("sandpack: hero viewport height must be positive")
	}

	h := &Hero{
		scene: scene,
		cfg:   cfg,
		layout: &heroLayout{
			top:      cfg.Top,
			height:   cfg.ContentHeight,
			width:    cfg.ViewportWidth,
			attached: true,
		},
	}

	h.buildTree()

	h.tracker = NewGeometryTracker()
	h.tracker.OnChange = h.geometryChanged
	h.tracker.Mount(h.layout, cfg.ViewportHeight)

	g := h.tracker.Geometry()
	h.chor = NewChoreography(g)
	h.scroll = NewScrollView(g.ScrollableHeight)
	h.scroll.OnScroll = h.scrollChanged
	h.completion = NewCompletionDetector(g.Width)
	h.completion.OnChange = h.completionChanged

	h.applyFrame(h.chor.Frame(h.scroll.Offset()))
	h.completionChanged(h.completion.Complete())
	return h
}

// buildTree creates the fixed element tree. Node names are for debugging;
// identity is held by pointer.
func (h *Hero) buildTree() {
	cfg := h.cfg
	cx := cfg.ViewportWidth / 2
	cy := cfg.ViewportHeight / 2

	h.root = NewContainer("hero")
	h.scene.Root().AddChild(h.root)

	h.container = NewContainer("hero-container")
	h.container.SetPosition(cx, cy)
	h.root.AddChild(h.container)

	// Logo composition: two halves and a subtitle, grouped so the whole
	// block slides away together.
	h.logoGroup = NewContainer("logo")
	h.container.AddChild(h.logoGroup)

	half := func(name string) *Node {
		n := NewBox(name, logoSideHeight/2, logoSideHeight, Color{R: 0.9, G: 0.85, B: 0.2, A: 1})
		n.SetPivot(n.Width/2, n.Height/2)
		return n
	}
	h.logoLeft = half("logo-left")
	h.logoRight = half("logo-right")
	h.logoGroup.AddChild(h.logoLeft)
	h.logoGroup.AddChild(h.logoRight)

	h.subtitle = NewLabel("subtitle", "a toolkit for live coding components")
	h.subtitle.SetPivot(h.subtitle.Width/2, 0)
	h.subtitle.SetPosition(0, logoSideHeight/2+24)
	h.logoGroup.AddChild(h.subtitle)

	paneW := cfg.ViewportWidth * paneWidthFraction
	paneH := cfg.ViewportHeight * paneHeightFraction

	// Editor pane starts centered and is pushed right as the scroll
	// progresses; pointer input stays off until completion.
	h.editorPane = NewBox("editor", paneW, paneH, Color{R: 0.08, G: 0.08, B: 0.12, A: 1})
	h.editorPane.SetPivot(paneW/2, paneH/2)
	h.editorPane.Interactable = false
	h.editorPane.UserData = h.cfg.Editor
	h.container.AddChild(h.editorPane)

	// Preview panes: a static snapshot below a live pane that is hidden
	// until completion.
	h.previewGroup = NewContainer("preview")
	h.previewGroup.SetPosition(-paneW/2-16, 0)
	h.container.AddChild(h.previewGroup)

	h.previewInner = NewContainer("preview-inner")
	h.previewGroup.AddChild(h.previewInner)

	h.staticPreview = NewBox("preview-static", paneW, paneH, Color{R: 0.95, G: 0.95, B: 0.97, A: 1})
	h.staticPreview.SetPivot(paneW/2, paneH/2)
	h.staticPreview.SetZIndex(1)
	h.previewInner.AddChild(h.staticPreview)

	h.livePreview = NewBox("preview-live", paneW, paneH, Color{R: 1, G: 1, B: 1, A: 1})
	h.livePreview.SetPivot(paneW/2, paneH/2)
	h.livePreview.Visible = false
	h.livePreview.SetZIndex(0)
	h.previewInner.AddChild(h.livePreview)
}

// Step is the per-frame driver; register it with Scene.SetUpdateFunc. It
// feeds wheel input into the scroll view, advances the resize debounce and
// any scroll animation, and applies the current frame.
func (h *Hero) Step() error {
	_, wy := h.scene.Wheel()
	return h.step(1.0/float64(ebiten.TPS()), wy)
}

// step is Step with explicit inputs, for deterministic tests.
func (h *Hero) step(dt, wheelY float64) error {
	if h.disposed {
		return nil
	}
	if wheelY != 0 {
		h.scroll.ScrollBy(-wheelY * h.scroll.WheelSpeed)
	}
	h.tracker.Update(dt)
	h.scroll.Update(float32(dt))
	h.applyFrame(h.chor.Frame(h.scroll.Offset()))
	return nil
}

// Resize records new viewport dimensions. The content height scales with the
// viewport height so the hero keeps its proportions. The geometry remeasure
// happens after the resize burst goes quiet.
func (h *Hero) Resize(width, height float64) {
	if height != h.cfg.ViewportHeight {
		h.layout.height *= height / h.cfg.ViewportHeight
	}
	h.cfg.ViewportWidth = width
	h.cfg.ViewportHeight = height
	h.layout.width = width
	h.tracker.Resize(h.layout, height)
}

// Offset returns the current scroll offset.
func (h *Hero) Offset() float64 {
	return h.scroll.Offset()
}

// ScrollTo animates the scroll offset to target over duration seconds.
func (h *Hero) ScrollTo(target float64, duration float32) {
	h.scroll.ScrollTo(target, duration, ease.OutCubic)
}

// ScrollBy nudges the scroll offset by delta pixels.
func (h *Hero) ScrollBy(delta float64) {
	h.scroll.ScrollBy(delta)
}

// Complete reports whether the choreography has passed its completion
// threshold.
func (h *Hero) Complete() bool {
	return h.completion.Complete()
}

// EditorPane returns the editor pane node, for attaching pointer callbacks.
// The pane only becomes interactable once the choreography completes.
func (h *Hero) EditorPane() *Node {
	return h.editorPane
}

// Editor returns the static editor configuration carried by the hero.
func (h *Hero) Editor() EditorConfig {
	return h.cfg.Editor
}

// Geometry returns the current measured geometry.
func (h *Hero) Geometry() Geometry {
	return h.tracker.Geometry()
}

// Frame returns the full output parameter set for the current offset.
func (h *Hero) Frame() Frame {
	return h.chor.Frame(h.scroll.Offset())
}

// geometryChanged rebuilds the curves and re-derives dependent thresholds
// after a committed resize. The current offset is re-applied against the new
// curves immediately.
func (h *Hero) geometryChanged(g Geometry) {
	if h.chor == nil {
		// Initial Mount measurement; construction finishes the wiring.
		return
	}
	h.chor = NewChoreography(g)
	h.scroll.SetMax(g.ScrollableHeight)
	h.completion.SetWidth(g.Width)
	h.applyFrame(h.chor.Frame(h.scroll.Offset()))
}

// scrollChanged maps the new offset synchronously; the mapper is pure and
// cheap, so no coalescing happens here.
func (h *Hero) scrollChanged(offset float64) {
	h.completion.Observe(offset)
	h.applyFrame(h.chor.Frame(offset))
}

// completionChanged gates editor interactivity and flips the live preview's
// visibility and stacking above the static one. Runs only on flips.
func (h *Hero) completionChanged(complete bool) {
	h.editorPane.Interactable = complete
	h.livePreview.Visible = complete
	if complete {
		h.livePreview.SetZIndex(2)
	} else {
		h.livePreview.SetZIndex(0)
	}
}

// applyFrame writes one interpolated frame into the node tree.
func (h *Hero) applyFrame(f Frame) {
	g := h.chor.Geometry()

	h.container.SetScale(f.ContainerScale, f.ContainerScale)

	h.logoGroup.SetPosition(f.SlideAway*g.Width, 0)

	rot := f.LogoRotate * math.Pi / 180
	h.logoLeft.SetRotation(rot)
	h.logoLeft.SetPosition(f.LogoLeftX, f.LogoLeftY)
	h.logoRight.SetRotation(rot)
	h.logoRight.SetPosition(f.LogoRightX, f.LogoRightY)

	h.subtitle.SetAlpha(f.SubtitleOpacity)

	h.editorPane.SetPosition(f.EditorTranslateX, 0)

	h.previewGroup.SetScale(f.PreviewScaleX, 1)
	h.previewInner.SetScale(f.InnerScale, f.InnerScale)
}

// Dispose tears the hero down: the node subtree is disposed and every
// listener registered at mount is released, so nothing leaks past unmount.
func (h *Hero) Dispose() {
	if h.disposed {
		return
	}
	h.disposed = true
	h.tracker.OnChange = nil
	h.scroll.OnScroll = nil
	h.completion.OnChange = nil
	h.layout.attached = false
	h.root.Dispose()
}
