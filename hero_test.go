package sandpack

import (
	"math"
	"testing"
)

// newTestHero builds a hero matching the reference geometry:
// {top: 0, scrollableHeight: 1000, width: 800}.
func newTestHero() (*Hero, *Scene) {
	scene := NewScene()
	scene.SetInputSource(&fakeInput{})
	hero := NewHero(scene, HeroConfig{
		ViewportWidth:  800,
		ViewportHeight: 720,
		ContentHeight:  1720,
		Editor:         DefaultEditorConfig(),
	})
	return hero, scene
}

func TestHeroInitialGeometry(t *testing.T) {
	hero, _ := newTestHero()

	want := Geometry{Top: 0, ScrollableHeight: 1000, Width: 800}
	if hero.Geometry() != want {
		t.Errorf("Geometry = %+v, want %+v", hero.Geometry(), want)
	}
}

func TestHeroRestPose(t *testing.T) {
	hero, _ := newTestHero()

	assertExact(t, "container scale", hero.container.ScaleX, 1)
	assertExact(t, "logo slide", hero.logoGroup.X, 0)
	assertNear(t, "logo rotation", hero.logoLeft.Rotation, -math.Pi/2)
	assertExact(t, "subtitle alpha", hero.subtitle.Alpha, 1)
	assertExact(t, "editor x", hero.editorPane.X, 0)
	if hero.editorPane.Interactable {
		t.Error("editor should not accept pointer input at rest")
	}
	if hero.livePreview.Visible {
		t.Error("live preview should be hidden at rest")
	}
}

func TestHeroAppliesFrameOnScroll(t *testing.T) {
	hero, _ := newTestHero()

	hero.ScrollBy(750)

	assertExact(t, "container scale", hero.container.ScaleX, 0.975)
	assertExact(t, "editor x", hero.editorPane.X, 400)
	assertExact(t, "preview scale x", hero.previewGroup.ScaleX, 0.5)
	assertExact(t, "inner scale", hero.previewInner.ScaleX, 0.5)
	assertExact(t, "logo rotation", hero.logoLeft.Rotation, 0)
	assertExact(t, "subtitle alpha", hero.subtitle.Alpha, 0)
}

func TestHeroLogoHalvesMeetAtCenter(t *testing.T) {
	hero, _ := newTestHero()

	// 80% of the scroll: both halves converge at Y=0, offset only by the
	// static border compensation on X.
	hero.ScrollBy(800)

	assertExact(t, "left y", hero.logoLeft.Y, 0)
	assertExact(t, "right y", hero.logoRight.Y, 0)
	assertExact(t, "left x", hero.logoLeft.X, -14)
	assertExact(t, "right x", hero.logoRight.X, 14)
}

func TestHeroCompletionGatesEditorAndPreview(t *testing.T) {
	hero, _ := newTestHero()

	// Threshold is 0.9 * 800 = 720.
	hero.ScrollBy(719)
	if hero.Complete() {
		t.Fatal("719 should not complete")
	}
	if hero.editorPane.Interactable {
		t.Error("editor gate should still be closed")
	}

	hero.ScrollBy(1)
	if !hero.Complete() {
		t.Fatal("720 should complete")
	}
	if !hero.editorPane.Interactable {
		t.Error("editor should accept pointer input once complete")
	}
	if !hero.livePreview.Visible {
		t.Error("live preview should be visible once complete")
	}
	if hero.livePreview.ZIndex <= hero.staticPreview.ZIndex {
		t.Error("live preview should stack above the static preview")
	}

	// Scrolling back up closes the gate again.
	hero.ScrollBy(-500)
	if hero.Complete() {
		t.Fatal("gate should reopen below the threshold")
	}
	if hero.editorPane.Interactable {
		t.Error("editor gate should close on scroll up")
	}
	if hero.livePreview.ZIndex >= hero.staticPreview.ZIndex {
		t.Error("live preview should drop below the static preview")
	}
}

func TestHeroWheelScrolls(t *testing.T) {
	hero, _ := newTestHero()

	// One wheel notch toward the page bottom.
	hero.step(1.0/60, -1)
	assertExact(t, "offset", hero.Offset(), defaultWheelSpeed)

	hero.step(1.0/60, 1)
	assertExact(t, "offset back", hero.Offset(), 0)
}

func TestHeroScrollToAnimates(t *testing.T) {
	hero, _ := newTestHero()

	hero.ScrollTo(600, 0.5)
	for range 60 {
		hero.step(1.0/60, 0)
	}
	if diff := hero.Offset() - 600; diff > 0.5 || diff < -0.5 {
		t.Errorf("offset = %v, want ~600", hero.Offset())
	}
}

func TestHeroResizeIsDebouncedAndRebuildsCurves(t *testing.T) {
	hero, _ := newTestHero()
	hero.ScrollBy(750)

	// A resize burst: nothing changes until the quiescence gap.
	for range 5 {
		hero.Resize(1000, 720)
		hero.step(0.05, 0)
	}
	assertExact(t, "width during burst", hero.Geometry().Width, 800)
	assertExact(t, "editor x during burst", hero.editorPane.X, 400)

	// Quiet for the full window: geometry commits and curves rebuild. The
	// viewport height is unchanged so the scrollable height holds at 1000,
	// but the wider viewport rescales every width-derived output.
	hero.step(0.3, 0)
	assertExact(t, "width after burst", hero.Geometry().Width, 1000)
	assertExact(t, "scroll max after burst", hero.scroll.Max(), 1000)
	assertExact(t, "editor x after burst", hero.editorPane.X, 500)

	// A viewport height change scales the content height with it.
	hero.Resize(1000, 1440)
	hero.step(0.3, 0)
	assertExact(t, "scroll max after height change", hero.scroll.Max(), 2000)
}

func TestHeroDegenerateContentHeight(t *testing.T) {
	scene := NewScene()
	scene.SetInputSource(&fakeInput{})
	hero := NewHero(scene, HeroConfig{
		ViewportWidth:  800,
		ViewportHeight: 720,
		ContentHeight:  500, // shorter than the viewport
	})

	// No scroll distance: the hero holds its rest pose for any input.
	hero.step(1.0/60, -10)
	assertExact(t, "offset", hero.Offset(), 0)
	assertExact(t, "container scale", hero.container.ScaleX, 1)
	assertNear(t, "logo rotation", hero.logoLeft.Rotation, -math.Pi/2)
}

func TestHeroDisposeTearsDown(t *testing.T) {
	hero, scene := newTestHero()

	hero.Dispose()

	if !hero.root.IsDisposed() {
		t.Error("hero subtree should be disposed")
	}
	if scene.Root().NumChildren() != 0 {
		t.Error("hero root should detach from the scene")
	}
	if hero.tracker.OnChange != nil || hero.scroll.OnScroll != nil || hero.completion.OnChange != nil {
		t.Error("all listeners registered at mount must be released")
	}

	// Further steps are no-ops, not panics.
	hero.step(1.0/60, -3)
	hero.Dispose()
}

func TestHeroEditorConfigPassthrough(t *testing.T) {
	hero, _ := newTestHero()

	cfg := hero.Editor()
	if len(cfg.Files) == 0 || len(cfg.Dependencies) == 0 {
		t.Fatal("default editor config should carry files and dependencies")
	}
	if _, ok := cfg.Files[cfg.ActiveFile]; !ok {
		t.Error("active file should exist in the file map")
	}
	if got := hero.EditorPane().UserData.(EditorConfig); got.ActiveFile != cfg.ActiveFile {
		t.Error("editor pane should carry the editor config")
	}
}
