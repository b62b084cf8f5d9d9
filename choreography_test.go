package sandpack

import "testing"

// The concrete geometry used throughout: a hero starting at the document
// origin, occupying 1000px of scroll, 800px wide.
func testGeometry() Geometry {
	return Geometry{Top: 0, ScrollableHeight: 1000, Width: 800}
}

func TestFrameAtRest(t *testing.T) {
	c := NewChoreography(testGeometry())
	f := c.Frame(0)

	assertExact(t, "ContainerScale", f.ContainerScale, 1)
	assertExact(t, "EditorTranslateX", f.EditorTranslateX, 0)
	assertExact(t, "PreviewScaleX", f.PreviewScaleX, 1)
	assertExact(t, "InnerScale", f.InnerScale, 1)
	assertExact(t, "SlideAway", f.SlideAway, 0)
	assertExact(t, "LogoRotate", f.LogoRotate, -90)
	assertExact(t, "SubtitleOpacity", f.SubtitleOpacity, 1)
	if f.Complete {
		t.Error("frame at rest should not be complete")
	}
}

func TestFrameAtContainerEnd(t *testing.T) {
	c := NewChoreography(testGeometry())

	// 750 = 75% of the scrollable height: container curves at end values.
	f := c.Frame(750)
	assertExact(t, "ContainerScale", f.ContainerScale, 0.975)
	assertExact(t, "EditorTranslateX", f.EditorTranslateX, 400)
	assertExact(t, "PreviewScaleX", f.PreviewScaleX, 0.5)
	assertExact(t, "InnerScale", f.InnerScale, 0.5)
}

func TestFrameClampsBeyondScrollEnd(t *testing.T) {
	c := NewChoreography(testGeometry())

	f := c.Frame(5000)
	assertExact(t, "ContainerScale", f.ContainerScale, 0.975)
	assertExact(t, "EditorTranslateX", f.EditorTranslateX, 400)
	assertExact(t, "PreviewScaleX", f.PreviewScaleX, 0.5)
	assertExact(t, "InnerScale", f.InnerScale, 0.5)
	assertExact(t, "SlideAway", f.SlideAway, -1)
	assertExact(t, "LogoRotate", f.LogoRotate, 0)
	assertExact(t, "SubtitleOpacity", f.SubtitleOpacity, 0)
}

func TestRotatePlateauThenSnap(t *testing.T) {
	c := NewChoreography(testGeometry())

	// Preview breakpoints sit at 0/200/400/600/800/1000. The rotation holds
	// -90 through the first three and 0 through the last three; only the
	// 400..600 segment moves.
	assertExact(t, "rotate at 300", c.Frame(300).LogoRotate, -90)
	assertExact(t, "rotate at 400", c.Frame(400).LogoRotate, -90)
	assertNear(t, "rotate at 500", c.Frame(500).LogoRotate, -45)
	assertExact(t, "rotate at 600", c.Frame(600).LogoRotate, 0)
	assertExact(t, "rotate at 700", c.Frame(700).LogoRotate, 0)
}

func TestLogoHalvesMirrorEachOther(t *testing.T) {
	c := NewChoreography(testGeometry())

	for _, s := range []float64{0, 150, 333, 500, 801, 1000} {
		f := c.Frame(s)
		assertNear(t, "Y mirror", f.LogoLeftY, -f.LogoRightY)
	}
}

func TestLogoHalfEndpointsMatchGeometry(t *testing.T) {
	g := testGeometry()
	c := NewChoreography(g)

	// First breakpoint: halves sit a half-width plus half-side off center.
	f0 := c.Frame(0)
	assertExact(t, "LeftY start", f0.LogoLeftY, -(g.Width/2 + logoSideHeight/2.0))
	assertExact(t, "RightY start", f0.LogoRightY, g.Width/2+logoSideHeight/2.0)

	// Second breakpoint: half the subtitle width (width/4 / 2).
	f1 := c.Frame(200)
	assertExact(t, "LeftY at 20%", f1.LogoLeftY, -(g.Width / 8))

	// Fifth breakpoint: both halves converge at center.
	f4 := c.Frame(800)
	assertExact(t, "LeftY at 80%", f4.LogoLeftY, 0)
	assertExact(t, "RightY at 80%", f4.LogoRightY, 0)

	// Last breakpoint: quarter side-height overshoot.
	f5 := c.Frame(1000)
	assertExact(t, "LeftY end", f5.LogoLeftY, logoSideHeight/4.0)
	assertExact(t, "RightY end", f5.LogoRightY, -logoSideHeight/4.0)
}

func TestLogoStaticXOffsets(t *testing.T) {
	c := NewChoreography(testGeometry())

	// The X offsets are static border-width compensation, not scroll-driven.
	for _, s := range []float64{0, 250, 999} {
		f := c.Frame(s)
		assertExact(t, "LogoLeftX", f.LogoLeftX, -14)
		assertExact(t, "LogoRightX", f.LogoRightX, 14)
	}
}

func TestSlideAwaySpansTwoThirdsWidth(t *testing.T) {
	c := NewChoreography(testGeometry())

	// Span is (2/3)*800 ≈ 533.3px of scroll.
	assertExact(t, "slide start", c.Frame(0).SlideAway, 0)
	assertNear(t, "slide mid", c.Frame(800.0/3).SlideAway, -0.5)
	assertNear(t, "slide end", c.Frame(800.0*2/3).SlideAway, -1)
	assertExact(t, "slide clamped", c.Frame(700).SlideAway, -1)
}

func TestSubtitleFadesOverFirstSegment(t *testing.T) {
	c := NewChoreography(testGeometry())

	assertExact(t, "opacity at 0", c.Frame(0).SubtitleOpacity, 1)
	assertNear(t, "opacity at 100", c.Frame(100).SubtitleOpacity, 0.5)
	assertExact(t, "opacity at 200", c.Frame(200).SubtitleOpacity, 0)
	assertExact(t, "opacity at 600", c.Frame(600).SubtitleOpacity, 0)
}

func TestFrameCompletionMirrorsDetector(t *testing.T) {
	c := NewChoreography(testGeometry())

	if c.Frame(719).Complete {
		t.Error("719 < 720 threshold should not be complete")
	}
	if !c.Frame(720).Complete {
		t.Error("720 >= 0.9*800 should be complete")
	}
}

func TestDegenerateGeometryHoldsFirstFrame(t *testing.T) {
	// Content shorter than the viewport: scrollableHeight is 0 and every
	// curve must return its first value for any offset, without dividing by
	// zero.
	c := NewChoreography(Geometry{Top: 50, ScrollableHeight: 0, Width: 800})

	for _, s := range []float64{0, 50, 51, 1e6} {
		f := c.Frame(s)
		assertExact(t, "ContainerScale", f.ContainerScale, 1)
		assertExact(t, "PreviewScaleX", f.PreviewScaleX, 1)
		assertExact(t, "LogoRotate", f.LogoRotate, -90)
		assertExact(t, "SubtitleOpacity", f.SubtitleOpacity, 1)
	}
}

func TestTopOffsetShiftsBreakpoints(t *testing.T) {
	c := NewChoreography(Geometry{Top: 500, ScrollableHeight: 1000, Width: 800})

	// Before the hero top everything clamps to rest values.
	f := c.Frame(200)
	assertExact(t, "ContainerScale before top", f.ContainerScale, 1)

	// 500 + 750 is the container curve end.
	f = c.Frame(1250)
	assertExact(t, "ContainerScale at shifted end", f.ContainerScale, 0.975)
}

func TestFrameZeroAlloc(t *testing.T) {
	c := NewChoreography(testGeometry())

	result := testing.AllocsPerRun(100, func() {
		c.Frame(412.7)
	})
	if result > 0 {
		t.Errorf("Frame allocated %f times per run, want 0", result)
	}
}
