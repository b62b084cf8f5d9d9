package sandpack

// Fixed design-unit pixel values at 2x density.
const (
	// logoSideHeight is the rendered height of each logo half.
	logoSideHeight = 320
	// logoBorderWidth is the stroke width of the logo outline. Each half is
	// offset horizontally by half of it so the two halves meet exactly at
	// center when the closing rotation finishes.
	logoBorderWidth = 28
)

// containerEndFraction is where, as a fraction of the scrollable height, the
// two-point container curves reach their end values.
const containerEndFraction = 0.75

// slideSpanFraction of the hero width is the scroll distance over which the
// logo composition slides fully away.
const slideSpanFraction = 2.0 / 3.0

// Frame is the complete set of output parameters for one scroll offset: one
// value per animated transform, plus the completion flag. The rendering
// layer applies each field to its designated element.
type Frame struct {
	// ContainerScale is the uniform scale of the whole hero container.
	ContainerScale float64
	// SlideAway is the horizontal displacement of the logo composition as a
	// fraction of the hero width: 0 in place, -1 fully slid away.
	SlideAway float64
	// EditorTranslateX shifts the editor pane rightward, in pixels.
	EditorTranslateX float64
	// PreviewScaleX is the horizontal scale of the static preview pane.
	PreviewScaleX float64
	// InnerScale is the uniform scale of the preview pane's inner content.
	InnerScale float64
	// LogoRotate is the logo rotation in degrees. Held at -90 through the
	// first half of the scroll, 0 through the second.
	LogoRotate float64
	// LogoLeftX and LogoRightX are static horizontal offsets of the two logo
	// halves; they do not vary with scroll.
	LogoLeftX, LogoRightX float64
	// LogoLeftY and LogoRightY are the vertical offsets of the two halves.
	LogoLeftY, LogoRightY float64
	// SubtitleOpacity fades the subtitle out over the first preview segment.
	SubtitleOpacity float64
	// Complete mirrors the completion flag at this offset.
	Complete bool
}

// Choreography holds the breakpoint curves for one measured Geometry. All
// curves are derived once at construction; computing a Frame is pure
// interpolation. Rebuild the Choreography when the geometry changes.
type Choreography struct {
	geom Geometry

	containerScale Curve
	slideAway      Curve
	editorX        Curve
	previewScaleX  Curve
	innerScale     Curve
	logoRotate     Curve
	logoLeftY      Curve
	logoRightY     Curve
	subtitleAlpha  Curve
}

// NewChoreography derives the curve set from a measured geometry.
//
// Two breakpoint families exist: a two-point "container" set spanning the
// first 75% of the scrollable height, and a six-point "preview" set
// subdividing the full scrollable height at 20% intervals. The slide-away
// curve uses its own two-point span of two thirds of the hero width. With a
// scrollable height of zero every breakpoint collapses to Top and each curve
// degenerates to its first output value.
func NewChoreography(geom Geometry) *Choreography {
	top := geom.Top
	sh := geom.ScrollableHeight
	w := geom.Width

	container := []float64{top, top + sh*containerEndFraction}
	preview := []float64{
		top,
		top + sh*0.2,
		top + sh*0.4,
		top + sh*0.6,
		top + sh*0.8,
		top + sh,
	}
	slide := []float64{top, top + w*slideSpanFraction}

	subtitleWidth := w / 4
	side := float64(logoSideHeight)

	return &Choreography{
		geom: geom,

		containerScale: NewCurve(container, []float64{1, 0.975}),
		slideAway:      NewCurve(slide, []float64{0, -1}),
		editorX:        NewCurve(container, []float64{0, w / 2}),
		previewScaleX:  NewCurve(container, []float64{1, 0.5}),
		innerScale:     NewCurve(container, []float64{1, 0.5}),

		logoRotate: NewCurve(preview, []float64{-90, -90, -90, 0, 0, 0}),
		logoLeftY: NewCurve(preview, []float64{
			-(w/2 + side/2),
			-(subtitleWidth / 2),
			-(side / 4),
			-(side / 4),
			0,
			side / 4,
		}),
		logoRightY: NewCurve(preview, []float64{
			w/2 + side/2,
			subtitleWidth / 2,
			side / 4,
			side / 4,
			0,
			-(side / 4),
		}),
		subtitleAlpha: NewCurve(preview, []float64{1, 0, 0, 0, 0, 0}),
	}
}

// Geometry returns the geometry the curves were derived from.
func (c *Choreography) Geometry() Geometry {
	return c.geom
}

// Frame computes every output parameter for the given scroll offset.
func (c *Choreography) Frame(offset float64) Frame {
	return Frame{
		ContainerScale:   c.containerScale.At(offset),
		SlideAway:        c.slideAway.At(offset),
		EditorTranslateX: c.editorX.At(offset),
		PreviewScaleX:    c.previewScaleX.At(offset),
		InnerScale:       c.innerScale.At(offset),
		LogoRotate:       c.logoRotate.At(offset),
		LogoLeftX:        -logoBorderWidth / 2.0,
		LogoRightX:       logoBorderWidth / 2.0,
		LogoLeftY:        c.logoLeftY.At(offset),
		LogoRightY:       c.logoRightY.At(offset),
		SubtitleOpacity:  c.subtitleAlpha.At(offset),
		Complete:         Complete(offset, c.geom.Width),
	}
}
