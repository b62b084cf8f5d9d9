package sandpack

// Geometry is the measured layout of the hero container: its top offset from
// the document origin, the scroll distance it occupies, and its rendered
// width. All three are non-negative. A Geometry is always replaced as a whole
// triple so curves are never derived from a stale mix of old and new values.
type Geometry struct {
	Top              float64
	ScrollableHeight float64
	Width            float64
}

// Layout is the measurement source for a hero container. The rendering layer
// implements it; measurements are read after layout has settled.
type Layout interface {
	// OffsetTop is the distance from the document origin to the element top.
	OffsetTop() float64
	// OffsetHeight is the element's total rendered height.
	OffsetHeight() float64
	// OffsetWidth is the element's rendered width.
	OffsetWidth() float64
	// Attached reports whether the element currently exists in the layout.
	// Unattached elements cannot be measured.
	Attached() bool
}

// Measure reads a Layout into a Geometry. The scrollable height is the
// element height minus the viewport height, floored at zero (content shorter
// than the viewport has no scroll distance). Returns ok=false when the
// element is not attached; the caller retries on the next resize or mount
// tick.
func Measure(el Layout, viewportHeight float64) (Geometry, bool) {
	if el == nil || !el.Attached() {
		return Geometry{}, false
	}
	g := Geometry{
		Top:              max(0, el.OffsetTop()),
		ScrollableHeight: max(0, el.OffsetHeight()-viewportHeight),
		Width:            max(0, el.OffsetWidth()),
	}
	return g, true
}

// resizeQuiescence is how long a resize burst must stay quiet before the
// geometry is remeasured. Continuous window dragging produces resize events
// far faster than this, so measurement happens once per drag, not per event.
const resizeQuiescence = 0.3

// GeometryTracker holds the current Geometry and remeasures it through a
// trailing debounce whenever the viewport resizes. The stored Geometry only
// changes when at least one of the three numbers actually moved, so
// downstream curve rebuilds are skipped for no-op resizes.
type GeometryTracker struct {
	geom     Geometry
	el       Layout
	viewport float64
	debounce *Debouncer

	// OnChange, if set, is invoked with the new Geometry after a commit.
	OnChange func(Geometry)
}

// NewGeometryTracker creates a tracker with the default 300ms resize
// quiescence window.
func NewGeometryTracker() *GeometryTracker {
	t := &GeometryTracker{}
	t.debounce = NewDebouncer(resizeQuiescence, t.commit)
	return t
}

// Geometry returns the current measured geometry. Zero until the first
// successful measurement.
func (t *GeometryTracker) Geometry() Geometry {
	return t.geom
}

// Mount measures immediately, bypassing the debounce. Call once after the
// initial layout.
func (t *GeometryTracker) Mount(el Layout, viewportHeight float64) {
	t.el = el
	t.viewport = viewportHeight
	t.commit()
}

// Resize records the latest measurement inputs and arms the debounce. The
// measurement itself happens in Update once the burst goes quiet, using the
// last inputs seen.
func (t *GeometryTracker) Resize(el Layout, viewportHeight float64) {
	t.el = el
	t.viewport = viewportHeight
	t.debounce.Call()
}

// Update advances the resize debounce by dt seconds.
func (t *GeometryTracker) Update(dt float64) {
	t.debounce.Update(dt)
}

// commit remeasures and stores the geometry if any component changed.
func (t *GeometryTracker) commit() {
	g, ok := Measure(t.el, t.viewport)
	if !ok {
		return
	}
	if g == t.geom {
		return
	}
	t.geom = g
	if t.OnChange != nil {
		t.OnChange(g)
	}
}
