package sandpack

// completionFraction of the hero width the scroll must pass before the live
// editor takes over from the static preview.
const completionFraction = 0.9

// Complete reports whether the scroll offset has passed the completion
// threshold for a hero of the given width.
func Complete(offset, width float64) bool {
	return offset >= width*completionFraction
}

// CompletionDetector tracks the completion flag across scroll events and
// notifies only when the flag flips, so downstream toggles (pointer
// interactivity, preview stacking) are not re-applied on every scroll tick.
type CompletionDetector struct {
	width    float64
	offset   float64
	complete bool

	// OnChange, if set, is invoked with the new flag value on each flip.
	OnChange func(bool)
}

// NewCompletionDetector creates a detector for a hero of the given width.
func NewCompletionDetector(width float64) *CompletionDetector {
	return &CompletionDetector{width: width}
}

// Complete returns the current flag value.
func (d *CompletionDetector) Complete() bool {
	return d.complete
}

// Observe feeds a scroll offset to the detector, firing OnChange if the
// flag flipped.
func (d *CompletionDetector) Observe(offset float64) {
	d.offset = offset
	d.evaluate()
}

// SetWidth updates the threshold after a resize and re-evaluates against the
// last observed offset.
func (d *CompletionDetector) SetWidth(width float64) {
	d.width = width
	d.evaluate()
}

func (d *CompletionDetector) evaluate() {
	c := Complete(d.offset, d.width)
	if c == d.complete {
		return
	}
	d.complete = c
	if d.OnChange != nil {
		d.OnChange(c)
	}
}
