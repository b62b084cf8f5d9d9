package sandpack

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// defaultWheelSpeed is the scroll distance, in pixels, of one wheel notch.
const defaultWheelSpeed = 60

// ScrollView owns the hero's scroll offset. The offset is clamped to
// [0, Max]; wheel input nudges it and ScrollTo animates it with a gween
// tween. Every effective change is reported through OnScroll.
type ScrollView struct {
	offset float64
	max    float64

	// WheelSpeed is the pixel distance of one wheel notch.
	WheelSpeed float64

	// OnScroll, if set, is invoked after each effective offset change.
	OnScroll func(offset float64)

	tween *gween.Tween
}

// NewScrollView creates a scroll view spanning [0, max].
func NewScrollView(max float64) *ScrollView {
	return &ScrollView{
		max:        max,
		WheelSpeed: defaultWheelSpeed,
	}
}

// Offset returns the current scroll offset.
func (v *ScrollView) Offset() float64 {
	return v.offset
}

// Max returns the scrollable distance.
func (v *ScrollView) Max() float64 {
	return v.max
}

// SetMax updates the scrollable distance after a resize, re-clamping the
// current offset. An in-flight ScrollTo keeps running toward its (clamped)
// target.
func (v *ScrollView) SetMax(m float64) {
	if m < 0 {
		m = 0
	}
	v.max = m
	v.SetOffset(v.offset)
}

// SetOffset jumps to the given offset, clamped to [0, Max], firing OnScroll
// if the effective value changed.
func (v *ScrollView) SetOffset(offset float64) {
	if offset < 0 {
		offset = 0
	}
	if offset > v.max {
		offset = v.max
	}
	if offset == v.offset {
		return
	}
	v.offset = offset
	if v.OnScroll != nil {
		v.OnScroll(offset)
	}
}

// ScrollBy nudges the offset by delta pixels. Manual scrolling cancels any
// in-flight ScrollTo animation.
func (v *ScrollView) ScrollBy(delta float64) {
	if delta == 0 {
		return
	}
	v.tween = nil
	v.SetOffset(v.offset + delta)
}

// ScrollTo animates the offset to target over duration seconds.
func (v *ScrollView) ScrollTo(target float64, duration float32, easeFn ease.TweenFunc) {
	if target < 0 {
		target = 0
	}
	if target > v.max {
		target = v.max
	}
	if duration <= 0 {
		v.tween = nil
		v.SetOffset(target)
		return
	}
	v.tween = gween.New(float32(v.offset), float32(target), duration, easeFn)
}

// Update advances an in-flight scroll animation by dt seconds.
func (v *ScrollView) Update(dt float32) {
	if v.tween == nil {
		return
	}
	val, done := v.tween.Update(dt)
	if done {
		v.tween = nil
	}
	v.SetOffset(float64(val))
}

// Scrolling reports whether a ScrollTo animation is in flight.
func (v *ScrollView) Scrolling() bool {
	return v.tween != nil
}
