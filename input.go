package sandpack

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// inputSource abstracts the device state reads so tests can drive pointer
// input without a window.
type inputSource interface {
	CursorPosition() (x, y float64)
	MousePressed() bool
	Wheel() (dx, dy float64)
}

// ebitenInput reads the real device state.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (ebitenInput) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

// SetInputSource replaces the device-state reader. Tests use this to inject
// synthetic pointer activity.
func (s *Scene) SetInputSource(src inputSource) {
	if src == nil {
		src = ebitenInput{}
	}
	s.input = src
}

// Wheel returns this frame's scroll wheel delta.
func (s *Scene) Wheel() (dx, dy float64) {
	return s.input.Wheel()
}

// processInput dispatches pointer down/up/click to the topmost interactable
// node under the cursor. A click fires only when press and release land on
// the same node. Interactable is re-checked at release time, so a node
// disabled mid-press does not receive the click.
func (s *Scene) processInput() {
	x, y := s.input.CursorPosition()
	pressed := s.input.MousePressed()

	switch {
	case pressed && !s.pointerDown:
		s.pointerDown = true
		s.hitNode = s.hitTest(x, y)
		if s.hitNode != nil && s.hitNode.OnPointerDown != nil {
			s.hitNode.OnPointerDown(s.pointerContext(s.hitNode, x, y))
		}
	case !pressed && s.pointerDown:
		s.pointerDown = false
		target := s.hitNode
		s.hitNode = nil
		if target == nil || target.IsDisposed() || !target.Interactable {
			return
		}
		if target.OnPointerUp != nil {
			target.OnPointerUp(s.pointerContext(target, x, y))
		}
		if release := s.hitTest(x, y); release == target && target.OnClick != nil {
			target.OnClick(s.pointerContext(target, x, y))
		}
	}
}

// pointerContext builds the callback payload for a node at a global point.
func (s *Scene) pointerContext(n *Node, x, y float64) PointerContext {
	lx, ly := n.WorldToLocal(x, y)
	return PointerContext{
		Node:     n,
		UserData: n.UserData,
		GlobalX:  x,
		GlobalY:  y,
		LocalX:   lx,
		LocalY:   ly,
	}
}

// hitTest returns the topmost visible, interactable node containing the
// global point, or nil. Topmost means last in Z-sorted draw order.
func (s *Scene) hitTest(x, y float64) *Node {
	s.hitBuf = s.hitBuf[:0]
	collectHits(s.root, x, y, &s.hitBuf)
	if len(s.hitBuf) == 0 {
		return nil
	}
	return s.hitBuf[len(s.hitBuf)-1]
}

// collectHits appends hit nodes in draw order, so later entries are on top.
func collectHits(n *Node, x, y float64, out *[]*Node) {
	if !n.Visible {
		return
	}
	if n.Interactable && nodeContains(n, x, y) {
		*out = append(*out, n)
	}
	for _, child := range sortedByZ(n) {
		collectHits(child, x, y, out)
	}
}

// nodeContains tests a global point against the node's HitShape, falling
// back to its intrinsic Width x Height rectangle.
func nodeContains(n *Node, x, y float64) bool {
	lx, ly := n.WorldToLocal(x, y)
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width <= 0 || n.Height <= 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}
