package sandpack

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level object that owns the node tree, pointer state, and
// the per-frame update hook.
type Scene struct {
	root *Node

	// ClearColor fills the screen before drawing.
	ClearColor Color

	updateFunc func() error

	// Input state
	input       inputSource
	pointerDown bool
	hitNode     *Node
	hitBuf      []*Node
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:  root,
		input: ebitenInput{},
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers a callback invoked once per Update, after input
// processing. A returned error aborts the run loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update refreshes world transforms, runs per-node update callbacks,
// processes pointer input, and invokes the registered update func.
func (s *Scene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	// Refresh world transforms first so hit testing sees this frame's
	// positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	dispatchUpdate(s.root, dt)
	s.processInput()

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// dispatchUpdate runs OnUpdate callbacks depth-first.
func dispatchUpdate(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		dispatchUpdate(child, dt)
	}
}

// Draw fills the screen with ClearColor and paints the node tree in
// Z-sorted traversal order.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	// Transforms may have changed since Update (the update func typically
	// applies a choreography frame), so refresh before painting.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	drawNode(s.root, screen)
}
