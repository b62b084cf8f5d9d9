package sandpack

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HitShape is a custom hit testing region in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data delivered to node callbacks.
type PointerContext struct {
	Node     *Node
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// nodeIDCounter is a plain counter; the package is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a scene element with a persistent identity. Every animated hero
// element is one Node created at mount and mutated in place, so transform
// interpolation stays continuous across frames instead of restarting from a
// default pose. A single flat struct serves all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Computed during traversal
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Intrinsic size of box and label nodes, in local units.
	Width, Height float64

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Ordering among siblings; higher draws on top.
	ZIndex int

	// Appearance
	Color Color
	image *ebiten.Image // label raster or user-provided canvas

	// Hit testing; nil falls back to the node's Width x Height rectangle.
	HitShape HitShape

	// Metadata
	UserData any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnUpdate      func(dt float64)
	OnPointerDown func(PointerContext)
	OnPointerUp   func(PointerContext)
	OnClick       func(PointerContext)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a solid-color rectangle node of the given size.
func NewBox(name string, width, height float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewLabel creates a text node. The text is rasterized once with the debug
// font; labels here are structural markers (logo halves, subtitle, pane
// titles), not a text layout system.
func NewLabel(name, text string) *Node {
	w := len(text)*6 + 2
	h := 16
	img := ebiten.NewImage(max(w, 1), h)
	ebitenutil.DebugPrint(img, text)

	n := &Node{
		Name:   name,
		Type:   NodeTypeLabel,
		Width:  float64(w),
		Height: float64(h),
		image:  img,
	}
	nodeDefaults(n)
	return n
}

// SetImage attaches a user-provided canvas drawn in place of the solid color.
func (n *Node) SetImage(img *ebiten.Image) {
	n.image = img
	if img != nil {
		b := img.Bounds()
		n.Width = float64(b.Dx())
		n.Height = float64(b.Dy())
	}
}

// Image returns the node's attached image, or nil.
func (n *Node) Image() *ebiten.Image {
	return n.image
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sandpack: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("sandpack: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sandpack: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, and
// recursively disposes all descendants. Callbacks are cleared so no listener
// outlives the node.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.HitShape = nil
	n.image = nil
	n.UserData = nil
	n.OnUpdate = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnClick = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
