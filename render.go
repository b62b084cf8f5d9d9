package sandpack

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawNode paints a node and its children depth-first. Children are visited
// in ZIndex order, stable within equal indices.
func drawNode(n *Node, screen *ebiten.Image) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}

	switch n.Type {
	case NodeTypeBox:
		drawBox(n, screen)
	case NodeTypeLabel:
		drawImage(n, screen)
	}

	for _, child := range sortedByZ(n) {
		drawNode(child, screen)
	}
}

// drawBox stretches the shared white pixel to the node's Width x Height,
// tinted with the node's color and world alpha.
func drawBox(n *Node, screen *ebiten.Image) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	if n.image != nil {
		drawImage(n, screen)
		return
	}

	var op ebiten.DrawImageOptions
	m := n.worldTransform
	op.GeoM.SetElement(0, 0, m[0]*n.Width)
	op.GeoM.SetElement(1, 0, m[1]*n.Width)
	op.GeoM.SetElement(0, 1, m[2]*n.Height)
	op.GeoM.SetElement(1, 1, m[3]*n.Height)
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])

	a := n.worldAlpha
	op.ColorScale.Scale(
		float32(n.Color.R*a),
		float32(n.Color.G*a),
		float32(n.Color.B*a),
		float32(n.Color.A*a),
	)
	screen.DrawImage(WhitePixel, &op)
}

// drawImage draws the node's attached image at its natural size under the
// node's world transform.
func drawImage(n *Node, screen *ebiten.Image) {
	if n.image == nil {
		return
	}
	var op ebiten.DrawImageOptions
	m := n.worldTransform
	op.GeoM.SetElement(0, 0, m[0])
	op.GeoM.SetElement(1, 0, m[1])
	op.GeoM.SetElement(0, 1, m[2])
	op.GeoM.SetElement(1, 1, m[3])
	op.GeoM.SetElement(0, 2, m[4])
	op.GeoM.SetElement(1, 2, m[5])

	a := float32(n.worldAlpha)
	op.ColorScale.ScaleAlpha(a)
	screen.DrawImage(n.image, &op)
}

// sortedByZ returns the node's children in ZIndex order. The sorted slice is
// cached on the node and only rebuilt after a ZIndex or child-list change.
func sortedByZ(n *Node) []*Node {
	if len(n.children) == 0 {
		return nil
	}
	if n.childrenSorted && len(n.sortedChildren) == len(n.children) {
		return n.sortedChildren
	}
	n.sortedChildren = append(n.sortedChildren[:0], n.children...)
	sort.SliceStable(n.sortedChildren, func(i, j int) bool {
		return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
	})
	n.childrenSorted = true
	return n.sortedChildren
}
