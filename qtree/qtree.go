package qtree

// Point is a position in the plane
type Point struct {
	X, Y float64
}

// DefaultMaxDepth is the subdivision cap used when a caller passes a
// non-positive depth to Refine. 48 halvings of a unit cell is already far
// below float64 resolution, so the cap only matters for degenerate input
// where every point in a cell is identical and no subdivision can thin
// the count.
const DefaultMaxDepth = 48

// Node is one cell of the adaptive grid. A node covers the rectangle of
// extent (W, H) centered on (X, Y). It is either a leaf holding points
// directly, or it has been subdivided into exactly four quadrant children
// and holds no points of its own.
type Node struct {
	X, Y float64 // center
	W, H float64 // extent

	children *[4]Node
	buf      pointBuffer
}

// NewRoot returns an empty leaf node covering the box of extent (w, h)
// centered on (x, y). Points are buffered in chunks of the given size.
func NewRoot(x, y, w, h float64, chunk int) *Node {
	return &Node{X: x, Y: y, W: w, H: h, buf: pointBuffer{chunk: chunk}}
}

// IsLeaf reports whether the node holds points directly.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Len returns the number of points held directly by the node. Zero for
// subdivided nodes, whose points live in their leaves.
func (n *Node) Len() int {
	return len(n.buf.points)
}

// Insert adds p to the node's point buffer. The node must not have been
// subdivided.
func (n *Node) Insert(p Point) {
	if n.children != nil {
		panic("qtree: insert into subdivided node")
	}
	n.buf.append(p)
}

// quadrant returns the child index for p. Points exactly on a center line
// go to the low quadrant.
func (n *Node) quadrant(p Point) int {
	i, j := 0, 0
	if p.X > n.X {
		i = 1
	}
	if p.Y > n.Y {
		j = 1
	}
	return j*2 + i
}

// Refine recursively subdivides the node until every leaf in its subtree
// holds at most limit points or sits maxDepth levels down. Subdividing
// moves each buffered point into the quadrant child that covers it; the
// four children exactly tile the parent box with half extents. A
// non-positive maxDepth means DefaultMaxDepth. Refine must run once per
// node, before the node has children.
func (n *Node) Refine(limit, maxDepth int) {
	if n.children != nil {
		panic("qtree: refine on subdivided node")
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	n.refine(limit, maxDepth)
}

func (n *Node) refine(limit, depth int) {
	if len(n.buf.points) <= limit || depth <= 0 {
		return
	}
	children := new([4]Node)
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			child := &children[j*2+i]
			child.X = n.X + float64(2*i-1)*0.25*n.W
			child.Y = n.Y + float64(2*j-1)*0.25*n.H
			child.W = 0.5 * n.W
			child.H = 0.5 * n.H
			child.buf.chunk = n.buf.chunk
		}
	}
	for _, p := range n.buf.points {
		children[n.quadrant(p)].buf.append(p)
	}
	n.children = children
	n.buf.points = nil
	for k := range children {
		children[k].refine(limit, depth-1)
	}
}

// ForEachLeaf visits every leaf in the subtree exactly once, children in
// quadrant order 0,1,2,3 (x-major within y-major). The iterator can return
// false to stop early; ForEachLeaf reports whether the walk ran to
// completion. The order is stable for an unmodified tree.
func (n *Node) ForEachLeaf(iter func(leaf *Node) bool) bool {
	if n.children != nil {
		for k := range n.children {
			if !n.children[k].ForEachLeaf(iter) {
				return false
			}
		}
		return true
	}
	return iter(n)
}

// Count returns the total number of points in the subtree.
func (n *Node) Count() int {
	if n.children == nil {
		return len(n.buf.points)
	}
	count := 0
	for k := range n.children {
		count += n.children[k].Count()
	}
	return count
}

// Destroy releases the subtree. The node returns to an empty leaf; any
// children and buffered points become garbage.
func (n *Node) Destroy() {
	if n.children != nil {
		for k := range n.children {
			n.children[k].Destroy()
		}
		n.children = nil
	}
	n.buf.points = nil
}
