package qtree

// Forest is a grid of root nodes tiling the domain
// [0.5, width+0.5) x [0.5, height+0.5). Root (col, row) is a unit cell
// centered on (col+1, row+1). Roots never overlap, so each root's subtree
// is fully independent of the others.
type Forest struct {
	Width, Height int
	roots         []Node
}

// New creates a forest of width*height empty unit roots. Each root buffers
// points in chunks of the given size.
func New(width, height, chunk int) *Forest {
	roots := make([]Node, width*height)
	for n := range roots {
		roots[n].X = float64(n%width + 1)
		roots[n].Y = float64(n/width + 1)
		roots[n].W = 1
		roots[n].H = 1
		roots[n].buf.chunk = chunk
	}
	return &Forest{Width: width, Height: height, roots: roots}
}

// Root returns the root node for cell (col, row).
func (f *Forest) Root(col, row int) *Node {
	return &f.roots[row*f.Width+col]
}

// Insert adds p to the root cell that covers it and reports whether p was
// inside the domain. Non-finite coordinates fail the bounds test and are
// dropped. Valid only before Refine.
func (f *Forest) Insert(p Point) bool {
	if !(p.X >= 0.5 && p.X < float64(f.Width)+0.5) {
		return false
	}
	if !(p.Y >= 0.5 && p.Y < float64(f.Height)+0.5) {
		return false
	}
	col := int(p.X - 0.5)
	row := int(p.Y - 0.5)
	f.roots[row*f.Width+col].Insert(p)
	return true
}

// Refine refines every root independently. See Node.Refine.
func (f *Forest) Refine(limit, maxDepth int) {
	for n := range f.roots {
		f.roots[n].Refine(limit, maxDepth)
	}
}

// ForEachLeaf visits the leaves of every root, roots in row-major order.
// The iterator can return false to stop early; ForEachLeaf reports whether
// the walk ran to completion.
func (f *Forest) ForEachLeaf(iter func(leaf *Node) bool) bool {
	for n := range f.roots {
		if !f.roots[n].ForEachLeaf(iter) {
			return false
		}
	}
	return true
}

// Leaves collects every leaf across all roots in traversal order.
func (f *Forest) Leaves() []*Node {
	var leaves []*Node
	f.ForEachLeaf(func(leaf *Node) bool {
		leaves = append(leaves, leaf)
		return true
	})
	return leaves
}

// Count returns the total number of points across all roots.
func (f *Forest) Count() int {
	count := 0
	for n := range f.roots {
		count += f.roots[n].Count()
	}
	return count
}

// Destroy releases every root's subtree. The forest must not be used
// afterwards.
func (f *Forest) Destroy() {
	for n := range f.roots {
		f.roots[n].Destroy()
	}
	f.roots = nil
}
