package grid

import (
	"fmt"
	"io"

	"github.com/ntessore/lensgrid/qtree"
	"github.com/tidwall/tinyqueue"
)

// WriteTable writes one fixed-width row per leaf: a running counter, the
// cell center, the cell extent, and the point count. Rows come out in the
// forest's deterministic leaf order.
func (g *Grid) WriteTable(w io.Writer) error {
	var err error
	counter := 0
	g.Forest.ForEachLeaf(func(leaf *qtree.Node) bool {
		counter++
		_, err = fmt.Fprintf(w, "%10d%10g%10g%10g%10g%10d\n",
			counter, leaf.X, leaf.Y, leaf.W, leaf.H, leaf.Len())
		return err == nil
	})
	return err
}

type queueItem struct {
	leaf *qtree.Node
}

func (item *queueItem) Less(b tinyqueue.Item) bool {
	return item.leaf.Len() < b.(*queueItem).leaf.Len()
}

// TopLeaves returns the k leaves holding the most points, densest first.
// A min-queue of size k keeps the selection at one pass over the leaves.
func (g *Grid) TopLeaves(k int) []*qtree.Node {
	if k <= 0 {
		return nil
	}
	queue := tinyqueue.New(nil)
	g.Forest.ForEachLeaf(func(leaf *qtree.Node) bool {
		queue.Push(&queueItem{leaf: leaf})
		if queue.Len() > k {
			queue.Pop()
		}
		return true
	})
	leaves := make([]*qtree.Node, queue.Len())
	for i := len(leaves) - 1; i >= 0; i-- {
		leaves[i] = queue.Pop().(*queueItem).leaf
	}
	return leaves
}

// WriteTop writes the k densest leaves in the table row format.
func (g *Grid) WriteTop(w io.Writer, k int) error {
	for i, leaf := range g.TopLeaves(k) {
		_, err := fmt.Fprintf(w, "%10d%10g%10g%10g%10g%10d\n",
			i+1, leaf.X, leaf.Y, leaf.W, leaf.H, leaf.Len())
		if err != nil {
			return err
		}
	}
	return nil
}
