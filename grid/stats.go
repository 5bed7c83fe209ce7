package grid

import (
	"math"

	"github.com/google/btree"
	"github.com/ntessore/lensgrid/qtree"
)

// countItem is one entry of the leaf count distribution, keyed by count.
type countItem struct {
	count  int
	leaves int
}

func (a *countItem) Less(b btree.Item) bool {
	return a.count < b.(*countItem).count
}

// Stats summarizes the leaves of a built grid.
type Stats struct {
	Leaves      int
	Points      int
	MaxDepth    int
	MinCount    int
	MaxCount    int
	MedianCount int
}

// Stats walks every leaf once and aggregates the count distribution in an
// ordered tree, so the min, max, and median fall out of a single ascent.
func (g *Grid) Stats() Stats {
	var st Stats
	tr := btree.New(16)
	g.Forest.ForEachLeaf(func(leaf *qtree.Node) bool {
		st.Leaves++
		st.Points += leaf.Len()
		if d := leafDepth(leaf); d > st.MaxDepth {
			st.MaxDepth = d
		}
		item := &countItem{count: leaf.Len()}
		if v := tr.Get(item); v != nil {
			v.(*countItem).leaves++
		} else {
			item.leaves = 1
			tr.ReplaceOrInsert(item)
		}
		return true
	})
	if st.Leaves == 0 {
		return st
	}
	st.MinCount = tr.Min().(*countItem).count
	st.MaxCount = tr.Max().(*countItem).count
	mid := (st.Leaves + 1) / 2
	seen := 0
	tr.Ascend(func(item btree.Item) bool {
		v := item.(*countItem)
		seen += v.leaves
		if seen >= mid {
			st.MedianCount = v.count
			return false
		}
		return true
	})
	return st
}

// leafDepth is the number of halvings from a unit root down to the leaf.
func leafDepth(leaf *qtree.Node) int {
	return int(math.Round(-math.Log2(leaf.W)))
}
