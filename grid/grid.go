package grid

import (
	"time"

	"github.com/ntessore/lensgrid/core"
	"github.com/ntessore/lensgrid/lens"
	"github.com/ntessore/lensgrid/log"
	"github.com/ntessore/lensgrid/qtree"
)

// Reference configuration. A 20x20 cell domain shot with a 10x10 ray
// bundle per cell, refining any leaf holding more than Thresh*N*N points.
const (
	DefaultWidth    = 20
	DefaultHeight   = 20
	DefaultN        = 10
	DefaultThresh   = 1.0
	DefaultMaxDepth = qtree.DefaultMaxDepth
)

// DefaultLens is the reference lens model.
var DefaultLens = lens.SIE{X: 11.23, Y: 9.87, B: 6.34, PA: 34.56, Q: 0.78}

// Options control a grid build. The zero value of a field selects the
// package default; Transform defaults to the identity.
type Options struct {
	Width, Height int            // domain size in cells
	N             int            // rays per cell side
	Thresh        float64        // refinement threshold factor
	MaxDepth      int            // subdivision cap per root
	Transform     lens.Transform // image plane -> source plane
}

// DefaultOptions returns the reference configuration with the reference
// lens model.
func DefaultOptions() Options {
	return Options{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		N:         DefaultN,
		Thresh:    DefaultThresh,
		MaxDepth:  DefaultMaxDepth,
		Transform: DefaultLens.Deflect,
	}
}

func (opts *Options) fill() {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.N <= 0 {
		opts.N = DefaultN
	}
	if opts.Thresh <= 0 {
		opts.Thresh = DefaultThresh
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Transform == nil {
		opts.Transform = lens.Identity
	}
}

// limit is the leaf point count above which a cell subdivides.
func (opts *Options) limit() int {
	return int(opts.Thresh * float64(opts.N*opts.N))
}

// Tally counts the rays traced during a build.
type Tally struct {
	Shot    int // rays shot through the transform
	Escaped int // rays that left the domain or went non-finite
	Kept    int // rays inserted into the forest
}

// Grid is a built source-plane grid.
type Grid struct {
	Forest  *qtree.Forest
	Opts    Options
	Tally   Tally
	Elapsed time.Duration
}

// Build traces an N x N ray bundle through every cell of the domain,
// collects the surviving rays into the forest root that covers their
// source-plane position, and refines every root. Rays that land outside
// [0.5, W+0.5) x [0.5, H+0.5), or that the transform maps to non-finite
// coordinates, are dropped.
func Build(opts Options) *Grid {
	opts.fill()
	start := time.Now()
	w, h, n := opts.Width, opts.Height, opts.N
	forest := qtree.New(w, h, n)
	var tally Tally
	for cell := 0; cell < w*h; cell++ {
		for k := 0; k < n*n; k++ {
			p := qtree.Point{
				X: float64(cell%w) + 0.5 + (float64(k%n)+0.5)/float64(n),
				Y: float64(cell/w) + 0.5 + (float64(k/n)+0.5)/float64(n),
			}
			p = opts.Transform(p)
			tally.Shot++
			if !forest.Insert(p) {
				tally.Escaped++
				continue
			}
			tally.Kept++
		}
	}
	if core.ShowDebugMessages {
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				log.Debugf("cell (%d,%d): %d rays", col, row, forest.Root(col, row).Len())
			}
		}
	}
	forest.Refine(opts.limit(), opts.MaxDepth)
	return &Grid{
		Forest:  forest,
		Opts:    opts,
		Tally:   tally,
		Elapsed: time.Since(start),
	}
}

// Destroy releases the forest. The grid must not be used afterwards.
func (g *Grid) Destroy() {
	g.Forest.Destroy()
}
