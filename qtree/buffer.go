package qtree

// pointBuffer accumulates the points assigned to a leaf node. Capacity grows
// in fixed chunks so a steady stream of inserts reallocates once per chunk
// rather than once per point. Storage may move on append; never hold on to
// the points slice across an append.
type pointBuffer struct {
	chunk  int
	points []Point
}

// append adds p to the end of the buffer. If growing the backing array fails
// the runtime aborts the process; there is no recovery path for the caller.
func (b *pointBuffer) append(p Point) {
	if len(b.points) == cap(b.points) {
		chunk := b.chunk
		if chunk < 1 {
			chunk = 1
		}
		points := make([]Point, len(b.points), cap(b.points)+chunk)
		copy(points, b.points)
		b.points = points
	}
	b.points = append(b.points, p)
}
