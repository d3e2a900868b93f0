package floodfill

// neighborOffsets lists the 4-directional adjacency in the fixed
// examination order: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Fill colors exactly one maximal connected region of navigable cells
// reachable from start, setting every cell of the region to label.
// Adjacency is 4-directional (no diagonals).
//
// Preconditions degrade to a false return with zero mutation — they are
// "nothing to do here", not failures:
//   - start out of bounds,
//   - the start cell is not Navigable (an obstacle or already labeled),
//   - label below FirstLabel (a label that aliases a cell state could
//     never terminate or would corrupt the grid).
//
// On a true return, every cell that was reachable from start through
// Navigable cells now holds label; no other cell is modified; obstacles
// are never touched. The grid is mutated in place.
//
// Complexity: O(R×C) time and worklist memory — cells are marked on
// enqueue, so each cell is enqueued at most once.
func Fill(g *Grid, start Position, label int, opts ...Option) bool {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return fill(g, start, label, &o)
}

// fill is the shared worker behind Fill and ColorAll, taking resolved
// options so ColorAll parses its Option list exactly once.
func fill(g *Grid, start Position, label int, o *Options) bool {
	if g == nil || !g.InBounds(start) {
		return false
	}
	if g.At(start) != Navigable {
		return false
	}
	if label < FirstLabel {
		return false
	}

	// Mark on enqueue: the start cell is colored before it enters the
	// worklist, guaranteeing no cell is ever enqueued twice.
	g.Set(start, label)
	o.OnColor(start, label)
	queue := []Position{start}

	for qi := 0; qi < len(queue); qi++ {
		p := queue[qi]
		for _, d := range neighborOffsets {
			n := Position{Row: p.Row + d[0], Col: p.Col + d[1]}
			if !g.InBounds(n) || g.At(n) != Navigable {
				continue
			}
			g.Set(n, label)
			o.OnColor(n, label)
			queue = append(queue, n)
		}
	}
	o.OnRegion(start, label, len(queue))

	return true
}
