package seamster

import "github.com/pkg/errors"

// The grid doubles as an implicit directed acyclic graph: every pixel is a
// node identified by its row-major index, with edges to the up to three pixels
// a seam can continue through on the row below. Nothing is materialized; both
// the id mapping and the adjacency are recomputed from plain index arithmetic,
// so the graph is trivially re-derived every time the grid is replaced.

// node maps grid coordinates to the row-major node id.
func (c *Carver) node(x, y int) int {
	return y*c.Width() + x
}

// col recovers the column of a node id.
func (c *Carver) col(id int) int {
	return id % c.Width()
}

// row recovers the row of a node id.
func (c *Carver) row(id int) int {
	return id / c.Width()
}

// adjacent returns the node ids reachable from id, ordered left to right.
// Nodes on the last row have no outgoing edges. Signals ErrOutOfRange when id
// does not address a pixel inside the grid.
func (c *Carver) adjacent(id int) ([]int, error) {
	if id < 0 || id >= c.Width()*c.Height() {
		return nil, errors.Wrapf(ErrOutOfRange, "node %d", id)
	}
	return c.downward(c.col(id), c.row(id)), nil
}

// downward lists the downward neighbors of an in-range (x, y).
func (c *Carver) downward(x, y int) []int {
	if y == c.Height()-1 {
		return nil
	}
	next := make([]int, 0, 3)
	if x > 0 {
		next = append(next, c.node(x-1, y+1))
	}
	next = append(next, c.node(x, y+1))
	if x < c.Width()-1 {
		next = append(next, c.node(x+1, y+1))
	}
	return next
}

// topological returns every node id ordered so that each edge points from an
// earlier entry to a later one. All edges lead exactly one row down, so a
// reversed depth-first postorder does.
func (c *Carver) topological() []int {
	size := c.Width() * c.Height()
	marked := make([]bool, size)
	order := make([]int, 0, size)
	for id := 0; id < size; id++ {
		if !marked[id] {
			order = c.dfs(id, marked, order)
		}
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// dfs appends the subgraph below id to order in postorder. Recursion depth is
// bounded by the grid height.
func (c *Carver) dfs(id int, marked []bool, order []int) []int {
	marked[id] = true
	for _, next := range c.downward(c.col(id), c.row(id)) {
		if !marked[next] {
			order = c.dfs(next, marked, order)
		}
	}
	return append(order, id)
}
