package seamster

import (
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// FindVerticalSeam returns, for every row, the column of the connected
// top-to-bottom path with the lowest total energy. The grid is treated as a
// DAG: every top-row node is a source at distance zero, nodes are visited in
// topological order and each edge is relaxed once against the energy of its
// destination. The cheapest bottom-row node (leftmost on ties) anchors the
// backtrack. The grid itself is not modified. Signals ErrDegenerateGrid when
// either dimension is zero.
func (c *Carver) FindVerticalSeam() ([]int, error) {
	w, h := c.Width(), c.Height()
	if w == 0 || h == 0 {
		return nil, errors.Wrapf(ErrDegenerateGrid, "cannot trace a seam on a %dx%d grid", w, h)
	}

	size := w * h
	weights := make([]float64, size)
	distTo := make([]float64, size)
	edgeTo := make([]int, size)
	for id := 0; id < size; id++ {
		x, y := c.col(id), c.row(id)
		weights[id] = c.energyAt(x, y)
		if y == 0 {
			distTo[id] = 0
		} else {
			distTo[id] = math.Inf(1)
		}
		edgeTo[id] = -1
	}

	// Relaxation keeps the first predecessor on ties, so repeated runs over
	// the same grid yield the same seam.
	for _, id := range c.topological() {
		for _, next := range c.downward(c.col(id), c.row(id)) {
			if d := distTo[id] + weights[next]; d < distTo[next] {
				distTo[next] = d
				edgeTo[next] = id
			}
		}
	}

	end := c.node(0, h-1)
	for id := end + 1; id < size; id++ {
		if distTo[id] < distTo[end] {
			end = id
		}
	}

	seam := make([]int, h)
	for id := end; id != -1; id = edgeTo[id] {
		seam[c.row(id)] = c.col(id)
	}
	return seam, nil
}

// FindHorizontalSeam returns, for every column, the row of the cheapest
// connected left-to-right path. The grid is transposed over its main
// diagonal, scanned with FindVerticalSeam and transposed back, so both
// directions share a single relaxation routine.
func (c *Carver) FindHorizontalSeam() ([]int, error) {
	if c.Width() == 0 || c.Height() == 0 {
		return nil, errors.Wrapf(ErrDegenerateGrid, "cannot trace a seam on a %dx%d grid", c.Width(), c.Height())
	}
	c.transpose()
	seam, err := c.FindVerticalSeam()
	c.transpose()
	return seam, err
}

// transpose mirrors the grid over its main diagonal: pixel (x, y) moves to
// (y, x). Applying it twice restores the grid byte for byte.
func (c *Carver) transpose() {
	c.img = imaging.Transpose(c.img)
}
