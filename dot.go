package seamster

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/pkg/errors"
)

// maxGraphNodes caps the size of an exported graph. The pixel DAG of a real
// photograph is far too large to lay out or read; the export exists to
// inspect small grids.
const maxGraphNodes = 4096

// WriteDOT dumps the grid's implicit DAG to w as a graphviz document. Every
// pixel becomes a node labeled with its coordinate and energy, rows are
// pinned to the same rank so the drawing keeps the grid shape, and each edge
// points at a pixel the seam may continue through. Signals ErrDegenerateGrid
// on an empty grid and refuses grids above maxGraphNodes nodes.
func (c *Carver) WriteDOT(w io.Writer) error {
	cols, rows := c.Width(), c.Height()
	if cols == 0 || rows == 0 {
		return errors.Wrapf(ErrDegenerateGrid, "cannot graph a %dx%d grid", cols, rows)
	}
	size := cols * rows
	if size > maxGraphNodes {
		return errors.Errorf("grid of %d nodes is too large to graph, the limit is %d", size, maxGraphNodes)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph seamgrid {\n")
	buf.WriteString("\trankdir=TB;\n")
	buf.WriteString("\tnode [shape=circle, fontsize=10];\n")

	for id := 0; id < size; id++ {
		x, y := c.col(id), c.row(id)
		fmt.Fprintf(&buf, "\tn%d [label=\"(%d,%d)\\n%.0f\"];\n", id, x, y, c.energyAt(x, y))
	}
	for y := 0; y < rows; y++ {
		buf.WriteString("\t{ rank=same;")
		for x := 0; x < cols; x++ {
			fmt.Fprintf(&buf, " n%d;", c.node(x, y))
		}
		buf.WriteString(" }\n")
	}
	for id := 0; id < size; id++ {
		for _, next := range c.downward(c.col(id), c.row(id)) {
			fmt.Fprintf(&buf, "\tn%d -> n%d;\n", id, next)
		}
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// RenderSVG lays the grid's DAG out with graphviz and returns the SVG bytes.
func (c *Carver) RenderSVG(ctx context.Context) ([]byte, error) {
	var dot bytes.Buffer
	if err := c.WriteDOT(&dot); err != nil {
		return nil, err
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to initialize the graphviz renderer")
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes(dot.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse the generated DOT document")
	}
	defer graph.Close()

	var svg bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &svg); err != nil {
		return nil, errors.Wrap(err, "unable to render the seam graph")
	}
	return svg.Bytes(), nil
}

// ExportGraph decodes the image from r and writes its seam graph to w, as a
// rendered SVG when svg is set and as a plain DOT document otherwise.
func ExportGraph(r io.Reader, w io.Writer, svg bool) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return errors.Wrap(err, "unable to decode the source image")
	}
	c := NewCarver(src)
	if !svg {
		return c.WriteDOT(w)
	}
	out, err := c.RenderSVG(context.Background())
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
