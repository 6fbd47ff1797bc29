package seamster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/wrsch/seamster/utils"
)

// SeamCarver is the interface that has to be implemented by every component
// exposing a content-aware Resize method.
type SeamCarver interface {
	Resize(*image.NRGBA) (image.Image, error)
}

// Resize dispatches the resize operation through the SeamCarver interface.
func Resize(s SeamCarver, img *image.NRGBA) (image.Image, error) {
	return s.Resize(img)
}

var _ SeamCarver = (*Processor)(nil)

// Processor options
type Processor struct {
	// NewWidth and NewHeight are the target dimensions. A zero keeps the
	// source dimension. With Percentage set they are read as the percentage
	// of the source dimension to carve away.
	NewWidth  int
	NewHeight int
	// Percentage interprets the target dimensions as percentages.
	Percentage bool
	// Scale first rescales the image proportionally to the tightest size
	// still covering the target, so only the remaining pixels are carved.
	Scale bool
	// Debug swaps the output for the source-sized frame with every removed
	// seam painted red.
	Debug bool
	// Spinner is the progress indicator shown while a file is processed.
	Spinner *utils.Spinner
}

// Resize carves the image down to the target dimensions, one lowest-energy
// seam at a time: vertical seams until the width fits, then horizontal ones.
// Growing an image is not supported; a target above the source dimension is
// an error.
func (p *Processor) Resize(img *image.NRGBA) (image.Image, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	tw, th, err := p.target(w, h)
	if err != nil {
		return nil, err
	}

	if p.Scale {
		img = prescale(img, tw, th)
	}

	var trace *tracer
	if p.Debug {
		trace = newTracer(img)
	}

	c := NewCarver(img)
	for c.Width() > tw {
		seam, err := c.FindVerticalSeam()
		if err != nil {
			return nil, err
		}
		if trace != nil {
			trace.markVertical(seam)
		}
		if err := c.RemoveVerticalSeam(seam); err != nil {
			return nil, err
		}
	}
	for c.Height() > th {
		seam, err := c.FindHorizontalSeam()
		if err != nil {
			return nil, err
		}
		if trace != nil {
			trace.markHorizontal(seam)
		}
		if err := c.RemoveHorizontalSeam(seam); err != nil {
			return nil, err
		}
	}

	if trace != nil {
		return trace.canvas, nil
	}
	return c.Picture(), nil
}

// Process reads an image from r, resizes it and encodes the result to w. The
// io interfaces keep the pipeline agnostic: files, pipes and buffers all work
// as long as the source decodes into an image.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return errors.Wrap(err, "unable to decode the source image")
	}

	res, err := Resize(p, imgToNRGBA(src))
	if err != nil {
		return err
	}
	return encodeImg(w, res)
}

// target resolves the requested dimensions against the source ones.
func (p *Processor) target(w, h int) (int, int, error) {
	tw, th := w, h
	if p.Percentage {
		if p.NewWidth < 0 || p.NewWidth >= 100 || p.NewHeight < 0 || p.NewHeight >= 100 {
			return 0, 0, errors.New("the percentage values must stay within the [0, 100) interval")
		}
		tw = w - int(float64(w)*float64(p.NewWidth)/100)
		th = h - int(float64(h)*float64(p.NewHeight)/100)
	} else {
		if p.NewWidth > 0 {
			tw = p.NewWidth
		}
		if p.NewHeight > 0 {
			th = p.NewHeight
		}
	}
	if tw > w {
		return 0, 0, errors.Errorf("target width %d exceeds the source width %d, seam insertion is not supported", tw, w)
	}
	if th > h {
		return 0, 0, errors.Errorf("target height %d exceeds the source height %d, seam insertion is not supported", th, h)
	}
	return tw, th, nil
}

// prescale shrinks img proportionally to the tightest size that still covers
// the target in both directions, rounding up. The remaining pixels are left
// for the carving loop.
func prescale(img *image.NRGBA, tw, th int) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return img
	}
	f := utils.Max(float64(tw)/float64(w), float64(th)/float64(h))
	if f >= 1 {
		return img
	}
	sw := int(math.Ceil(float64(w) * f))
	sh := int(math.Ceil(float64(h) * f))
	return imaging.Resize(img, sw, sh, imaging.Lanczos)
}

// seamColor marks removed pixels on the debug canvas.
var seamColor = color.NRGBA{R: 0xff, A: 0xff}

// tracer keeps a source-sized canvas and paints every removed seam onto it at
// the coordinates the pixels had in the source, tracked through an origin
// table that shrinks along with the grid.
type tracer struct {
	canvas *image.NRGBA
	origin [][]image.Point
}

func newTracer(img *image.NRGBA) *tracer {
	b := img.Bounds()
	t := &tracer{canvas: imaging.Clone(img)}
	t.origin = make([][]image.Point, b.Dy())
	for y := range t.origin {
		row := make([]image.Point, b.Dx())
		for x := range row {
			row[x] = image.Pt(x, y)
		}
		t.origin[y] = row
	}
	return t
}

func (t *tracer) markVertical(seam []int) {
	for y, x := range seam {
		pt := t.origin[y][x]
		t.canvas.SetNRGBA(pt.X, pt.Y, seamColor)
		t.origin[y] = append(t.origin[y][:x], t.origin[y][x+1:]...)
	}
}

func (t *tracer) markHorizontal(seam []int) {
	last := len(t.origin) - 1
	for x, y := range seam {
		pt := t.origin[y][x]
		t.canvas.SetNRGBA(pt.X, pt.Y, seamColor)
		for yy := y; yy < last; yy++ {
			t.origin[yy][x] = t.origin[yy+1][x]
		}
	}
	t.origin = t.origin[:last]
}
