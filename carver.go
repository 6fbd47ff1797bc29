package seamster

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Carver carves low-energy seams out of a pixel grid. A Carver owns its grid
// exclusively: the constructor deep-copies the source image and Picture hands
// out copies, so nothing outside can bend the energies mid-carve. Methods are
// not safe for concurrent use; wrap the instance in a mutex if several
// goroutines need it.
type Carver struct {
	img *image.NRGBA
}

// NewCarver builds a Carver over a private copy of img, converted to NRGBA
// and re-anchored at the origin.
func NewCarver(img image.Image) *Carver {
	return &Carver{img: imaging.Clone(img)}
}

// Picture returns a snapshot of the current grid. Mutating the returned image
// does not affect the Carver.
func (c *Carver) Picture() *image.NRGBA {
	return imaging.Clone(c.img)
}

// Width returns the current number of columns.
func (c *Carver) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the current number of rows.
func (c *Carver) Height() int {
	return c.img.Bounds().Dy()
}

// RemoveVerticalSeam deletes one pixel per row, shrinking the grid by one
// column. The seam must hold an in-range column index for every row, with
// neighboring entries at most one column apart. Validation runs in full
// before any pixel moves: on error the grid is left exactly as it was.
func (c *Carver) RemoveVerticalSeam(seam []int) error {
	w, h := c.Width(), c.Height()
	if h == 0 {
		return errors.Wrap(ErrDegenerateGrid, "a vertical seam has no rows to span")
	}
	if len(seam) != h {
		return errors.Wrapf(ErrInvalidSeam, "seam length %d, grid height %d", len(seam), h)
	}
	for y, x := range seam {
		if x < 0 || x >= w {
			return errors.Wrapf(ErrOutOfRange, "seam entry %d on row %d", x, y)
		}
	}
	for y := 1; y < h; y++ {
		if d := seam[y] - seam[y-1]; d < -1 || d > 1 {
			return errors.Wrapf(ErrInvalidSeam, "seam jumps from %d to %d between rows %d and %d", seam[y-1], seam[y], y-1, y)
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w-1, h))
	for y := 0; y < h; y++ {
		si := c.img.PixOffset(0, y)
		di := dst.PixOffset(0, y)
		cut := seam[y] * 4
		copy(dst.Pix[di:di+cut], c.img.Pix[si:si+cut])
		copy(dst.Pix[di+cut:di+(w-1)*4], c.img.Pix[si+cut+4:si+w*4])
	}
	c.img = dst
	return nil
}

// RemoveHorizontalSeam deletes one pixel per column, shrinking the grid by
// one row. Same contract as RemoveVerticalSeam with the axes swapped.
func (c *Carver) RemoveHorizontalSeam(seam []int) error {
	w, h := c.Width(), c.Height()
	if w == 0 {
		return errors.Wrap(ErrDegenerateGrid, "a horizontal seam has no columns to span")
	}
	if len(seam) != w {
		return errors.Wrapf(ErrInvalidSeam, "seam length %d, grid width %d", len(seam), w)
	}
	for x, y := range seam {
		if y < 0 || y >= h {
			return errors.Wrapf(ErrOutOfRange, "seam entry %d on column %d", y, x)
		}
	}
	for x := 1; x < w; x++ {
		if d := seam[x] - seam[x-1]; d < -1 || d > 1 {
			return errors.Wrapf(ErrInvalidSeam, "seam jumps from %d to %d between columns %d and %d", seam[x-1], seam[x], x-1, x)
		}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h-1))
	for x := 0; x < w; x++ {
		cut := seam[x]
		for y := 0; y < h-1; y++ {
			sy := y
			if y >= cut {
				sy = y + 1
			}
			si := c.img.PixOffset(x, sy)
			di := dst.PixOffset(x, y)
			copy(dst.Pix[di:di+4], c.img.Pix[si:si+4])
		}
	}
	c.img = dst
	return nil
}
