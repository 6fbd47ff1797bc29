package seamster

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// borderEnergy pins every pixel on the grid's outer ring to the largest value
// a single gradient term can reach, 3 * 255 * 255. Seams still cross the
// border rows but have no incentive to wander along it.
const borderEnergy = 3 * 255 * 255

// Energy returns the dual-gradient energy of the pixel at (x, y): the squared
// per-channel difference between its left and right neighbors plus the same
// for its upper and lower neighbors. Pixels on the outer ring are pinned to
// the border constant regardless of content. Signals ErrOutOfRange when
// (x, y) lies outside the current grid.
func (c *Carver) Energy(x, y int) (float64, error) {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return 0, errors.Wrapf(ErrOutOfRange, "pixel (%d, %d)", x, y)
	}
	return c.energyAt(x, y), nil
}

// energyAt computes the energy of an in-range pixel. Only the four neighbors
// enter the result, never the pixel's own color.
func (c *Carver) energyAt(x, y int) float64 {
	if x == 0 || y == 0 || x == c.Width()-1 || y == c.Height()-1 {
		return borderEnergy
	}
	dx := gradient(c.img.NRGBAAt(x-1, y), c.img.NRGBAAt(x+1, y))
	dy := gradient(c.img.NRGBAAt(x, y-1), c.img.NRGBAAt(x, y+1))
	return float64(dx + dy)
}

// gradient is the squared color distance between two pixels. Alpha does not
// participate.
func gradient(a, b color.NRGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

// EnergyImage renders the energy of every pixel into a grayscale image,
// normalized against the largest energy present in the grid. Useful to
// eyeball the regions the next seams will avoid.
func (c *Carver) EnergyImage() *image.Gray {
	w, h := c.Width(), c.Height()
	out := image.NewGray(image.Rect(0, 0, w, h))

	max := 0.0
	energies := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			e := c.energyAt(x, y)
			energies[y*w+x] = e
			if e > max {
				max = e
			}
		}
	}
	if max == 0 {
		return out
	}
	for i, e := range energies {
		out.Pix[i] = uint8(e / max * 255)
	}
	return out
}
