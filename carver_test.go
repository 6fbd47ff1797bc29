package seamster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	imgWidth  = 10
	imgHeight = 10
)

func TestCarver_ShouldCopyTheSourceImage(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{image.White}, image.Point{}, draw.Src)

	c := NewCarver(img)

	// Scribbling over the source after construction must not reach the grid.
	img.SetNRGBA(4, 4, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff})

	got := c.Picture().NRGBAAt(4, 4)
	assert.Equal(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, got)
}

func TestCarver_PictureShouldBeDetached(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{image.White}, image.Point{}, draw.Src)

	c := NewCarver(img)
	snap := c.Picture()
	snap.SetNRGBA(2, 3, color.NRGBA{A: 0xff})

	got := c.Picture().NRGBAAt(2, 3)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, got)
}

func TestCarver_ShouldNormalizeTheSourceBounds(t *testing.T) {
	assert := assert.New(t)

	// A subimage comes with a shifted min point. The carver grid is always
	// anchored at the origin.
	img := image.NewNRGBA(image.Rect(2, 3, 12, 13))
	for y := 3; y < 13; y++ {
		for x := 2; x < 12; x++ {
			img.SetNRGBA(x, y, coordColor(x, y))
		}
	}

	c := NewCarver(img)
	assert.Equal(10, c.Width())
	assert.Equal(10, c.Height())

	pic := c.Picture()
	assert.Equal(image.Pt(0, 0), pic.Bounds().Min)
	assert.Equal(img.NRGBAAt(2, 3), pic.NRGBAAt(0, 0))
	assert.Equal(img.NRGBAAt(11, 12), pic.NRGBAAt(9, 9))
}

func TestCarver_RemoveVerticalSeam(t *testing.T) {
	assert := assert.New(t)

	// Every pixel gets a color encoding its coordinates so the survivors can
	// be traced back after the removal.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, coordColor(x, y))
		}
	}

	c := NewCarver(img)
	seam := []int{1, 2, 1}
	assert.NoError(c.RemoveVerticalSeam(seam))
	assert.Equal(3, c.Width())
	assert.Equal(3, c.Height())

	pic := c.Picture()
	for y := 0; y < 3; y++ {
		want := make([]color.NRGBA, 0, 3)
		for x := 0; x < 4; x++ {
			if x != seam[y] {
				want = append(want, coordColor(x, y))
			}
		}
		for x, wc := range want {
			assert.Equal(wc, pic.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCarver_RemoveHorizontalSeam(t *testing.T) {
	assert := assert.New(t)

	img := image.NewNRGBA(image.Rect(0, 0, 3, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, coordColor(x, y))
		}
	}

	c := NewCarver(img)
	seam := []int{1, 2, 1}
	assert.NoError(c.RemoveHorizontalSeam(seam))
	assert.Equal(3, c.Width())
	assert.Equal(3, c.Height())

	pic := c.Picture()
	for x := 0; x < 3; x++ {
		want := make([]color.NRGBA, 0, 3)
		for y := 0; y < 4; y++ {
			if y != seam[x] {
				want = append(want, coordColor(x, y))
			}
		}
		for y, wc := range want {
			assert.Equal(wc, pic.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCarver_RejectNonValidSeams(t *testing.T) {
	testCases := []struct {
		name string
		seam []int
		err  error
	}{
		{name: "too short", seam: []int{1, 1, 1}, err: ErrInvalidSeam},
		{name: "too long", seam: []int{1, 1, 1, 1, 1}, err: ErrInvalidSeam},
		{name: "negative entry", seam: []int{1, -1, 1, 1}, err: ErrOutOfRange},
		{name: "entry beyond the width", seam: []int{1, 4, 1, 1}, err: ErrOutOfRange},
		{name: "broken adjacency", seam: []int{0, 2, 2, 2}, err: ErrInvalidSeam},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCarver(textureImage(4, 4))
			before := c.Picture()

			err := c.RemoveVerticalSeam(tc.seam)
			assert.ErrorIs(t, err, tc.err)

			// A rejected seam must leave the grid exactly as it was.
			assert.Equal(t, 4, c.Width())
			assert.Equal(t, 4, c.Height())
			assert.Equal(t, before.Pix, c.Picture().Pix)
		})
	}
}

func TestCarver_RejectNonValidHorizontalSeams(t *testing.T) {
	assert := assert.New(t)

	c := NewCarver(textureImage(4, 4))

	assert.ErrorIs(c.RemoveHorizontalSeam([]int{1, 1}), ErrInvalidSeam)
	assert.ErrorIs(c.RemoveHorizontalSeam([]int{1, 4, 1, 1}), ErrOutOfRange)
	assert.ErrorIs(c.RemoveHorizontalSeam([]int{3, 1, 1, 1}), ErrInvalidSeam)

	assert.Equal(4, c.Width())
	assert.Equal(4, c.Height())
}

func TestCarver_CarveDownToAnEmptyGrid(t *testing.T) {
	assert := assert.New(t)

	c := NewCarver(image.NewNRGBA(image.Rect(0, 0, 1, 3)))

	assert.NoError(c.RemoveVerticalSeam([]int{0, 0, 0}))
	assert.Equal(0, c.Width())
	assert.Equal(3, c.Height())

	// No seam can be traced on a grid with no columns, and no seam entry can
	// name a removable pixel anymore.
	_, err := c.FindVerticalSeam()
	assert.ErrorIs(err, ErrDegenerateGrid)
	_, err = c.FindHorizontalSeam()
	assert.ErrorIs(err, ErrDegenerateGrid)
	assert.ErrorIs(c.RemoveVerticalSeam([]int{0, 0, 0}), ErrOutOfRange)

	c = NewCarver(image.NewNRGBA(image.Rect(0, 0, 3, 1)))

	assert.NoError(c.RemoveHorizontalSeam([]int{0, 0, 0}))
	assert.Equal(3, c.Width())
	assert.Equal(0, c.Height())

	// A vertical seam spans the rows; with none left the removal is
	// degenerate before the seam is even looked at.
	assert.ErrorIs(c.RemoveVerticalSeam([]int{}), ErrDegenerateGrid)
	_, err = c.FindVerticalSeam()
	assert.ErrorIs(err, ErrDegenerateGrid)
}

// coordColor encodes a pixel coordinate into a color, so removal tests can
// tell exactly which pixels survived.
func coordColor(x, y int) color.NRGBA {
	return color.NRGBA{R: uint8(10*x + 1), G: uint8(10*y + 1), B: uint8(x + y), A: 0xff}
}

// textureImage builds an image with per-pixel color variation, deterministic
// across runs.
func textureImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 37),
				G: uint8(y * 53),
				B: uint8((x + y) * 11),
				A: 0xff,
			})
		}
	}
	return img
}
