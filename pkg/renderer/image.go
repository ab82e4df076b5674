package renderer

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/kjhorne/pathtracer/pkg/core"
)

// Image is a row-major width x height grid of linear RGB colors, the
// in-memory form the renderer accumulates into before the final PNG
// encode.
type Image struct {
	Width, Height int
	pixels        []core.Color
}

// NewImage allocates a black image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, pixels: make([]core.Color, width*height)}
}

func (img *Image) index(x, y int) int { return y*img.Width + x }

// Set stores the color at (x, y), clamping the coordinates into bounds.
func (img *Image) Set(x, y int, c core.Color) {
	if x < 0 {
		x = 0
	} else if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= img.Height {
		y = img.Height - 1
	}
	img.pixels[img.index(x, y)] = c
}

// At returns the color at (x, y), clamping the coordinates into bounds.
func (img *Image) At(x, y int) core.Color {
	if x < 0 {
		x = 0
	} else if x >= img.Width {
		x = img.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= img.Height {
		y = img.Height - 1
	}
	return img.pixels[img.index(x, y)]
}

// ToRGBA converts the linear [0,1] color grid to a standard-library
// image.RGBA, scaling each channel to [0,255].
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y).Clamp()
			out.Set(x, y, color.RGBA{
				R: uint8(c.R * 255),
				G: uint8(c.G * 255),
				B: uint8(c.B * 255),
				A: 255,
			})
		}
	}
	return out
}

// SavePNG encodes the image as a PNG at path.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img.ToRGBA())
}
