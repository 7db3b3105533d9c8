// Package decode turns image files into the raw pixel buffers the
// compositor works on. Format support comes from the image decoders
// registered by the importing binary.
package decode

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/varkala/fbslide/internal/types"
)

// Load decodes the image at path into a raw pixel buffer. JPEGs are
// auto-rotated according to their EXIF orientation tag. The natural channel
// count of the source is preserved where the decoded representation allows
// it: grayscale stays single channel, JPEG YCbCr becomes 3-channel RGB,
// everything else becomes 4-channel RGBA.
func Load(path string) (*types.Image, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromImage(src), nil
}

// FromImage converts a decoded image.Image into the raw representation.
func FromImage(src image.Image) *types.Image {
	b := src.Bounds()
	res := types.Point{X: b.Dx(), Y: b.Dy()}

	switch s := src.(type) {
	case *image.Gray:
		im := types.NewImage(res, 1)
		for y := 0; y < res.Y; y++ {
			row := s.Pix[y*s.Stride : y*s.Stride+res.X]
			copy(im.Pixels[y*res.X:], row)
		}
		return im

	case *image.YCbCr:
		im := types.NewImage(res, 3)
		for y := 0; y < res.Y; y++ {
			for x := 0; x < res.X; x++ {
				cy := s.Y[s.YOffset(b.Min.X+x, b.Min.Y+y)]
				ci := s.COffset(b.Min.X+x, b.Min.Y+y)
				r, g, bb := color.YCbCrToRGB(cy, s.Cb[ci], s.Cr[ci])
				off := (y*res.X + x) * 3
				im.Pixels[off] = r
				im.Pixels[off+1] = g
				im.Pixels[off+2] = bb
			}
		}
		return im

	case *image.NRGBA:
		im := types.NewImage(res, 4)
		for y := 0; y < res.Y; y++ {
			row := s.Pix[y*s.Stride : y*s.Stride+res.X*4]
			copy(im.Pixels[y*res.X*4:], row)
		}
		return im
	}

	// Everything else goes through a straight NRGBA conversion.
	nrgba := image.NewNRGBA(image.Rect(0, 0, res.X, res.Y))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	im := types.NewImage(res, 4)
	copy(im.Pixels, nrgba.Pix)
	return im
}
