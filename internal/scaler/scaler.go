// Package scaler computes target dimensions for a scale policy and
// resamples raw image buffers. It never crops: fill mode may produce an
// image larger than the viewport on one axis, and the compositor's bounds
// check is what trims it.
package scaler

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/varkala/fbslide/internal/types"
)

// ErrResample means the resampler could not produce output, typically
// because a target dimension collapsed to zero.
var ErrResample = errors.New("resampling failed")

// TargetSize computes the output dimensions for scaling src into viewport
// under the given policy. The scale factor is a viewport/source axis ratio;
// the axis that ratio comes from lands exactly on the viewport dimension,
// and the other axis is the floored product, with a minimum of 1. The
// arithmetic stays in integers: flooring a float product here can land one
// pixel short of the viewport and break fill's coverage guarantee.
//
//   - disabled: src unchanged
//   - stretch: viewport unchanged, aspect ratio ignored
//   - fit: min ratio, image fits entirely inside the viewport
//   - fill: max ratio, image covers the viewport, may overhang one axis
func TargetSize(src, viewport types.Point, policy types.Scale) types.Point {
	switch policy {
	case types.ScaleStretch:
		return viewport
	case types.ScaleFit, types.ScaleFill:
		// viewport.X/src.X >= viewport.Y/src.Y, cross-multiplied
		xDrives := viewport.X*src.Y >= viewport.Y*src.X
		if policy == types.ScaleFit {
			xDrives = !xDrives
		}
		if xDrives {
			return types.Point{X: viewport.X, Y: max(src.Y*viewport.X/src.X, 1)}
		}
		return types.Point{X: max(src.X*viewport.Y/src.Y, 1), Y: viewport.Y}
	default:
		return src
	}
}

// Resample rescales im to target in place. The pixel buffer and resolution
// are only replaced once the new buffer is fully built, so a failure leaves
// the image untouched. The channel count is preserved.
func Resample(im *types.Image, target types.Point) error {
	if target.X <= 0 || target.Y <= 0 || im.Res.X <= 0 || im.Res.Y <= 0 {
		return fmt.Errorf("%w: %dx%d -> %dx%d",
			ErrResample, im.Res.X, im.Res.Y, target.X, target.Y)
	}
	if target == im.Res {
		return nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, target.X, target.Y))
	draw.CatmullRom.Scale(dst, dst.Bounds(), toNRGBA(im), image.Rect(0, 0, im.Res.X, im.Res.Y), draw.Src, nil)

	im.Pixels, im.Res = pack(dst, im.Channels), target
	return nil
}

func toNRGBA(im *types.Image) *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, im.Res.X, im.Res.Y))
	for y := 0; y < im.Res.Y; y++ {
		for x := 0; x < im.Res.X; x++ {
			c := im.PixelColor(x, y)
			off := y*src.Stride + x*4
			src.Pix[off] = c.R
			src.Pix[off+1] = c.G
			src.Pix[off+2] = c.B
			src.Pix[off+3] = c.A
		}
	}
	return src
}

// pack folds a scaled NRGBA buffer back down to the source channel count.
// Gray sources read back the red channel; CatmullRom keeps r, g and b
// identical when they started identical.
func pack(src *image.NRGBA, channels int) []byte {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()
	out := make([]byte, w*h*channels)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			in := y*src.Stride + x*4
			off := (y*w + x) * channels
			switch channels {
			case 1:
				out[off] = src.Pix[in]
			case 2:
				out[off] = src.Pix[in]
				out[off+1] = src.Pix[in+3]
			case 3:
				copy(out[off:off+3], src.Pix[in:in+3])
			default:
				copy(out[off:off+4], src.Pix[in:in+4])
			}
		}
	}
	return out
}
