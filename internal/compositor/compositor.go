// Package compositor builds full framebuffer frames from a decoded image,
// a placement mode and a background policy. It only ever writes into a
// caller-provided off-screen buffer; presenting the frame is the playback
// loop's job, so a half-built frame is never visible on the device.
package compositor

import (
	"fmt"

	"github.com/varkala/fbslide/internal/types"
)

// MapCoord translates a surface coordinate (sx, sy) into image-local
// coordinates for the given placement. The result may lie outside the
// image; the caller's bounds check is what crops overhanging images.
func MapCoord(mode types.Placement, imageRes, surfaceRes types.Point, sx, sy int) (int, int) {
	switch mode {
	case types.PlacementTopRight:
		return sx - (surfaceRes.X - imageRes.X), sy
	case types.PlacementBottomRight:
		return sx - (surfaceRes.X - imageRes.X), sy - (surfaceRes.Y - imageRes.Y)
	case types.PlacementBottomLeft:
		return sx, sy - (surfaceRes.Y - imageRes.Y)
	case types.PlacementCentered:
		return sx - (surfaceRes.X/2 - imageRes.X/2), sy - (surfaceRes.Y/2 - imageRes.Y/2)
	default:
		// top-left, also the fallback for a zero-value Placement. It is
		// the CLI default, and the identity mapping is the safest thing
		// an unrecognized mode can do.
		return sx, sy
	}
}

// Composite renders im into dst, a BGRA buffer of surfaceRes.X*surfaceRes.Y*4
// bytes. Pixels covered by the image are sampled and converted; pixels
// outside its footprint get the background color, or keep their existing
// bytes when the background is transparent.
func Composite(im *types.Image, surfaceRes types.Point, mode types.Placement, bg types.Background, dst []byte) {
	if len(dst) != surfaceRes.X*surfaceRes.Y*4 {
		panic(fmt.Sprintf("frame buffer is %d bytes, surface %dx%d needs %d",
			len(dst), surfaceRes.X, surfaceRes.Y, surfaceRes.X*surfaceRes.Y*4))
	}

	for sy := 0; sy < surfaceRes.Y; sy++ {
		for sx := 0; sx < surfaceRes.X; sx++ {
			x, y := MapCoord(mode, im.Res, surfaceRes, sx, sy)

			var c types.Color
			if x >= 0 && y >= 0 && x < im.Res.X && y < im.Res.Y {
				c = im.PixelColor(x, y)
			} else if bg.Transparent {
				continue
			} else {
				c = bg.Color
			}

			off := (sy*surfaceRes.X + sx) * 4
			dst[off] = c.B
			dst[off+1] = c.G
			dst[off+2] = c.R
			dst[off+3] = c.A
		}
	}
}
