package types

import (
	"fmt"
	"strconv"
)

// Point is a 2D integer pair, used both for resolutions and for coordinate
// deltas.
type Point struct {
	X int
	Y int
}

// Color is an 8-bit RGBA color. Framebuffers want it as BGRA; the
// compositor handles the byte swap when writing.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var namedColors = map[string]Color{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0xff, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
}

// ParseColor accepts a named color or a #rrggbb hex value.
func ParseColor(s string) (Color, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return Color{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 0xff,
			}, nil
		}
	}
	return Color{}, &ParseError{Kind: "color", Value: s}
}

// Image is a decoded raster image: raw pixel bytes plus resolution and
// channel count. Channels is 1 (gray), 2 (gray+alpha), 3 (RGB) or
// 4 (RGBA); len(Pixels) is always Res.X*Res.Y*Channels.
type Image struct {
	Res      Point
	Channels int
	Pixels   []byte
}

// NewImage allocates a zeroed image buffer for the given resolution and
// channel count.
func NewImage(res Point, channels int) *Image {
	return &Image{
		Res:      res,
		Channels: channels,
		Pixels:   make([]byte, res.X*res.Y*channels),
	}
}

// PixelColor samples the pixel at (x, y) and normalizes it to RGBA.
// Gray images replicate the single channel across r, g and b; a missing
// alpha channel reads as opaque. The coordinate must be inside the image;
// anything else is a bug in the caller, not user input, so it panics.
func (im *Image) PixelColor(x, y int) Color {
	if x < 0 || y < 0 || x >= im.Res.X || y >= im.Res.Y {
		panic(fmt.Sprintf("pixel (%d,%d) out of bounds for %dx%d image",
			x, y, im.Res.X, im.Res.Y))
	}
	off := (y*im.Res.X + x) * im.Channels
	px := im.Pixels[off : off+im.Channels]

	if im.Channels < 3 {
		c := Color{R: px[0], G: px[0], B: px[0], A: 0xff}
		if im.Channels == 2 {
			c.A = px[1]
		}
		return c
	}
	c := Color{R: px[0], G: px[1], B: px[2], A: 0xff}
	if im.Channels == 4 {
		c.A = px[3]
	}
	return c
}
