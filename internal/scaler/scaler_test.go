package scaler

import (
	"errors"
	"testing"

	"github.com/varkala/fbslide/internal/types"
)

func TestTargetSizeDisabled(t *testing.T) {
	src := types.Point{X: 640, Y: 480}
	got := TargetSize(src, types.Point{X: 1920, Y: 1080}, types.ScaleDisabled)
	if got != src {
		t.Errorf("disabled should return source size, got %+v", got)
	}
}

func TestTargetSizeStretch(t *testing.T) {
	viewport := types.Point{X: 1920, Y: 1080}
	got := TargetSize(types.Point{X: 100, Y: 700}, viewport, types.ScaleStretch)
	if got != viewport {
		t.Errorf("stretch should return viewport exactly, got %+v", got)
	}
}

func TestTargetSizeFit(t *testing.T) {
	viewport := types.Point{X: 1920, Y: 1080}
	tests := []types.Point{
		{X: 640, Y: 480},
		{X: 4000, Y: 500},
		{X: 500, Y: 4000},
		{X: 1920, Y: 1080},
		{X: 3, Y: 7000},
	}
	for _, src := range tests {
		got := TargetSize(src, viewport, types.ScaleFit)
		if got.X > viewport.X || got.Y > viewport.Y {
			t.Errorf("fit %+v -> %+v exceeds viewport", src, got)
		}
		if got.X < 1 || got.Y < 1 {
			t.Errorf("fit %+v -> %+v has degenerate axis", src, got)
		}
	}
}

func TestTargetSizeFill(t *testing.T) {
	viewport := types.Point{X: 1920, Y: 1080}
	tests := []types.Point{
		{X: 640, Y: 480},
		{X: 4000, Y: 500},
		{X: 500, Y: 4000},
		{X: 1920, Y: 1080},
	}
	for _, src := range tests {
		got := TargetSize(src, viewport, types.ScaleFill)
		if got.X < viewport.X || got.Y < viewport.Y {
			t.Errorf("fill %+v -> %+v does not cover viewport", src, got)
		}
	}
}

func TestTargetSizeFillFactorExactPairs(t *testing.T) {
	// Ratios whose float product of an exact integer result lands just
	// below it (61.0/7.0*7.0 < 61.0). The driving axis must still hit the
	// viewport dimension exactly.
	tests := []struct {
		src, viewport types.Point
	}{
		{types.Point{X: 7, Y: 7}, types.Point{X: 61, Y: 1}},
		{types.Point{X: 11, Y: 11}, types.Point{X: 15, Y: 1}},
		{types.Point{X: 7, Y: 7}, types.Point{X: 1, Y: 61}},
		{types.Point{X: 49, Y: 49}, types.Point{X: 61, Y: 61}},
	}
	for _, tt := range tests {
		got := TargetSize(tt.src, tt.viewport, types.ScaleFill)
		if got.X < tt.viewport.X || got.Y < tt.viewport.Y {
			t.Errorf("fill %+v into %+v -> %+v does not cover viewport",
				tt.src, tt.viewport, got)
		}
	}
}

func TestTargetSizeCoverageSweep(t *testing.T) {
	for side := 1; side <= 64; side++ {
		for vx := 1; vx <= 64; vx++ {
			src := types.Point{X: side, Y: side}
			viewport := types.Point{X: vx, Y: 1}

			fill := TargetSize(src, viewport, types.ScaleFill)
			if fill.X < viewport.X || fill.Y < viewport.Y {
				t.Fatalf("fill %+v into %+v -> %+v does not cover viewport",
					src, viewport, fill)
			}

			fit := TargetSize(src, viewport, types.ScaleFit)
			if fit.X > viewport.X || fit.Y > viewport.Y {
				t.Fatalf("fit %+v into %+v -> %+v exceeds viewport",
					src, viewport, fit)
			}
		}
	}
}

func TestTargetSizeFillOverhangs(t *testing.T) {
	// A wide image filling a tall viewport must overhang horizontally.
	got := TargetSize(types.Point{X: 200, Y: 100}, types.Point{X: 100, Y: 100}, types.ScaleFill)
	if got.X <= 100 {
		t.Errorf("expected horizontal overhang, got %+v", got)
	}
	if got.Y != 100 {
		t.Errorf("expected exact vertical cover, got %+v", got)
	}
}

func TestResampleReplacesBufferAndResolution(t *testing.T) {
	im := types.NewImage(types.Point{X: 8, Y: 8}, 4)
	for i := range im.Pixels {
		im.Pixels[i] = 0xff
	}

	target := types.Point{X: 4, Y: 2}
	if err := Resample(im, target); err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if im.Res != target {
		t.Errorf("resolution = %+v, want %+v", im.Res, target)
	}
	if len(im.Pixels) != target.X*target.Y*4 {
		t.Errorf("buffer is %d bytes, want %d", len(im.Pixels), target.X*target.Y*4)
	}
	if im.Channels != 4 {
		t.Errorf("channel count changed to %d", im.Channels)
	}
}

func TestResamplePreservesChannelCount(t *testing.T) {
	for _, channels := range []int{1, 2, 3, 4} {
		im := types.NewImage(types.Point{X: 6, Y: 6}, channels)
		for i := range im.Pixels {
			im.Pixels[i] = 0x7f
		}
		if err := Resample(im, types.Point{X: 3, Y: 3}); err != nil {
			t.Fatalf("Resample with %d channels failed: %v", channels, err)
		}
		if im.Channels != channels {
			t.Errorf("channels = %d, want %d", im.Channels, channels)
		}
		if len(im.Pixels) != 3*3*channels {
			t.Errorf("buffer is %d bytes, want %d", len(im.Pixels), 3*3*channels)
		}
		// uniform input stays uniform through resampling
		for i, b := range im.Pixels {
			if b != 0x7f {
				t.Errorf("pixel byte %d = %#x, want 0x7f", i, b)
				break
			}
		}
	}
}

func TestResampleDegenerateTarget(t *testing.T) {
	im := types.NewImage(types.Point{X: 4, Y: 4}, 3)
	err := Resample(im, types.Point{X: 0, Y: 4})
	if !errors.Is(err, ErrResample) {
		t.Errorf("expected ErrResample, got %v", err)
	}
	// failed resample must leave the image untouched
	if im.Res != (types.Point{X: 4, Y: 4}) || len(im.Pixels) != 4*4*3 {
		t.Error("image mutated by failed resample")
	}
}

func TestResampleNoopForSameSize(t *testing.T) {
	im := types.NewImage(types.Point{X: 5, Y: 5}, 4)
	before := &im.Pixels[0]
	if err := Resample(im, types.Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if before != &im.Pixels[0] {
		t.Error("same-size resample should not reallocate")
	}
}
