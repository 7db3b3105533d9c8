// Package playback drives the slideshow: it pulls images from the stream,
// scales and composites them into an off-screen frame, and presents that
// frame to the surface under the configured delay/repaint behavior.
package playback

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/varkala/fbslide/internal/compositor"
	"github.com/varkala/fbslide/internal/scaler"
	"github.com/varkala/fbslide/internal/stream"
	"github.com/varkala/fbslide/internal/types"
)

// Surface is the writable pixel sink, BGRA at 4 bytes per pixel. The real
// implementation is a memory-mapped framebuffer; tests use an in-memory
// buffer. The loop treats it as borrowed: it writes whole frames within
// Size() and never resizes it.
type Surface interface {
	Resolution() types.Point
	Size() int
	Write(frame []byte) error
}

// Options configure a playback run.
type Options struct {
	Placement  types.Placement
	Background types.Background
	Scale      types.Scale

	// Delay is how long each image stays up. Zero means a single write
	// with no dwell time.
	Delay time.Duration

	// Repaint keeps rewriting the frame for the whole dwell time, to win
	// against anything else scribbling on the surface.
	Repaint bool

	// HoldOnDone blocks after the last image until cancellation, keeping
	// the final frame (and a hidden cursor) in place.
	HoldOnDone bool
}

// Loop owns the frame buffer and the presentation schedule. It is the only
// writer to the surface while running.
type Loop struct {
	surface Surface
	images  *stream.Stream
	opts    Options
	frame   []byte
	skip    chan struct{}
}

func New(surface Surface, images *stream.Stream, opts Options) *Loop {
	return &Loop{
		surface: surface,
		images:  images,
		opts:    opts,
		frame:   make([]byte, surface.Size()),
		skip:    make(chan struct{}, 1),
	}
}

// Skip cuts the current image's dwell time short, advancing to the next
// image. Safe to call from another goroutine; used by the control socket.
func (l *Loop) Skip() {
	select {
	case l.skip <- struct{}{}:
	default:
	}
}

// CurrentSource names the image currently on the surface.
func (l *Loop) CurrentSource() string { return l.images.Current() }

// Run plays the stream to completion, or until ctx is cancelled. A looping
// stream only ends by cancellation. Load and scale failures are returned
// as-is; cancellation is a normal return.
func (l *Loop) Run(ctx context.Context) error {
	for i := 0; l.images.Looping() || i < l.images.Len(); i++ {
		if ctx.Err() != nil {
			log.Debug("playback cancelled between images")
			return nil
		}

		im, err := l.images.Next()
		if err != nil {
			return err
		}
		if err := l.present(ctx, im); err != nil {
			return err
		}
	}

	if l.opts.HoldOnDone {
		log.Debug("holding last frame until cancelled")
		<-ctx.Done()
	}
	return nil
}

// present runs one image through scale, composite and a presentation cycle.
func (l *Loop) present(ctx context.Context, im *types.Image) error {
	res := l.surface.Resolution()

	if l.opts.Scale != types.ScaleDisabled {
		target := scaler.TargetSize(im.Res, res, l.opts.Scale)
		if target != im.Res {
			if err := scaler.Resample(im, target); err != nil {
				return err
			}
		}
	}

	log.Infof("presenting %s (%dx%d)", l.images.Current(), im.Res.X, im.Res.Y)
	compositor.Composite(im, res, l.opts.Placement, l.opts.Background, l.frame)
	return l.cycle(ctx)
}

// cycle writes the prepared frame to the surface and dwells on it
// according to the delay/repaint configuration:
//
//	no delay, no repaint: one write, return immediately
//	delay, no repaint:    one write, wait out the delay
//	no delay, repaint:    write until cancelled
//	delay, repaint:       write until the delay elapses or cancellation
//
// The dwell time is measured from the moment the first write begins.
func (l *Loop) cycle(ctx context.Context) error {
	start := time.Now()
	if err := l.surface.Write(l.frame); err != nil {
		return err
	}

	if l.opts.Repaint {
		for {
			if ctx.Err() != nil {
				return nil
			}
			if l.opts.Delay > 0 && time.Since(start) >= l.opts.Delay {
				return nil
			}
			select {
			case <-l.skip:
				return nil
			default:
			}
			if err := l.surface.Write(l.frame); err != nil {
				return err
			}
		}
	}

	if l.opts.Delay > 0 {
		remaining := l.opts.Delay - time.Since(start)
		if remaining <= 0 {
			return nil
		}
		timer := time.NewTimer(remaining)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-l.skip:
		case <-timer.C:
		}
	}
	return nil
}
