// Package stream serves an ordered sequence of images through a bounded
// in-memory window, so a slideshow over hundreds of files never holds more
// than a handful of decoded images at a time.
package stream

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/varkala/fbslide/internal/types"
)

// LoadFunc decodes a single source into an image. Production wiring is
// decode.Load; tests substitute their own.
type LoadFunc func(source string) (*types.Image, error)

// ErrExhausted is returned by Next once a non-looping stream has served
// its last image.
var ErrExhausted = errors.New("image stream exhausted")

// LoadError reports the source that failed during a window refill. A refill
// is all or nothing: one bad file ends the stream, there is no skip policy.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Stream is a batched image loader. Sources are decoded in windows of at
// most `window` images; when the window is consumed it is released in full
// and the next batch is decoded, wrapping to the start when looping.
//
// Refills are synchronous on the calling goroutine. For a slideshow that
// means a visible pause every `window` images; that beats hiding an
// unbounded prefetch behind it.
type Stream struct {
	sources []string
	load    LoadFunc
	max     int
	loop    bool

	window  []*types.Image
	batch   []string
	cursor  int
	abs     int
	current string
}

// New builds a stream over sources with the given window bound. A bound
// below 1 is clamped to 1.
func New(sources []string, window int, loop bool, load LoadFunc) *Stream {
	if window < 1 {
		window = 1
	}
	return &Stream{
		sources: sources,
		load:    load,
		max:     window,
		loop:    loop,
	}
}

// Next returns the next image in sequence, refilling the window when it is
// consumed. The returned image is valid until the call after next refills
// the window; callers must not hold on to it across iterations.
func (s *Stream) Next() (*types.Image, error) {
	if s.cursor == len(s.window) {
		if err := s.refill(); err != nil {
			return nil, err
		}
	}
	im := s.window[s.cursor]
	s.current = s.batch[s.cursor]
	s.cursor++
	return im, nil
}

func (s *Stream) refill() error {
	// Release the spent window as a whole before decoding the next batch.
	s.window = nil
	s.batch = nil
	s.cursor = 0

	if len(s.sources) == 0 {
		return ErrExhausted
	}
	if s.abs == len(s.sources) {
		if !s.loop {
			return ErrExhausted
		}
		s.abs = 0
	}

	end := min(s.abs+s.max, len(s.sources))
	batch := s.sources[s.abs:end]
	log.Debugf("refilling image window: %d of %d sources, offset %d",
		len(batch), len(s.sources), s.abs)

	window := make([]*types.Image, 0, len(batch))
	for _, src := range batch {
		im, err := s.load(src)
		if err != nil {
			return &LoadError{Source: src, Err: err}
		}
		window = append(window, im)
	}

	s.window = window
	s.batch = batch
	s.abs = end
	return nil
}

// Len is the number of sources the stream was built over.
func (s *Stream) Len() int { return len(s.sources) }

// Looping reports whether the stream wraps around after the last source.
func (s *Stream) Looping() bool { return s.loop }

// Current names the source of the image most recently returned by Next.
func (s *Stream) Current() string { return s.current }
