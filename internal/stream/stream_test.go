package stream

import (
	"errors"
	"fmt"
	"testing"

	"github.com/varkala/fbslide/internal/types"
)

// countingLoader records decode calls and serves 1x1 images whose single
// red byte is the source index, so order is observable in the output.
type countingLoader struct {
	refs  []string
	calls int
}

func (c *countingLoader) load(source string) (*types.Image, error) {
	c.calls++
	c.refs = append(c.refs, source)

	var idx int
	fmt.Sscanf(source, "img-%d", &idx)
	im := types.NewImage(types.Point{X: 1, Y: 1}, 3)
	im.Pixels[0] = byte(idx)
	return im, nil
}

func sourceNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("img-%d", i)
	}
	return names
}

func TestWindowRefillPattern(t *testing.T) {
	loader := &countingLoader{}
	s := New(sourceNames(5), 2, false, loader.load)

	// batch boundaries: decode counts after each fetch
	wantCalls := []int{2, 2, 4, 4, 5}
	for i := 0; i < 5; i++ {
		im, err := s.Next()
		if err != nil {
			t.Fatalf("Next() #%d failed: %v", i+1, err)
		}
		if got := int(im.Pixels[0]); got != i {
			t.Errorf("Next() #%d returned image %d", i+1, got)
		}
		if loader.calls != wantCalls[i] {
			t.Errorf("after fetch %d: %d decodes, want %d", i+1, loader.calls, wantCalls[i])
		}
	}

	if _, err := s.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("6th Next() = %v, want ErrExhausted", err)
	}
}

func TestOrderPreserved(t *testing.T) {
	loader := &countingLoader{}
	s := New(sourceNames(5), 2, false, loader.load)

	for i := 0; i < 5; i++ {
		if _, err := s.Next(); err != nil {
			t.Fatalf("Next() failed: %v", err)
		}
		if s.Current() != fmt.Sprintf("img-%d", i) {
			t.Errorf("fetch %d: current source %q", i, s.Current())
		}
	}
}

func TestLoopingWrapsAround(t *testing.T) {
	loader := &countingLoader{}
	s := New(sourceNames(3), 2, true, loader.load)

	want := []byte{0, 1, 2, 0, 1, 2, 0}
	for i, w := range want {
		im, err := s.Next()
		if err != nil {
			t.Fatalf("Next() #%d failed: %v", i+1, err)
		}
		if im.Pixels[0] != w {
			t.Errorf("Next() #%d returned image %d, want %d", i+1, im.Pixels[0], w)
		}
	}
}

func TestLoadErrorIsTerminalAndNamesSource(t *testing.T) {
	boom := errors.New("corrupt file")
	load := func(source string) (*types.Image, error) {
		if source == "img-1" {
			return nil, boom
		}
		return types.NewImage(types.Point{X: 1, Y: 1}, 3), nil
	}

	s := New(sourceNames(3), 2, false, load)
	_, err := s.Next()

	var lerr *LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
	if lerr.Source != "img-1" {
		t.Errorf("LoadError names %q, want img-1", lerr.Source)
	}
	if !errors.Is(err, boom) {
		t.Error("LoadError should wrap the decode error")
	}
}

func TestEmptyStreamIsExhausted(t *testing.T) {
	s := New(nil, 2, true, func(string) (*types.Image, error) {
		t.Fatal("loader called for empty stream")
		return nil, nil
	})
	if _, err := s.Next(); !errors.Is(err, ErrExhausted) {
		t.Errorf("Next() on empty stream = %v, want ErrExhausted", err)
	}
}

func TestWindowBoundClamped(t *testing.T) {
	loader := &countingLoader{}
	s := New(sourceNames(3), 0, false, loader.load)

	if _, err := s.Next(); err != nil {
		t.Fatalf("Next() failed: %v", err)
	}
	if loader.calls != 1 {
		t.Errorf("window bound 0 should clamp to 1, decoded %d", loader.calls)
	}
}
