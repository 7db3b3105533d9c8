package types

import "fmt"

// Placement selects where the image origin lands on the surface.
type Placement string

const (
	PlacementCentered    Placement = "centered"
	PlacementTopLeft     Placement = "top-left"
	PlacementTopRight    Placement = "top-right"
	PlacementBottomRight Placement = "bottom-right"
	PlacementBottomLeft  Placement = "bottom-left"
)

// Scale selects how an image is resized against the surface viewport.
type Scale string

const (
	ScaleDisabled Scale = "disabled"
	ScaleFit      Scale = "fit"
	ScaleStretch  Scale = "stretch"
	ScaleFill     Scale = "fill"
)

// ParseError reports a config or flag value that does not name a known
// variant.
type ParseError struct {
	Kind  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

func ParsePlacement(s string) (Placement, error) {
	switch Placement(s) {
	case PlacementCentered, PlacementTopLeft, PlacementTopRight,
		PlacementBottomRight, PlacementBottomLeft:
		return Placement(s), nil
	}
	return "", &ParseError{Kind: "position", Value: s}
}

func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleDisabled, ScaleFit, ScaleStretch, ScaleFill:
		return Scale(s), nil
	}
	return "", &ParseError{Kind: "scale mode", Value: s}
}

// Background is either a solid fill color or transparent, meaning the
// surface bytes outside the image footprint are left as they are.
type Background struct {
	Transparent bool
	Color       Color
}

// ParseBackground accepts "transparent", a named color, or a #rrggbb value.
func ParseBackground(s string) (Background, error) {
	if s == "transparent" {
		return Background{Transparent: true}, nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return Background{}, err
	}
	return Background{Color: c}, nil
}
