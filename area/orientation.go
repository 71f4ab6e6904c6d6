package area

import "fmt"

// Orientation selects an axis.
type Orientation uint8

const (
	// Vertical works along the y axis: rows top to bottom.
	Vertical Orientation = iota
	// Horizontal works along the x axis: columns left to right.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("orientation(%d)", uint8(o))
	}
}

// ParseOrientation parses "vertical" or "horizontal".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}
