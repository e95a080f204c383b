package geo

import "fmt"

type Orientation int

const (
	TopLeft Orientation = iota
	TopRight
	BottomLeft
	BottomRight

	Top
	Right
	Bottom
	Left

	NONE
)

func (o Orientation) ToString() string {
	switch o {
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"

	case Top:
		return "Top"
	case Right:
		return "Right"
	case Bottom:
		return "Bottom"
	case Left:
		return "Left"
	default:
		return ""
	}
}

// ParseOrientation reads the short handle names tl, tr, bl, br, t, r, b and l.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "tl":
		return TopLeft, nil
	case "tr":
		return TopRight, nil
	case "bl":
		return BottomLeft, nil
	case "br":
		return BottomRight, nil
	case "t":
		return Top, nil
	case "r":
		return Right, nil
	case "b":
		return Bottom, nil
	case "l":
		return Left, nil
	}
	return NONE, fmt.Errorf("unknown orientation %q", s)
}
