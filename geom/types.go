package geom

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for geom operations.
var (
	// ErrUnknownAxis indicates an Axis outside AxisX..AxisZ or an unparseable axis name.
	ErrUnknownAxis = errors.New("geom: unknown axis")

	// ErrMalformedRecord indicates a text record that is not exactly three integers.
	ErrMalformedRecord = errors.New("geom: malformed point record")
)

// Point is a single junction box position in 3-D integer space.
type Point struct {
	X, Y, Z int64
}

// Axis selects one coordinate of a Point.
type Axis int

const (
	// AxisX selects Point.X.
	AxisX Axis = iota
	// AxisY selects Point.Y.
	AxisY
	// AxisZ selects Point.Z.
	AxisZ
)

// Valid reports whether a is one of AxisX, AxisY, AxisZ.
func (a Axis) Valid() bool { return a >= AxisX && a <= AxisZ }

// String returns the lower-case axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis maps "x", "y" or "z" (case-insensitive) to an Axis.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
	}
}

// Coord returns the coordinate of p on the given axis.
func (p Point) Coord(a Axis) (int64, error) {
	switch a {
	case AxisX:
		return p.X, nil
	case AxisY:
		return p.Y, nil
	case AxisZ:
		return p.Z, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownAxis, a)
	}
}

// String renders p in the same "x,y,z" form ReadPoints accepts.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}
