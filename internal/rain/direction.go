package rain

import (
	"fmt"

	smerrors "github.com/Station-Manager/errors"
)

// Direction is where text travels on screen.
type Direction int

const (
	// Bottom: new characters enter at the top row and fall.
	Bottom Direction = iota
	// Top: new characters enter at the bottom row and rise.
	Top
	// SpiralRight: a single stream wound around the screen center,
	// newest characters nearest the center.
	SpiralRight
)

// ParseDirection maps a direction name (bottom, top, spiral-right) to a Direction.
func ParseDirection(s string) (Direction, error) {
	const op smerrors.Op = "rain.ParseDirection"
	switch s {
	case "bottom":
		return Bottom, nil
	case "top":
		return Top, nil
	case "spiral-right":
		return SpiralRight, nil
	}
	return Bottom, smerrors.New(op).Msgf("unknown direction %q", s)
}

func (d Direction) String() string {
	switch d {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case SpiralRight:
		return "spiral-right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}
