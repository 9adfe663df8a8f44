package scene

import "errors"

var (
	// ErrBelowMinimum indicates a target height or distance smaller than MinParam.
	ErrBelowMinimum = errors.New("scene: both height and distance must be at least 1")

	// ErrDegenerateViewport indicates a canvas with no drawable area left
	// after the margins are taken out.
	ErrDegenerateViewport = errors.New("scene: viewport has no drawable area")
)
