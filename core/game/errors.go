package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPinCount   = errors.New("pin count must be non-negative")
	ErrFrameOverflow     = errors.New("cannot knock down more than ten pins in a single frame")
	ErrLastFrameOverflow = errors.New("too many pins in the last frame")
	ErrGameComplete      = errors.New("game is already complete")
)

// RollError reports a rejected roll. Roll and Frame are 0-based; Frame is -1
// when the roll could not be placed in a frame.
type RollError struct {
	Roll  int
	Frame int
	Pins  int
	Err   error
}

func (e *RollError) Error() string {
	if e.Frame < 0 {
		return fmt.Sprintf("roll %d (%d pins): %v", e.Roll+1, e.Pins, e.Err)
	}
	return fmt.Sprintf("roll %d (frame %d, %d pins): %v", e.Roll+1, e.Frame+1, e.Pins, e.Err)
}

func (e *RollError) Unwrap() error { return e.Err }
