package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUnitID   = errors.New("invalid unit ID")
	ErrOutOfBounds     = errors.New("square out of bounds")
	ErrUnitNotPlaced   = errors.New("unit is not on the board")
	ErrFriendlyCapture = errors.New("square is occupied by a unit of the same owner")
	ErrInvalidSize     = errors.New("invalid arena size")
)

// WrapUnitError adds the unit ID to an error while keeping it matchable with errors.Is
func WrapUnitError(id UnitID, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("unit %d: %w", id, err)
}

// WrapSquareError adds the square to an error while keeping it matchable with errors.Is
func WrapSquareError(sq Square, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("square %s: %w", sq, err)
}

// WrapMoveError describes a failed placement of a unit on a square
func WrapMoveError(id UnitID, sq Square, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("unit %d: move to %s: %w", id, sq, err)
}
