package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSeatLetter        = errors.New("invalid seat letter")
	ErrInvalidSeatRow           = errors.New("invalid seat row")
	ErrRowOutOfRange            = errors.New("row out of range")
	ErrSeatOccupied             = errors.New("seat is already occupied")
	ErrEmptyPassenger           = errors.New("passenger name is required")
	ErrRouteNotFound            = errors.New("route not found")
	ErrRouteMismatch            = errors.New("route does not match flight")
	ErrSeatCapacityExhausted    = errors.New("no free seats left")
	ErrUnrecognizedAircraftType = errors.New("unrecognized aircraft type")
)

// FormatError reports a malformed identifier.
type FormatError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s in %q", e.Field, e.Reason, e.Value)
}
