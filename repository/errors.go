package repository

import "errors"

// ErrNotFound is returned when an update or close targets an id that matches
// no record. Callers report it as a distinct outcome instead of a success.
var ErrNotFound = errors.New("record not found")

// ErrInvalidField is returned when a field is outside the searchable or
// updatable enumeration. No SQL is issued in that case.
var ErrInvalidField = errors.New("invalid field")
