package list

import "errors"

var (
	// ErrEmpty is returned when reading or removing from an empty list.
	ErrEmpty = errors.New("list is empty")
	// ErrIndexOutOfRange is returned by At for an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("index out of range")
)
