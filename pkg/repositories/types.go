package repositories

import "errors"

// ErrNotFound is returned when a slot holds no save.
type ErrNotFound struct {
	Slot string
}

func (e *ErrNotFound) Error() string {
	if e.Slot == "" {
		return "save not found"
	}
	return "save not found in slot " + e.Slot
}

func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}
