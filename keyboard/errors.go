package keyboard

import "errors"

var (
	// ErrInvalidIndex is returned for a selection index outside [0, max length].
	ErrInvalidIndex = errors.New("keyboard: selection index out of range")

	// ErrKeyDisabled is returned when a key is pressed that the policy disables.
	ErrKeyDisabled = errors.New("keyboard: key disabled")

	// ErrFull is returned when a printable key is pressed on a complete plate.
	ErrFull = errors.New("keyboard: plate already complete")

	// ErrNotTappable is returned when the Empty filler is pressed.
	ErrNotTappable = errors.New("keyboard: key is not tappable")
)
