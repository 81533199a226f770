package style

import "errors"

var (
	// ErrReadPreset is returned when a preset file cannot be read.
	ErrReadPreset = errors.New("failed to read style preset")
	// ErrInvalidPreset is returned when a preset cannot be decoded.
	ErrInvalidPreset = errors.New("invalid style preset")
)
