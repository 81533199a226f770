package palette

import "errors"

// ErrInvalidHex is returned when a color string is not a supported hex form.
var ErrInvalidHex = errors.New("invalid hex color")
