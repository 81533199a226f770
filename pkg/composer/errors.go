package composer

import "errors"

var (
	// ErrRasterize wraps failures of the QR rasterizer, for example data that
	// does not fit into any QR symbol.
	ErrRasterize = errors.New("failed to rasterize QR code")
	// ErrEncode wraps image encoder failures.
	ErrEncode = errors.New("failed to encode image")
	// ErrFont is returned when a caption font cannot be loaded.
	ErrFont = errors.New("failed to load font")
	// ErrInvalidColor is returned when a style color is not a hex color.
	ErrInvalidColor = errors.New("invalid style color")
)
