package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when there is nothing to encode.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when the content cannot be encoded,
	// typically because it exceeds the symbol capacity.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
	// ErrInvalidSize is returned for a non-positive raster size.
	ErrInvalidSize = errors.New("invalid QR code size")
)
