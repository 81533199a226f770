package api

import "errors"

var (
	ErrMissingContentType   = errors.New("missing content type")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrBodyTooLarge         = errors.New("request body too large")
	// ErrStorageDisabled is returned by the save endpoint when no storage
	// backend is configured.
	ErrStorageDisabled = errors.New("storage is not configured")
)
