package storage

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid storage configuration")
	ErrUnknownDriver = errors.New("unknown storage driver")
	// ErrInvalidName rejects empty, absolute and escaping object names.
	ErrInvalidName = errors.New("invalid object name")

	// Local filesystem errors.
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
	ErrFailedToCreateDirectory = errors.New("failed to create directory")
	ErrFailedToWriteFile       = errors.New("failed to write file")
	ErrFailedToStatPath        = errors.New("failed to stat path")

	// S3 errors.
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")
)
