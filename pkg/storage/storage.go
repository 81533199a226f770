package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
)

// Storage persists generated images and returns where they can be fetched.
type Storage interface {
	// Put writes data under name, replacing any existing object, and returns
	// its public URL.
	Put(ctx context.Context, name string, data []byte, contentType string) (string, error)
	// Exists reports whether an object is stored under name.
	Exists(ctx context.Context, name string) (bool, error)
	// URL returns the public URL for name.
	URL(name string) string
	// Ping checks that the backend is reachable and writable.
	Ping(ctx context.Context) error
}

// Driver names accepted in Config.Driver.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures a backend from STORAGE_* variables.
// An empty driver disables storage.
type Config struct {
	Driver        string        `env:"STORAGE_DRIVER"`
	LocalDir      string        `env:"STORAGE_LOCAL_DIR" envDefault:"./output"`
	BaseURL       string        `env:"STORAGE_BASE_URL"`
	UploadTimeout time.Duration `env:"STORAGE_UPLOAD_TIMEOUT" envDefault:"30s"`

	S3Bucket         string `env:"STORAGE_S3_BUCKET"`
	S3Region         string `env:"STORAGE_S3_REGION"`
	S3AccessKeyID    string `env:"STORAGE_S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"STORAGE_S3_SECRET_KEY"`
	S3Endpoint       string `env:"STORAGE_S3_ENDPOINT"`
	S3Prefix         string `env:"STORAGE_S3_PREFIX"`
	S3ForcePathStyle bool   `env:"STORAGE_S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Enabled reports whether a driver is configured.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Driver) != ""
}

// New builds the backend named by cfg.Driver. S3 options are passed through
// to NewS3Storage.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case DriverLocal:
		st, err := NewLocalStorage(cfg.LocalDir, cfg.BaseURL, WithLocalUploadTimeout(cfg.UploadTimeout))
		if err != nil {
			return nil, err
		}
		return st, nil
	case DriverS3:
		opts = append([]S3Option{WithS3UploadTimeout(cfg.UploadTimeout)}, opts...)
		st, err := NewS3Storage(ctx, S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			Prefix:         cfg.S3Prefix,
			BaseURL:        cfg.BaseURL,
			ForcePathStyle: cfg.S3ForcePathStyle,
		}, opts...)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "":
		return nil, fmt.Errorf("%w: STORAGE_DRIVER is empty", ErrInvalidConfig)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// cleanName validates an object name. Names are slash separated, relative
// and may not leave the storage root.
func cleanName(name string) (string, error) {
	if strings.TrimSpace(name) == "" || strings.ContainsRune(name, '\\') || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	cleaned := path.Clean(name)
	if cleaned == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return cleaned, nil
}

func joinURL(base, name string) string {
	if base == "" {
		return name
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(name, "/")
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return ctx, func() {}
}
