package storage_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/storage"
)

// MockS3Client is a mock implementation of the S3Client interface.
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadObjectOutput), args.Error(1)
}

func (m *MockS3Client) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.HeadBucketOutput), args.Error(1)
}

func newS3(t *testing.T, client storage.S3Client, cfg storage.S3Config, opts ...storage.S3Option) *storage.S3Storage {
	t.Helper()
	if cfg.Bucket == "" {
		cfg.Bucket = "qr-images"
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}
	st, err := storage.NewS3Storage(context.Background(), cfg, append(opts, storage.WithS3Client(client))...)
	require.NoError(t, err)
	return st
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	t.Run("requires bucket and region", func(t *testing.T) {
		t.Parallel()
		_, err := storage.NewS3Storage(context.Background(), storage.S3Config{Bucket: "b"})
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)
		_, err = storage.NewS3Storage(context.Background(), storage.S3Config{Region: "r"})
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)
	})

	t.Run("base url variants", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)

		st := newS3(t, client, storage.S3Config{})
		assert.Equal(t, "https://qr-images.s3.us-east-1.amazonaws.com/a.png", st.URL("a.png"))

		st = newS3(t, client, storage.S3Config{Endpoint: "http://minio:9000/"})
		assert.Equal(t, "http://minio:9000/qr-images/a.png", st.URL("a.png"))

		st = newS3(t, client, storage.S3Config{BaseURL: "https://cdn.example.com", Prefix: "/codes/"})
		assert.Equal(t, "https://cdn.example.com/codes/a.png", st.URL("a.png"))
		assert.Empty(t, st.URL("../a.png"))
	})
}

func TestS3Storage_Put(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("uploads with content type and prefix", func(t *testing.T) {
		t.Parallel()
		var body []byte
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return *in.Bucket == "qr-images" &&
				*in.Key == "codes/wifi_home.png" &&
				*in.ContentType == "image/png" &&
				*in.ContentLength == 3
		})).Run(func(args mock.Arguments) {
			body, _ = io.ReadAll(args.Get(1).(*s3.PutObjectInput).Body)
		}).Return(&s3.PutObjectOutput{}, nil).Once()

		st := newS3(t, client, storage.S3Config{Prefix: "codes"})
		url, err := st.Put(ctx, "wifi_home.png", []byte("png"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "https://qr-images.s3.us-east-1.amazonaws.com/codes/wifi_home.png", url)
		assert.Equal(t, "png", string(body))
		client.AssertExpectations(t)
	})

	t.Run("default content type", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
			return *in.ContentType == "application/octet-stream"
		})).Return(&s3.PutObjectOutput{}, nil).Once()

		st := newS3(t, client, storage.S3Config{})
		_, err := st.Put(ctx, "blob", nil, "")
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("upload timeout sets a deadline", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		client.On("PutObject", mock.MatchedBy(func(c context.Context) bool {
			_, ok := c.Deadline()
			return ok
		}), mock.Anything).Return(&s3.PutObjectOutput{}, nil).Once()

		st := newS3(t, client, storage.S3Config{}, storage.WithS3UploadTimeout(time.Minute))
		_, err := st.Put(ctx, "a.png", []byte("x"), "image/png")
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("invalid name never reaches the client", func(t *testing.T) {
		t.Parallel()
		client := new(MockS3Client)
		st := newS3(t, client, storage.S3Config{})
		_, err := st.Put(ctx, "../a.png", []byte("x"), "image/png")
		assert.ErrorIs(t, err, storage.ErrInvalidName)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
	})

	errCases := []struct {
		name string
		err  error
		want error
	}{
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, storage.ErrAccessDenied},
		{"throttled", &smithy.GenericAPIError{Code: "SlowDown"}, storage.ErrServiceUnavailable},
		{"request timeout", &smithy.GenericAPIError{Code: "RequestTimeout"}, storage.ErrRequestTimeout},
		{"no such bucket", &types.NoSuchBucket{}, storage.ErrBucketNotFound},
		{"deadline", context.DeadlineExceeded, storage.ErrOperationTimeout},
		{"canceled", context.Canceled, storage.ErrOperationCanceled},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := new(MockS3Client)
			client.On("PutObject", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			st := newS3(t, client, storage.S3Config{})
			_, err := st.Put(ctx, "a.png", []byte("x"), "image/png")
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("unknown api error keeps the cause", func(t *testing.T) {
		t.Parallel()
		cause := &smithy.GenericAPIError{Code: "EntityTooLarge"}
		client := new(MockS3Client)
		client.On("PutObject", mock.Anything, mock.Anything).Return(nil, cause).Once()

		st := newS3(t, client, storage.S3Config{})
		_, err := st.Put(ctx, "a.png", []byte("x"), "image/png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EntityTooLarge")
		var apiErr smithy.APIError
		assert.True(t, errors.As(err, &apiErr))
	})
}

func TestS3Storage_Exists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := new(MockS3Client)
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return *in.Key == "here.png"
	})).Return(&s3.HeadObjectOutput{}, nil)
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return *in.Key == "missing.png"
	})).Return(nil, &types.NotFound{})
	client.On("HeadObject", mock.Anything, mock.MatchedBy(func(in *s3.HeadObjectInput) bool {
		return *in.Key == "secret.png"
	})).Return(nil, &smithy.GenericAPIError{Code: "Forbidden"})

	st := newS3(t, client, storage.S3Config{})

	ok, err := st.Exists(ctx, "here.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = st.Exists(ctx, "missing.png")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = st.Exists(ctx, "secret.png")
	assert.ErrorIs(t, err, storage.ErrAccessDenied)
}

func TestS3Storage_Ping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client := new(MockS3Client)
	client.On("HeadBucket", mock.Anything, mock.MatchedBy(func(in *s3.HeadBucketInput) bool {
		return *in.Bucket == "qr-images"
	})).Return(&s3.HeadBucketOutput{}, nil).Once()
	require.NoError(t, newS3(t, client, storage.S3Config{}).Ping(ctx))
	client.AssertExpectations(t)

	failing := new(MockS3Client)
	failing.On("HeadBucket", mock.Anything, mock.Anything).Return(nil, &types.NoSuchBucket{}).Once()
	assert.ErrorIs(t, newS3(t, failing, storage.S3Config{}).Ping(ctx), storage.ErrBucketNotFound)
}
