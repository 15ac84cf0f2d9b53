package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/metrics"
	coremocks "github.com/amirhossein-jamali/photo-restoration/mocks/port/core"
)

// memoryBucket is an in-memory objectAPI; corrupt alters bytes on read
type memoryBucket struct {
	mu       sync.Mutex
	objects  map[string][]byte
	exists   bool
	putErr   error
	corrupt  bool
	created  int
	lastType string
}

func newMemoryBucket() *memoryBucket {
	return &memoryBucket{objects: map[string][]byte{}, exists: true}
}

func (b *memoryBucket) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if b.putErr != nil {
		return nil, b.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[*in.Key] = data
	b.lastType = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (b *memoryBucket) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	if b.corrupt {
		data = append([]byte{0}, data...)
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (b *memoryBucket) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if !b.exists {
		return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "bucket missing"}
	}
	return &s3.HeadBucketOutput{}, nil
}

func (b *memoryBucket) CreateBucket(context.Context, *s3.CreateBucketInput, ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	b.created++
	b.exists = true
	return &s3.CreateBucketOutput{}, nil
}

type stubPresigner struct {
	err error
}

func (p stubPresigner) PresignGetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://signed.example/" + *in.Key + "?X-Amz-Signature=abc"}, nil
}

var fixedTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, bucket *memoryBucket, presign presigner, cfg Config) *S3Store {
	ids := coremocks.NewMockIDGenerator(t)
	ids.EXPECT().NewID().Return("0b7e").Maybe()

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedTime).Maybe()
	clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(20 * time.Millisecond)).Maybe()

	if cfg.Bucket == "" {
		cfg.Bucket = "photos"
	}
	return newS3Store(bucket, presign, cfg, ids, clock, metrics.NewNoopMetrics(), logger.NewNoopLogger())
}

func TestS3StorePut(t *testing.T) {
	ctx := context.Background()
	payload := []byte("png-bytes")

	t.Run("Key is category/id.png and the upload is verified", func(t *testing.T) {
		bucket := newMemoryBucket()
		store := newTestStore(t, bucket, nil, Config{VerifyUploads: true})

		key, err := store.Put(ctx, payload, "enhanced")

		require.NoError(t, err)
		assert.Equal(t, "enhanced/0b7e.png", key)
		assert.Equal(t, payload, bucket.objects[key])
		assert.Equal(t, "image/png", bucket.lastType)
	})

	t.Run("Read-back mismatch is an integrity failure", func(t *testing.T) {
		bucket := newMemoryBucket()
		bucket.corrupt = true
		store := newTestStore(t, bucket, nil, Config{VerifyUploads: true})

		_, err := store.Put(ctx, payload, "originals")

		assert.ErrorIs(t, err, errs.ErrIntegrityMismatch)
		assert.ErrorIs(t, err, errs.ErrStorageFailed)
		assert.Equal(t, errs.CodeIntegrityFailure, errs.ErrorCode(err))
	})

	t.Run("Write failure is a storage failure", func(t *testing.T) {
		bucket := newMemoryBucket()
		bucket.putErr = errors.New("connection reset")
		store := newTestStore(t, bucket, nil, Config{})

		_, err := store.Put(ctx, payload, "originals")

		assert.ErrorIs(t, err, errs.ErrStorageFailed)
		assert.NotErrorIs(t, err, errs.ErrIntegrityMismatch)
	})
}

func TestS3StoreGet(t *testing.T) {
	ctx := context.Background()
	bucket := newMemoryBucket()
	bucket.objects["enhanced/a.png"] = []byte("data")
	store := newTestStore(t, bucket, nil, Config{})

	data, err := store.Get(ctx, "enhanced/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)

	_, err = store.Get(ctx, "enhanced/missing.png")
	assert.ErrorIs(t, err, errs.ErrImageNotFound)
}

func TestS3StoreURL(t *testing.T) {
	ctx := context.Background()

	t.Run("Presigned when an expiry is configured", func(t *testing.T) {
		store := newTestStore(t, newMemoryBucket(), stubPresigner{}, Config{PresignExpiry: time.Hour})

		url, err := store.URL(ctx, "enhanced/a.png")

		require.NoError(t, err)
		assert.Contains(t, url, "enhanced/a.png")
		assert.Contains(t, url, "X-Amz-Signature")
	})

	t.Run("Public base URL wins", func(t *testing.T) {
		store := newTestStore(t, newMemoryBucket(), stubPresigner{}, Config{
			PresignExpiry: time.Hour,
			PublicBaseURL: "https://cdn.example/",
		})

		url, err := store.URL(ctx, "enhanced/a.png")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example/enhanced/a.png", url)
	})

	t.Run("Empty when presigning is disabled", func(t *testing.T) {
		store := newTestStore(t, newMemoryBucket(), stubPresigner{}, Config{})

		url, err := store.URL(ctx, "enhanced/a.png")

		require.NoError(t, err)
		assert.Empty(t, url)
	})

	t.Run("Signer failure is returned", func(t *testing.T) {
		store := newTestStore(t, newMemoryBucket(), stubPresigner{err: errors.New("no credentials")}, Config{PresignExpiry: time.Hour})

		_, err := store.URL(ctx, "enhanced/a.png")

		assert.Error(t, err)
	})
}

func TestS3StoreEnsureBucket(t *testing.T) {
	bucket := newMemoryBucket()
	bucket.exists = false
	store := newTestStore(t, bucket, nil, Config{})

	require.NoError(t, store.EnsureBucket(context.Background()))
	require.NoError(t, store.EnsureBucket(context.Background()))

	assert.Equal(t, 1, bucket.created)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(&types.NoSuchKey{}))
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("boom")))
}
