package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/gateway"
)

const (
	gatewayName     = "storage"
	contentTypePNG  = "image/png"
	keyExtension    = ".png"
	defaultCategory = "misc"
)

// Config describes an S3-compatible bucket
type Config struct {
	Endpoint      string // Empty for AWS, the MinIO/R2 URL otherwise
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UsePathStyle  bool
	CreateBucket  bool          // Create the bucket at startup when it is missing
	PresignExpiry time.Duration // Zero disables presigning; callers fall back to the proxy
	PublicBaseURL string        // When set, URLs are PublicBaseURL/<key> instead of presigned
	VerifyUploads bool          // Read every object back after writing it
}

// objectAPI is the subset of *s3.Client used by the store
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// presigner is the subset of *s3.PresignClient used by the store
type presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Store implements gateway.BlobStore on S3 or any S3-compatible service
type S3Store struct {
	api          objectAPI
	presign      presigner
	cfg          Config
	ids          core.IDGenerator
	timeProvider core.TimeProvider
	metrics      core.Metrics
	logger       core.Logger
}

// NewS3Store builds an S3 client from static credentials and wraps it in a blob store
func NewS3Store(
	ctx context.Context,
	cfg Config,
	ids core.IDGenerator,
	timeProvider core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	store := newS3Store(client, s3.NewPresignClient(client), cfg, ids, timeProvider, metrics, logger)
	if cfg.CreateBucket {
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func newS3Store(
	api objectAPI,
	presign presigner,
	cfg Config,
	ids core.IDGenerator,
	timeProvider core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *S3Store {
	return &S3Store{
		api:          api,
		presign:      presign,
		cfg:          cfg,
		ids:          ids,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger.With(map[string]any{"component": "s3_store", "bucket": cfg.Bucket}),
	}
}

var _ gateway.BlobStore = (*S3Store)(nil)

// EnsureBucket creates the bucket when HeadBucket reports it missing
func (s *S3Store) EnsureBucket(ctx context.Context) error {
	_, err := s.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.cfg.Bucket)})
	if err == nil {
		return nil
	}
	if !isNotFound(err) {
		return fmt.Errorf("failed to check bucket %s: %w", s.cfg.Bucket, err)
	}

	_, err = s.api.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.cfg.Bucket)})
	if err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("failed to create bucket %s: %w", s.cfg.Bucket, err)
	}

	s.logger.Info("Created storage bucket", nil)
	return nil
}

// Put writes the bytes under {category}/{id}.png and verifies the write when configured
func (s *S3Store) Put(ctx context.Context, data []byte, category string) (key string, err error) {
	if category == "" {
		category = defaultCategory
	}
	key = category + "/" + s.ids.NewID() + keyExtension

	start := s.timeProvider.Now()
	defer func() { s.observe("put", start, err) }()

	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentTypePNG),
	})
	if err != nil {
		s.logger.Error("Failed to upload object", map[string]any{"key": key, "error": err.Error()})
		return "", errs.NewStorageError("put", category, key, err)
	}

	if !s.cfg.VerifyUploads {
		return key, nil
	}

	stored, err := s.read(ctx, key)
	if err != nil {
		return "", errs.NewStorageError("verify", category, key, err)
	}
	if !bytes.Equal(stored, data) {
		s.logger.Error("Stored object does not match upload", map[string]any{
			"key":           key,
			"uploaded_size": len(data),
			"stored_size":   len(stored),
		})
		return "", errs.NewStorageError("verify", category, key, errs.ErrIntegrityMismatch)
	}

	return key, nil
}

// Get reads a stored object
func (s *S3Store) Get(ctx context.Context, key string) (data []byte, err error) {
	start := s.timeProvider.Now()
	defer func() { s.observe("get", start, err) }()

	data, err = s.read(ctx, key)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.ErrImageNotFound
		}
		return nil, errs.NewStorageError("get", categoryOf(key), key, err)
	}
	return data, nil
}

// URL returns a public or presigned URL, or "" when neither is configured
func (s *S3Store) URL(ctx context.Context, key string) (string, error) {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimSuffix(s.cfg.PublicBaseURL, "/") + "/" + key, nil
	}
	if s.cfg.PresignExpiry <= 0 || s.presign == nil {
		return "", nil
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.PresignExpiry))
	if err != nil {
		s.logger.Warn("Failed to presign object URL", map[string]any{"key": key, "error": err.Error()})
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return req.URL, nil
}

func (s *S3Store) read(ctx context.Context, key string) ([]byte, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (s *S3Store) observe(operation string, start time.Time, err error) {
	outcome := core.OutcomeSuccess
	if err != nil && !errors.Is(err, errs.ErrImageNotFound) {
		outcome = core.OutcomeFailure
	}
	s.metrics.ObserveGatewayCall(gatewayName, operation, outcome, s.timeProvider.Since(start).Seconds())
}

// isNotFound classifies missing keys and buckets across AWS and S3-compatible servers
func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var noSuchBucket *types.NoSuchBucket
	var notFound *types.NotFound
	if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) || errors.As(err, &notFound) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NoSuchBucket", "NotFound":
			return true
		}
	}

	var respErr *smithyhttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}

func categoryOf(key string) string {
	if i := strings.IndexByte(key, '/'); i > 0 {
		return key[:i]
	}
	return ""
}
