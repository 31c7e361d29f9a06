package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/sync/errgroup"

	"friendlylink/internal/platform/config"
	"friendlylink/internal/registry/store"
)

// S3 persists each bucket as an object under a key prefix.
type S3 struct {
	client *s3.Client
	bucket string
	prefix string
}

// OpenS3 builds the client from the default credential chain. A custom
// endpoint switches to path-style addressing for S3-compatible servers.
// Extra options are applied last.
func OpenS3(ctx context.Context, cfg config.S3Config, optFns ...func(*s3.Options)) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewS3(awsCfg, cfg, optFns...), nil
}

// NewS3 builds the store from an already loaded aws.Config.
func NewS3(awsCfg aws.Config, cfg config.S3Config, optFns ...func(*s3.Options)) *S3 {
	opts := append([]func(*s3.Options){func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	}}, optFns...)
	return &S3{client: s3.NewFromConfig(awsCfg, opts...), bucket: cfg.Bucket, prefix: cfg.Prefix}
}

func (s *S3) objectKey(bucket string) string {
	return s.prefix + bucket + ".json"
}

func (s *S3) Read(ctx context.Context) (*store.FriendlyLink, error) {
	var mu sync.Mutex
	buckets := make(map[string][]byte, len(Buckets))

	g, ctx := errgroup.WithContext(ctx)
	for _, bucket := range Buckets {
		g.Go(func() error {
			key := s.objectKey(bucket)
			out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &key})
			if isMissingObject(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("get %s: %w", key, err)
			}
			defer out.Body.Close() //nolint:errcheck // body fully read below
			payload, err := io.ReadAll(out.Body)
			if err != nil {
				return fmt.Errorf("read %s: %w", key, err)
			}
			mu.Lock()
			buckets[bucket] = payload
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return Decode(buckets)
}

func (s *S3) Write(ctx context.Context, registry *store.FriendlyLink) error {
	buckets, err := Encode(registry)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, bucket := range Buckets {
		payload := buckets[bucket]
		g.Go(func() error {
			key := s.objectKey(bucket)
			_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
				Bucket:        &s.bucket,
				Key:           &key,
				Body:          bytes.NewReader(payload),
				ContentLength: aws.Int64(int64(len(payload))),
				ContentType:   aws.String("application/json"),
			})
			if err != nil {
				return fmt.Errorf("put %s: %w", key, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func isMissingObject(err error) bool {
	if err == nil {
		return false
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}
