package source

import (
	"boulderhall-service/internal/domain"
	"boulderhall-service/internal/platform/obs"
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	Object    string
}

// S3Source reads the halls document from an object in an S3-compatible bucket.
type S3Source struct {
	client *minio.Client
	bucket string
	object string
	log    *zap.Logger
}

func NewS3Source(cfg S3Config, log *zap.Logger) (*S3Source, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, errors.New("s3 hall source: endpoint and credentials are required")
	}
	if cfg.Bucket == "" || cfg.Object == "" {
		return nil, errors.New("s3 hall source: bucket and object are required")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 hall source: create client: %w", err)
	}

	return &S3Source{client: client, bucket: cfg.Bucket, object: cfg.Object, log: log}, nil
}

func (s *S3Source) FetchHalls(ctx context.Context) (_ []domain.Hall, err error) {
	defer obs.Time(ctx, s.log, "halls.s3.Fetch")(&err)

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch halls: get s3://%s/%s: %w", s.bucket, s.object, err)
	}
	defer obj.Close()

	halls, err := DecodeHalls(obj)
	if err != nil {
		var er minio.ErrorResponse
		if errors.As(err, &er) && er.Code == "NoSuchKey" {
			return nil, fmt.Errorf("fetch halls: s3://%s/%s does not exist", s.bucket, s.object)
		}
		return nil, fmt.Errorf("fetch halls: s3://%s/%s: %w", s.bucket, s.object, err)
	}
	return halls, nil
}
