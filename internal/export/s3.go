package export

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3Uploader writes export objects to one bucket.
type S3Uploader struct {
	client *s3.Client
	bucket string
}

// NewS3Uploader builds a client from static credentials. A custom
// endpoint switches to path-style addressing for S3 compatible stores.
func NewS3Uploader(opts Options) (*S3Uploader, error) {
	if opts.Bucket == "" {
		return nil, errors.New("S3 bucket is required")
	}

	cfg := aws.Config{
		Region: opts.Region,
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		cfg.Credentials = credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")
	} else {
		cfg.Credentials = aws.AnonymousCredentials{}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Uploader{client: client, bucket: opts.Bucket}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, key string, body []byte) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return errors.Wrapf(err, "put s3://%s/%s", u.bucket, key)
	}
	return nil
}
