package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"contentHub/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// S3Client stores uploads in any S3-compatible bucket.
type S3Client struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

func NewS3Client(ctx context.Context, cfg config.S3, log zerolog.Logger) (*S3Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err = client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(cfg.BucketName)})
	if err != nil {
		input := &s3.CreateBucketInput{Bucket: aws.String(cfg.BucketName)}
		if cfg.Region != "us-east-1" {
			input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(cfg.Region),
			}
		}
		if _, err := client.CreateBucket(ctx, input); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.BucketName, err)
		}
		log.Info().Str("bucket", cfg.BucketName).Msg("bucket created")
	}

	return &S3Client{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.BucketName,
	}, nil
}

func (c *S3Client) Save(ctx context.Context, folder, fileName string, file io.Reader, _ int64, contentType string) (string, error) {
	name := objectName(folder, fileName, contentType, time.Now())

	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(name),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s to bucket %s: %w", name, c.bucket, err)
	}

	return name, nil
}

func (c *S3Client) Delete(ctx context.Context, ref string) error {
	if err := checkRef(ref); err != nil {
		return err
	}

	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(ref),
	})
	if err != nil {
		return fmt.Errorf("delete %s from bucket %s: %w", ref, c.bucket, err)
	}

	return nil
}
