package publisher

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/tidwall/sjson"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/logger"
)

var _ Publisher = (*S3)(nil)

// S3Config selects the bucket and credentials for an S3-compatible store
type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
}

// ObjectUploader is the part of manager.Uploader the publisher needs
type ObjectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// ObjectHeader is the part of the S3 client the publisher needs
type ObjectHeader interface {
	HeadObject(ctx context.Context, input *s3.HeadObjectInput, opts ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3 stores each document under its content hash, so republishing the same
// document yields an alreadyCertified receipt.
type S3 struct {
	bucket   string
	prefix   string
	uploader ObjectUploader
	header   ObjectHeader
}

// NewS3 loads AWS configuration and builds a content-addressed publisher.
// A custom endpoint switches to path-style addressing for MinIO and R2.
func NewS3(ctx context.Context, cfg S3Config) (*S3, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadAWSConfig, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewS3WithClients(cfg.Bucket, cfg.Prefix, manager.NewUploader(client), client), nil
}

// NewS3WithClients wires explicit clients
func NewS3WithClients(bucket, prefix string, uploader ObjectUploader, header ObjectHeader) *S3 {
	return &S3{bucket: bucket, prefix: prefix, uploader: uploader, header: header}
}

// ObjectKey is the content-addressed key for data
func (p *S3) ObjectKey(data []byte) string {
	sum := sha256.Sum256(data)
	return path.Join(p.prefix, hex.EncodeToString(sum[:])+DefaultS3ObjectSuffix)
}

func (p *S3) Publish(ctx context.Context, data []byte) (*Receipt, error) {
	log := logger.FromContext(ctx)
	key := p.ObjectKey(data)

	head, err := p.header.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	switch {
	case err == nil:
		body, err := p.receipt(key, aws.ToString(head.ETag), aws.ToString(head.VersionId), "")
		if err != nil {
			return nil, err
		}
		return &Receipt{Variant: domain.ReceiptAlreadyCertified, Body: body}, nil
	case !isNotFound(err):
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, ErrMsgHeadObject, err)
	}

	out, err := p.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(DefaultS3ContentType),
	})
	if err != nil {
		log.Warn(LogMsgPublishFailed, "bucket", p.bucket, "key", key, "error", err)
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrUpstream, ErrMsgUploadObject, err)
	}
	log.Info(LogMsgObjectUploaded, "bucket", p.bucket, "key", key)

	body, err := p.receipt(key, aws.ToString(out.ETag), aws.ToString(out.VersionID), out.Location)
	if err != nil {
		return nil, err
	}
	return &Receipt{Variant: domain.ReceiptNewlyCreated, Body: body}, nil
}

func (p *S3) receipt(key, etag, versionID, location string) ([]byte, error) {
	fields := []struct {
		path  string
		value string
	}{
		{"blobId", key},
		{"bucket", p.bucket},
		{"etag", etag},
		{"versionId", versionID},
		{"location", location},
	}

	body := []byte("{}")
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		var err error
		if body, err = sjson.SetBytes(body, f.path, f.value); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	return errors.As(err, &notFound) || errors.As(err, &noSuchKey)
}
