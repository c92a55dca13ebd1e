// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ride-docs/internal/config"
	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3API is the subset of *s3.Client used by the S3 blob store.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// s3BlobStore keeps blobs as objects "<container>/<key>" of one bucket.
type s3BlobStore struct {
	client S3API
	bucket string
	logger *logger.Logger
}

// NewS3BlobStore builds an S3 client from cfg. Static credentials are used
// when an access key is configured, the default AWS chain otherwise. A custom
// endpoint (MinIO, LocalStack) switches to path-style addressing.
func NewS3BlobStore(ctx context.Context, cfg config.S3, logger *logger.Logger) (BlobStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
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

	return NewS3BlobStoreWithClient(client, cfg.Bucket, logger), nil
}

// NewS3BlobStoreWithClient wraps an existing client.
func NewS3BlobStoreWithClient(client S3API, bucket string, logger *logger.Logger) BlobStore {
	logger.Debug().Str("bucket", bucket).Msg("creating s3 blob store")
	return &s3BlobStore{client: client, bucket: bucket, logger: logger}
}

// PutBlob implements [BlobStore].
func (s *s3BlobStore) PutBlob(ctx context.Context, blob models.Blob) error {
	key, err := objectKey(blob.Container, blob.Key)
	if err != nil {
		return err
	}

	contentType := blob.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(blob.Data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3BlobStore.PutBlob").Str("key", key).Msg("error putting object")
		return fmt.Errorf("put object %s: %w", key, err)
	}
	return nil
}

// GetBlob implements [BlobStore].
func (s *s3BlobStore) GetBlob(ctx context.Context, container, key string) (models.Blob, error) {
	objKey, err := objectKey(container, key)
	if err != nil {
		return models.Blob{}, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return models.Blob{}, ErrBlobNotFound
		}
		return models.Blob{}, fmt.Errorf("get object %s: %w", objKey, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return models.Blob{}, fmt.Errorf("read object %s: %w", objKey, err)
	}

	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = sniffContentType(data)
	}

	return models.Blob{Container: container, Key: key, ContentType: contentType, Data: data}, nil
}

// DeleteBlob implements [BlobStore]. S3 does not report missing keys on
// delete, so deleting an absent blob succeeds.
func (s *s3BlobStore) DeleteBlob(ctx context.Context, container, key string) error {
	objKey, err := objectKey(container, key)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objKey),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3BlobStore.DeleteBlob").Str("key", objKey).Msg("error deleting object")
		return fmt.Errorf("delete object %s: %w", objKey, err)
	}
	return nil
}

func objectKey(container, key string) (string, error) {
	if err := checkBlobKey(container, key); err != nil {
		return "", err
	}
	return container + "/" + key, nil
}
