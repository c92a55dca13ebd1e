// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MKhiriev/go-ride-docs/internal/logger"
	"github.com/MKhiriev/go-ride-docs/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects     map[string][]byte
	types       map[string]string
	deleteCalls []string
	err         error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.objects[key] = data
	f.types[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	data, ok := f.objects[key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body:        io.NopCloser(bytes.NewReader(data)),
		ContentType: aws.String(f.types[key]),
	}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	key := aws.ToString(in.Bucket) + "/" + aws.ToString(in.Key)
	f.deleteCalls = append(f.deleteCalls, key)
	delete(f.objects, key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3BlobStore_RoundTrip(t *testing.T) {
	client := newFakeS3()
	store := NewS3BlobStoreWithClient(client, "docs", logger.Nop())
	ctx := context.Background()

	err := store.PutBlob(ctx, models.Blob{Container: "cardocument", Key: "a.png", ContentType: "image/png", Data: pngBytes})
	require.NoError(t, err)
	assert.Contains(t, client.objects, "docs/cardocument/a.png")

	got, err := store.GetBlob(ctx, "cardocument", "a.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, pngBytes, got.Data)

	require.NoError(t, store.DeleteBlob(ctx, "cardocument", "a.png"))
	assert.Equal(t, []string{"docs/cardocument/a.png"}, client.deleteCalls)

	_, err = store.GetBlob(ctx, "cardocument", "a.png")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestS3BlobStore_DefaultContentType(t *testing.T) {
	client := newFakeS3()
	store := NewS3BlobStoreWithClient(client, "docs", logger.Nop())

	require.NoError(t, store.PutBlob(context.Background(), models.Blob{Container: "c", Key: "k", Data: []byte("x")}))
	assert.Equal(t, defaultContentType, client.types["docs/c/k"])
}

func TestS3BlobStore_PutError(t *testing.T) {
	client := newFakeS3()
	client.err = errors.New("access denied")
	store := NewS3BlobStoreWithClient(client, "docs", logger.Nop())

	err := store.PutBlob(context.Background(), models.Blob{Container: "c", Key: "k", Data: []byte("x")})
	assert.ErrorIs(t, err, client.err)
}

func TestS3BlobStore_InvalidKey(t *testing.T) {
	store := NewS3BlobStoreWithClient(newFakeS3(), "docs", logger.Nop())

	assert.ErrorIs(t, store.DeleteBlob(context.Background(), "c", "../k"), ErrInvalidBlobKey)
}
