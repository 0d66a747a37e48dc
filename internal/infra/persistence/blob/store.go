// Package blob provides a KeyValueStore on top of a gocloud.dev bucket.
// Any registered driver URL works: file:// for a local directory, mem:// for tests, gs:// for GCS.
package blob

import (
	"context"
	"net/url"
	"path"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const contentTypeJSON = "application/json"

// Store maps each key to one object named {prefix}/{namespace}/{id}.json.
type Store struct {
	bucket *blob.Bucket
	prefix string
}

// Open opens the bucket at bucketURL.
func Open(ctx context.Context, bucketURL, prefix string) (*Store, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return NewStore(bucket, prefix), nil
}

// NewStore wraps an already opened bucket.
func NewStore(bucket *blob.Bucket, prefix string) *Store {
	return &Store{bucket: bucket, prefix: prefix}
}

func (s *Store) objectKey(key repository.Key) string {
	return path.Join(s.prefix, url.PathEscape(key.Namespace), url.PathEscape(key.ID)+".json")
}

// Get reads the object for key.
func (s *Store) Get(ctx context.Context, key repository.Key) ([]byte, bool, error) {
	data, err := s.bucket.ReadAll(ctx, s.objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, true, nil
}

// Set writes the object for key.
func (s *Store) Set(ctx context.Context, key repository.Key, value []byte) error {
	opts := &blob.WriterOptions{ContentType: contentTypeJSON}
	if err := s.bucket.WriteAll(ctx, s.objectKey(key), value, opts); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

// SetIfAbsent writes the object for key only if it does not exist yet.
func (s *Store) SetIfAbsent(ctx context.Context, key repository.Key, value []byte) (bool, error) {
	opts := &blob.WriterOptions{ContentType: contentTypeJSON, IfNotExist: true}
	if err := s.bucket.WriteAll(ctx, s.objectKey(key), value, opts); err != nil {
		if gcerrors.Code(err) == gcerrors.FailedPrecondition {
			return false, nil
		}

		return false, errors.Wrapf(err, "failed to create %s", key)
	}

	return true, nil
}

// Delete removes the object for key.
func (s *Store) Delete(ctx context.Context, key repository.Key) error {
	if err := s.bucket.Delete(ctx, s.objectKey(key)); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *Store) Close() error {
	return errors.WithStack(s.bucket.Close())
}
