// Package blobstore provides the storage abstraction that static exports are
// written to.
//
// Store is a flat namespace of objects addressed by slash-separated names.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: in-process map, for tests and dry runs
//   - LocalStore: directory tree with atomic writes
//   - s3.Store: Amazon S3 via aws-sdk-go-v2 upload manager
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type Store interface {
//	    Put(ctx, name, data, opts) error
//	    Open(ctx, name) (Blob, error)
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Open returns an error satisfying errors.Is(err, ErrNotFound) for a
// missing object.
package blobstore
