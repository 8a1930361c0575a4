// Package blobstore abstracts where input matrices are read from and where
// label files are written to.
//
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, mmap-backed reads, atomic writes
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 via aws-sdk-go-v2
//   - minio.Store: any S3-compatible endpoint via minio-go
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (io.ReadCloser, error) // Read the whole blob
//	    Put(ctx, name, data) error             // Atomic write
//	}
package blobstore
