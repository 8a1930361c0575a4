// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithRegion("eu-central-1"),
//	    s3.WithEndpoint("http://localhost:4566"), // optional
//	)
//	ds, err := dataset.Load(ctx, store, "points.tsv.zst")
//
// Credentials and the default region come from the standard AWS
// configuration chain (environment, shared config, instance role).
//
// Writes go through the s3 manager uploader, which switches to multipart
// uploads for large label files.
package s3
