// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works against MinIO and any other S3-compatible service (Ceph,
// SeaweedFS, Garage) and is what the CLI uses when an object store endpoint
// is configured.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "datasets/")
//	ds, err := dataset.Load(ctx, store, "points.tsv")
package minio
