package main

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hupe1980/kmeans3d/blobstore"
	"github.com/hupe1980/kmeans3d/blobstore/minio"
	"github.com/hupe1980/kmeans3d/blobstore/s3"
)

const s3Scheme = "s3://"

// location is a parsed --file or --outfile argument.
type location struct {
	bucket string
	name   string
}

func (l location) remote() bool {
	return l.bucket != ""
}

func parseLocation(arg string) (location, error) {
	if !strings.HasPrefix(arg, s3Scheme) {
		return location{name: arg}, nil
	}

	u, err := url.Parse(arg)
	if err != nil {
		return location{}, fmt.Errorf("invalid location %q: %w", arg, err)
	}

	name := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || name == "" {
		return location{}, fmt.Errorf("invalid location %q: want s3://bucket/key", arg)
	}
	return location{bucket: u.Host, name: name}, nil
}

// openStore returns the store holding loc.
func openStore(ctx context.Context, loc location, cfg ObjectStoreConfig) (blobstore.BlobStore, error) {
	if !loc.remote() {
		return blobstore.NewLocalStore(""), nil
	}

	if cfg.driver() == DriverMinIO {
		client, err := minio.NewClient(minio.Config{
			Endpoint:  cfg.Endpoint,
			Region:    cfg.Region,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
			UseSSL:    cfg.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return minio.NewStore(client, loc.bucket, ""), nil
	}

	var opts []s3.Option
	if cfg.Region != "" {
		opts = append(opts, s3.WithRegion(cfg.Region))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, s3.WithEndpoint(cfg.Endpoint))
	}
	return s3.New(ctx, loc.bucket, opts...)
}
