package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/hupe1980/homr/blobstore"
	"github.com/hupe1980/homr/blobstore/minio"
	"github.com/hupe1980/homr/blobstore/s3"
)

// parseRemote resolves a --remote value to a store. "none" disables
// fetching.
func parseRemote(ctx context.Context, raw string) (blobstore.Store, error) {
	if raw == "" || raw == "none" {
		return nil, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --remote %q: %w", raw, err)
	}

	switch u.Scheme {
	case "http", "https":
		store, err := blobstore.NewHTTPStore(raw)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "s3":
		var opts []s3.Option
		if prefix := strings.Trim(u.Path, "/"); prefix != "" {
			opts = append(opts, s3.WithPrefix(prefix))
		}
		if endpoint := os.Getenv("HOMR_S3_ENDPOINT"); endpoint != "" {
			opts = append(opts, s3.WithEndpoint(endpoint))
		}
		store, err := s3.New(ctx, u.Host, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		bucket, prefix, _ := strings.Cut(strings.Trim(u.Path, "/"), "/")
		if bucket == "" {
			return nil, fmt.Errorf("invalid --remote %q: missing bucket", raw)
		}
		secure := u.Query().Get("secure") != "false"
		store, err := minio.New(u.Host, bucket, prefix, secure)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid --remote %q: unsupported scheme %q", raw, u.Scheme)
	}
}
