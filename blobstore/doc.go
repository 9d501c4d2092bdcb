// Package blobstore provides read access to the record files of a corpus,
// wherever they live.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, memory-mapped reads, atomic writes
//   - MemoryStore: in-process blobs for tests
//   - HTTPStore: any HTTP(S) server supporting HEAD and range requests
//   - s3.Store: Amazon S3 with parallel ranged downloads
//   - minio.Store: MinIO and other S3-compatible servers
//
// # Mirroring
//
// A Mirror copies blobs from a remote Store into a LocalStore the first time
// they are needed. Partial downloads never become visible under the final
// name:
//
//	remote, _ := blobstore.NewHTTPStore("https://example.org/datasets/")
//	mirror := blobstore.NewMirror(remote, blobstore.NewLocalStore("data"))
//	path, fetched, err := mirror.Ensure(ctx, "homr.dev.tfrecord")
//
// # Custom Implementations
//
// Implement Store (and optionally Downloader) to add a backend:
//
//	type Store interface {
//	    Open(ctx, name) (Blob, error)
//	}
package blobstore
