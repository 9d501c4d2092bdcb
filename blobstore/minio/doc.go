// Package minio provides a MinIO (or any S3-compatible server) implementation
// of blobstore.Store.
//
// # Usage
//
//	store, err := minio.New("play.min.io", "datasets", "homr/", true)
//	mirror := blobstore.NewMirror(store, blobstore.NewLocalStore("data"))
//
// Credentials are taken from MINIO_ACCESS_KEY/MINIO_SECRET_KEY, falling
// back to the AWS environment variables.
package minio
