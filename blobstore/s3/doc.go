// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	mirror := blobstore.NewMirror(store, blobstore.NewLocalStore("data"))
//
// # Features
//
//   - Range reads for partial fetches
//   - Parallel multi-part downloads through the transfer manager
//   - Credentials and region from the default AWS configuration chain
package s3
