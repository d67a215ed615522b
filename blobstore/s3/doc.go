// Package s3 provides an Amazon S3 implementation of blobstore.Store.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("site/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//	report, err := site.Publish(ctx, store)
//
// # Features
//
//   - Uploads through the SDK upload manager (multipart for large objects)
//   - Content-Type, Content-Encoding and Cache-Control stored as object metadata
//   - Range reads for partial fetches
//   - Automatic pagination for listing
//   - Configurable prefix for sharing a bucket
package s3
