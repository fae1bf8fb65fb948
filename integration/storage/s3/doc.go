// Package s3 reads translation catalogs from Amazon S3 and S3-compatible services
// (MinIO, DigitalOcean Spaces, Wasabi) using the AWS SDK v2.
//
// S3Storage implements storage.Reader, so it can be passed to i18n.Load and
// i18n.LoadBundle in place of a local directory:
//
//	src, err := s3.New(ctx, s3.S3Config{
//		Bucket: "app-locales",
//		Region: "eu-west-1",
//		Prefix: "catalogs/v3",
//	})
//	if err != nil {
//		return err
//	}
//
//	engine, err := i18n.Load(ctx, src, manifest.Locales["nl"])
//
// Static credentials are optional; without them the default AWS credential chain
// (environment, shared config, IAM role) is used. For S3-compatible services set
// Endpoint and ForcePathStyle.
//
// SDK errors are mapped onto the storage package's sentinel errors, so callers can
// test for storage.ErrFileNotFound or storage.ErrAccessDenied with errors.Is.
package s3
