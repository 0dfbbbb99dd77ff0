// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that inventory backups can be copied off the
// machine. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface is the subset of the MinIO client used by the exporter,
// which keeps storage interactions easy to mock in unit tests (see storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: EnsureBucket creates the backup bucket on first use.
//   - PutObject: Uploads the backup file.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
