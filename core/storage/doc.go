// Package storage wraps the MinIO client for the object store holding equip
// icons. It works against AWS S3 as well as self-hosted MinIO.
//
// The Client interface covers the calls the icon catalogue makes, which lets
// tests substitute core/storage/mocks. EnsureBucket creates the configured
// bucket on startup when it is missing.
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
