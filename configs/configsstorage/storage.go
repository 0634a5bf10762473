package configsstorage

import (
	"context"

	"github.com/sohryuu101/web-wedding-sub000/configs"
	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/pkg/blobstore"

	"go.uber.org/zap"
)

// MemoryPublicPrefix is where the in-memory store's blobs are served.
const MemoryPublicPrefix = "/files"

// InitStore builds the blob store: GCS when a bucket is configured,
// in-process memory otherwise. A GCS dial failure is fatal.
func InitStore(ctx context.Context, cfg *configs.Config) blobstore.Store {
	if cfg.GCSBucket == "" {
		configslog.SLog.Warn("GCS_BUCKET not set, uploads are kept in memory and lost on restart.")
		return blobstore.NewMemoryStore(MemoryPublicPrefix)
	}
	store, err := blobstore.NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSPublicBaseURL, cfg.GCSCredentialsFile)
	if err != nil {
		configslog.Log.Fatal("Failed to create GCS client", zap.String("bucket", cfg.GCSBucket), zap.Error(err))
	}
	configslog.SLog.Infof("Blob store: GCS bucket %s", cfg.GCSBucket)
	return store
}
