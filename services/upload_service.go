package services

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/pkg/blobstore"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultUploadFolder = "images"

// UploadResult is where an upload landed.
type UploadResult struct {
	URL  string `json:"url"`
	Path string `json:"path"`
}

// IUploadService proxies author media into the blob store under
// users/{userId}/.
type IUploadService interface {
	Upload(ctx context.Context, userID uint, folder, filename, contentType string, data []byte) (*UploadResult, error)
	Delete(ctx context.Context, userID uint, blobPath string) error
	Open(ctx context.Context, blobPath string) (*blobstore.Object, error)
}

type UploadService struct {
	store    blobstore.Store
	maxBytes int64
}

func NewUploadService(store blobstore.Store, maxBytes int64) IUploadService {
	return &UploadService{store: store, maxBytes: maxBytes}
}

func userPrefix(userID uint) string {
	return fmt.Sprintf("users/%d/", userID)
}

func (s *UploadService) Upload(ctx context.Context, userID uint, folder, filename, contentType string, data []byte) (*UploadResult, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: file is empty", ErrValidation)
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, s.maxBytes)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !(strings.HasPrefix(mediaType, "image/") || strings.HasPrefix(mediaType, "video/")) {
		return nil, fmt.Errorf("%w: only image and video files are accepted", ErrValidation)
	}
	// SVG can carry script and is served from our own origin.
	if mediaType == "image/svg+xml" || strings.EqualFold(path.Ext(filename), ".svg") {
		return nil, fmt.Errorf("%w: svg files are not accepted", ErrValidation)
	}

	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = defaultUploadFolder
	}
	ext := strings.ToLower(path.Ext(filename))
	blobPath, err := blobstore.CleanPath(userPrefix(userID) + folder + "/" + uuid.NewString() + ext)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid folder", ErrValidation)
	}

	if err := s.store.Put(ctx, blobPath, data, mediaType); err != nil {
		configslog.Log.Error("UploadService.Upload: put failed", zap.Uint("user_id", userID), zap.String("path", blobPath), zap.Error(err))
		return nil, ErrInternal
	}
	return &UploadResult{URL: s.store.URL(blobPath), Path: blobPath}, nil
}

// Delete only reaches blobs under the caller's own prefix; anything else
// is reported as missing.
func (s *UploadService) Delete(ctx context.Context, userID uint, blobPath string) error {
	clean, err := blobstore.CleanPath(blobPath)
	if err != nil || !strings.HasPrefix(clean, userPrefix(userID)) {
		return ErrFileNotFound
	}
	if err := s.store.Delete(ctx, clean); err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return ErrFileNotFound
		}
		configslog.Log.Error("UploadService.Delete: delete failed", zap.Uint("user_id", userID), zap.String("path", clean), zap.Error(err))
		return ErrInternal
	}
	return nil
}

func (s *UploadService) Open(ctx context.Context, blobPath string) (*blobstore.Object, error) {
	obj, err := s.store.Get(ctx, blobPath)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) || errors.Is(err, blobstore.ErrInvalidPath) {
			return nil, ErrFileNotFound
		}
		configslog.Log.Error("UploadService.Open: get failed", zap.String("path", blobPath), zap.Error(err))
		return nil, ErrInternal
	}
	return obj, nil
}

var _ IUploadService = (*UploadService)(nil)
