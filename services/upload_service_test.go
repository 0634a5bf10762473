package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sohryuu101/web-wedding-sub000/pkg/blobstore"
)

func TestUploadStoresUnderUserPrefix(t *testing.T) {
	store := blobstore.NewMemoryStore("/files")
	svc := NewUploadService(store, 1024)
	ctx := context.Background()

	res, err := svc.Upload(ctx, 7, "", "Cover.JPG", "image/jpeg", []byte("jpeg"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(res.Path, "users/7/images/") || !strings.HasSuffix(res.Path, ".jpg") {
		t.Fatalf("path = %q", res.Path)
	}
	if res.URL != "/files/"+res.Path {
		t.Fatalf("url = %q", res.URL)
	}

	obj, err := svc.Open(ctx, res.Path)
	if err != nil || obj.ContentType != "image/jpeg" {
		t.Fatalf("open = %+v, %v", obj, err)
	}

	if err := svc.Delete(ctx, 8, res.Path); !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("foreign delete: got %v", err)
	}
	if err := svc.Delete(ctx, 7, res.Path); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Open(ctx, res.Path); !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("open after delete: got %v", err)
	}
}

func TestUploadRejects(t *testing.T) {
	svc := NewUploadService(blobstore.NewMemoryStore("/files"), 4)
	ctx := context.Background()

	tests := []struct {
		name        string
		contentType string
		data        []byte
		folder      string
	}{
		{"empty", "image/png", nil, ""},
		{"too large", "image/png", []byte("12345"), ""},
		{"not media", "application/pdf", []byte("pdf"), ""},
		{"svg", "image/svg+xml", []byte("svg"), ""},
		{"escaping folder", "image/png", []byte("png"), "../../9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Upload(ctx, 1, tt.folder, "a.png", tt.contentType, tt.data); !errors.Is(err, ErrValidation) {
				t.Fatalf("got %v, want ErrValidation", err)
			}
		})
	}

	if _, err := svc.Upload(ctx, 0, "", "a.png", "image/png", []byte("png")); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("anonymous upload: got %v", err)
	}
}
