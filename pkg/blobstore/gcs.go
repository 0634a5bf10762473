package blobstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

const defaultGCSBaseURL = "https://storage.googleapis.com"

// GCSStore keeps blobs in one Google Cloud Storage bucket. Objects are
// expected to be publicly readable through bucket IAM.
type GCSStore struct {
	client        *storage.Client
	bucket        string
	publicBaseURL string
}

// NewGCSStore dials GCS. credentialsFile may be empty to use application
// default credentials; publicBaseURL may be empty for the storage.googleapis.com
// URL of the bucket.
func NewGCSStore(ctx context.Context, bucket, publicBaseURL, credentialsFile string) (*GCSStore, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("blobstore: bucket is empty")
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return newGCSStore(client, bucket, publicBaseURL), nil
}

func newGCSStore(client *storage.Client, bucket, publicBaseURL string) *GCSStore {
	base := strings.TrimSpace(publicBaseURL)
	if base == "" {
		base = defaultGCSBaseURL + "/" + bucket
	}
	return &GCSStore{client: client, bucket: bucket, publicBaseURL: base}
}

func (s *GCSStore) Put(ctx context.Context, path string, data []byte, contentType string) error {
	path, err := CleanPath(path)
	if err != nil {
		return err
	}
	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	if ct := strings.TrimSpace(contentType); ct != "" {
		w.ContentType = ct
	}
	w.ChunkSize = 0
	w.Metadata = map[string]string{"uploadedAt": time.Now().UTC().Format(time.RFC3339)}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *GCSStore) Get(ctx context.Context, path string) (*Object, error) {
	path, err := CleanPath(path)
	if err != nil {
		return nil, err
	}
	r, err := s.client.Bucket(s.bucket).Object(path).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Object{Data: data, ContentType: r.Attrs.ContentType}, nil
}

func (s *GCSStore) Delete(ctx context.Context, path string) error {
	path, err := CleanPath(path)
	if err != nil {
		return err
	}
	if err := s.client.Bucket(s.bucket).Object(path).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *GCSStore) URL(path string) string {
	return JoinURL(s.publicBaseURL, path)
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

var _ Store = (*GCSStore)(nil)
