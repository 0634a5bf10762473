package blobstore

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory. Used when no bucket is
// configured and in tests; contents are lost on restart.
type MemoryStore struct {
	mu            sync.RWMutex
	objects       map[string]Object
	publicBaseURL string
}

func NewMemoryStore(publicBaseURL string) *MemoryStore {
	return &MemoryStore{objects: make(map[string]Object), publicBaseURL: publicBaseURL}
}

func (s *MemoryStore) Put(_ context.Context, path string, data []byte, contentType string) error {
	path, err := CleanPath(path)
	if err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	s.mu.Lock()
	s.objects[path] = Object{Data: buf, ContentType: contentType}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Get(_ context.Context, path string) (*Object, error) {
	path, err := CleanPath(path)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	obj, ok := s.objects[path]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &obj, nil
}

func (s *MemoryStore) Delete(_ context.Context, path string) error {
	path, err := CleanPath(path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[path]; !ok {
		return ErrNotFound
	}
	delete(s.objects, path)
	return nil
}

func (s *MemoryStore) URL(path string) string {
	return JoinURL(s.publicBaseURL, path)
}

var _ Store = (*MemoryStore)(nil)
