package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"blogapi/internal/storage"
)

var (
	ErrReaderNil    = errors.New("reader is nil")
	ErrNotImage     = errors.New("content type is not an image")
	ErrKeyTraversal = errors.New("invalid object key")
)

// ImageRef points at an uploaded image object. URL is a server-relative
// path usable directly as a post's image value.
type ImageRef struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ImageService stores post images in object storage as an alternative to
// inlining them as data URIs.
type ImageService interface {
	// Upload stores the content under a generated key and returns a
	// reference whose URL can be used as a post image.
	// originalFilename is used only to extract the extension.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*ImageRef, error)

	// Open returns a streaming reader for a previously uploaded image.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
}

type imageService struct {
	store storage.Storage
}

// NewImageService constructs an ImageService backed by the given storage.
func NewImageService(store storage.Storage) ImageService {
	return &imageService{store: store}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*ImageRef, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	ext := filepath.Ext(originalFilename)
	key := uuid.New().String() + ext

	_, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	return &ImageRef{Key: key, URL: "/images/" + key}, nil
}

func (s *imageService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	// Keys are flat UUID-based names; reject anything path-like.
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return nil, storage.ObjectInfo{}, ErrKeyTraversal
	}
	return s.store.Get(ctx, key)
}
