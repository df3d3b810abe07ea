package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/kevinaaaquil/bookvault/models"
)

const (
	// CoverFolder is the logical folder every cover is stored under.
	CoverFolder = "book_covers/"
	// DefaultMaxCoverBytes is the server-side ceiling for one cover (5 MiB).
	DefaultMaxCoverBytes int64 = 5 << 20
	// DefaultUploadTimeout bounds a single call to the image store.
	DefaultUploadTimeout = 30 * time.Second
)

// coverTypes maps accepted media types to the stored content type and key extension.
// image/jpg is a common alias for image/jpeg.
var coverTypes = map[string]struct{ contentType, ext string }{
	"image/jpeg": {"image/jpeg", ".jpg"},
	"image/jpg":  {"image/jpeg", ".jpg"},
	"image/png":  {"image/png", ".png"},
}

// ImageStore is the external image host. Put stores body under key and returns
// the public URL of the stored object.
type ImageStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// CoverService validates cover images and relays them to the image store.
type CoverService struct {
	images   ImageStore
	maxBytes int64
	timeout  time.Duration
}

func NewCoverService(images ImageStore, maxBytes int64, timeout time.Duration) *CoverService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxCoverBytes
	}
	if timeout <= 0 {
		timeout = DefaultUploadTimeout
	}
	return &CoverService{images: images, maxBytes: maxBytes, timeout: timeout}
}

// MaxBytes is the largest cover accepted.
func (s *CoverService) MaxBytes() int64 {
	return s.maxBytes
}

// IngestCover checks the media type and size of one image and uploads it.
// An empty or generic declared type is replaced by the sniffed type.
// Nothing is retried; the returned URL is the store's URL verbatim.
func (s *CoverService) IngestCover(ctx context.Context, body io.Reader, mediaType string, size int64) (string, error) {
	if body == nil || size == 0 {
		return "", models.ErrMissingFile
	}
	declared := normalizeMediaType(mediaType)
	if declared == "" || declared == "application/octet-stream" {
		sniffed, rest, err := sniff(body)
		if err != nil {
			return "", fmt.Errorf("read cover: %w", err)
		}
		declared, body = sniffed, rest
	}
	ct, ok := coverTypes[declared]
	if !ok {
		return "", models.ErrInvalidMediaType
	}
	if size > s.maxBytes {
		return "", &models.PayloadTooLargeError{Max: s.maxBytes}
	}
	if s.images == nil {
		return "", fmt.Errorf("%w: image store not configured", models.ErrUpstreamStoreFailure)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	key := CoverFolder + uuid.New().String() + ct.ext
	url, err := s.images.Put(ctx, key, body, size, ct.contentType)
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %w", models.ErrUpstreamStoreFailure, key, err)
	}
	if url == "" {
		return "", fmt.Errorf("%w: empty url for %s", models.ErrUpstreamStoreFailure, key)
	}
	return url, nil
}

func normalizeMediaType(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(v)
	}
	return mt
}

// sniff detects the content type from the head of body and returns a reader
// positioned at the start of the payload.
func sniff(body io.Reader) (string, io.Reader, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	head = head[:n]
	detected := normalizeMediaType(mimetype.Detect(head).String())
	if seeker, ok := body.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return "", nil, err
		}
		return detected, body, nil
	}
	return detected, io.MultiReader(bytes.NewReader(head), body), nil
}
