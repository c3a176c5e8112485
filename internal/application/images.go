package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// MaxImageSize is the largest accepted upload, in bytes.
const MaxImageSize = 5 << 20

var acceptedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// ObjectUploader stores bytes under objectPath and returns a stable public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// ImageStore validates images locally and hands them to the uploader.
type ImageStore struct {
	uploader ObjectUploader
	prefix   string
	logger   *logrus.Logger
}

// Upload reads the whole image from r, checks its size and sniffed type, and
// uploads it. Validation happens before any network call.
func (s *ImageStore) Upload(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", invalid("file", "is required")
	}
	if len(data) > MaxImageSize {
		return "", invalid("file", "must be at most 5MB")
	}
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), acceptedImageTypes...) {
		return "", invalid("file", "must be a JPG, PNG, GIF or WebP image")
	}
	if s.uploader == nil {
		return "", ErrImageStoreUnavailable
	}

	objectPath := path.Join(s.prefix, uuid.NewString()+mt.Extension())
	url, err := s.uploader.Upload(ctx, objectPath, mt.String(), bytes.NewReader(data))
	if err != nil {
		s.logger.WithError(err).WithField("object", objectPath).Warn("image upload failed")
		return "", fmt.Errorf("upload image: %w", err)
	}
	return url, nil
}
