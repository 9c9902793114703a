package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"contentHub/internal/config"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Storage keeps uploaded images. Save returns the reference that entities
// store; Delete accepts the same reference.
type Storage interface {
	Save(ctx context.Context, folder, fileName string, file io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, ref string) error
}

var ErrInvalidRef = errors.New("invalid storage reference")

// NewStorage builds the driver selected by STORAGE_DRIVER.
func NewStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Storage, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return NewMinIOClient(ctx, cfg.MinIO, log)
	case "s3":
		return NewS3Client(ctx, cfg.S3, log)
	case "local":
		return NewLocalStorage(cfg.Storage.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// objectName lays files out as <folder>/<yyyy>/<mm>/<uuid><ext>.
func objectName(folder, fileName, contentType string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			ext = exts[0]
		}
	}

	return path.Join(
		folder,
		fmt.Sprintf("%d/%02d", now.Year(), now.Month()),
		uuid.New().String()+ext,
	)
}

// checkRef rejects references that would escape the storage root.
func checkRef(ref string) error {
	if ref == "" || path.IsAbs(ref) {
		return fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	for _, part := range strings.Split(ref, "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidRef, ref)
		}
	}
	return nil
}
