package service

import (
	"context"
	"fmt"
	"io"

	"contentHub/internal/logger"
	"contentHub/internal/storage"
)

// Upload is an image received with a request, already size-limited and
// type-checked by the transport.
type Upload struct {
	File        io.Reader
	FileName    string
	Size        int64
	ContentType string
}

func saveUpload(ctx context.Context, store storage.Storage, folder string, u *Upload) (string, error) {
	if u == nil {
		return "", nil
	}

	ref, err := store.Save(ctx, folder, u.FileName, u.File, u.Size, u.ContentType)
	if err != nil {
		return "", fmt.Errorf("save %s image: %w", folder, err)
	}

	return ref, nil
}

// discardUpload removes an object whose owning row was never written.
func discardUpload(ctx context.Context, store storage.Storage, ref string) {
	if ref == "" {
		return
	}

	if err := store.Delete(context.WithoutCancel(ctx), ref); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Str("ref", ref).Msg("failed to remove orphaned upload")
	}
}
