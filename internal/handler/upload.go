package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"contentHub/internal/service"

	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

func noop() {}

// formImage returns the image sent under field, or nil when the request has
// none. The returned func closes the file and must always be called.
func (h *Handlers) formImage(r *http.Request, field string) (*service.Upload, func(), error) {
	if r.MultipartForm == nil {
		return nil, noop, nil
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}
		return nil, noop, badRequest("Invalid file upload")
	}
	closeFile := func() { file.Close() }

	if header.Size > h.Cfg.MaxUploadSize {
		closeFile()
		return nil, noop, badRequest(fmt.Sprintf("File is larger than %d bytes", h.Cfg.MaxUploadSize))
	}

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		closeFile()
		return nil, noop, badRequest("Could not read uploaded file")
	}
	if !mimetype.EqualsAny(mtype.String(), allowedImageTypes...) {
		closeFile()
		return nil, noop, badRequest("Only JPEG, PNG, GIF and WebP images are allowed")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		closeFile()
		return nil, noop, fmt.Errorf("rewind upload: %w", err)
	}

	base := filepath.Base(header.Filename)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + mtype.Extension()

	return &service.Upload{
		File:        file,
		FileName:    name,
		Size:        header.Size,
		ContentType: mtype.String(),
	}, closeFile, nil
}
