package handlers

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/gorilla/schema"
)

// maxFieldsSize bounds non-file request bodies and the text fields sent
// alongside an upload.
const maxFieldsSize = 1 << 20

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	return d
}

// bind decodes a JSON, multipart or url-encoded body into dst. Multipart
// files stay on the request for formImage. The body is capped before it is
// read, so an oversized request is refused without being spooled.
func (h *Handlers) bind(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	limit := int64(maxFieldsSize)
	if mediaType == "multipart/form-data" {
		limit += h.Cfg.MaxUploadSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			return bodyError(err, "Invalid multipart form")
		}
		if err := h.decoder.Decode(dst, r.MultipartForm.Value); err != nil {
			return badRequest("Invalid form data")
		}
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return bodyError(err, "Invalid form data")
		}
		if err := h.decoder.Decode(dst, r.PostForm); err != nil {
			return badRequest("Invalid form data")
		}
	default:
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return bodyError(err, "Invalid request body")
		}
	}

	return nil
}

func bodyError(err error, msg string) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &requestError{msg: "Request body too large", status: http.StatusRequestEntityTooLarge}
	}
	return badRequest(msg)
}
