package handlers

import (
	"errors"
	"net/http"

	"github.com/kevinaaaquil/bookvault/models"
	"github.com/kevinaaaquil/bookvault/service"
)

const (
	// coverField is the multipart field carrying the image.
	coverField = "cover"
	// multipartSlack covers boundaries and part headers on top of the file itself.
	multipartSlack = 64 << 10
	// multipartMemory is held in memory; larger parts spill to temp files.
	multipartMemory = 1 << 20
)

type UploadHandler struct {
	Covers *service.CoverService
}

type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

// UploadCover accepts a single image in the "cover" field and returns the
// URL it was stored under.
func (h *UploadHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	maxBytes := h.Covers.MaxBytes()
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartSlack)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) || r.ContentLength > maxBytes+multipartSlack {
			writeError(w, r, &models.PayloadTooLargeError{Max: maxBytes})
			return
		}
		writeError(w, r, models.ErrMissingFile)
		return
	}
	// Temp files from the parse are removed on every exit path.
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(coverField)
	if err != nil {
		writeError(w, r, models.ErrMissingFile)
		return
	}
	defer file.Close()

	url, err := h.Covers.IngestCover(r.Context(), file, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, UploadResponse{ImageURL: url})
}
