package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kevinaaaquil/bookvault/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

// writeError maps err onto a status and a client-safe message. Details of
// store failures are logged, never returned.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"
	var verr *models.ValidationError
	var tooLarge *models.PayloadTooLargeError
	switch {
	case errors.As(err, &verr):
		status, msg = http.StatusBadRequest, verr.Error()
	case errors.As(err, &tooLarge):
		status, msg = http.StatusBadRequest, tooLarge.Error()
	case errors.Is(err, models.ErrNotFound):
		status, msg = http.StatusNotFound, "Book not found"
	case errors.Is(err, models.ErrMissingFile):
		status, msg = http.StatusBadRequest, "No file uploaded"
	case errors.Is(err, models.ErrInvalidMediaType):
		status, msg = http.StatusBadRequest, "Only JPG and PNG images are allowed"
	case errors.Is(err, models.ErrPayloadTooLarge):
		status, msg = http.StatusBadRequest, "File too large"
	case errors.Is(err, models.ErrValidationFailed):
		status, msg = http.StatusBadRequest, "validation failed"
	case errors.Is(err, models.ErrUpstreamStoreFailure):
		msg = "failed to upload cover image"
	}
	if status >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}
