package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kevinaaaquil/bookvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"validation", models.Invalid("title", "title is required"), http.StatusBadRequest, "title is required"},
		{"not found", models.ErrNotFound, http.StatusNotFound, "Book not found"},
		{"missing file", models.ErrMissingFile, http.StatusBadRequest, "No file uploaded"},
		{"media type", models.ErrInvalidMediaType, http.StatusBadRequest, "Only JPG and PNG images are allowed"},
		{"too large", &models.PayloadTooLargeError{Max: 5 << 20}, http.StatusBadRequest, "File too large (max 5242880 bytes)"},
		{"wrapped too large", fmt.Errorf("ingest: %w", &models.PayloadTooLargeError{Max: 2048}), http.StatusBadRequest, "File too large (max 2048 bytes)"},
		{"upstream", fmt.Errorf("%w: put k: boom", models.ErrUpstreamStoreFailure), http.StatusInternalServerError, "failed to upload cover image"},
		{"cover read failure", fmt.Errorf("read cover: %w", errors.New("unexpected EOF on temp file")), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, httptest.NewRequest(http.MethodPost, "/books/upload-cover", nil), tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}
