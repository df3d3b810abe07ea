package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kevinaaaquil/bookvault/models"
	"github.com/kevinaaaquil/bookvault/service"
)

const maxJSONBody = 1 << 20

type BooksHandler struct {
	Catalog *service.Catalog
}

func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.Catalog.List(r.Context())
	if err != nil {
		log.Printf("list books: %v", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to list books"})
		return
	}
	writeJSON(w, http.StatusOK, books)
}

func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var fields models.BookFields
	if !decodeJSON(w, r, &fields) {
		return
	}
	book, err := h.Catalog.Create(r.Context(), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.BookPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	book, err := h.Catalog.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Book deleted successfully"})
}

// decodeJSON reads a JSON object body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid json"})
		return false
	}
	return true
}
