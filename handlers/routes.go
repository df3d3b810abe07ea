package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// BookRoutes serves the book API relative to its mount point.
func BookRoutes(books *BooksHandler, uploads *UploadHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/upload-cover", uploads.UploadCover)
	r.Get("/", books.List)
	r.Post("/", books.Create)
	r.Get("/{id}", books.Get)
	r.Put("/{id}", books.Update)
	r.Delete("/{id}", books.Delete)
	return r
}

func Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Welcome to the BookVault API"})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
