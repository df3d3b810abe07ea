package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/kevinaaaquil/bookvault/handlers"
	"github.com/kevinaaaquil/bookvault/service"
	"github.com/kevinaaaquil/bookvault/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

const testMaxCoverBytes = 1024

// newTestRouter mounts the book routes the way main does, over an in-memory
// SQLite store and a mocked image store.
func newTestRouter(t *testing.T, images service.ImageStore) http.Handler {
	t.Helper()
	s, err := store.OpenSQL("sqlite", "file:handlers_"+uuid.New().String()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	books := &handlers.BooksHandler{Catalog: service.NewCatalog(s)}
	uploads := &handlers.UploadHandler{Covers: service.NewCoverService(images, testMaxCoverBytes, time.Second)}

	r := chi.NewRouter()
	r.Get("/", handlers.Welcome)
	r.Get("/health", handlers.Health)
	routes := handlers.BookRoutes(books, uploads)
	r.Mount("/books", routes)
	r.Mount("/api/books", routes)
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			rd = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			rd = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// multipartCover builds an upload request with one file part of the given media type.
func multipartCover(t *testing.T, field, mediaType string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="cover.bin"`)
	if mediaType != "" {
		h.Set("Content-Type", mediaType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/books/upload-cover", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}
