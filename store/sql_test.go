package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kevinaaaquil/bookvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSQLStore(t *testing.T) *SQLStore {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared"
	s, err := OpenSQL("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func strPtr(s string) *string { return &s }

func TestSQLStore_InsertAndGet(t *testing.T) {
	s := setupSQLStore(t)
	ctx := context.Background()
	year := 1949
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	id, err := s.InsertBook(ctx, &models.Book{
		Title:         "1984",
		Author:        "George Orwell",
		CoverURL:      "https://example.com/1984.jpg",
		PublishedYear: &year,
		CreatedAt:     created,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	require.NoError(t, err)

	got, err := s.BookByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "1984", got.Title)
	assert.Equal(t, "George Orwell", got.Author)
	assert.Equal(t, "https://example.com/1984.jpg", got.CoverURL)
	require.NotNil(t, got.PublishedYear)
	assert.Equal(t, 1949, *got.PublishedYear)
	assert.True(t, created.Equal(got.CreatedAt))
}

func TestSQLStore_BookByID_NotFound(t *testing.T) {
	s := setupSQLStore(t)

	_, err := s.BookByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = s.BookByID(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSQLStore_AllBooks(t *testing.T) {
	s := setupSQLStore(t)
	ctx := context.Background()

	books, err := s.AllBooks(ctx)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)

	for _, title := range []string{"Emma", "Persuasion"} {
		_, err := s.InsertBook(ctx, &models.Book{Title: title, Author: "Jane Austen", CreatedAt: time.Now()})
		require.NoError(t, err)
	}
	books, err = s.AllBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestSQLStore_UpdateBook(t *testing.T) {
	s := setupSQLStore(t)
	ctx := context.Background()
	id, err := s.InsertBook(ctx, &models.Book{
		Title:     "Emma",
		Author:    "Jane Austen",
		CoverURL:  "https://example.com/emma.jpg",
		Genre:     "Novel",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	t.Run("only supplied fields change", func(t *testing.T) {
		got, err := s.UpdateBook(ctx, id, models.BookPatch{Title: strPtr("Emma (Annotated)")})
		require.NoError(t, err)
		assert.Equal(t, "Emma (Annotated)", got.Title)
		assert.Equal(t, "Jane Austen", got.Author)
		assert.Equal(t, "Novel", got.Genre)
		assert.Equal(t, "https://example.com/emma.jpg", got.CoverURL)
	})

	t.Run("empty cover removes it", func(t *testing.T) {
		got, err := s.UpdateBook(ctx, id, models.BookPatch{CoverURL: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, got.CoverURL)
	})

	t.Run("empty patch returns current record", func(t *testing.T) {
		got, err := s.UpdateBook(ctx, id, models.BookPatch{})
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := s.UpdateBook(ctx, uuid.NewString(), models.BookPatch{Title: strPtr("x")})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestSQLStore_DeleteBook(t *testing.T) {
	s := setupSQLStore(t)
	ctx := context.Background()
	id, err := s.InsertBook(ctx, &models.Book{Title: "Emma", Author: "Jane Austen", CreatedAt: time.Now()})
	require.NoError(t, err)

	require.NoError(t, s.DeleteBook(ctx, id))
	_, err = s.BookByID(ctx, id)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, s.DeleteBook(ctx, id), models.ErrNotFound)
}

func TestOpenSQL_UnknownDriver(t *testing.T) {
	_, err := OpenSQL("oracle", "")
	assert.Error(t, err)
}
