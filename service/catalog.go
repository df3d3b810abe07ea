package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kevinaaaquil/bookvault/models"
)

// BookStore persists books. Implementations return models.ErrNotFound for unknown ids
// and guarantee single-record atomicity only.
type BookStore interface {
	InsertBook(ctx context.Context, book *models.Book) (string, error)
	AllBooks(ctx context.Context) ([]models.Book, error)
	BookByID(ctx context.Context, id string) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// Catalog is the CRUD surface over books.
type Catalog struct {
	store    BookStore
	validate *validator.Validate
	now      func() time.Time
}

func NewCatalog(store BookStore) *Catalog {
	return &Catalog{
		store:    store,
		validate: newValidator(),
		now:      time.Now,
	}
}

// Create validates fields and stores a new book. The cover URL is stored as given.
func (c *Catalog) Create(ctx context.Context, fields models.BookFields) (*models.Book, error) {
	if err := c.validate.Struct(fields); err != nil {
		return nil, toValidationError(err)
	}
	cover := fields.CoverURL
	if cover == "" {
		cover = fields.ImageURL
	}
	book := &models.Book{
		Title:         fields.Title,
		Author:        fields.Author,
		CoverURL:      cover,
		Genre:         fields.Genre,
		Description:   fields.Description,
		PublishedYear: fields.PublishedYear,
		// Mongo keeps milliseconds; truncate so the create response matches later reads.
		CreatedAt: c.now().UTC().Truncate(time.Millisecond),
	}
	id, err := c.store.InsertBook(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}
	book.ID = id
	return book, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*models.Book, error) {
	book, err := c.store.BookByID(ctx, id)
	if err != nil {
		return nil, storeErr("get book", err)
	}
	return book, nil
}

// List returns all books in store order.
func (c *Catalog) List(ctx context.Context) ([]models.Book, error) {
	books, err := c.store.AllBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if books == nil {
		books = []models.Book{}
	}
	return books, nil
}

// Update merges the supplied fields into the book. Title and author may be
// replaced but never blanked.
func (c *Catalog) Update(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	if err := c.validate.Struct(patch); err != nil {
		return nil, toValidationError(err)
	}
	if patch.CoverURL == nil {
		patch.CoverURL = patch.ImageURL
	}
	patch.ImageURL = nil
	if patch.CoverURL != nil && *patch.CoverURL != "" {
		if err := c.validate.Var(*patch.CoverURL, "url"); err != nil {
			return nil, models.Invalid("coverUrl", "coverUrl must be a valid URL")
		}
	}
	book, err := c.store.UpdateBook(ctx, id, patch)
	if err != nil {
		return nil, storeErr("update book", err)
	}
	return book, nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	if err := c.store.DeleteBook(ctx, id); err != nil {
		return storeErr("delete book", err)
	}
	return nil
}

func storeErr(op string, err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return models.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
