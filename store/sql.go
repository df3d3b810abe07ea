package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kevinaaaquil/bookvault/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type bookRow struct {
	ID            string  `gorm:"primaryKey;type:varchar(36)"`
	Title         string  `gorm:"not null"`
	Author        string  `gorm:"not null"`
	CoverURL      *string `gorm:"column:cover_url"`
	Genre         string
	Description   string
	PublishedYear *int
	CreatedAt     time.Time `gorm:"not null"`
}

func (bookRow) TableName() string {
	return "books"
}

func (r *bookRow) toModel() *models.Book {
	b := &models.Book{
		ID:            r.ID,
		Title:         r.Title,
		Author:        r.Author,
		Genre:         r.Genre,
		Description:   r.Description,
		PublishedYear: r.PublishedYear,
		CreatedAt:     r.CreatedAt.UTC(),
	}
	if r.CoverURL != nil {
		b.CoverURL = *r.CoverURL
	}
	return b
}

// SQLStore keeps books in a relational database through GORM.
type SQLStore struct {
	db *gorm.DB
}

// OpenSQL connects with the named driver ("postgres" or "sqlite") and migrates the books table.
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	s, err := NewSQLStore(db)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to %s", driver)
	return s, nil
}

func NewSQLStore(db *gorm.DB) (*SQLStore, error) {
	if err := db.AutoMigrate(&bookRow{}); err != nil {
		return nil, fmt.Errorf("migrate books: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLStore) InsertBook(ctx context.Context, book *models.Book) (string, error) {
	row := bookRow{
		ID:            uuid.NewString(),
		Title:         book.Title,
		Author:        book.Author,
		Genre:         book.Genre,
		Description:   book.Description,
		PublishedYear: book.PublishedYear,
		CreatedAt:     book.CreatedAt,
	}
	if book.CoverURL != "" {
		cover := book.CoverURL
		row.CoverURL = &cover
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

func (s *SQLStore) AllBooks(ctx context.Context) ([]models.Book, error) {
	var rows []bookRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	books := make([]models.Book, 0, len(rows))
	for i := range rows {
		books = append(books, *rows[i].toModel())
	}
	return books, nil
}

func (s *SQLStore) BookByID(ctx context.Context, id string) (*models.Book, error) {
	var row bookRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (s *SQLStore) UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.CoverURL != nil {
		if *patch.CoverURL == "" {
			updates["cover_url"] = nil
		} else {
			updates["cover_url"] = *patch.CoverURL
		}
	}
	if patch.Genre != nil {
		updates["genre"] = *patch.Genre
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.PublishedYear != nil {
		updates["published_year"] = *patch.PublishedYear
	}
	if len(updates) == 0 {
		return s.BookByID(ctx, id)
	}

	var row bookRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&bookRow{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}
		return tx.First(&row, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return row.toModel(), nil
}

func (s *SQLStore) DeleteBook(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&bookRow{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
