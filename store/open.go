package store

import (
	"context"
	"fmt"

	"github.com/kevinaaaquil/bookvault/config"
	"github.com/kevinaaaquil/bookvault/service"
)

// Store is a book store that owns a connection.
type Store interface {
	service.BookStore
	Close() error
}

// Open connects to the book store selected by cfg.BookStore.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.BookStore {
	case "mongo":
		return NewMongoDB(ctx, cfg.MongoURI, cfg.DBName)
	case "postgres":
		return OpenSQL("postgres", cfg.DatabaseURL)
	case "sqlite":
		return OpenSQL("sqlite", cfg.SQLitePath)
	}
	return nil, fmt.Errorf("unsupported book store %q", cfg.BookStore)
}
