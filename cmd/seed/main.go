// Command seed inserts the demo books into the configured book store.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kevinaaaquil/bookvault/config"
	"github.com/kevinaaaquil/bookvault/models"
	"github.com/kevinaaaquil/bookvault/service"
	"github.com/kevinaaaquil/bookvault/store"
)

var demoBooks = []models.BookFields{
	{
		Title:    "To Kill a Mockingbird",
		Author:   "Harper Lee",
		CoverURL: "https://res.cloudinary.com/demo/image/upload/v1690000000/to-kill-a-mockingbird.jpg",
	},
	{
		Title:    "Pride and Prejudice",
		Author:   "Jane Austen",
		CoverURL: "https://res.cloudinary.com/demo/image/upload/v1690000000/pride-and-prejudice.jpg",
	},
	{
		Title:    "The Great Gatsby",
		Author:   "F. Scott Fitzgerald",
		CoverURL: "https://res.cloudinary.com/demo/image/upload/v1690000000/the-great-gatsby.jpg",
	},
	{
		Title:    "1984",
		Author:   "George Orwell",
		CoverURL: "https://res.cloudinary.com/demo/image/upload/v1690000000/1984.jpg",
	},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("book store:", err)
	}
	defer db.Close()

	catalog := service.NewCatalog(db)
	for _, fields := range demoBooks {
		book, err := catalog.Create(ctx, fields)
		if err != nil {
			log.Printf("seed %q: %v", fields.Title, err)
			return
		}
		log.Printf("Seeded: %s (%s)", book.Title, book.ID)
	}
	log.Println("Seeding complete")
}
