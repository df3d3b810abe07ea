package models

import "time"

// Book is a catalog entry. CoverURL is empty when the book has no cover image.
type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	CoverURL      string    `json:"coverUrl,omitempty"`
	Genre         string    `json:"genre,omitempty"`
	Description   string    `json:"description,omitempty"`
	PublishedYear *int      `json:"publishedYear,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookFields is the body of a create request. ImageURL is the name older
// clients used for the cover and is accepted when CoverURL is empty.
type BookFields struct {
	Title         string `json:"title" validate:"notblank"`
	Author        string `json:"author" validate:"notblank"`
	CoverURL      string `json:"coverUrl" validate:"omitempty,url"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url"`
	Genre         string `json:"genre"`
	Description   string `json:"description"`
	PublishedYear *int   `json:"publishedYear"`
}

// BookPatch is the body of an update request. Nil fields are left untouched;
// an empty CoverURL removes the cover.
type BookPatch struct {
	Title         *string `json:"title" validate:"omitempty,notblank"`
	Author        *string `json:"author" validate:"omitempty,notblank"`
	CoverURL      *string `json:"coverUrl"`
	ImageURL      *string `json:"imageUrl"`
	Genre         *string `json:"genre"`
	Description   *string `json:"description"`
	PublishedYear *int    `json:"publishedYear"`
}
