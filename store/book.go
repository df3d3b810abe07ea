package store

import (
	"context"
	"errors"
	"time"

	"github.com/kevinaaaquil/bookvault/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Author        string             `bson:"author"`
	CoverURL      string             `bson:"coverUrl,omitempty"`
	Genre         string             `bson:"genre,omitempty"`
	Description   string             `bson:"description,omitempty"`
	PublishedYear *int               `bson:"publishedYear,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

func (d *bookDocument) toModel() *models.Book {
	return &models.Book{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Author:        d.Author,
		CoverURL:      d.CoverURL,
		Genre:         d.Genre,
		Description:   d.Description,
		PublishedYear: d.PublishedYear,
		CreatedAt:     d.CreatedAt.UTC(),
	}
}

// objectID parses a hex id. Ids that cannot be ObjectIDs cannot match a book.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, models.ErrNotFound
	}
	return oid, nil
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ErrNotFound
	}
	return err
}

func (db *DB) InsertBook(ctx context.Context, book *models.Book) (string, error) {
	doc := bookDocument{
		Title:         book.Title,
		Author:        book.Author,
		CoverURL:      book.CoverURL,
		Genre:         book.Genre,
		Description:   book.Description,
		PublishedYear: book.PublishedYear,
		CreatedAt:     book.CreatedAt,
	}
	res, err := db.Books().InsertOne(ctx, doc, options.InsertOne())
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// AllBooks returns every book in natural order; callers sort if they care.
func (db *DB) AllBooks(ctx context.Context) ([]models.Book, error) {
	cur, err := db.Books().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var docs []bookDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	books := make([]models.Book, 0, len(docs))
	for i := range docs {
		books = append(books, *docs[i].toModel())
	}
	return books, nil
}

func (db *DB) BookByID(ctx context.Context, id string) (*models.Book, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc bookDocument
	if err := db.Books().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	return doc.toModel(), nil
}

// UpdateBook applies the supplied fields in a single findAndModify and returns the result.
func (db *DB) UpdateBook(ctx context.Context, id string, patch models.BookPatch) (*models.Book, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{}
	unset := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.CoverURL != nil {
		if *patch.CoverURL == "" {
			unset["coverUrl"] = ""
		} else {
			set["coverUrl"] = *patch.CoverURL
		}
	}
	if patch.Genre != nil {
		set["genre"] = *patch.Genre
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.PublishedYear != nil {
		set["publishedYear"] = *patch.PublishedYear
	}
	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	if len(update) == 0 {
		return db.BookByID(ctx, id)
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bookDocument
	if err := db.Books().FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		return nil, notFound(err)
	}
	return doc.toModel(), nil
}

func (db *DB) DeleteBook(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := db.Books().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
