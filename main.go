package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/kevinaaaquil/bookvault/config"
	"github.com/kevinaaaquil/bookvault/handlers"
	"github.com/kevinaaaquil/bookvault/middleware"
	"github.com/kevinaaaquil/bookvault/service"
	"github.com/kevinaaaquil/bookvault/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config:", err)
	}

	ctx := context.Background()
	db, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal("book store:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Println("book store close:", err)
		}
	}()

	images, closeImages, err := openImageStore(ctx, cfg)
	if err != nil {
		log.Fatal("image store:", err)
	}
	defer closeImages()

	booksHandler := &handlers.BooksHandler{Catalog: service.NewCatalog(db)}
	uploadHandler := &handlers.UploadHandler{
		Covers: service.NewCoverService(images, cfg.MaxCoverBytes, cfg.UploadTimeout),
	}

	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/", handlers.Welcome)
	r.Get("/health", handlers.Health)

	bookRoutes := handlers.BookRoutes(booksHandler, uploadHandler)
	r.Mount("/books", bookRoutes)
	r.Mount("/api/books", bookRoutes)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Println("server listening on :" + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("shutdown:", err)
	}
}

// openImageStore returns nil when no bucket is configured; uploads then fail
// with 500 while the rest of the API keeps working.
func openImageStore(ctx context.Context, cfg *config.Config) (service.ImageStore, func(), error) {
	noop := func() {}
	switch cfg.ImageStore {
	case "gcs":
		if cfg.GCSBucket == "" {
			log.Println("warning: GCS_BUCKET not set; uploads will fail")
			return nil, noop, nil
		}
		gcs, err := service.NewGCSStore(ctx, cfg.GCSBucket, cfg.CoverPublicBaseURL)
		if err != nil {
			return nil, noop, err
		}
		return gcs, func() {
			if err := gcs.Close(); err != nil {
				log.Println("gcs close:", err)
			}
		}, nil
	default:
		if cfg.S3Bucket == "" {
			log.Println("warning: AWS_S3_BUCKET not set; uploads will fail")
			return nil, noop, nil
		}
		s3Store, err := service.NewS3Store(ctx, service.S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.CoverPublicBaseURL,
		})
		if err != nil {
			return nil, noop, err
		}
		return s3Store, noop, nil
	}
}
