package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultMaxCoverBytes = 5 << 20
	defaultUploadTimeout = 30 * time.Second
)

type Config struct {
	Port string

	// BookStore is "mongo", "postgres" or "sqlite".
	BookStore   string
	MongoURI    string
	DBName      string
	DatabaseURL string
	SQLitePath  string

	// ImageStore is "s3" or "gcs".
	ImageStore         string
	S3Bucket           string
	S3Region           string
	S3AccessKeyID      string
	S3SecretKey        string
	S3Endpoint         string
	GCSBucket          string
	CoverPublicBaseURL string

	MaxCoverBytes int64
	UploadTimeout time.Duration
	CORSOrigins   []string
}

func Load() (*Config, error) {
	maxBytes := int64(defaultMaxCoverBytes)
	if v := getEnv("MAX_COVER_BYTES", ""); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("MAX_COVER_BYTES: invalid value %q", v)
		}
		maxBytes = n
	}
	timeout := defaultUploadTimeout
	if v := getEnv("UPLOAD_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("UPLOAD_TIMEOUT: invalid duration %q", v)
		}
		timeout = d
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		BookStore:          strings.ToLower(getEnv("BOOK_STORE", "mongo")),
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:             getEnv("MONGODB_DB", "bookvault"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		SQLitePath:         getEnv("SQLITE_PATH", "bookvault.db"),
		ImageStore:         strings.ToLower(getEnv("IMAGE_STORE", "s3")),
		S3Bucket:           getEnv("AWS_S3_BUCKET", ""),
		S3Region:           getEnv("AWS_REGION", "us-east-1"),
		S3AccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		S3SecretKey:        getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Endpoint:         getEnv("AWS_S3_ENDPOINT", ""),
		GCSBucket:          getEnv("GCS_BUCKET", ""),
		CoverPublicBaseURL: getEnv("COVER_PUBLIC_BASE_URL", ""),
		MaxCoverBytes:      maxBytes,
		UploadTimeout:      timeout,
		CORSOrigins:        splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	switch cfg.BookStore {
	case "mongo", "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when BOOK_STORE=postgres")
		}
	default:
		return nil, fmt.Errorf("BOOK_STORE: unsupported value %q", cfg.BookStore)
	}
	switch cfg.ImageStore {
	case "s3", "gcs":
	default:
		return nil, fmt.Errorf("IMAGE_STORE: unsupported value %q", cfg.ImageStore)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
