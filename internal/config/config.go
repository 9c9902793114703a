package config

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type DB struct {
	DbHOST        string        `env:"DB_HOST" envDefault:"localhost"`
	DbPORT        string        `env:"DB_PORT" envDefault:"5432"`
	DbUSER        string        `env:"DB_USER" envDefault:"postgres"`
	DbPASSWORD    string        `env:"DB_PASSWORD" envDefault:"password"`
	DbNAME        string        `env:"DB_NAME" envDefault:"contenthub"`
	DbSSLMODE     string        `env:"DB_SSLMODE" envDefault:"disable"`
	Retries       int           `env:"DB_CONNECT_RETRIES" envDefault:"5"`
	RetryInterval time.Duration `env:"DB_RETRY_INTERVAL" envDefault:"5s"`
}

// DSN returns the lib/pq connection string.
func (d DB) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST, d.DbPORT, d.DbUSER, d.DbPASSWORD, d.DbNAME, d.DbSSLMODE,
	)
}

// URL returns the same connection in URL form, as golang-migrate expects it.
func (d DB) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.DbUSER, d.DbPASSWORD),
		Host:     net.JoinHostPort(d.DbHOST, d.DbPORT),
		Path:     "/" + d.DbNAME,
		RawQuery: "sslmode=" + url.QueryEscape(d.DbSSLMODE),
	}
	return u.String()
}

type MinIO struct {
	Endpoint   string `env:"MINIO_ENDPOINT" envDefault:"localhost:9000"`
	AccessKey  string `env:"MINIO_ACCESS_KEY" envDefault:"minioadmin"`
	SecretKey  string `env:"MINIO_SECRET_KEY" envDefault:"minioadmin"`
	BucketName string `env:"MINIO_BUCKET_NAME" envDefault:"images"`
	UseSSL     bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	Region     string `env:"MINIO_REGION" envDefault:"us-east-1"`
}

type S3 struct {
	Endpoint   string `env:"S3_ENDPOINT"`
	AccessKey  string `env:"S3_ACCESS_KEY_ID"`
	SecretKey  string `env:"S3_SECRET_ACCESS_KEY"`
	BucketName string `env:"S3_BUCKET_NAME" envDefault:"images"`
	Region     string `env:"S3_REGION" envDefault:"us-east-1"`
}

type Storage struct {
	Driver   string `env:"STORAGE_DRIVER" envDefault:"minio"`
	LocalDir string `env:"LOCAL_STORAGE_DIR" envDefault:"public/images"`
}

// Integrity holds the status code each write route answers with when the
// referenced category does not exist.
type Integrity struct {
	PostCreateStatus int `env:"POST_CREATE_REF_STATUS" envDefault:"400"`
	PostUpdateStatus int `env:"POST_UPDATE_REF_STATUS" envDefault:"400"`
	BookCreateStatus int `env:"BOOK_CREATE_REF_STATUS" envDefault:"404"`
	BookUpdateStatus int `env:"BOOK_UPDATE_REF_STATUS" envDefault:"404"`
}

type Config struct {
	ServerPort     int           `env:"SERVER_PORT" envDefault:"8080"`
	DB             DB
	MinIO          MinIO
	S3             S3
	Storage        Storage
	Integrity      Integrity
	JWTSecretKey   string        `env:"JWT_SECRET_KEY"`
	TokenLifetime  time.Duration `env:"TOKEN_LIFETIME" envDefault:"1h"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`
	MaxUploadSize  int64         `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecretKey == "" {
		return errors.New("JWT_SECRET_KEY is not set")
	}
	if c.TokenLifetime <= 0 {
		return fmt.Errorf("TOKEN_LIFETIME must be positive, got %s", c.TokenLifetime)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.MaxUploadSize <= 0 {
		return errors.New("MAX_UPLOAD_SIZE must be positive")
	}

	statuses := map[string]int{
		"POST_CREATE_REF_STATUS": c.Integrity.PostCreateStatus,
		"POST_UPDATE_REF_STATUS": c.Integrity.PostUpdateStatus,
		"BOOK_CREATE_REF_STATUS": c.Integrity.BookCreateStatus,
		"BOOK_UPDATE_REF_STATUS": c.Integrity.BookUpdateStatus,
	}
	for name, status := range statuses {
		if status != http.StatusBadRequest && status != http.StatusNotFound {
			return fmt.Errorf("%s must be 400 or 404, got %d", name, status)
		}
	}

	switch c.Storage.Driver {
	case "minio", "s3", "local":
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	return nil
}
