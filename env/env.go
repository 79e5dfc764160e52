package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	JSONStorageDriver    = "json"
	MongoDBStorageDriver = "mongodb"
)

type Env struct {
	Server  ServerConfig
	Storage StorageConfig
	MongoDB MongoDBConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type StorageConfig struct {
	Driver string
	DBFile string
}

type MongoDBConfig struct {
	URI        string
	DB         string
	Collection string
}

type LogConfig struct {
	Format string
	Level  slog.Level
}

func Default() Env {

	return Env{
		Server: ServerConfig{
			Port: 8181,
		},
		Storage: StorageConfig{
			Driver: JSONStorageDriver,
			DBFile: "db.json",
		},
		MongoDB: MongoDBConfig{
			URI:        "mongodb://localhost:27017",
			DB:         "books_api",
			Collection: "books_mirror",
		},
		Log: LogConfig{
			Format: "text",
			Level:  slog.LevelInfo,
		},
	}
}

// LoadDotEnv seeds the process environment from files, ".env" when none are given.
// Variables that are already set win, and missing files are skipped.
func LoadDotEnv(files ...string) error {

	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {

		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

// GetEnv reads the configuration from environment variables over Default.
func GetEnv() (*Env, error) {

	env := Default()

	if port := os.Getenv("PORT"); port != "" {

		parsedPort, err := strconv.Atoi(port)
		if err != nil || parsedPort < 1 || parsedPort > 65535 {
			return nil, fmt.Errorf("PORT must be a number between 1 and 65535, got %q", port)
		}

		env.Server.Port = parsedPort
	}

	if dbFile := os.Getenv("BOOKS_DB_FILE"); dbFile != "" {
		env.Storage.DBFile = dbFile
	}

	if driver := os.Getenv("STORAGE_DRIVER"); driver != "" {
		env.Storage.Driver = strings.ToLower(driver)
	}

	if err := env.Storage.Validate(); err != nil {
		return nil, err
	}

	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		env.MongoDB.URI = uri
	}

	if name := os.Getenv("MONGODB_NAME"); name != "" {
		env.MongoDB.DB = name
	}

	if collection := os.Getenv("MONGODB_COLLECTION"); collection != "" {
		env.MongoDB.Collection = collection
	}

	if format := os.Getenv("LOG_FORMAT"); format != "" {
		env.Log.Format = strings.ToLower(format)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {

		if err := env.Log.Level.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	return &env, nil
}

func (c StorageConfig) Validate() error {

	switch c.Driver {
	case JSONStorageDriver, MongoDBStorageDriver:
		return nil
	default:
		return fmt.Errorf("storage driver must be %q or %q, got %q", JSONStorageDriver, MongoDBStorageDriver, c.Driver)
	}
}

// NewLogger builds the process logger on stderr in the configured format.
func (c LogConfig) NewLogger() *slog.Logger {

	opts := &slog.HandlerOptions{Level: c.Level}

	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
