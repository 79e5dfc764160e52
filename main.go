package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/supakorn-kn/books-api/apis"
	booksAPI "github.com/supakorn-kn/books-api/apis/books"
	"github.com/supakorn-kn/books-api/env"
	"github.com/supakorn-kn/books-api/models/books"
	"github.com/supakorn-kn/books-api/mongodb"
	"github.com/supakorn-kn/books-api/objects"
	"github.com/supakorn-kn/books-api/storage"
)

const shutdownTimeout = 5 * time.Second

func main() {

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	var (
		port    int
		dbFile  string
		driver  string
		envFile string
	)

	cmd := &cobra.Command{
		Use:           "books-api",
		Short:         "Serve a CRUD API over a JSON-backed book collection",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {

			if err := env.LoadDotEnv(envFile); err != nil {
				return err
			}

			cfg, err := env.GetEnv()
			if err != nil {
				slog.Error("Read configuration failed", "error", err)
				return err
			}

			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			if cmd.Flags().Changed("db-file") {
				cfg.Storage.DBFile = dbFile
			}

			if cmd.Flags().Changed("storage") {
				cfg.Storage.Driver = driver
				if err := cfg.Storage.Validate(); err != nil {
					slog.Error("Read configuration failed", "error", err)
					return err
				}
			}

			logger := cfg.Log.NewLogger()
			slog.SetDefault(logger)

			if err := run(cmd.Context(), cfg, logger); err != nil {
				logger.Error("Server stopped with error", "error", err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 8181, "HTTP listen port (overrides PORT)")
	cmd.Flags().StringVar(&dbFile, "db-file", "db.json", "JSON file holding the books (overrides BOOKS_DB_FILE)")
	cmd.Flags().StringVar(&driver, "storage", env.JSONStorageDriver, "storage driver: json or mongodb (overrides STORAGE_DRIVER)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to seed the environment from")

	return cmd
}

func openStore(ctx context.Context, cfg *env.Env) (storage.Store, func(), error) {

	if cfg.Storage.Driver == env.MongoDBStorageDriver {

		conn, err := mongodb.InitConnection(ctx, cfg.MongoDB.URI, cfg.MongoDB.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("connect mongodb: %w", err)
		}

		closeConn := func() {
			if err := conn.Disconnect(context.Background()); err != nil {
				slog.Error("Disconnect MongoDB failed", "error", err)
			}
		}

		return storage.NewMongoStore(conn, cfg.MongoDB.Collection), closeConn, nil
	}

	return storage.NewJSONFileStore(cfg.Storage.DBFile), func() {}, nil
}

func run(ctx context.Context, cfg *env.Env, logger *slog.Logger) error {

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}

	defer closeStore()

	model, err := books.NewBooksModel(ctx, store)
	if err != nil {
		return fmt.Errorf("create books model: %w", err)
	}

	logger.Info("Books loaded", "driver", cfg.Storage.Driver, "count", len(model.List()))

	g := apis.NewEngine(logger)
	apis.RegisterHealthCheck(g, "/healthz")
	apis.RegisterCrudAPI[objects.Book](booksAPI.NewBooksAPI(model), g.Group("books"))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           g,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server is running", "port", cfg.Server.Port)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
		logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
