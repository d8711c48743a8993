package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/library-service/cmd/api/database"
	libraryhttp "github.com/library-service/cmd/api/http"
	"github.com/library-service/cmd/api/inmemory"
	"github.com/library-service/cmd/api/library"
	"github.com/library-service/cmd/api/notifications"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	_ "github.com/lib/pq"
)

func main() {
	err := run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var repo library.Repository

	//connect to db, or fall back to the in-memory store when no db is configured:
	connStr := os.Getenv("DATABASE_URL")
	if connStr != "" {
		dbObject, err := database.ConnectDb(connStr)
		if err != nil {
			return fmt.Errorf("connecting with db: %w", err)
		}
		defer dbObject.Close()

		//apply migrations:
		store := database.NewStore(dbObject)
		path := os.Getenv("DATABASE_MIGRATIONS_PATH")
		err = database.MigrationUp(store, path)
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrating: %w", err)
		}

		repo = store
	} else {
		log.Println("DATABASE_URL not set, running on the in-memory store.")
		store, err := inmemory.NewInMemoryStore()
		if err != nil {
			return fmt.Errorf("creating in-memory store: %w", err)
		}
		repo = store
	}

	requestTimeout, err := durationFromEnv("HTTP_REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return err
	}

	notificationsTimeout, err := durationFromEnv("NOTIFICATIONS_TIMEOUT", 10*time.Second)
	if err != nil {
		return err
	}

	notificationsEnabled := os.Getenv("NOTIFICATIONS_ENABLED") == "true"
	ntfy := notifications.NewNtfy(notificationsEnabled, os.Getenv("NOTIFICATIONS_BASE_URL"), &nethttp.Client{Timeout: notificationsTimeout})

	libraryService := library.NewService(repo, ntfy, notificationsTimeout, library.DefaultPolicy())
	libraryHandler := libraryhttp.NewLibraryHandler(libraryService, requestTimeout)

	//create and init http server:
	server := libraryhttp.NewServer(libraryhttp.ServerConfig{Port: 8080}, libraryHandler)

	go func() (err error) {
		err = server.ListenAndServe()
		if err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			return fmt.Errorf("unexpected http server error: %w", err)
		}
		return nil
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	ctx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}
	log.Println("Graceful shutdown complete.")
	return err
}

/* Reads a duration from the environment. The value must be written with a unit suffix, like seconds. */
func durationFromEnv(name string, fallback time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(name)
	if valueStr == "" {
		return fallback, nil
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("getting %v from env: %w", name, err)
	}
	return value, nil
}
