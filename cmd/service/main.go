package main

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"music-service/internal/config"
	"music-service/internal/music"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "music-service",
	})

	props, err := config.Read()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}
	if level, err := log.ParseLevel(props.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(props.DB.URI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", "err", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", "err", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	store := music.NewMongoStore(client.Database(props.DB.Name))
	if err := store.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to ensure indexes", "err", err)
	}

	uploader, err := music.NewMinioUploader(
		props.S3.Endpoint,
		props.S3.AccessKey,
		props.S3.SecretKey,
		props.S3.Bucket,
		props.S3.UseSSL,
	)
	if err != nil {
		logger.Fatal("failed to create upload client", "err", err)
	}

	srv := music.NewServer(store, uploader, []byte(props.Auth.JWTSecret), props.Auth.TokenTTL, logger)

	r := srv.Router(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.StripSlashes,
		corsMiddleware(props.AllowedOrigin),
	)

	logger.Info("listening", "port", props.Port)
	if err := http.ListenAndServe(":"+props.Port, r); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func corsMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Credentials", "true")

			if strings.ToUpper(r.Method) == "OPTIONS" {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
