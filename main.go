package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riseup/config"
	"riseup/database"
	"riseup/handlers"
	"riseup/providers"
	"riseup/routes"
	"riseup/store"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Riseup backend...")

	cfg := config.Load()

	log.Println("Connecting to MongoDB...")
	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.ConnectMongo(cfg); err != nil {
			dbErr = err
			log.Printf("MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}
	if dbErr != nil {
		log.Fatal("Failed to connect to MongoDB: ", dbErr)
	}
	defer database.DisconnectMongo()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens := store.NewMongoTokens(database.Tokens)
	users := store.NewMongoUsers(database.Users)
	posts := store.NewMongoPosts(database.Posts, database.Users)

	var identity providers.Identity
	if cfg.Firebase.APIKey != "" {
		identity = providers.NewFirebaseIdentity(cfg.Firebase.APIKey)
		log.Println("Identity: Firebase Identity Toolkit")
	} else {
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET must be set when FIREBASE_API is not configured")
		}
		identity = providers.NewLocalIdentity(database.Credentials, cfg.JWTSecret, cfg.TokenTTL)
		log.Println("Identity: local provider")
	}

	var media providers.Media
	if cfg.CloudinaryURL != "" {
		var err error
		media, err = providers.NewCloudinaryMedia(cfg.CloudinaryURL)
		if err != nil {
			log.Fatal("Cloudinary configuration error: ", err)
		}
		log.Println("Media: Cloudinary")
	} else {
		var err error
		media, err = providers.NewMinIOMedia(cfg.MinIO)
		if err != nil {
			log.Fatal("MinIO configuration error: ", err)
		}
		log.Println("Media: MinIO")
	}

	chat := providers.NewOpenAIChat(cfg.OpenAIToken)

	h := handlers.New(tokens, users, posts, identity, media, chat)
	router := routes.SetupRouter(h, cfg.AssetsDir)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("Forced shutdown: ", err)
	}

	log.Println("Server stopped gracefully")
}
