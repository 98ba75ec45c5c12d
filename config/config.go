package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Mongo struct {
	URI string
	DB  string
}

type Firebase struct {
	APIKey string
}

type MinIO struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type Config struct {
	ServerPort    string
	Mongo         Mongo
	Firebase      Firebase
	CloudinaryURL string
	MinIO         MinIO
	OpenAIToken   string
	JWTSecret     string
	TokenTTL      time.Duration
	MaxUploadSize int64
	AssetsDir     string
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseSize(value string, fallback int64) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return size
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnv("PORT", "8080"),
		Mongo: Mongo{
			URI: getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
			DB:  getEnv("MONGODB_DB", "riseup"),
		},
		Firebase: Firebase{
			APIKey: getEnv("FIREBASE_API", ""),
		},
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		MinIO: MinIO{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET_NAME", "media"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		OpenAIToken:   getEnv("API_TOKEN", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      parseDuration(getEnv("TOKEN_TTL", "1h"), time.Hour),
		MaxUploadSize: parseSize(getEnv("MAX_UPLOAD_SIZE", "31457280"), 30<<20),
		AssetsDir:     getEnv("ASSETS_DIR", "public/assets"),
	}
}
