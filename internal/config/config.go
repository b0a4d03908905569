package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret string

	Storage StorageConfig
	Email   EmailConfig
	SMS     SMSConfig

	AdminEmail string
	AdminPhone string

	// MaxPhotoBytes caps nominee photo uploads.
	MaxPhotoBytes int64
}

type StorageConfig struct {
	Backend string // "minio" or "local"

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	LocalDir string
}

type EmailConfig struct {
	APIKey string
	From   string
}

type SMSConfig struct {
	AccountSID   string
	AuthToken    string
	From         string
	WhatsAppFrom string
}

// Load reads configuration from the environment, pulling in a .env file
// first if one exists.
func Load() Config {
	godotenv.Load()

	return Config{
		Port:      getEnv("PORT", "8080"),
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getEnv("DB_NAME", "sap_technologies"),
		JWTSecret: getEnv("JWT_SECRET", ""),
		Storage: StorageConfig{
			Backend:        getEnv("STORAGE_BACKEND", "local"),
			MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			MinioBucket:    getEnv("MINIO_BUCKET", "sap-uploads"),
			MinioUseSSL:    getEnvBool("MINIO_USE_SSL", false),
			LocalDir:       getEnv("UPLOADS_DIR", "uploads"),
		},
		Email: EmailConfig{
			APIKey: getEnv("RESEND_API_KEY", ""),
			From:   getEnv("RESEND_FROM_EMAIL", ""),
		},
		SMS: SMSConfig{
			AccountSID:   getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:    getEnv("TWILIO_AUTH_TOKEN", ""),
			From:         getEnv("TWILIO_FROM", ""),
			WhatsAppFrom: getEnv("TWILIO_WHATSAPP_FROM", ""),
		},
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPhone:    getEnv("ADMIN_PHONE", ""),
		MaxPhotoBytes: getEnvInt64("MAX_PHOTO_BYTES", 5*1024*1024),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
