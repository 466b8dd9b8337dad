package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port   string
	AppEnv string

	MongoURI string
	MongoDB  string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	FrontendURL string
	WebDir      string

	LocalesDir  string
	DefaultLang string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "maurifind"),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "maurifind"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		WebDir:      getEnv("WEB_DIR", "./web/dist"),

		LocalesDir:  getEnv("LOCALES_DIR", "./locales"),
		DefaultLang: getEnv("DEFAULT_LANG", "fr"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
