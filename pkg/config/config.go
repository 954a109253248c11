package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	Port          int
	UploadDir     string

	// open ai
	OpenAIKey       string
	OpenAIChatModel string

	// ocr service
	OCRAPIURL   string
	OCRAPIKey   string
	OCRLanguage string

	// pipeline config
	ExtractedTextLimit int
	HistoryLimit       int
	ServiceTimeout     time.Duration
}

func Load() *Config {
	godotenv.Load()
	jwtExp, _ := time.ParseDuration(getEnv("JWT_EXPIRATION", "24h"))

	port, err := strconv.Atoi(getEnv("PORT", "3001"))
	if err != nil {
		port = 3001
	}

	return &Config{
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiration: jwtExp,
		Port:          port,
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),

		// OpenAI
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIChatModel: getEnv("OPENAI_CHAT_MODEL", "gpt-4o-mini"),

		// OCR
		OCRAPIURL:   getEnv("OCR_API_URL", ""),
		OCRAPIKey:   getEnv("OCR_API_KEY", ""),
		OCRLanguage: getEnv("OCR_LANGUAGE", "eng"),

		// Pipeline
		ExtractedTextLimit: getEnvInt("EXTRACTED_TEXT_LIMIT", 500),
		HistoryLimit:       getEnvInt("HISTORY_LIMIT", 20),
		ServiceTimeout:     getEnvDuration("SERVICE_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
