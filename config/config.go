package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	CORS_ORIGIN  string
	FRONTEND_URL string

	RAZORPAY_KEY_ID     string
	RAZORPAY_KEY_SECRET string
	STRIPE_SECRET_KEY   string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")
	FRONTEND_URL = getEnv("FRONTEND_URL", "http://localhost:5173")

	// Gateway keys are checked again at call time so the API can boot
	// without them and fail closed on the payment routes only.
	RAZORPAY_KEY_ID = getEnv("RAZORPAY_KEY_ID", "")
	RAZORPAY_KEY_SECRET = getEnv("RAZORPAY_KEY_SECRET", "")
	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
