package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration
	DemoMode  bool
	// Base URL used when building public menu links for QR codes,
	// e.g. https://menu.example.com
	PublicBaseURL string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "menuqr.db"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(24) * time.Hour,
		DemoMode:      getEnv("DEMO_MODE", "false") == "true",
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
