package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string // development | production
	Port          string
	DBDriver      string // sqlite | postgres
	DBSource      string
	JWTSecret     string
	JWTTTL        time.Duration
	ClientURLs    []string // CORS allowlist
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getEnv("APP_ENV", "development"),
		Port:          getEnv("PORT", "8000"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "dine.db"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        parseTTL(getEnv("JWT_EXPIRES", "168h")),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	for _, u := range strings.Split(getEnv("CLIENT_URL", "http://localhost:5173"), ",") {
		if u = strings.TrimSpace(u); u != "" {
			cfg.ClientURLs = append(cfg.ClientURLs, u)
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			log.Fatal("missing env: JWT_SECRET")
		}
		log.Println("JWT_SECRET not set, using development fallback")
		cfg.JWTSecret = "dev-secret"
	}

	return cfg
}

func parseTTL(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 168 * time.Hour
	}
	return d
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
