package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBSource    string
	JWTSecret   string
	JWTTTL      time.Duration
	OpenAIKey   string
	OpenAIModel string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, using environment")
	}

	return &Config{
		Port:        getEnv("PORT", "8000"),
		DBSource:    getEnv("DB_SOURCE", "orderbot.db"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      24 * time.Hour,
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
