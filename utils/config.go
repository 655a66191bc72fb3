package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. It is only fit for local runs.
const DefaultJWTSecret = "your_secret_key"

// Config is the service configuration read from the environment
type Config struct {
	Port              string
	MongoURI          string
	MongoDatabase     string
	JWTSecret         string
	PostmarkToken     string
	EmailSender       string
	ContactInbox      string
	TemporalHost      string
	OrderTaskQueue    string
	TemporalNamespace string
	SessionCapacity   int
}

// LoadConfig reads a .env file when present, then the environment
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}
	return Config{
		Port:              getEnv("PORT", "8000"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDatabase:     getEnv("MONGO_DB", "shinmen_coffee"),
		JWTSecret:         getEnv("JWT_SECRET", DefaultJWTSecret),
		PostmarkToken:     os.Getenv("POSTMARK_API_TOKEN"),
		EmailSender:       getEnv("EMAIL_SENDER", "hello@shinmencoffee.com"),
		ContactInbox:      getEnv("CONTACT_INBOX", "hello@shinmencoffee.com"),
		TemporalHost:      os.Getenv("TEMPORAL_HOST"),
		OrderTaskQueue:    getEnv("ORDER_TASK_QUEUE", "coffee-order-task-queue"),
		TemporalNamespace: getEnv("TEMPORAL_NAMESPACE", "default"),
		SessionCapacity:   getEnvInt("SESSION_CAPACITY", 10000),
	}
}

// UsesDefaultJWTSecret reports whether tokens would be signed with DefaultJWTSecret
func (c Config) UsesDefaultJWTSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
