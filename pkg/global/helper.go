package global

import (
	"context"
	"log"
	"os"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func GetMongoURI() string {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is not set in environment variables")
	}
	return mongoURI
}

func GetDatabaseName() string {
	return GetEnvOrDefault("MONGODB_DATABASE", "furniture_mart")
}

func GetRedisAddress() string {
	return GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379")
}

func GetRedisPassword() string {
	return GetEnvOrDefault("REDIS_PASSWORD", "")
}

// GetTokenSigningKey returns the demo HMAC key used to mint session tokens.
// The signature segment is never verified by this service; see pkg/token.
func GetTokenSigningKey() []byte {
	return []byte(GetEnvOrDefault("SESSION_TOKEN_KEY", "furniture-mart-demo-key"))
}
