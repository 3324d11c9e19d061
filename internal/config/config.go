package config

import (
	"os"
	"strconv"
)

type Config struct {
	MongoURI   string
	MongoDB    string
	JWTSecret  string
	BcryptCost int
	ServerPort string
}

func Load() *Config {
	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "forum"),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret-key-change-me"),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),
		ServerPort: getEnv("SERVER_PORT", "3000"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}
