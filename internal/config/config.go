package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort        string
	MySQLDSN          string
	RedisAddr         string
	RedisDB           int
	RedisPass         string
	JWTSecret         string
	JWTAlgorithm      string
	TokenTTL          time.Duration
	RequestsPerMinute int
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		MySQLDSN:          getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/tasker?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		JWTSecret:         getEnv("JWT_SECRET", "change-me"),
		JWTAlgorithm:      normalizeAlgorithm(getEnv("JWT_ALGORITHM", "HS256")),
		TokenTTL:          getEnvDuration("TOKEN_TTL", 60*time.Minute),
		RequestsPerMinute: getEnvInt("REQUESTS_PER_MINUTE", 100),
	}
}

// normalizeAlgorithm restricts the signing algorithm to the HMAC family.
// Token issuing and the jwt gate both read this value, so an unsupported name
// must resolve to the same algorithm in both places.
func normalizeAlgorithm(alg string) string {
	switch alg {
	case "HS256", "HS384", "HS512":
		return alg
	}
	return "HS256"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
