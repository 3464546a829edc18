package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

var errMissingSecret = errors.New("JWT_SECRET environment variable must be set in production environments")

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	JWT      JWTConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type StorageConfig struct {
	Driver         string
	MongoURI       string
	MongoDatabase  string
	ConnectTimeout time.Duration
}

type JWTConfig struct {
	Secret        []byte
	TokenDuration time.Duration
	Issuer        string
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
	PasswordMinLength  int
}

// Load reads configuration from the environment once at process start.
func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Storage: StorageConfig{
			Driver:         getEnv("STORAGE_DRIVER", DriverMemory),
			MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase:  getEnv("MONGODB_DATABASE", "wealthwatch"),
			ConnectTimeout: getDurationEnv("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		},
		JWT: JWTConfig{
			TokenDuration: getDurationEnv("JWT_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:        getEnv("JWT_ISSUER", "wealthwatch"),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 10),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 6),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	secret, err := loadJWTSecret(config)
	if err != nil {
		log.Fatal("Failed to load JWT secret: ", err)
	}
	config.JWT.Secret = secret

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadJWTSecret loads the token signing secret.
// Priority order:
// 1. If JWT_SECRET is set, use it (works in all environments)
// 2. If production and JWT_SECRET missing, fail (production requires an explicit secret)
// 3. If development/testing, generate a random secret (dev convenience, sessions
//    do not survive a restart)
func loadJWTSecret(c *Config) ([]byte, error) {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret), nil
	}

	if c.IsProduction() {
		return nil, errMissingSecret
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	log.Println("Development environment: generated a random JWT secret (set JWT_SECRET to persist sessions across restarts)")
	return []byte(hex.EncodeToString(buf)), nil
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
