package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"stagedoor/internal/cache"
	"stagedoor/internal/database"
	"stagedoor/internal/mail"
	"stagedoor/internal/messaging"
)

// Config is built once at process start and passed by reference into the
// components that need it; nothing reads the environment after Load.
type Config struct {
	Port       string
	GinMode    string
	LogLevel   string
	LogFormat  string
	CORSOrigin string

	// AdminPassword gates event creation; OperatorEmail/OperatorPassword
	// seed the single account behind the authenticated endpoints.
	AdminPassword    string
	JWTSecret        string
	TokenTTL         time.Duration
	OperatorEmail    string
	OperatorPassword string
	BcryptCost       int
	OTPTTL           time.Duration

	Database database.Config
	NATS     messaging.Config
	Cache    cache.Config
	Mail     mail.Config
}

// Load reads configuration from the environment, with a local .env file
// complementing unset variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFormat:  getEnv("LOG_FORMAT", "json"),
		CORSOrigin: getEnv("CORS_ORIGIN", ""),

		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		TokenTTL:         time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		OperatorEmail:    getEnv("OPERATOR_EMAIL", "operator@stagedoor.local"),
		OperatorPassword: getEnv("OPERATOR_PASSWORD", ""),
		BcryptCost:       getEnvInt("BCRYPT_COST", 10),
		OTPTTL:           time.Duration(getEnvInt("OTP_TTL_MIN", 10)) * time.Minute,

		Database: database.Config{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnvInt("DB_PORT", 5432),
			User:               getEnv("DB_USER", "stagedoor"),
			Password:           getEnv("DB_PASSWORD", "stagedoor"),
			DBName:             getEnv("DB_NAME", "stagedoor"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetimeMin: getEnvInt("DB_CONN_MAX_LIFETIME_MIN", 5),
			ConnMaxIdleTimeMin: getEnvInt("DB_CONN_MAX_IDLE_TIME_MIN", 1),
		},

		NATS: messaging.Config{
			URL:       getEnv("NATS_URL", "nats://localhost:4222"),
			ClusterID: getEnv("NATS_CLUSTER_ID", "stagedoor"),
			ClientID:  getEnv("NATS_CLIENT_ID", "stagedoor-api"),
		},

		Cache: cache.Config{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},

		Mail: mail.Config{
			Host:     getEnv("SMTP_HOST", "localhost"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@stagedoor.local"),
			FromName: getEnv("SMTP_FROM_NAME", "Seat Booking Co."),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
