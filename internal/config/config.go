package config

import (
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store types
const (
	StoreDynamoDB = "dynamodb"
	StoreSQLite   = "sqlite"
	StoreMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string
	Store       StoreConfig
	Server      ServerConfig
}

// StoreConfig selects and configures the note store
type StoreConfig struct {
	Type              string // "dynamodb", "sqlite" or "memory"
	Table             string // DynamoDB table name
	Region            string
	Endpoint          string // optional DynamoDB endpoint override
	SQLitePath        string
	MigrationsEnabled bool
}

// ServerConfig holds settings for the local HTTP server
type ServerConfig struct {
	RateLimit float64 // requests per second, 0 disables limiting
	RateBurst int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	cfg := read()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func read() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_TYPE", StoreDynamoDB)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("SQLITE_PATH", "./data/notes.db")
	v.SetDefault("SQLITE_MIGRATIONS", true)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)

	return &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Store: StoreConfig{
			Type:              strings.ToLower(v.GetString("STORE_TYPE")),
			Table:             v.GetString("DDB_TABLE"),
			Region:            v.GetString("AWS_REGION"),
			Endpoint:          v.GetString("DDB_ENDPOINT"),
			SQLitePath:        v.GetString("SQLITE_PATH"),
			MigrationsEnabled: v.GetBool("SQLITE_MIGRATIONS"),
		},
		Server: ServerConfig{
			RateLimit: v.GetFloat64("RATE_LIMIT_RPS"),
			RateBurst: v.GetInt("RATE_LIMIT_BURST"),
		},
	}
}

// Validate checks the configuration. DDB_TABLE is required whenever the
// DynamoDB store is selected.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.Store, validation.By(func(value interface{}) error {
			sc, _ := value.(StoreConfig)
			return validation.ValidateStruct(&sc,
				validation.Field(&sc.Type,
					validation.Required,
					validation.In(StoreDynamoDB, StoreSQLite, StoreMemory),
				),
				validation.Field(&sc.Table,
					validation.When(sc.Type == StoreDynamoDB,
						validation.Required.Error("DDB_TABLE is required"),
					),
				),
				validation.Field(&sc.SQLitePath,
					validation.When(sc.Type == StoreSQLite, validation.Required),
				),
			)
		})),
	)
}

// IsProduction reports whether the environment is production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Environment)
	return env == "production" || env == "prod"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
