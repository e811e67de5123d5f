package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP server settings read from the environment
type ServerConfig struct {
	Port               int
	LogLevel           string
	LogPretty          bool
	DevMode            bool
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	MaxBodyBytes       int64
}

// DefaultServerConfig returns the settings used when nothing is configured
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:               5000,
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"*"},
		RequestTimeout:     60 * time.Second,
		MaxBodyBytes:       1 << 20,
	}
}

// LoadServerConfig reads configuration from environment variables, loading a
// .env file first when one exists. The result is not validated; callers apply
// their overrides and then call Validate.
func LoadServerConfig() *ServerConfig {
	_ = godotenv.Load()

	def := DefaultServerConfig()
	cfg := &ServerConfig{
		Port:               getEnvAsInt("PORT", def.Port),
		LogLevel:           getEnv("LOG_LEVEL", def.LogLevel),
		LogPretty:          getEnvAsBool("LOG_PRETTY", def.LogPretty),
		DevMode:            getEnvAsBool("DEV_MODE", def.DevMode),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", def.CORSAllowedOrigins),
		RequestTimeout:     time.Duration(getEnvAsInt("REQUEST_TIMEOUT_SECONDS", int(def.RequestTimeout/time.Second))) * time.Second,
		MaxBodyBytes:       int64(getEnvAsInt("MAX_BODY_BYTES", int(def.MaxBodyBytes))),
	}
	return cfg
}

// Validate checks the loaded values
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}

// Addr is the listen address
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
