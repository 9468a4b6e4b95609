package utils

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int32
	TLSSkipVerify  bool
	RequireOnStart bool
}

// LoadConfig reads the process environment, optionally seeded from a .env file.
func LoadConfig() (*Config, error) {
	// .env is optional, real deployments inject the environment directly
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("APP_NAME", "payments-api")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_TLS_SKIP_VERIFY", true)
	v.SetDefault("DB_REQUIRE_ON_START", false)

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			URL:            v.GetString("DATABASE_URL"),
			MaxConns:       v.GetInt32("DB_MAX_CONNS"),
			TLSSkipVerify:  v.GetBool("DB_TLS_SKIP_VERIFY"),
			RequireOnStart: v.GetBool("DB_REQUIRE_ON_START"),
		},
	}

	return config, nil
}
