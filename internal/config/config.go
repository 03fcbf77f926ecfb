package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort          string `mapstructure:"http_port"`
	DatabasePath      string `mapstructure:"database_path"`
	ProjectsFile      string `mapstructure:"projects_file"`
	UploadsDir        string `mapstructure:"uploads_dir"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
	JWTSecret         string `mapstructure:"jwt_secret"`
	LogLevel          string `mapstructure:"log_level"`
}

// Load reads config.yaml (if present) with environment overrides. A .env
// file is loaded first so local development matches deployment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // Load .env file if it exists

	v := viper.New()

	v.SetDefault("http_port", "8080")
	v.SetDefault("database_path", "portfolio_chat.db")
	v.SetDefault("projects_file", "data/projects.json")
	v.SetDefault("uploads_dir", "uploads")
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Environment variables take precedence over the file.
	if port := v.GetString("HTTP_PORT"); port != "" {
		config.HTTPPort = port
	}
	if secret := v.GetString("JWT_SECRET"); secret != "" {
		config.JWTSecret = secret
	}
	if hash := v.GetString("ADMIN_PASSWORD_HASH"); hash != "" {
		config.AdminPasswordHash = hash
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required (config file or JWT_SECRET)")
	}
	if config.AdminPasswordHash == "" {
		return nil, fmt.Errorf("admin_password_hash is required (config file or ADMIN_PASSWORD_HASH)")
	}

	return &config, nil
}
