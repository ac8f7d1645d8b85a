package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Reset    ResetConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
	Issuer      string
	Audience    string
}

type ResetConfig struct {
	ExpiryMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("JWT_ISSUER", "FreshNoodleAPI")
	viper.SetDefault("JWT_AUDIENCE", "FreshNoodleClient")
	viper.SetDefault("RESET_CODE_EXPIRY_MINUTES", 15)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
			Issuer:      viper.GetString("JWT_ISSUER"),
			Audience:    viper.GetString("JWT_AUDIENCE"),
		},
		Reset: ResetConfig{
			ExpiryMinutes: viper.GetInt("RESET_CODE_EXPIRY_MINUTES"),
		},
	}

	// Tokens are signed with a symmetric key; an empty secret would mean every
	// deployment signs with the same fallback. Refuse to start instead.
	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not configured")
	}

	return config, nil
}
