package config

import (
	"errors"
	"strings"
	"time"

	"go-bankist/logger"

	"github.com/spf13/viper"
)

// SeedAccount describes one account loaded into the directory at startup.
type SeedAccount struct {
	Owner        string    `mapstructure:"owner" validate:"required"`
	Pin          int       `mapstructure:"pin" validate:"gt=0"`
	InterestRate float64   `mapstructure:"interest_rate" validate:"gte=0"`
	Movements    []float64 `mapstructure:"movements"`
}

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	JWT struct {
		SecretKey string        `mapstructure:"secret_key"`
		TTL       time.Duration `mapstructure:"ttl"`
	} `mapstructure:"jwt"`
	Redis struct {
		Enabled  bool          `mapstructure:"enabled"`
		Host     string        `mapstructure:"host"`
		Port     string        `mapstructure:"port"`
		Password string        `mapstructure:"password"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	// Accounts overrides the built-in seed accounts when non-empty.
	Accounts []SeedAccount `mapstructure:"accounts"`
}

var AppConfig Config

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("jwt.secret_key", "bankist-dev-secret")
	viper.SetDefault("jwt.ttl", 10*time.Minute)
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.ttl", 10*time.Minute)
}

// LoadConfig reads config.yml from path if present, then environment
// variables (SERVER_PORT, JWT_SECRET_KEY, ...). A missing file is not an error.
func LoadConfig(path string) {
	viper.Reset()
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	setDefaults()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			logger.Log.Fatalf("Error reading config file, %s", err)
		}
		logger.Log.Info("No config file found, using defaults and environment")
	}

	AppConfig = Config{}
	if err := viper.Unmarshal(&AppConfig); err != nil {
		logger.Log.Fatalf("Unable to decode into struct, %v", err)
	}
}
