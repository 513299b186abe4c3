package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. CAREERS_SERVER_PORT for server.port.
const EnvPrefix = "CAREERS"

// legacyEnv maps config keys to the unprefixed variable names the site has
// always been deployed with. Prefixed variables win when both are set.
var legacyEnv = map[string]string{
	"server.port":         "PORT",
	"database.url":        "DATABASE_URL",
	"mail.username":       "EMAIL_USER",
	"mail.password":       "EMAIL_PASS",
	"blob.cloudinary_url": "CLOUDINARY_URL",
	"cache.redis_url":     "REDIS_URL",
}

// Load configuration from environment variables and optionally config files.
// A .env file in the working directory is loaded first if present; it never
// overrides variables that are already set in the process environment.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", legacy, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)

	v.SetDefault("database.url", "")

	v.SetDefault("mail.host", "localhost")
	v.SetDefault("mail.port", 465)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.implicit_tls", true)

	v.SetDefault("blob.cloudinary_url", "")
	v.SetDefault("blob.folder", "resumes")

	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl_seconds", 300)

	v.SetDefault("orders.default_package_id", "")
	v.SetDefault("orders.default_user_id", "")
}
