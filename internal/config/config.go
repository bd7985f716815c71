package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type AuthConfig struct {
	AccessSecret string
	AdminRole    string
}

type ExportConfig struct {
	Dir string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Store       StoreConfig
	Auth        AuthConfig
	Export      ExportConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Store: StoreConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DB"),
			Timeout:  v.GetDuration("STORE_TIMEOUT"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
			AdminRole:    v.GetString("ADMIN_ROLE"),
		},
		Export: ExportConfig{
			Dir: v.GetString("EXPORT_DIR"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7090
	}
	if cfg.Store.Database == "" {
		cfg.Store.Database = "greenloop"
	}
	if cfg.Store.Timeout == 0 {
		cfg.Store.Timeout = 10 * time.Second
	}
	if cfg.Auth.AdminRole == "" {
		cfg.Auth.AdminRole = "admin"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "./exports"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Store.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	return nil
}
