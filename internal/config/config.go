package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host         string
	Port         string
	From         string
	Username     string
	Password     string
	AuthDisabled bool
}

type Config struct {
	Addr         string
	DatabaseURL  string
	RedisAddr    string
	JWTSecret    string
	ResetBaseURL string
	SMTP         SMTPConfig
}

// Load reads configuration from an optional config.yaml and the
// environment, environment winning. DATABASE_URL is the only required
// setting.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("redis_addr", "dashboard-redis:6379")
	v.SetDefault("reset_base_url", "http://localhost:8080")
	v.SetDefault("smtp.port", "587")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	cfg := Config{
		Addr:         v.GetString("addr"),
		DatabaseURL:  v.GetString("database_url"),
		RedisAddr:    v.GetString("redis_addr"),
		JWTSecret:    v.GetString("jwt_secret"),
		ResetBaseURL: v.GetString("reset_base_url"),
		SMTP: SMTPConfig{
			Host:         v.GetString("smtp.host"),
			Port:         v.GetString("smtp.port"),
			From:         v.GetString("smtp.from"),
			Username:     v.GetString("smtp.user"),
			Password:     v.GetString("smtp.pass"),
			AuthDisabled: v.GetBool("smtp.auth_disabled"),
		},
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database_url is required (set DATABASE_URL)")
	}
	return cfg, nil
}
