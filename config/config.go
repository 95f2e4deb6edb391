package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task pipeline
	Store      StoreConfig
	Classifier ClassifierConfig
	Notifier   NotifierConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig describes the file-backed task store. An empty Path selects
// the in-memory store.
type StoreConfig struct {
	Path string
	Key  string
}

type ClassifierConfig struct {
	CacheSize int
}

// NotifierConfig describes the completion webhook. An empty URL disables
// outbound notifications without failing startup.
type NotifierConfig struct {
	WebhookURL string
}

type RateLimitConfig struct {
	GeneratePerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task store
	cfg.Store.Path = viper.GetString("store.path")
	cfg.Store.Key = viper.GetString("store.key")

	// Classifier
	cfg.Classifier.CacheSize = viper.GetInt("classifier.cache_size")

	// Notifier
	cfg.Notifier.WebhookURL = viper.GetString("notifier.webhook_url")
	if url := viper.GetString("webhook_url"); url != "" {
		cfg.Notifier.WebhookURL = url
	}

	// Rate limiting
	cfg.RateLimit.GeneratePerMin = viper.GetInt("rate_limit.generate_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("store.path", "data/tasks.json")
	viper.SetDefault("store.key", "tasks")
	viper.SetDefault("classifier.cache_size", 128)
	viper.SetDefault("rate_limit.generate_per_min", 60)
}
