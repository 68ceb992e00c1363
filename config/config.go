package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Event storage
	Storage StorageConfig

	// Webhooks
	Webhook WebhookConfig
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

type CORSConfig struct {
	AllowedOrigins []string // empty or "*" allows every origin
}

type StorageConfig struct {
	Driver   string // mongo, postgres, sqlite or memory
	Mongo    MongoConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	TLSCAFile  string
	Timeout    time.Duration
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

type SQLiteConfig struct {
	Path string
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
	PublicURL       string // announced at startup; detected from ngrok when empty
	NgrokAPI        string
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

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
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.Mongo.URI = viper.GetString("storage.mongo.uri")
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Storage.Mongo.URI = mongoURI
	}
	cfg.Storage.Mongo.Database = viper.GetString("storage.mongo.database")
	cfg.Storage.Mongo.Collection = viper.GetString("storage.mongo.collection")
	cfg.Storage.Mongo.TLSCAFile = viper.GetString("storage.mongo.tls_ca_file")
	cfg.Storage.Mongo.Timeout = viper.GetDuration("storage.mongo.timeout")
	cfg.Storage.Postgres.DSN = viper.GetString("storage.postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Storage.Postgres.DSN = dsn
	}
	cfg.Storage.Postgres.MaxConns = viper.GetInt32("storage.postgres.max_conns")
	cfg.Storage.SQLite.Path = viper.GetString("storage.sqlite.path")

	// Webhooks
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min") // 0 disables limiting
	cfg.Webhook.PublicURL = viper.GetString("webhook.public_url")
	cfg.Webhook.NgrokAPI = viper.GetString("webhook.ngrok_api")

	// Split allowed IPs since viper might not parse array seamlessly from env
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))

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
	viper.SetDefault("cors.allowed_origins", "*")

	viper.SetDefault("storage.driver", "mongo")
	viper.SetDefault("storage.mongo.uri", "mongodb://localhost:27017/webhook_db")
	viper.SetDefault("storage.mongo.database", "webhook_db")
	viper.SetDefault("storage.mongo.collection", "events")
	viper.SetDefault("storage.mongo.timeout", "10s")
	viper.SetDefault("storage.postgres.max_conns", 10)
	viper.SetDefault("storage.sqlite.path", "data/events.db")

	viper.SetDefault("webhook.rate_limit_per_min", 0)
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
