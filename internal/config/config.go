package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token       string `yaml:"token"`
	PublicURL   string `yaml:"public_url"`   // externally reachable base URL for the webhook
	Handler     string `yaml:"handler"`      // detection | echo
	DownloadDir string `yaml:"download_dir"` // transient storage for incoming photos
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type AWSConfig struct {
	Region       string `yaml:"region"`
	Bucket       string `yaml:"bucket"`
	UploadPrefix string `yaml:"upload_prefix"` // key prefix for submitted photos
	SQSURL       string `yaml:"sqs_url"`
	DownloadDir  string `yaml:"download_dir"` // transient storage for result images
}

type RedisConfig struct {
	URL       string `yaml:"url"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"` // prediction documents live at <key_prefix>:<id>
}

type Config struct {
	Bot    BotConfig    `yaml:"bot"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	AWS    AWSConfig    `yaml:"aws"`
	Redis  RedisConfig  `yaml:"redis"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	// Secrets may come from a .env file; missing file is fine.
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// env overrides for secrets
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Bot.Token = v
	}
	if v := os.Getenv("TELEGRAM_APP_URL"); v != "" {
		cfg.Bot.PublicURL = v
	}
	if v := os.Getenv("SQS_URL"); v != "" {
		cfg.AWS.SQSURL = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.AWS.Bucket = v
	}

	// defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8443
	}
	if cfg.Bot.Handler == "" {
		cfg.Bot.Handler = "detection"
	}
	if cfg.Bot.DownloadDir == "" {
		cfg.Bot.DownloadDir = "photos"
	}
	if cfg.AWS.UploadPrefix == "" {
		cfg.AWS.UploadPrefix = "photos-k8s/"
	}
	if cfg.AWS.DownloadDir == "" {
		cfg.AWS.DownloadDir = "/tmp/predictions"
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = "prediction"
	}

	// Minimal validation. Dev mode may run without a real bot token.
	if cfg.Bot.Token == "" && !dev {
		return nil, errors.New("bot.token is required")
	}
	if cfg.Bot.PublicURL == "" && !dev {
		return nil, errors.New("bot.public_url is required")
	}
	if cfg.Bot.Handler != "detection" && cfg.Bot.Handler != "echo" {
		return nil, fmt.Errorf("bot.handler must be detection or echo, got %q", cfg.Bot.Handler)
	}
	if cfg.AWS.Bucket == "" {
		return nil, errors.New("aws.bucket is required")
	}
	if cfg.AWS.SQSURL == "" {
		return nil, errors.New("aws.sqs_url is required")
	}
	if cfg.Redis.URL == "" {
		return nil, errors.New("redis.url is required")
	}
	if !strings.HasSuffix(cfg.AWS.UploadPrefix, "/") {
		cfg.AWS.UploadPrefix += "/"
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
