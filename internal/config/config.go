package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	API     APIConfig     `envPrefix:"API_"`
	Session SessionConfig `envPrefix:"SESSION_"`
	Inbox   InboxConfig   `envPrefix:"INBOX_"`
}

type APIConfig struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

type SessionConfig struct {
	// File holds the persisted token and user between runs. Empty means the
	// per-user default under os.UserConfigDir.
	File string `env:"FILE"`
}

type InboxConfig struct {
	// PageSize caps conversation list requests.
	PageSize int `env:"PAGE_SIZE" envDefault:"50"`
	// MaxAttachmentBytes is enforced client-side before transmission.
	MaxAttachmentBytes int64 `env:"MAX_ATTACHMENT_BYTES" envDefault:"10485760"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
