package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings are read from the environment once at startup.
type Settings struct {
	ServerHost    string        `env:"STAGERUNNER_SERVER_HOST" envDefault:"themaking.xyz"`
	ServerPort    int           `env:"STAGERUNNER_SERVER_PORT" envDefault:"34602"`
	DialTimeout   time.Duration `env:"STAGERUNNER_DIAL_TIMEOUT" envDefault:"10s"`
	PresenceAppID string        `env:"STAGERUNNER_PRESENCE_APP_ID" envDefault:"411983281886593024"`
	FPS           int           `env:"STAGERUNNER_FPS" envDefault:"60"`
	OptionsPath   string        `env:"STAGERUNNER_OPTIONS" envDefault:"options.ini"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadSettings() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if s.FPS < 0 {
		return Settings{}, fmt.Errorf("config: fps must not be negative, got %d", s.FPS)
	}
	return s, nil
}

// ServerAddr is the host:port of the spectator relay.
func (s Settings) ServerAddr() string {
	return net.JoinHostPort(s.ServerHost, strconv.Itoa(s.ServerPort))
}
