package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const xdgConfigFile = "hasami-shogi/config.yml"

type Config struct {
	LogLevel     string  `yaml:"log-level" env:"HASAMI_LOG_LEVEL" env-default:"info"`
	LogOutput    string  `yaml:"log-output" env:"HASAMI_LOG_OUTPUT" env-default:"stderr"`
	Redis        Redis   `yaml:"redis"`
	Players      Players `yaml:"players"`
	ResumeGameID string  `yaml:"resume-game-id" env:"HASAMI_RESUME_GAME_ID"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"HASAMI_REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"HASAMI_REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"HASAMI_REDIS_PORT" env-default:"6379"`
	TTL     time.Duration `yaml:"ttl" env:"HASAMI_REDIS_TTL" env-default:"168h"`
}

type Players struct {
	Black string `yaml:"black" env:"HASAMI_PLAYER_BLACK"`
	Red   string `yaml:"red" env:"HASAMI_PLAYER_RED"`
}

// MustLoad - load all configurations from the given config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

// Locate returns the first existing config file: the explicit path, then the
// XDG config directories. An empty result means environment only.
func Locate(path string) string {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	found, err := xdg.SearchConfigFile(xdgConfigFile)
	if err != nil {
		return ""
	}

	return found
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

var ErrInvalidLogLevel = errors.New("invalid log level")

// Validate checks values cleanenv cannot check by itself.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, that.LogLevel)
	}

	return nil
}
