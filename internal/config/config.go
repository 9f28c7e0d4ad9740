package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeSolve    = "solve"
	ModeSelfPlay = "selfplay"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Mode     string `yaml:"mode" env:"MODE" env-default:"solve"`
	Position string `yaml:"position" env:"POSITION" env-default:"........."`
	Search   Search `yaml:"search"`
	Cache    Cache  `yaml:"cache"`
	Redis    Redis  `yaml:"redis"`
}

type Search struct {
	Parallel bool `yaml:"parallel" env:"SEARCH_PARALLEL" env-default:"false"`
}

type Cache struct {
	Enabled bool          `yaml:"enabled" env:"CACHE_ENABLED" env-default:"false"`
	TTL     time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"24h"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path and applies environment overrides on top of it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Mode != ModeSolve && config.Mode != ModeSelfPlay {
		return nil, fmt.Errorf("unknown mode %q", config.Mode)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
