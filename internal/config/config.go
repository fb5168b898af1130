package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log/slog"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type LogLevel string

func (l *LogLevel) SetValue(s string) error {
	*l = LogLevel(s)
	if _, err := l.Level(); err != nil {
		return configNotLoadedErr("invalid log level %q: %w", s, err)
	}
	return nil
}

func (l LogLevel) Level() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l))
	return level, err
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-default:"prod"`
	} `yaml:"app" env-prefix:"APP_"`

	Log struct {
		Level LogLevel `yaml:"level" env:"LEVEL" env-default:"warn"`
	} `yaml:"log" env-prefix:"LOG_"`
}

// Load reads the config file at filePath, or only the environment when
// filePath is empty. Environment variables override file values.
func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	var err error
	if filePath == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(filePath, cfg)
	}
	if err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	// values read from a file bypass the setters
	if err := cfg.App.Env.SetValue(string(cfg.App.Env)); err != nil {
		return nil, err
	}
	if err := cfg.Log.Level.SetValue(string(cfg.Log.Level)); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
