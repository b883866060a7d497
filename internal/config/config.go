package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/minesweeper/internal/minesweeper"
)

var (
	ErrInvalidFieldSize = errors.New("field size must be positive")
	ErrInvalidMineCount = errors.New("default mine count must not be negative")
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"MINESWEEPER_LOG_LEVEL" env-default:"warn"`
	FieldSize    int    `yaml:"field-size" env:"MINESWEEPER_FIELD_SIZE" env-default:"9"`
	DefaultMines int    `yaml:"default-mines" env:"MINESWEEPER_DEFAULT_MINES" env-default:"8"`
	WinRule      string `yaml:"win-rule" env:"MINESWEEPER_WIN_RULE" env-default:"count"`
	Seed         uint64 `yaml:"seed" env:"MINESWEEPER_SEED" env-default:"0"`
}

// Load - reads the config file when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err = cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if that.FieldSize < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidFieldSize, that.FieldSize)
	}

	if that.DefaultMines < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMineCount, that.DefaultMines)
	}

	if _, err := minesweeper.ParseWinRule(that.WinRule); err != nil {
		return err
	}

	return nil
}

func (that *Config) GetWinRule() minesweeper.WinRule {
	rule, err := minesweeper.ParseWinRule(that.WinRule)
	if err != nil {
		return minesweeper.WinByCount
	}

	return rule
}

// BoardOptions - engine options derived from the config.
func (that *Config) BoardOptions() []minesweeper.Option {
	opts := []minesweeper.Option{minesweeper.WithWinRule(that.GetWinRule())}
	if that.Seed != 0 {
		opts = append(opts, minesweeper.WithSeed(that.Seed))
	}

	return opts
}
