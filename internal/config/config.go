package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game    GameConfig    `mapstructure:"game"`
	Logging LoggingConfig `mapstructure:"logging"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// GameConfig holds arena settings
type GameConfig struct {
	Arena ArenaConfig `mapstructure:"arena"`
	Setup SetupConfig `mapstructure:"setup"`
}

// ArenaConfig holds board dimensions and capture rules
type ArenaConfig struct {
	Width         int  `mapstructure:"width"`
	Height        int  `mapstructure:"height"`
	StrictCapture bool `mapstructure:"strict_capture"`
}

// SetupConfig controls the starting position
type SetupConfig struct {
	Standard bool `mapstructure:"standard"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string       `mapstructure:"level"`
	Format string       `mapstructure:"format"`
	Events EventsConfig `mapstructure:"events"`
}

// EventsConfig controls the event logging subscriber
type EventsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	DevMode bool `mapstructure:"dev_mode"`
}

// DemoConfig holds the scripted moves played by the demo
type DemoConfig struct {
	Moves []string `mapstructure:"moves"`
}

// Minimum board edge for the standard setup
const standardSize = 8

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.arena.width", 8)
	v.SetDefault("game.arena.height", 8)
	v.SetDefault("game.arena.strict_capture", false)
	v.SetDefault("game.setup.standard", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.events.enabled", true)
	v.SetDefault("logging.events.dev_mode", false)

	v.SetDefault("demo.moves", []string{})
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/chess-arena")
	}

	v.SetEnvPrefix("CHESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing explicit file falls back to defaults as well
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange runs after the
// new values have been decoded and validated; invalid edits are ignored.
func WatchConfig(onChange func(*Config)) {
	watched, current := v, cfg
	watched.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := watched.Unmarshal(next); err != nil {
			return
		}
		if err := Validate(next); err != nil {
			return
		}
		*current = *next
		if onChange != nil {
			onChange(current)
		}
	})
	watched.WatchConfig()
}

// ParseLevel maps a configured level name to a zerolog level
func ParseLevel(name string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(name))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Game.Arena.Width <= 0 {
		return fmt.Errorf("game.arena.width must be positive")
	}
	if c.Game.Arena.Height <= 0 {
		return fmt.Errorf("game.arena.height must be positive")
	}
	if c.Game.Setup.Standard && (c.Game.Arena.Width < standardSize || c.Game.Arena.Height < standardSize) {
		return fmt.Errorf("game.setup.standard needs at least a %dx%d arena", standardSize, standardSize)
	}

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}
