package config

// Viper configuration loader: reads config.yaml from the working directory or user config dir

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultMaxFlowDepth bounds how far a switch request may climb the coordinator tree
const DefaultMaxFlowDepth = 32

// Config holds all application configuration loaded from config.yaml
type Config struct {
	// Logging configuration
	Logging struct {
		Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
		File  string `mapstructure:"file"`  // empty = cache dir default
	} `mapstructure:"logging"`

	// Navigation engine configuration
	Navigation struct {
		MaxFlowDepth int `mapstructure:"maxFlowDepth"`
	} `mapstructure:"navigation"`

	// Favourites storage
	Store struct {
		File string `mapstructure:"file"` // empty = config dir default
	} `mapstructure:"store"`

	// Header configuration
	Header struct {
		Visible bool `mapstructure:"visible"`
	} `mapstructure:"header"`

	// Appearance configuration
	Appearance struct {
		Theme string `mapstructure:"theme"` // "dark", "light", "auto"
	} `mapstructure:"appearance"`
}

var appConfig *Config

// LoadConfig loads configuration from config.yaml, the environment and os.Args.
// Priority order (first found wins): project config → user config → current directory (dev)
// If config.yaml doesn't exist, it uses default values
func LoadConfig() (*Config, error) {
	return LoadConfigWithArgs(os.Args[1:])
}

// LoadConfigWithArgs is LoadConfig with an explicit command line
func LoadConfigWithArgs(args []string) (*Config, error) {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// first added = highest priority
	if pm, err := getPathManager(); err == nil {
		viper.AddConfigPath(pm.ProjectConfigDir())
		viper.AddConfigPath(pm.ConfigDir())
	}
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("no config.yaml found, using defaults")
		} else {
			slog.Error("error reading config file", "error", err)
			return nil, err
		}
	} else {
		slog.Debug("loaded configuration", "file", viper.ConfigFileUsed())
	}

	// Allow environment variables to override config file
	viper.SetEnvPrefix("KISS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := bindFlags(args); err != nil {
		slog.Warn("failed to bind command line flags", "error", err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		slog.Error("failed to unmarshal config", "error", err)
		return nil, err
	}
	if cfg.Navigation.MaxFlowDepth < 1 {
		slog.Warn("invalid navigation.maxFlowDepth, using default", "value", cfg.Navigation.MaxFlowDepth)
		cfg.Navigation.MaxFlowDepth = DefaultMaxFlowDepth
	}

	appConfig = cfg
	return cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("logging.level", "error")
	viper.SetDefault("logging.file", "")

	viper.SetDefault("navigation.maxFlowDepth", DefaultMaxFlowDepth)

	viper.SetDefault("store.file", "")

	viper.SetDefault("header.visible", true)

	viper.SetDefault("appearance.theme", "auto")
}

// bindFlags binds supported command line flags to viper so they can override config values.
func bindFlags(args []string) error {
	flagSet := pflag.NewFlagSet("kiss", pflag.ContinueOnError)
	flagSet.ParseErrorsWhitelist.UnknownFlags = true
	flagSet.SetOutput(io.Discard)

	flagSet.String("log-level", "", "Log level (debug, info, warn, error)")
	flagSet.String("data-file", "", "Favourites file")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := viper.BindPFlag("logging.level", flagSet.Lookup("log-level")); err != nil {
		return err
	}
	return viper.BindPFlag("store.file", flagSet.Lookup("data-file"))
}

// GetConfig returns the loaded configuration
// If config hasn't been loaded yet, it loads it first
func GetConfig() *Config {
	if appConfig == nil {
		cfg, err := LoadConfig()
		if err != nil {
			slog.Warn("failed to load config, using defaults", "error", err)
			setDefaults()
			cfg = &Config{}
			_ = viper.Unmarshal(cfg)
		}
		appConfig = cfg
	}
	return appConfig
}

// DataFile resolves the favourites file: configured path or the config dir default
func (c *Config) DataFile() string {
	if c.Store.File != "" {
		return c.Store.File
	}
	return GetDefaultDataFile()
}

// LogFile resolves the log path: configured path or the cache dir default
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return c.Logging.File
	}
	return GetLogFile()
}

// GetHeaderVisible returns the header visibility setting
func GetHeaderVisible() bool {
	return viper.GetBool("header.visible")
}

// GetTheme returns the appearance theme setting
func GetTheme() string {
	theme := viper.GetString("appearance.theme")
	if theme == "" {
		return "auto"
	}
	return theme
}

// GetEffectiveTheme resolves "auto" to actual theme based on terminal detection
func GetEffectiveTheme() string {
	theme := GetTheme()
	if theme != "auto" {
		return theme
	}
	// COLORFGBG is "fg;bg"; 0-7 = dark backgrounds, 8+ = light
	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		if len(parts) >= 2 {
			if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil && bg >= 8 {
				return "light"
			}
		}
	}
	return "dark"
}

// GetContentBackgroundColor returns the background color for content areas
func GetContentBackgroundColor() tcell.Color {
	if GetEffectiveTheme() == "dark" {
		return tcell.ColorBlack
	}
	return tcell.ColorDefault
}

// GetContentTextColor returns the appropriate text color for content areas
func GetContentTextColor() tcell.Color {
	if GetEffectiveTheme() == "dark" {
		return tcell.ColorWhite
	}
	return tcell.ColorBlack
}
