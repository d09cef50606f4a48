package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DataDir         string         `yaml:"data_dir" mapstructure:"data_dir"`
	Store           StoreConfig    `yaml:"store" mapstructure:"store"`
	PreferencesFile string         `yaml:"preferences_file" mapstructure:"preferences_file"`
	Reminder        ReminderConfig `yaml:"reminder" mapstructure:"reminder"`
	History         HistoryConfig  `yaml:"history" mapstructure:"history"`
	Log             LogConfig      `yaml:"log" mapstructure:"log"`
	Prompt          string         `yaml:"prompt" mapstructure:"prompt"`
}

type StoreConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
	Path   string `yaml:"path" mapstructure:"path"`
	DSN    string `yaml:"dsn" mapstructure:"dsn"`
}

type ReminderConfig struct {
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

type HistoryConfig struct {
	Save bool   `yaml:"save" mapstructure:"save"`
	Dir  string `yaml:"dir" mapstructure:"dir"`
}

type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}

var envVarRe = regexp.MustCompile(`\$([A-Z_][A-Z0-9_]*)`)

func expandEnv(s string) string {
	return envVarRe.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimPrefix(match, "$")
		if val, ok := os.LookupEnv(name); ok {
			return val
		}
		return match
	})
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: ".",
		Store: StoreConfig{
			Driver: "sqlite",
			Path:   "tasks.db",
		},
		PreferencesFile: "preferences.json",
		Reminder:        ReminderConfig{Interval: time.Minute},
		History:         HistoryConfig{Save: true, Dir: "sessions"},
		Log:             LogConfig{Level: "warn"},
		Prompt:          "> ",
	}
}

// Load reads config.yaml from the working directory or the XDG config dir,
// then applies REMINDME_* environment overrides on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		v.AddConfigPath(filepath.Join(xdg, "remindme"))
	}
	home, _ := os.UserHomeDir()
	v.AddConfigPath(filepath.Join(home, ".config", "remindme"))

	return load(v)
}

// LoadFile reads the config from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	v.SetEnvPrefix("REMINDME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg.DataDir = expandEnv(cfg.DataDir)
	cfg.Store.Path = expandEnv(cfg.Store.Path)
	cfg.Store.DSN = expandEnv(cfg.Store.DSN)
	cfg.PreferencesFile = expandEnv(cfg.PreferencesFile)
	cfg.History.Dir = expandEnv(cfg.History.Dir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// never appear in a config file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("data_dir", cfg.DataDir)
	v.SetDefault("store.driver", cfg.Store.Driver)
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.dsn", cfg.Store.DSN)
	v.SetDefault("preferences_file", cfg.PreferencesFile)
	v.SetDefault("reminder.interval", cfg.Reminder.Interval)
	v.SetDefault("history.save", cfg.History.Save)
	v.SetDefault("history.dir", cfg.History.Dir)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("prompt", cfg.Prompt)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.Path == "" {
			return fmt.Errorf("config: store.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.DSN == "" {
			return fmt.Errorf("config: store.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: store.driver %q is invalid (must be sqlite or postgres)", c.Store.Driver)
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("config: log.level %q is invalid", c.Log.Level)
	}
	if c.Reminder.Interval <= 0 {
		c.Reminder.Interval = time.Minute
	}
	if c.DataDir == "" {
		c.DataDir = "."
	}
	if c.PreferencesFile == "" {
		c.PreferencesFile = "preferences.json"
	}
	if c.Prompt == "" {
		c.Prompt = "> "
	}
	return nil
}

// Resolve joins p onto the data directory unless it is already absolute.
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.DataDir, p)
}

func (c *Config) TasksPath() string       { return c.Resolve(c.Store.Path) }
func (c *Config) PreferencesPath() string { return c.Resolve(c.PreferencesFile) }
func (c *Config) HistoryDir() string      { return c.Resolve(c.History.Dir) }

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
