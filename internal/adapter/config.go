package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// StoreBackend identifies the popularity store implementation
type StoreBackend string

const (
	StoreBackendBolt   StoreBackend = "bolt"
	StoreBackendMemory StoreBackend = "memory"
	StoreBackendMongo  StoreBackend = "mongo"
	StoreBackendRedis  StoreBackend = "redis"
)

// RefreshMode controls when the trending leaderboard is reloaded
type RefreshMode string

const (
	RefreshOnSearch  RefreshMode = "search"   // every debounced term change
	RefreshOnStartup RefreshMode = "startup"  // once, when the program starts
	RefreshInterval  RefreshMode = "interval" // at startup and then on a timer
)

// Config holds all application configuration
type Config struct {
	Provider    ProviderConfig    `mapstructure:"provider"`
	Search      SearchConfig      `mapstructure:"search"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
	Store       StoreConfig       `mapstructure:"store"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ProviderConfig holds metadata provider configuration
type ProviderConfig struct {
	BaseURL      string        `mapstructure:"base_url" validate:"required,url"`
	Token        string        `mapstructure:"token" validate:"required"` // Bearer token
	ImageBaseURL string        `mapstructure:"image_base_url" validate:"omitempty,url"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

// SearchConfig holds search input behaviour
type SearchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" validate:"gt=0"`
}

// LeaderboardConfig holds trending list configuration
type LeaderboardConfig struct {
	Size     int           `mapstructure:"size" validate:"gte=1,lte=50"`
	Refresh  RefreshMode   `mapstructure:"refresh" validate:"oneof=search startup interval"`
	Interval time.Duration `mapstructure:"interval" validate:"required_if=Refresh interval"`
}

// StoreConfig holds popularity store configuration
type StoreConfig struct {
	Backend       StoreBackend `mapstructure:"backend" validate:"oneof=bolt memory mongo redis"`
	Path          string       `mapstructure:"path" validate:"required_if=Backend bolt"`
	MongoURI      string       `mapstructure:"mongo_uri" validate:"required_if=Backend mongo"`
	MongoDatabase string       `mapstructure:"mongo_database" validate:"required_if=Backend mongo"`
	RedisURL      string       `mapstructure:"redis_url" validate:"required_if=Backend redis"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			Token:        "",
			ImageBaseURL: "https://image.tmdb.org/t/p/w500",
			Timeout:      30 * time.Second,
		},
		Search: SearchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Leaderboard: LeaderboardConfig{
			Size:     5,
			Refresh:  RefreshOnSearch,
			Interval: time.Minute,
		},
		Store: StoreConfig{
			Backend:       StoreBackendBolt,
			Path:          filepath.Join(defaultDataPath(), "popularity.db"),
			MongoDatabase: "cinefind",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(defaultDataPath(), "cinefind.log"),
			Level: "INFO",
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinefind")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cinefind")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinefind")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cinefind")
	}
}

// DefaultConfigFile returns the path SaveConfig writes to when none is given
func DefaultConfigFile() string {
	return filepath.Join(defaultConfigPath(), "config.yaml")
}

// newViper builds a viper instance seeded with defaults so that every key
// can be overridden from the environment (CINEFIND_PROVIDER_TOKEN etc.)
func newViper(cfg *Config) *viper.Viper {
	v := viper.New()

	v.SetDefault("provider.base_url", cfg.Provider.BaseURL)
	v.SetDefault("provider.token", cfg.Provider.Token)
	v.SetDefault("provider.image_base_url", cfg.Provider.ImageBaseURL)
	v.SetDefault("provider.timeout", cfg.Provider.Timeout)
	v.SetDefault("search.debounce", cfg.Search.Debounce)
	v.SetDefault("leaderboard.size", cfg.Leaderboard.Size)
	v.SetDefault("leaderboard.refresh", string(cfg.Leaderboard.Refresh))
	v.SetDefault("leaderboard.interval", cfg.Leaderboard.Interval)
	v.SetDefault("store.backend", string(cfg.Store.Backend))
	v.SetDefault("store.path", cfg.Store.Path)
	v.SetDefault("store.mongo_uri", cfg.Store.MongoURI)
	v.SetDefault("store.mongo_database", cfg.Store.MongoDatabase)
	v.SetDefault("store.redis_url", cfg.Store.RedisURL)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)

	v.SetEnvPrefix("CINEFIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An empty configFile searches the default config directory and ".".
func LoadConfig(configFile string) (*Config, error) {
	cfg := DefaultConfig()
	v := newViper(cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigPath())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configFile != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration against its struct constraints
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsConfigured returns true if the provider URL and token are set
func (c *Config) IsConfigured() bool {
	return c.Provider.BaseURL != "" && c.Provider.Token != ""
}

// SaveConfig writes the provider settings to configFile (DefaultConfigFile when empty).
// Other keys already present in the file are preserved.
func SaveConfig(cfg *Config, configFile string) error {
	if configFile == "" {
		configFile = DefaultConfigFile()
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.Set("provider.base_url", cfg.Provider.BaseURL)
	v.Set("provider.token", cfg.Provider.Token)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
