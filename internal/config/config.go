package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"dexview/internal/errors"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultBaseURL is the collection resource used when none is configured.
	DefaultBaseURL = "https://pokeapi.co/api/v2/pokemon"
	// DefaultPageSize is the number of references requested per listing page.
	DefaultPageSize = 20
	maxPageSize     = 1000
)

// Config represents the application configuration structure.
type Config struct {
	API struct {
		BaseURL     string `yaml:"base_url"`    // Collection resource; point lookups append /<name-or-id>
		PageSize    int    `yaml:"page_size"`   // References per listing page
		Timeout     int    `yaml:"timeout"`     // Per-request timeout in seconds (0 = none)
		Concurrency int    `yaml:"concurrency"` // Parallel item fetches per page (0 = unlimited)
		UserAgent   string `yaml:"user_agent"`  // User-Agent header sent with every request
	} `yaml:"api"`
	UI struct {
		Theme   string `yaml:"theme"`   // Theme name (default, dark, light, etc.)
		Sprites bool   `yaml:"sprites"` // Load sprite images in both viewers
	} `yaml:"ui"`
	Log struct {
		Level string `yaml:"level"` // logrus level name
		File  string `yaml:"file"`  // Log file used while a full-screen UI is running
	} `yaml:"log"`
	Theme struct {
		Name     string `yaml:"name"`
		Primary  string `yaml:"primary"`
		Success  string `yaml:"success"`
		Warning  string `yaml:"warning"`
		Error    string `yaml:"error"`
		Info     string `yaml:"info"`
		Emphasis string `yaml:"emphasis"`
		Border   string `yaml:"border"`
	} `yaml:"-"`
}

// DefaultPath returns ~/.config/dexview/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewConfigError("no home directory for the config file", "", errors.ConfigNotFound, err)
	}
	return filepath.Join(home, ".config", "dexview", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location.
func LoadConfig() (*Config, error) {
	configPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "error reading config file %s", path)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	tempCfg.UI.Sprites = cfg.UI.Sprites
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if tempCfg.API.BaseURL != "" {
		cfg.API.BaseURL = tempCfg.API.BaseURL
	}
	if tempCfg.API.PageSize != 0 {
		cfg.API.PageSize = tempCfg.API.PageSize
	}
	if tempCfg.API.UserAgent != "" {
		cfg.API.UserAgent = tempCfg.API.UserAgent
	}
	cfg.API.Timeout = tempCfg.API.Timeout
	cfg.API.Concurrency = tempCfg.API.Concurrency

	if tempCfg.UI.Theme != "" {
		cfg.UI.Theme = tempCfg.UI.Theme
	}
	cfg.UI.Sprites = tempCfg.UI.Sprites

	if tempCfg.Log.Level != "" {
		cfg.Log.Level = tempCfg.Log.Level
	}
	if tempCfg.Log.File != "" {
		cfg.Log.File = tempCfg.Log.File
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	cfg.ApplyTheme(cfg.UI.Theme)

	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.API.BaseURL = DefaultBaseURL
	cfg.API.PageSize = DefaultPageSize
	cfg.API.Timeout = 0     // No timeout, a hung request keeps the loading status
	cfg.API.Concurrency = 0 // Fetch every item of a page at once
	cfg.API.UserAgent = "dexview"

	cfg.UI.Theme = "default"
	cfg.UI.Sprites = true

	cfg.Log.Level = "info"
	if cache, err := os.UserCacheDir(); err == nil {
		cfg.Log.File = filepath.Join(cache, "dexview", "dexview.log")
	}

	cfg.ApplyTheme(cfg.UI.Theme)
	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewConfigError("base url must be an absolute http(s) url", "api.base_url", errors.InvalidConfig, err)
	}
	if c.API.PageSize < 1 || c.API.PageSize > maxPageSize {
		return errors.NewConfigError(fmt.Sprintf("page size must be between 1 and %d", maxPageSize), "api.page_size", errors.InvalidConfig, nil)
	}
	if c.API.Timeout < 0 {
		return errors.NewConfigError("timeout must be >= 0 seconds", "api.timeout", errors.InvalidConfig, nil)
	}
	if c.API.Concurrency < 0 {
		return errors.NewConfigError("concurrency must be >= 0", "api.concurrency", errors.InvalidConfig, nil)
	}

	validTheme := false
	for _, name := range ListThemes() {
		if name == c.UI.Theme {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return errors.NewConfigError(fmt.Sprintf("unknown theme %q", c.UI.Theme), "ui.theme", errors.InvalidConfig, nil)
	}

	return nil
}

// RequestTimeout returns the configured timeout, zero meaning none
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.API.Timeout) * time.Second
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

// GetTheme returns a predefined theme configuration by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	themes := map[string]map[string]string{
		"default": {
			"primary":  "213", // Purple
			"success":  "114", // Green
			"warning":  "220", // Yellow
			"error":    "196", // Red
			"info":     "39",  // Blue
			"emphasis": "212", // Light Pink
			"border":   "213", // Purple
		},
		"dark": {
			"primary":  "105",
			"success":  "78",
			"warning":  "214",
			"error":    "160",
			"info":     "33",
			"emphasis": "147",
			"border":   "105",
		},
		"light": {
			"primary":  "135",
			"success":  "150",
			"warning":  "222",
			"error":    "210",
			"info":     "117",
			"emphasis": "219",
			"border":   "135",
		},
		"monochrome": {
			"primary":  "245",
			"success":  "252",
			"warning":  "241",
			"error":    "232",
			"info":     "248",
			"emphasis": "255",
			"border":   "245",
		},
		"ocean": {
			"primary":  "31",
			"success":  "36",
			"warning":  "220",
			"error":    "196",
			"info":     "33",
			"emphasis": "51",
			"border":   "31",
		},
		"sunset": {
			"primary":  "208",
			"success":  "154",
			"warning":  "214",
			"error":    "196",
			"info":     "69",
			"emphasis": "203",
			"border":   "208",
		},
	}

	if theme, exists := themes[name]; exists {
		return theme
	}

	return themes["default"]
}

// ApplyTheme sets the theme colors in the configuration.
func (c *Config) ApplyTheme(name string) {
	theme := GetTheme(name)

	c.Theme.Name = name
	c.Theme.Primary = theme["primary"]
	c.Theme.Success = theme["success"]
	c.Theme.Warning = theme["warning"]
	c.Theme.Error = theme["error"]
	c.Theme.Info = theme["info"]
	c.Theme.Emphasis = theme["emphasis"]
	c.Theme.Border = theme["border"]
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "dark", "light", "monochrome", "ocean", "sunset"}
}
