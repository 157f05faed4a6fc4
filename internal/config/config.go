package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load
const (
	EnvDBPath    = "TODOS_DB_PATH"
	EnvThemeFile = "TODOS_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Database    DatabaseConfig `yaml:"database"`
	Log         LogConfig      `yaml:"log"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// DatabaseConfig locates the SQLite file
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	config := &Config{
		ColorScheme: DefaultColorScheme(),
	}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from TODOS_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		theme := themeConfig.Theme
		if theme.Preset == "" {
			theme.Preset = config.ColorScheme.Preset
		}
		// Values from the theme file win; gaps fall back to what is already loaded
		mergeColors(&theme, config.ColorScheme)
		config.ColorScheme = theme
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads config from an explicit path, falling back to defaults
// when the file does not exist
func LoadFrom(configPath string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		applyEnv(config)
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	// Load theme from TODOS_THEME_FILE if set
	loadThemeFile(&config)

	applyEnv(&config)

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the config as YAML to configPath
func (c *Config) SaveTo(configPath string) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(configPath, data, 0o644)
}

// Path returns where Load looks for the config file
func Path() (string, error) {
	return getConfigPath()
}

// WriteDefault saves the default config pointing at dbPath, unless a
// config file already exists. It reports the file path and whether it
// was written.
func WriteDefault(dbPath string) (string, bool, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(configPath); err == nil {
		return configPath, false, nil
	} else if !os.IsNotExist(err) {
		return configPath, false, err
	}

	config := Default()
	if dbPath != "" {
		config.Database.Path = dbPath
	}
	if err := config.Save(); err != nil {
		return configPath, false, err
	}
	return configPath, true, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "todos", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "todos", "config.yaml"), nil
}

// dataDir returns ~/.todos, where the database and logs live by default
func dataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".todos"
	}
	return filepath.Join(homeDir, ".todos")
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = filepath.Join(dataDir(), "todos.db")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dataDir(), "logs", "todos.log")
	}
	c.ColorScheme.ApplyDefaults()
}

// applyEnv lets TODOS_DB_PATH override the configured database path
func applyEnv(c *Config) {
	if p := os.Getenv(EnvDBPath); p != "" {
		c.Database.Path = p
	}
}

func mergeColors(dst *ColorScheme, src ColorScheme) {
	fill := func(d *string, s string) {
		if *d == "" {
			*d = s
		}
	}
	fill(&dst.Accent, src.Accent)
	fill(&dst.Title, src.Title)
	fill(&dst.Subtle, src.Subtle)
	fill(&dst.Normal, src.Normal)
	fill(&dst.Done, src.Done)
	fill(&dst.Overdue, src.Overdue)
	fill(&dst.InfoFg, src.InfoFg)
	fill(&dst.InfoBg, src.InfoBg)
	fill(&dst.ErrorFg, src.ErrorFg)
	fill(&dst.ErrorBg, src.ErrorBg)
}
