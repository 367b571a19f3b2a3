package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the unified application configuration
type Config struct {
	Dir         string
	DatabaseURI string
	LogLevel    string
}

// Settings represents the config file structure
type Settings struct {
	Dir         string `yaml:"dir"`
	DatabaseURI string `yaml:"database_uri,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Dir         string
	DatabaseURI string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		LogLevel: "info",
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.Dir != "" {
				cfg.Dir = expandPath(fileConfig.Dir)
			}
			if fileConfig.DatabaseURI != "" {
				cfg.DatabaseURI = fileConfig.DatabaseURI
			}
			if fileConfig.LogLevel != "" {
				cfg.LogLevel = fileConfig.LogLevel
			}
		}
	}

	// Priority 2: Environment variables (including .env files) override config file
	LoadDotEnv()
	if v := os.Getenv("MEMO_DIR"); v != "" {
		cfg.Dir = expandPath(v)
	}
	if v := os.Getenv("MEMO_DATABASE_URI"); v != "" {
		cfg.DatabaseURI = v
	}
	if v := os.Getenv("MEMO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Priority 1: CLI flags override everything
	if flags.Dir != "" {
		cfg.Dir = expandPath(flags.Dir)
	}
	if flags.DatabaseURI != "" {
		cfg.DatabaseURI = flags.DatabaseURI
	}

	// Default directory if nothing configured
	if cfg.Dir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.Dir = defaultDir
	}

	return cfg, nil
}

// LoadDotEnv loads .env files with priority: .env.local > .env.
// godotenv never overwrites variables that are already set.
func LoadDotEnv() []string {
	candidates := []string{".env.local", ".env"}
	var loaded []string
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}

// GetDefaultDir returns the default memo directory
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "memo"), nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "memo", "config.yaml"), nil
}

func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureDir creates the memo directory if missing
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0755)
}

// UsesDatabase reports whether memos live in PostgreSQL rather than files
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURI != ""
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(Settings{
		Dir:      defaultDir,
		LogLevel: "info",
	})
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
