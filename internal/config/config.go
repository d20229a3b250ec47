// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the document-generation service the questionnaire posts to.
const DefaultEndpoint = "http://localhost:5000/generate-pdf"

// Config holds all configuration values for voiceintake.
type Config struct {
	Endpoint        string `mapstructure:"endpoint" yaml:"endpoint"`
	SendEmail       bool   `mapstructure:"send_email" yaml:"send_email"`
	SubmitTimeout   int    `mapstructure:"submit_timeout" yaml:"submit_timeout"` // seconds, 0 = transport default
	DataDir         string `mapstructure:"data_dir" yaml:"data_dir"`
	SaveCopy        bool   `mapstructure:"save_copy" yaml:"save_copy"`
	SummaryTemplate string `mapstructure:"summary_template" yaml:"summary_template"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level"`
	LogFile         string `mapstructure:"log_file" yaml:"log_file"`
}

// envKeys lists every config key that can be overridden from the environment.
var envKeys = []string{
	"endpoint",
	"send_email",
	"submit_timeout",
	"data_dir",
	"save_copy",
	"summary_template",
	"log_level",
	"log_file",
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		Endpoint:  DefaultEndpoint,
		SendEmail: true,
		DataDir:   ".voiceintake",
		LogLevel:  "info",
	}
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith loads configuration into the given viper instance. Callers bind
// CLI flags on v before calling so flags win over every other source.
func LoadWith(v *viper.Viper) (*Config, error) {
	v.SetConfigType("yaml")
	v.SetConfigName("voiceintake")

	def := Default()
	v.SetDefault("endpoint", def.Endpoint)
	v.SetDefault("send_email", def.SendEmail)
	v.SetDefault("submit_timeout", def.SubmitTimeout)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("save_copy", def.SaveCopy)
	v.SetDefault("summary_template", "")
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_file", "")

	// Setup ENV binding with VOICEINTAKE_ prefix
	v.SetEnvPrefix("VOICEINTAKE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings for better bool/int parsing
	for _, key := range envKeys {
		if err := v.BindEnv(key, "VOICEINTAKE_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that would otherwise fail late, at submit time.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid endpoint %q: scheme must be http or https", c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: missing host", c.Endpoint)
	}
	if c.SubmitTimeout < 0 {
		return fmt.Errorf("submit_timeout must not be negative, got %d", c.SubmitTimeout)
	}
	return nil
}

// Timeout returns the submission timeout as a duration (0 = no explicit timeout).
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.SubmitTimeout) * time.Second
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/voiceintake/voiceintake.yml or $XDG_CONFIG_HOME/voiceintake/voiceintake.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "voiceintake", "voiceintake.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "voiceintake", "voiceintake.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./voiceintake.yml in the current working directory.
func ProjectPath() string {
	return "voiceintake.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return writeFile(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return writeFile(ProjectPath(), cfg)
}

func writeFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
