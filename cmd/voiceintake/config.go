package main

import (
	"fmt"

	"github.com/mark3labs/voiceintake/internal/config"
	"github.com/mark3labs/voiceintake/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"endpoint":  "endpoint",
	"timeout":   "submit_timeout",
	"data-dir":  "data_dir",
	"save-copy": "save_copy",
	"log-level": "log_level",
	"log-file":  "log_file",
}

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.String("endpoint", config.DefaultEndpoint, "Document-generation endpoint")
	f.Int("timeout", 0, "Submission timeout in seconds, 0=transport default")
	f.String("data-dir", ".voiceintake", "Directory for UI state and saved copies")
	f.Bool("save-copy", false, "Save a local YAML copy of every submitted record")
	f.Bool("no-email", false, "Ask the service not to email the document")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-file", "", "Write logs to this file")
}

// loadConfig resolves configuration with flags taking precedence, then
// applies the logging settings.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()
	for flag, key := range flagKeys {
		if fl := cmd.Flags().Lookup(flag); fl != nil && fl.Changed {
			if err := v.BindPFlag(key, fl); err != nil {
				return nil, fmt.Errorf("binding --%s: %w", flag, err)
			}
		}
	}

	cfg, err := config.LoadWith(v)
	if err != nil {
		return nil, err
	}
	if noEmail, _ := cmd.Flags().GetBool("no-email"); noEmail {
		cfg.SendEmail = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if level, err := logger.ParseLevel(cfg.LogLevel); err == nil {
		logger.Default.SetLevel(level)
	}
	logger.Default.SetFile(cfg.LogFile)
	logger.Debug("Config loaded: endpoint=%s send_email=%t data_dir=%s", cfg.Endpoint, cfg.SendEmail, cfg.DataDir)
	return cfg, nil
}
