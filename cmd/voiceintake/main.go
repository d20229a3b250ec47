package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/voiceintake/internal/logger"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█ █ █▀█ █ █▀▀ █▀▀   █ █▄ █ ▀█▀ ▄▀█ █▄▀ █▀▀"
	logoText2 = "▀▄▀ █▄█ █ █▄▄ ██▄   █ █ ▀█  █  █▀█ █ █ ██▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voiceintake",
	Short: "Intake questionnaire for AI voice agent setups",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

voiceintake walks a prospective client through the AI voice agent setup
questionnaire step by step, validates every answer, and sends the finished
record to the document-generation service, which renders it and emails it
to the contact address.

Run 'voiceintake fill' to start the questionnaire, or 'voiceintake submit'
to send a prepared record without the TUI.`

	addConfigFlags(rootCmd)

	rootCmd.AddCommand(fillCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(setupCmd)
}
