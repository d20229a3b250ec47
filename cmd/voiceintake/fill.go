package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/voiceintake/internal/hooks"
	"github.com/mark3labs/voiceintake/internal/tui/wizard"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill in the questionnaire interactively",
	Long: `Open the full-screen questionnaire.

Move between steps with ctrl+s and esc, or pick a step with ctrl+p.
The last screen shows a summary of every answer and sends the form.`,
	RunE: runFill,
}

func runFill(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	hooksCfg, err := hooks.LoadConfig(workDir)
	if err != nil {
		return err
	}

	result, err := wizard.Run(cfg, wizard.Options{
		Hooks:   hooksCfg,
		WorkDir: workDir,
	})
	if err != nil {
		return err
	}

	switch {
	case result.Submitted > 0:
		fmt.Printf("Submitted %d form(s).\n", result.Submitted)
	case result.LastError != "":
		return fmt.Errorf("form not sent: %s", result.LastError)
	default:
		fmt.Println("Exited without sending.")
	}
	return nil
}
