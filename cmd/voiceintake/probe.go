package main

import (
	"fmt"

	"github.com/mark3labs/voiceintake/internal/submit"
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check that the document-generation service is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		client := submit.NewClient(cfg.Endpoint, submit.WithTimeout(cfg.Timeout()))
		if err := client.Probe(cmd.Context()); err != nil {
			return fmt.Errorf("%w\n%s", submit.Unavailable(err), submit.Hint(cfg.Endpoint))
		}
		fmt.Printf("Backend reachable at %s\n", cfg.Endpoint)
		return nil
	},
}
