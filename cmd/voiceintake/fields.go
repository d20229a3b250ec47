package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var fieldsFlags struct {
	sample bool
	schema bool
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the questionnaire fields",
	Long: `List every step and field of the questionnaire.

Use --sample to print a valid record as YAML, a starting point for
'voiceintake submit', or --schema to print the JSON Schema records are
validated against.`,
	RunE: runFields,
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsFlags.sample, "sample", false, "Print a valid sample record as YAML")
	fieldsCmd.Flags().BoolVar(&fieldsFlags.schema, "schema", false, "Print the JSON Schema for records")
	fieldsCmd.MarkFlagsMutuallyExclusive("sample", "schema")
}

func runFields(cmd *cobra.Command, args []string) error {
	catalog := form.DefaultCatalog()

	switch {
	case fieldsFlags.sample:
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(form.ValidSample())
	case fieldsFlags.schema:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(form.BuildSchema(catalog))
	}

	for _, step := range catalog.Steps() {
		fmt.Printf("%d. %s\n", step.Index+1, step.Title)
		for _, f := range step.Fields {
			var flags []string
			if f.Required {
				flags = append(flags, "required")
			}
			if f.ShowWhen != nil {
				flags = append(flags, fmt.Sprintf("when %s = %q", f.ShowWhen.Key, f.ShowWhen.Value))
			}
			line := fmt.Sprintf("   %-22s %-9s %s", f.Key, f.Kind, f.Label)
			if len(flags) > 0 {
				line += " (" + strings.Join(flags, ", ") + ")"
			}
			fmt.Println(line)
		}
	}
	return nil
}
