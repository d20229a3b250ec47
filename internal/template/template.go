package template

import (
	"fmt"
	"os"
	"strings"

	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/logger"
)

// notesKey is the free-text field rendered in its own section.
const notesKey = "additionalNotes"

// Variables holds the data to be injected into template placeholders.
type Variables struct {
	Business string // Business name
	Contact  string // Contact name
	Email    string // Contact email
	Session  string // Session id
	Answers  string // Formatted answers grouped by step
	Notes    string // Additional notes (placeholder text if empty)
	Endpoint string // Submission endpoint
}

// Render replaces {{variable}} placeholders in template with actual values.
// Supports the following variables:
// - {{business}} - Business name
// - {{contact}} - Contact name
// - {{email}} - Contact email
// - {{session}} - Session id
// - {{answers}} - Answers grouped by step
// - {{notes}} - Additional notes
// - {{endpoint}} - Submission endpoint
func Render(template string, vars Variables) string {
	replacements := []string{
		"{{business}}", vars.Business,
		"{{contact}}", vars.Contact,
		"{{email}}", vars.Email,
		"{{session}}", vars.Session,
		"{{answers}}", vars.Answers,
		"{{notes}}", vars.Notes,
		"{{endpoint}}", vars.Endpoint,
	}
	return strings.NewReplacer(replacements...).Replace(template)
}

// LoadFromFile loads a template from a file.
// If the file doesn't exist or can't be read, returns an error.
func LoadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}

// GetTemplate returns the template content.
// If customPath is non-empty, loads from that file.
// Otherwise returns the default embedded template.
func GetTemplate(customPath string) (string, error) {
	if customPath == "" {
		return DefaultTemplate, nil
	}
	return LoadFromFile(customPath)
}

// SummaryConfig holds what BuildSummary needs.
type SummaryConfig struct {
	Catalog      *form.Catalog
	Values       form.Record
	Session      string
	Endpoint     string
	TemplatePath string // Path to custom template (optional)
}

// BuildSummary renders the review summary of a record as markdown.
func BuildSummary(cfg SummaryConfig) (string, error) {
	if cfg.TemplatePath != "" {
		logger.Debug("Using custom summary template: %s", cfg.TemplatePath)
	}
	tmpl, err := GetTemplate(cfg.TemplatePath)
	if err != nil {
		logger.Error("Failed to get summary template: %v", err)
		return "", fmt.Errorf("failed to get template: %w", err)
	}

	vars := Variables{
		Business: orUnset(str(cfg.Values, "businessName")),
		Contact:  orUnset(str(cfg.Values, "contactName")),
		Email:    orUnset(str(cfg.Values, "email")),
		Session:  cfg.Session,
		Answers:  formatAnswers(cfg.Catalog, cfg.Values),
		Notes:    str(cfg.Values, notesKey),
		Endpoint: cfg.Endpoint,
	}
	if strings.TrimSpace(vars.Notes) == "" {
		vars.Notes = "_No additional notes._"
	}

	result := Render(tmpl, vars)
	logger.Debug("Summary rendered: %d characters", len(result))
	return result, nil
}

// formatAnswers lists answered fields under their step title. Steps with
// no answers and the notes field are left out.
func formatAnswers(c *form.Catalog, values form.Record) string {
	var sb strings.Builder
	for _, step := range c.Steps() {
		var lines []string
		for _, f := range step.Fields {
			if f.Key == notesKey {
				continue
			}
			v := display(values[f.Key])
			if v == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("- **%s:** %s", f.Label, escape(v)))
		}
		if len(lines) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("## %s\n", step.Title))
		sb.WriteString(strings.Join(lines, "\n"))
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		return "_No answers yet._"
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func display(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case []string:
		return strings.Join(t, ", ")
	default:
		return fmt.Sprint(t)
	}
}

func str(values form.Record, key string) string {
	s, _ := values[key].(string)
	return s
}

func orUnset(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(not provided)"
	}
	return s
}

// escape keeps answers from being read as markdown emphasis.
func escape(s string) string {
	return strings.NewReplacer("*", `\*`, "_", `\_`, "\n", " ").Replace(s)
}
