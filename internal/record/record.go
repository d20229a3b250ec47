// Package record reads prepared intake records from disk and writes local
// copies of submitted ones.
package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/logger"
	"gopkg.in/yaml.v3"
)

// Copy is the on-disk shape of a saved submission.
type Copy struct {
	Session     string      `yaml:"session"`
	SubmittedAt time.Time   `yaml:"submitted_at"`
	Endpoint    string      `yaml:"endpoint"`
	Record      form.Record `yaml:"record"`
}

// Load reads a record from a .json, .yml or .yaml file.
func Load(path string) (form.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	rec := form.Record{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &rec)
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &rec)
	default:
		return nil, fmt.Errorf("unsupported record file %q: use .json, .yml or .yaml", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse record file: %w", err)
	}

	// Saved copies wrap the answers; accept them as input too.
	if _, ok := rec["session"]; ok {
		switch inner := rec["record"].(type) {
		case form.Record:
			rec = inner
		case map[string]any:
			rec = form.Record(inner)
		}
	}

	logger.Debug("Loaded record with %d answers from %s", len(rec), path)
	return rec, nil
}

// SaveCopy writes c as YAML to dir, named after the business. An existing
// file with the same name gets a numeric suffix instead of being replaced.
// Returns the path written.
func SaveCopy(dir string, c Copy) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	name, _ := c.Record["businessName"].(string)
	base := slug.Make(name)
	if base == "" {
		base = "unnamed"
	}

	path := filepath.Join(dir, base+"-intake.yml")
	for i := 2; fileExists(path); i++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-intake-%d.yml", base, i))
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}

	logger.Debug("Writing record copy to %s", path)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write record copy: %w", err)
	}
	return path, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
