package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/voiceintake/internal/form"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Variables
		want     string
	}{
		{
			name:     "simple substitution",
			template: "Business: {{business}}, Contact: {{contact}}",
			vars: Variables{
				Business: "Acme Dental",
				Contact:  "Jane Roe",
			},
			want: "Business: Acme Dental, Contact: Jane Roe",
		},
		{
			name:     "all variables",
			template: "{{business}}|{{contact}}|{{email}}|{{session}}|{{answers}}|{{notes}}|{{endpoint}}",
			vars: Variables{
				Business: "b",
				Contact:  "c",
				Email:    "e",
				Session:  "s",
				Answers:  "a",
				Notes:    "n",
				Endpoint: "u",
			},
			want: "b|c|e|s|a|n|u",
		},
		{
			name:     "empty values",
			template: "Business: {{business}}{{notes}}",
			vars:     Variables{Business: "test"},
			want:     "Business: test",
		},
		{
			name:     "unknown placeholder left alone",
			template: "{{business}} {{unknown}}",
			vars:     Variables{Business: "x"},
			want:     "x {{unknown}}",
		},
		{
			name:     "values are not re-expanded",
			template: "{{business}}",
			vars:     Variables{Business: "{{contact}}", Contact: "nope"},
			want:     "{{contact}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.template, tt.vars)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetTemplate(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		got, err := GetTemplate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != DefaultTemplate {
			t.Error("expected default template")
		}
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "summary.md")
		if err := os.WriteFile(path, []byte("# {{business}}"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := GetTemplate(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "# {{business}}" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := GetTemplate(filepath.Join(t.TempDir(), "missing.md"))
		if err == nil {
			t.Error("expected error for missing template")
		}
	})
}

func TestBuildSummary(t *testing.T) {
	values := form.ValidSample()
	values["additionalNotes"] = "Call us before launch"

	got, err := BuildSummary(SummaryConfig{
		Catalog:  form.DefaultCatalog(),
		Values:   values,
		Session:  "abc",
		Endpoint: "http://localhost:5000/generate-pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"# Intake Summary",
		values["businessName"].(string),
		"## Client Information",
		"- **Business name:** ",
		"## Additional Notes\nCall us before launch",
		"http://localhost:5000/generate-pdf",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q\n%s", want, got)
		}
	}
	if strings.Count(got, "Call us before launch") != 1 {
		t.Error("notes should only appear in their own section")
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	got, err := BuildSummary(SummaryConfig{Catalog: form.DefaultCatalog(), Values: form.Record{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"(not provided)", "_No answers yet._", "_No additional notes._"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestFormatAnswers_SkipsUnansweredSteps(t *testing.T) {
	c := form.MustCatalog([]form.Step{
		{Title: "First", Fields: []form.Field{{Key: "a", Label: "A"}}},
		{Title: "Second", Fields: []form.Field{{Key: "b", Label: "B", Kind: form.KindCheckbox}}},
		{Title: "Third", Fields: []form.Field{{Key: "c", Label: "C"}}},
	})

	got := formatAnswers(c, form.Record{"a": "one_two*", "b": []string{"x", "y"}})

	want := "## First\n- **A:** one\\_two\\*\n\n## Second\n- **B:** x, y"
	if got != want {
		t.Errorf("formatAnswers() = %q, want %q", got, want)
	}
}
