package hooks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg != nil {
			t.Errorf("expected nil config, got %+v", cfg)
		}
		if cfg.PostSubmit() != nil {
			t.Error("nil config should have no post_submit hook")
		}
	})

	t.Run("post_submit hook", func(t *testing.T) {
		dir := t.TempDir()
		content := "version: 1\nhooks:\n  post_submit:\n    command: echo {{business}}\n    timeout: 5\n"
		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(dir)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		hook := cfg.PostSubmit()
		if hook == nil {
			t.Fatal("expected post_submit hook")
		}
		if hook.Command != "echo {{business}}" || hook.Timeout != 5 {
			t.Errorf("unexpected hook %+v", hook)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hooks: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(dir); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	workDir := t.TempDir()
	vars := Variables{Business: "Acme Dental", Contact: "O'Neil", Session: "s-1"}

	tests := []struct {
		name     string
		hook     *HookConfig
		stdin    string
		contains string
		exact    string
	}{
		{name: "nil hook", hook: nil, exact: ""},
		{name: "empty command", hook: &HookConfig{}, exact: ""},
		{name: "variables expanded", hook: &HookConfig{Command: "echo {{business}} {{session}}"}, exact: "Acme Dental s-1\n"},
		{name: "quotes survive", hook: &HookConfig{Command: "echo {{contact}}"}, exact: "O'Neil\n"},
		{name: "record on stdin", hook: &HookConfig{Command: "cat"}, stdin: `{"businessName":"Acme"}`, exact: `{"businessName":"Acme"}`},
		{name: "failure degrades", hook: &HookConfig{Command: "echo oops >&2; exit 3"}, contains: "[Hook command failed"},
		{name: "timeout degrades", hook: &HookConfig{Command: "exec sleep 5", Timeout: 1}, contains: "[Hook timed out after 1s]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Execute(ctx, tt.hook, workDir, vars, []byte(tt.stdin))
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if tt.contains != "" {
				if !strings.Contains(output, tt.contains) {
					t.Errorf("Execute() output = %q, want it to contain %q", output, tt.contains)
				}
				return
			}
			if output != tt.exact {
				t.Errorf("Execute() output = %q, expected %q", output, tt.exact)
			}
		})
	}
}

func TestExecute_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	_, err := Execute(ctx, &HookConfig{Command: "echo hi"}, t.TempDir(), Variables{}, nil)
	if err == nil {
		t.Error("expected context error")
	}
}

func TestExpandVariables(t *testing.T) {
	got := expandVariables("notify {{business}} {{contact}} {{session}} {{unknown}}", Variables{
		Business: "A; rm -rf /",
		Contact:  "B",
		Session:  "C",
	})
	want := "notify 'A; rm -rf /' 'B' 'C' {{unknown}}"
	if got != want {
		t.Errorf("expandVariables() = %q, want %q", got, want)
	}
}
