package wizard

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
)

// editorAvailable reports whether $EDITOR is set.
func editorAvailable() bool {
	return os.Getenv("EDITOR") != ""
}

// openEditor launches the user's $EDITOR on a temp file holding content
// and reports the edited text for key.
func openEditor(key, content string) tea.Cmd {
	tmpfile, err := os.CreateTemp("", "voiceintake_"+key+"_*.md")
	if err != nil {
		return editorFailed(key, err)
	}

	if _, err := tmpfile.WriteString(content); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return editorFailed(key, err)
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("voiceintake", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return editorFailed(key, err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(tmpfile.Name()) }()
		if err != nil {
			return editorDoneMsg{key: key, err: fmt.Errorf("editor exited: %w", err)}
		}
		data, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return editorDoneMsg{key: key, err: err}
		}
		return editorDoneMsg{key: key, content: string(data)}
	})
}

func editorFailed(key string, err error) tea.Cmd {
	return func() tea.Msg {
		return editorDoneMsg{key: key, err: err}
	}
}
