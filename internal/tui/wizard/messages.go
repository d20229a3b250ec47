package wizard

import "github.com/mark3labs/voiceintake/internal/form"

// submitDoneMsg carries the outcome of a background submission.
type submitDoneMsg struct {
	record form.Record
	err    error
}

// editorDoneMsg is sent when the external editor returns.
type editorDoneMsg struct {
	key     string
	content string
	err     error
}

// copySavedMsg reports where a submitted record copy was written.
type copySavedMsg struct {
	path string
	err  error
}

// hookDoneMsg carries the post-submit hook output.
type hookDoneMsg struct {
	output string
	err    error
}
