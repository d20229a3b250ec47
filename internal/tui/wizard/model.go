package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/mark3labs/voiceintake/internal/config"
	"github.com/mark3labs/voiceintake/internal/form"
	"github.com/mark3labs/voiceintake/internal/hooks"
	"github.com/mark3labs/voiceintake/internal/logger"
	"github.com/mark3labs/voiceintake/internal/record"
	"github.com/mark3labs/voiceintake/internal/state"
	"github.com/mark3labs/voiceintake/internal/submit"
	"github.com/mark3labs/voiceintake/internal/template"
	"github.com/mark3labs/voiceintake/internal/tui/theme"
	core "github.com/mark3labs/voiceintake/internal/wizard"
)

// focusArea says whether keyboard focus is on the fields or the buttons.
type focusArea int

const (
	focusFields focusArea = iota
	focusButtons
)

// Options configures a Model beyond the loaded config.
type Options struct {
	Catalog   *form.Catalog  // nil uses form.DefaultCatalog
	Submitter core.Submitter // nil posts to cfg.Endpoint
	Hooks     *hooks.Config
	WorkDir   string
	Prefs     *state.Store   // nil stores preferences under cfg.DataDir
}

// Result summarizes a finished wizard run.
type Result struct {
	Submitted int    // successful submissions this run
	LastError string // error of the last failed submission, if unresolved
}

// Model is the BubbleTea model for the intake questionnaire. Every phase
// change goes through the controller; the model only renders and routes
// input.
type Model struct {
	cfg      *config.Config
	catalog  *form.Catalog // steps carry their *FieldPanel as Content
	registry *form.Registry
	ctrl     *core.Controller
	hooks    *hooks.Config
	workDir  string
	prefs    *state.Store

	progress *ProgressIndicator
	buttons  *ButtonBar
	viewport viewport.Model
	spinner  spinner.Model
	success  *SuccessScreen
	summary  string // rendered review summary
	hideSum  bool   // review shows the notes field only

	area         focusArea
	bannerHidden bool
	notice       string
	pending      []tea.Cmd // commands produced inside the change callback

	submitted int
	width     int
	height    int
	quitting  bool

	// Screen position of the progress marker row, for mouse picking.
	markerRow int
	markerCol int
}

// NewModel builds the wizard for cfg.
func NewModel(cfg *config.Config, opts Options) (*Model, error) {
	base := opts.Catalog
	if base == nil {
		base = form.DefaultCatalog()
	}
	reg, err := form.NewRegistry(base)
	if err != nil {
		return nil, fmt.Errorf("failed to build field registry: %w", err)
	}

	submitter := opts.Submitter
	if submitter == nil {
		submitter = submit.NewClient(cfg.Endpoint, submit.WithTimeout(cfg.Timeout()))
	}

	prefs := opts.Prefs
	if prefs == nil {
		prefs = state.NewStore(cfg.DataDir)
	}
	saved := prefs.Load()

	s := spinner.New()
	s.Spinner = spinner.Dot

	vp := viewport.New(
		viewport.WithWidth(minModalWidth-modalChrome),
		viewport.WithHeight(12),
	)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	m := &Model{
		cfg:      cfg,
		registry: reg,
		hooks:    opts.Hooks,
		workDir:  opts.WorkDir,
		prefs:    prefs,
		viewport: vp,
		spinner:  s,
		hideSum:  saved.HideSummary,
		width:    80,
		height:   24,
	}
	m.catalog = base.WithContent(func(step form.Step) any {
		return NewFieldPanel(step, reg)
	})
	m.ctrl = core.NewController(m.catalog, reg, submitter,
		core.WithSendEmail(cfg.SendEmail),
		core.WithOnChange(m.onStateChange),
	)

	m.progress = NewProgressIndicator(m.catalog.Titles(), m.jumpTo)
	m.progress.SetCompact(saved.CompactProgress)
	m.rebuildButtons()
	m.layout()
	return m, nil
}

// Run starts the wizard as a standalone program and blocks until it exits.
func Run(cfg *config.Config, opts Options) (*Result, error) {
	m, err := NewModel(cfg, opts)
	if err != nil {
		return nil, err
	}

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}
	wm, ok := final.(*Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	return wm.Result(), nil
}

// Result reports what the run accomplished so far.
func (m *Model) Result() *Result {
	r := &Result{Submitted: m.submitted}
	if s := m.ctrl.State(); s.Phase == core.PhaseFailed {
		r.LastError = s.LastError
	}
	return r
}

// Controller exposes the underlying controller.
func (m *Model) Controller() *core.Controller { return m.ctrl }

// Registry exposes the field registry.
func (m *Model) Registry() *form.Registry { return m.registry }

// Init focuses the first field.
func (m *Model) Init() tea.Cmd {
	return m.panel(0).FocusFirst()
}

func (m *Model) panel(i int) *FieldPanel {
	return m.catalog.Step(i).Content.(*FieldPanel)
}

// activePanel returns the panel receiving input in the current phase.
func (m *Model) activePanel() *FieldPanel {
	return m.panelFor(m.ctrl.State())
}

// onStateChange keeps the view in step with the controller: scroll to the
// top, move the progress marker and focus the new screen.
func (m *Model) onStateChange(prev, next core.State) {
	if p := m.panelFor(prev); p != nil {
		p.Blur()
	}
	m.viewport.GotoTop()
	m.progress.SetCurrent(next.StepIndex)
	m.progress.Blur()
	m.bannerHidden = false
	m.area = focusFields
	m.rebuildButtons()

	switch next.Phase {
	case core.PhaseActive, core.PhaseAwaitingFinalReview, core.PhaseFailed:
		if next.Phase != core.PhaseActive {
			m.refreshSummary()
		}
		if p := m.panelFor(next); p != nil {
			m.pending = append(m.pending, p.FocusFirst())
		}
	case core.PhaseSubmitted:
		m.success = NewSuccessScreen(m.registry.String("businessName"))
		m.success.SetWidth(m.contentWidth())
	}
	m.layout()
	if next.Phase == core.PhaseAwaitingFinalReview || next.Phase == core.PhaseFailed {
		m.scrollToFocus()
	}
}

func (m *Model) panelFor(s core.State) *FieldPanel {
	switch s.Phase {
	case core.PhaseActive:
		return m.panel(s.StepIndex)
	case core.PhaseAwaitingFinalReview, core.PhaseFailed:
		return m.panel(m.catalog.Last())
	}
	return nil
}

func (m *Model) takePending(cmd tea.Cmd) tea.Cmd {
	cmds := append(m.pending, cmd)
	m.pending = nil
	return tea.Batch(cmds...)
}

// rebuildButtons sets the button bar for the current phase.
func (m *Model) rebuildButtons() {
	s := m.ctrl.State()
	var btns []Button
	switch s.Phase {
	case core.PhaseActive:
		last := s.StepIndex == m.catalog.Last()
		label := "Next →"
		if last {
			label = "Send"
		}
		btns = CreateBackNextButtons(s.StepIndex > 0, label, last)
	case core.PhaseAwaitingFinalReview, core.PhaseFailed:
		btns = CreateBackNextButtons(true, "Send", true)
	}
	m.buttons = NewButtonBar(btns)
	m.buttons.SetWidth(m.contentWidth())
}

// Update handles messages for the wizard.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if m.ctrl.State().Phase == core.PhaseSubmitting {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd

	case submitDoneMsg:
		cmd = m.handleSubmitDone(msg)
		return m, m.takePending(cmd)

	case editorDoneMsg:
		if msg.err != nil {
			logger.Warn("Editor failed: %v", msg.err)
			m.notice = "Editor failed: " + msg.err.Error()
		} else if p := m.activePanel(); p != nil {
			p.SetValue(msg.key, strings.TrimRight(msg.content, "\n"))
			m.notice = ""
			if m.ctrl.State().Phase != core.PhaseActive {
				m.refreshSummary()
			}
		}
		m.layout()
		return m, nil

	case copySavedMsg:
		if msg.err != nil {
			logger.Warn("Failed to save record copy: %v", msg.err)
			m.notice = "Could not save a local copy: " + msg.err.Error()
		} else if m.success != nil {
			m.success.SetSavedPath(msg.path)
		}
		return m, nil

	case hookDoneMsg:
		if msg.err != nil {
			logger.Warn("Post-submit hook cancelled: %v", msg.err)
		} else {
			logger.Debug("Post-submit hook output: %s", msg.output)
			if m.success != nil {
				m.success.SetHookNote("Post-submit hook finished.")
			}
		}
		return m, nil

	case tea.MouseClickMsg:
		m.handleClick(msg)
		return m, m.takePending(nil)

	case tea.MouseWheelMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		cmd = m.handleKey(msg)
		return m, m.takePending(cmd)
	}

	// Cursor blink and other widget messages.
	if p := m.activePanel(); p != nil {
		cmd, _ = p.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return tea.Quit
	}

	s := m.ctrl.State()
	switch s.Phase {
	case core.PhaseSubmitting:
		return nil
	case core.PhaseSubmitted:
		return m.activate(m.success.Update(msg))
	}

	if m.progress.Focused() {
		m.progress.Update(msg)
		m.layout()
		return nil
	}

	switch key {
	case "ctrl+p":
		if s.Phase == core.PhaseActive {
			if p := m.activePanel(); p != nil {
				p.Blur()
			}
			m.buttons.Blur()
			m.progress.Focus()
			m.layout()
		}
		return nil
	case "ctrl+t":
		m.toggleCompact()
		return nil
	case "ctrl+r":
		if s.Phase == core.PhaseAwaitingFinalReview || s.Phase == core.PhaseFailed {
			m.toggleSummary()
		}
		return nil
	case "ctrl+e":
		return m.editFocused()
	case "ctrl+s":
		if s.Phase == core.PhaseActive && s.StepIndex < m.catalog.Last() {
			return m.activate(ActionNext)
		}
		return m.activate(ActionSend)
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	case "esc":
		return m.escape()
	case "tab":
		return m.focusNext()
	case "shift+tab":
		return m.focusPrev()
	}

	if m.area == focusButtons {
		switch key {
		case "left", "h":
			m.buttons.FocusPrev()
		case "right", "l":
			m.buttons.FocusNext()
		case "up":
			m.buttons.Blur()
			m.area = focusFields
			return m.activePanel().FocusLast()
		case "enter", " ", "space":
			return m.activate(m.buttons.FocusedButton())
		}
		return nil
	}

	p := m.activePanel()
	cmd, consumed := p.Update(msg)
	if consumed && s.Phase != core.PhaseActive {
		m.refreshSummary()
	}
	if !consumed {
		switch key {
		case "enter", "down":
			cmd = tea.Batch(cmd, m.focusNext())
		case "up":
			cmd = tea.Batch(cmd, m.focusPrev())
		}
	}
	m.layout()
	return cmd
}

// escape steps back: hide a failure banner first, then leave the review
// screen, then retreat one step.
func (m *Model) escape() tea.Cmd {
	s := m.ctrl.State()
	switch s.Phase {
	case core.PhaseFailed:
		if !m.bannerHidden {
			m.bannerHidden = true
			m.layout()
			return nil
		}
		m.ctrl.BackFromReview()
	case core.PhaseAwaitingFinalReview:
		m.ctrl.BackFromReview()
	case core.PhaseActive:
		m.ctrl.Retreat()
	}
	return nil
}

func (m *Model) focusNext() tea.Cmd {
	p := m.activePanel()
	if p == nil {
		return nil
	}
	if m.area == focusFields {
		cmd, ok := p.FocusNext()
		if !ok {
			m.area = focusButtons
			m.buttons.FocusFirst()
		}
		m.scrollToFocus()
		return cmd
	}
	if !m.buttons.FocusNext() {
		m.buttons.Blur()
		m.area = focusFields
		cmd := p.FocusFirst()
		m.scrollToFocus()
		return cmd
	}
	return nil
}

func (m *Model) focusPrev() tea.Cmd {
	p := m.activePanel()
	if p == nil {
		return nil
	}
	if m.area == focusFields {
		cmd, ok := p.FocusPrev()
		if !ok {
			m.area = focusButtons
			m.buttons.FocusLast()
		}
		m.scrollToFocus()
		return cmd
	}
	if !m.buttons.FocusPrev() {
		m.buttons.Blur()
		m.area = focusFields
		cmd := p.FocusLast()
		m.scrollToFocus()
		return cmd
	}
	return nil
}

// activate performs a button action.
func (m *Model) activate(action ButtonAction) tea.Cmd {
	switch action {
	case ActionBack:
		if m.ctrl.State().Phase == core.PhaseActive {
			m.ctrl.Retreat()
		} else {
			m.ctrl.BackFromReview()
		}
	case ActionNext:
		if !m.ctrl.Advance() {
			return m.showErrors()
		}
	case ActionSend:
		return m.startSubmit()
	case ActionNewForm:
		m.newForm()
	case ActionExit:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// showErrors focuses the first invalid field of the current panel.
func (m *Model) showErrors() tea.Cmd {
	p := m.activePanel()
	if p == nil || !p.HasErrors() {
		return nil
	}
	m.buttons.Blur()
	m.area = focusFields
	cmd := p.FocusFirstError()
	m.layout()
	m.scrollToFocus()
	return cmd
}

func (m *Model) jumpTo(index int) {
	m.progress.Blur()
	if !m.ctrl.JumpTo(index) {
		m.showErrors()
	}
	m.layout()
}

func (m *Model) startSubmit() tea.Cmd {
	rec, err := m.ctrl.BeginSubmit()
	switch {
	case errors.Is(err, core.ErrInvalidRecord):
		m.notice = "Some answers are missing or invalid."
		return m.showFirstInvalidStep()
	case err != nil:
		logger.Debug("Submit ignored: %v", err)
		return nil
	}
	m.notice = ""
	ctrl := m.ctrl
	dispatch := func() tea.Msg {
		err := ctrl.Dispatch(context.Background(), rec)
		return submitDoneMsg{record: rec, err: err}
	}
	return tea.Batch(m.spinner.Tick, dispatch)
}

// showFirstInvalidStep navigates to the earliest step holding an error.
func (m *Model) showFirstInvalidStep() tea.Cmd {
	if m.ctrl.State().Phase != core.PhaseActive {
		m.ctrl.BackFromReview()
	}
	errs := m.registry.Errors()
	for i, step := range m.catalog.Steps() {
		for _, key := range step.Keys() {
			if errs[key] == "" {
				continue
			}
			m.ctrl.JumpTo(i)
			return m.showErrors()
		}
	}
	return nil
}

func (m *Model) handleSubmitDone(msg submitDoneMsg) tea.Cmd {
	s := m.ctrl.CompleteSubmit(msg.err)
	if s.Phase != core.PhaseSubmitted {
		return nil
	}
	m.submitted++

	var cmds []tea.Cmd
	if m.cfg.SaveCopy {
		cmds = append(cmds, m.saveCopy(msg.record))
	}
	if hook := m.hooks.PostSubmit(); hook != nil {
		cmds = append(cmds, m.runHook(hook, msg.record))
	}
	return tea.Batch(cmds...)
}

func (m *Model) saveCopy(rec form.Record) tea.Cmd {
	c := record.Copy{
		Session:     m.ctrl.Session(),
		SubmittedAt: time.Now(),
		Endpoint:    m.cfg.Endpoint,
		Record:      rec,
	}
	dir := m.cfg.DataDir
	return func() tea.Msg {
		path, err := record.SaveCopy(dir, c)
		return copySavedMsg{path: path, err: err}
	}
}

func (m *Model) runHook(hook *hooks.HookConfig, rec form.Record) tea.Cmd {
	vars := hooks.Variables{
		Business: m.registry.String("businessName"),
		Contact:  m.registry.String("contactName"),
		Session:  m.ctrl.Session(),
	}
	workDir := m.workDir
	return func() tea.Msg {
		data, err := json.Marshal(rec)
		if err != nil {
			return hookDoneMsg{err: err}
		}
		out, err := hooks.Execute(context.Background(), hook, workDir, vars, data)
		return hookDoneMsg{output: out, err: err}
	}
}

// newForm clears every answer and starts a new session.
func (m *Model) newForm() {
	m.registry.Reset()
	for i := range m.catalog.Len() {
		m.panel(i).Load()
	}
	m.success = nil
	m.notice = ""
	m.ctrl.Reset()
}

func (m *Model) editFocused() tea.Cmd {
	p := m.activePanel()
	if p == nil || m.area != focusFields {
		return nil
	}
	f, ok := p.FocusedField()
	if !ok || f.Kind != form.KindTextArea {
		return nil
	}
	if !editorAvailable() {
		m.notice = "Set $EDITOR to edit long answers externally."
		return nil
	}
	return openEditor(f.Key, m.registry.String(f.Key))
}

func (m *Model) toggleCompact() {
	m.progress.SetCompact(!m.progress.Compact())
	m.savePrefs()
	m.layout()
}

func (m *Model) toggleSummary() {
	m.hideSum = !m.hideSum
	m.savePrefs()
	m.layout()
	m.viewport.GotoTop()
}

func (m *Model) savePrefs() {
	compact, hide := m.progress.Compact(), m.hideSum
	if _, err := m.prefs.Update(func(p *state.Preferences) {
		p.CompactProgress = compact
		p.HideSummary = hide
	}); err != nil {
		logger.Warn("Failed to save preferences: %v", err)
	}
}

func (m *Model) handleClick(msg tea.MouseClickMsg) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft || m.ctrl.State().Phase != core.PhaseActive {
		return
	}
	if mouse.Y == m.markerRow {
		m.progress.HandleClick(mouse.X - m.markerCol)
	}
}

// refreshSummary re-renders the review summary from current answers.
func (m *Model) refreshSummary() {
	md, err := template.BuildSummary(template.SummaryConfig{
		Catalog:      m.catalog,
		Values:       m.registry.Values(),
		Session:      m.ctrl.Session(),
		Endpoint:     m.cfg.Endpoint,
		TemplatePath: m.cfg.SummaryTemplate,
	})
	if err != nil {
		m.summary = theme.Current().S().FieldError.Render(err.Error())
		return
	}
	m.summary = renderMarkdown(md, m.contentWidth())
}

func (m *Model) contentWidth() int {
	return modalWidth(m.width) - modalChrome
}

// layout resizes widgets and refreshes the scrollable content.
func (m *Model) layout() {
	w := m.contentWidth()
	m.buttons.SetWidth(w)
	for i := range m.catalog.Len() {
		m.panel(i).SetWidth(w)
	}
	if m.success != nil {
		m.success.SetWidth(w)
	}

	// Title, progress, buttons, hints, notice and the modal frame.
	reserved := 16
	if m.ctrl.State().Phase == core.PhaseFailed && !m.bannerHidden {
		reserved += 5
	}
	h := m.height - reserved
	if h < 5 {
		h = 5
	}
	m.viewport.SetWidth(w)
	m.viewport.SetHeight(h)
	m.viewport.SetContent(m.scrollContent())
}

// scrollToFocus brings the focused field near the top of the viewport.
func (m *Model) scrollToFocus() {
	p := m.activePanel()
	if p == nil || !p.Focused() {
		return
	}
	content := m.scrollContent()
	m.viewport.SetContent(content)
	if strings.Count(content, "\n")+1 <= m.viewport.Height() {
		return
	}
	m.viewport.SetYOffset(max(p.FocusLine()-1, 0))
}

func (m *Model) scrollContent() string {
	s := m.ctrl.State()
	switch s.Phase {
	case core.PhaseActive:
		return m.panel(s.StepIndex).View()
	case core.PhaseAwaitingFinalReview, core.PhaseFailed, core.PhaseSubmitting:
		// Notes stay on top so the field being edited is in view on entry.
		notes := m.panel(m.catalog.Last()).View()
		if m.hideSum {
			return notes
		}
		return notes + "\n\n" + m.summary
	}
	return ""
}

// View renders the wizard UI.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if m.quitting {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	content := m.renderModal(m.body())

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(content).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}

// body renders the modal content for the current phase.
func (m *Model) body() string {
	st := theme.Current().S()
	s := m.ctrl.State()
	w := m.contentWidth()

	var sections []string
	switch s.Phase {
	case core.PhaseActive:
		sections = append(sections, m.progress.View(w), "", m.viewport.View())
	case core.PhaseAwaitingFinalReview, core.PhaseFailed:
		sections = append(sections, st.HeaderTitle.Render("Review & Add Additional Notes"), "", m.viewport.View())
		if s.Phase == core.PhaseFailed && !m.bannerHidden {
			msg := s.LastError + "\n" + submit.Hint(m.cfg.Endpoint)
			sections = append(sections, st.Banner.Width(w).Render(msg))
		}
	case core.PhaseSubmitting:
		sections = append(sections, st.HeaderTitle.Render("Review & Add Additional Notes"), "", m.viewport.View(),
			"", m.spinner.View()+" "+st.Subtitle.Render("Sending form..."))
	case core.PhaseSubmitted:
		return m.success.View()
	}

	if m.notice != "" {
		sections = append(sections, st.FieldError.Render(m.notice))
	}
	if s.Phase != core.PhaseSubmitting {
		sections = append(sections, "", m.buttons.Render(), m.hints())
	}
	return strings.Join(sections, "\n")
}

func (m *Model) hints() string {
	s := m.ctrl.State()
	if m.progress.Focused() {
		return renderHintBar("←/→", "choose step", "enter", "go", "esc", "cancel")
	}

	pairs := []string{"tab", "next"}
	switch s.Phase {
	case core.PhaseActive:
		if s.StepIndex == m.catalog.Last() {
			pairs = append(pairs, "ctrl+s", "send")
		} else {
			pairs = append(pairs, "ctrl+s", "next step")
		}
		if s.StepIndex > 0 {
			pairs = append(pairs, "esc", "back")
		}
		pairs = append(pairs, "ctrl+p", "steps")
	default:
		pairs = append(pairs, "ctrl+s", "send", "esc", "back")
		if m.hideSum {
			pairs = append(pairs, "ctrl+r", "show summary")
		} else {
			pairs = append(pairs, "ctrl+r", "hide summary")
		}
	}
	if p := m.activePanel(); p != nil && editorAvailable() {
		if f, ok := p.FocusedField(); ok && f.Kind == form.KindTextArea {
			pairs = append(pairs, "ctrl+e", "editor")
		}
	}
	pairs = append(pairs, "ctrl+c", "quit")
	return renderHintBar(pairs...)
}

// renderModal wraps the content in a centered modal with a title and
// records where the progress markers landed on screen.
func (m *Model) renderModal(content string) string {
	st := theme.Current().S()
	title := st.ModalTitle.Render("Voice Agent Intake")
	inner := title + "\n\n" + content

	modal := st.ModalContainer.Width(modalWidth(m.width)).Render(inner)

	top := max((m.height-lipgloss.Height(modal))/2, 0)
	left := max((m.width-lipgloss.Width(modal))/2, 0)
	// border + padding, title, blank line, progress header
	m.markerRow = top + 1 + st.ModalContainer.GetPaddingTop() + 2 + 1
	m.markerCol = left + 1 + st.ModalContainer.GetPaddingLeft()

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
