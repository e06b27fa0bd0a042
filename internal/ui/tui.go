// Package ui provides the terminal interface and plain-text rendering.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/priotasks/internal/config"
	"github.com/nibzard/priotasks/internal/session"
	"github.com/nibzard/priotasks/internal/task"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	altScreen bool
	input     io.Reader
	output    io.Writer
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) TUIOption {
	return func(c *tuiConfig) {
		c.altScreen = enabled
	}
}

// WithIO replaces the terminal input and output. The TTY check is skipped
// when an output is supplied.
func WithIO(in io.Reader, out io.Writer) TUIOption {
	return func(c *tuiConfig) {
		c.input = in
		c.output = out
	}
}

// RunTUI runs the interactive task list until the user quits or ctx is done.
func RunTUI(ctx context.Context, cfg *config.Config, sess *session.Session, opts ...TUIOption) error {
	c := &tuiConfig{altScreen: true}
	for _, opt := range opts {
		opt(c)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if c.output == nil {
		if !IsTTY(os.Stdout) {
			return fmt.Errorf("tui requires a TTY")
		}
	} else {
		programOpts = append(programOpts, tea.WithInput(c.input), tea.WithOutput(c.output))
	}
	if c.altScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	program := tea.NewProgram(newTUIModel(cfg, sess), programOpts...)
	_, err := program.Run()
	return err
}

type focus int

const (
	focusList focus = iota
	focusForm
)

type formField int

const (
	fieldTitle formField = iota
	fieldPriority
	fieldDeadline
	fieldCount
)

type tuiModel struct {
	cfg      *config.Config
	session  *session.Session
	styles   styles
	title    textinput.Model
	deadline textinput.Model
	priority task.Priority
	field    formField
	focus    focus
	cursor   int
	showHelp bool
}

func newTUIModel(cfg *config.Config, sess *session.Session) *tuiModel {
	title := textinput.New()
	title.Placeholder = "task title"
	title.Prompt = ""
	title.CharLimit = 256
	title.Width = 40

	deadline := textinput.New()
	deadline.Placeholder = "YYYY-MM-DD HH:MM"
	deadline.Prompt = ""
	deadline.CharLimit = 32
	deadline.Width = 20

	return &tuiModel{
		cfg:      cfg,
		session:  sess,
		styles:   newStyles(cfg),
		title:    title,
		deadline: deadline,
		priority: sess.DefaultPriority(),
	}
}

func (m *tuiModel) Init() tea.Cmd {
	return nil
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusForm {
			return m, m.updateForm(msg)
		}
		return m, m.updateList(msg)
	case tea.WindowSizeMsg:
		if w := msg.Width - 14; w > 10 {
			m.title.Width = w
		}
	}
	return m, nil
}

func (m *tuiModel) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "h", "?":
		m.showHelp = !m.showHelp
	case "a":
		if !m.session.Sections().Form {
			m.session.ToggleSection(session.SectionForm)
		}
		m.focus = focusForm
		return m.setField(fieldTitle)
	case "1":
		m.session.ToggleSection(session.SectionForm)
	case "2":
		m.session.ToggleSection(session.SectionActive)
	case "3":
		m.session.ToggleSection(session.SectionCompleted)
	case "d":
		m.session.ToggleSort(task.SortByDate)
	case "p":
		m.session.ToggleSort(task.SortByPriority)
	case "j", "down":
		m.cursor++
	case "k", "up":
		m.cursor--
	case "c", "enter":
		if t, ok := m.selected(); ok && !t.Completed {
			m.session.Complete(t.ID)
		}
	case "x", "delete":
		if t, ok := m.selected(); ok {
			m.session.Delete(t.ID)
		}
	}
	m.clampCursor()
	return nil
}

func (m *tuiModel) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.leaveForm()
		return nil
	case "tab":
		return m.setField((m.field + 1) % fieldCount)
	case "shift+tab":
		return m.setField((m.field + fieldCount - 1) % fieldCount)
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.field {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDeadline:
		m.deadline, cmd = m.deadline.Update(msg)
	case fieldPriority:
		switch msg.String() {
		case "left":
			m.priority = m.priority.Prev()
		case "right", " ":
			m.priority = m.priority.Next()
		}
	}
	return cmd
}

// submit hands the form to the session. A rejected form keeps its inputs.
func (m *tuiModel) submit() tea.Cmd {
	ok := m.session.Submit(session.Form{
		Title:    m.title.Value(),
		Priority: m.priority,
		Deadline: m.deadline.Value(),
	})
	if !ok {
		return nil
	}
	m.title.Reset()
	m.deadline.Reset()
	m.priority = m.session.DefaultPriority()
	m.clampCursor()
	return m.setField(fieldTitle)
}

func (m *tuiModel) setField(f formField) tea.Cmd {
	m.field = f
	m.title.Blur()
	m.deadline.Blur()
	switch f {
	case fieldTitle:
		return m.title.Focus()
	case fieldDeadline:
		return m.deadline.Focus()
	}
	return nil
}

func (m *tuiModel) leaveForm() {
	m.focus = focusList
	m.title.Blur()
	m.deadline.Blur()
}

// rows returns the tasks the cursor can land on, active ones first.
func (m *tuiModel) rows() []task.Task {
	var rows []task.Task
	sections := m.session.Sections()
	if sections.Active {
		rows = append(rows, m.session.ActiveTasks()...)
	}
	if sections.Completed {
		rows = append(rows, m.session.CompletedTasks()...)
	}
	return rows
}

func (m *tuiModel) selected() (task.Task, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return task.Task{}, false
	}
	return rows[m.cursor], true
}

func (m *tuiModel) clampCursor() {
	if !m.session.Sections().Form && m.focus == focusForm {
		m.leaveForm()
	}
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("Tasks List with Priority") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	m.writeForm(&b)
	m.writeActive(&b)
	m.writeCompleted(&b)
	writeFooter(&b)
	return b.String()
}

func (m *tuiModel) sectionHeader(label string, open bool, key string) string {
	marker := "▸"
	if open {
		marker = "▾"
	}
	return fmt.Sprintf("%s %s %s", marker, m.styles.section.Render(label), m.styles.hint.Render("("+key+")"))
}

func (m *tuiModel) writeForm(b *strings.Builder) {
	open := m.session.Sections().Form
	b.WriteString(m.sectionHeader("New Task", open, "1") + "\n")
	if !open {
		b.WriteString("\n")
		return
	}

	marker := func(f formField) string {
		if m.focus == focusForm && m.field == f {
			return ">"
		}
		return " "
	}
	b.WriteString(fmt.Sprintf("  %s %s %s\n", marker(fieldTitle), m.styles.label.Render("Title:   "), m.title.View()))
	b.WriteString(fmt.Sprintf("  %s %s < %s >\n", marker(fieldPriority), m.styles.label.Render("Priority:"),
		m.styles.priorityStyle(m.priority).Render(string(m.priority))))
	b.WriteString(fmt.Sprintf("  %s %s %s\n", marker(fieldDeadline), m.styles.label.Render("Deadline:"), m.deadline.View()))
	if m.focus == focusForm {
		b.WriteString("    " + m.styles.hint.Render("enter add task · tab next field · ←/→ priority · esc back") + "\n")
	} else {
		b.WriteString("    " + m.styles.hint.Render("press a to fill in the form") + "\n")
	}
	b.WriteString("\n")
}

func (m *tuiModel) writeActive(b *strings.Builder) {
	open := m.session.Sections().Active
	active := m.session.ActiveTasks()
	b.WriteString(m.sectionHeader(fmt.Sprintf("Tasks (%d)", len(active)), open, "2"))
	b.WriteString("  " + m.sortControl("By Date", "d", task.SortByDate))
	b.WriteString(" " + m.sortControl("By Priority", "p", task.SortByPriority) + "\n")
	if !open {
		b.WriteString("\n")
		return
	}
	if len(active) == 0 {
		b.WriteString("  No active tasks.\n\n")
		return
	}
	for i, t := range active {
		b.WriteString(m.formatRow(&t, i == m.cursor && m.focus == focusList))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m *tuiModel) writeCompleted(b *strings.Builder) {
	open := m.session.Sections().Completed
	completed := m.session.CompletedTasks()
	b.WriteString(m.sectionHeader(fmt.Sprintf("Completed Tasks (%d)", len(completed)), open, "3") + "\n")
	if !open {
		b.WriteString("\n")
		return
	}
	if len(completed) == 0 {
		b.WriteString("  No completed tasks yet.\n\n")
		return
	}
	offset := 0
	if m.session.Sections().Active {
		offset = len(m.session.ActiveTasks())
	}
	for i, t := range completed {
		b.WriteString(m.formatRow(&t, offset+i == m.cursor && m.focus == focusList))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m *tuiModel) sortControl(label, key string, by task.SortBy) string {
	text := label
	if arrow := m.session.Sort().Indicator(by); arrow != "" {
		text += " " + arrow
	}
	text = "[" + key + "] " + text
	if m.session.Sort().By == by {
		return m.styles.sortActive.Render(text)
	}
	return m.styles.sortIdle.Render(text)
}

func (m *tuiModel) formatRow(t *task.Task, selected bool) string {
	cursor := " "
	if selected {
		cursor = m.styles.cursor.Render(">")
	}
	title := t.Title
	actions := "[c]omplete [x] delete"
	if t.Completed {
		title = m.styles.completed.Render(title)
		actions = "[x] delete"
	}
	return fmt.Sprintf("  %s %s %s  %s  %s", cursor, title,
		m.styles.priorityStyle(t.Priority).Render(string(t.Priority)),
		formatDue(t, m.cfg.DeadlineLayout),
		m.styles.hint.Render(actions))
}

func formatDue(t *task.Task, layout string) string {
	if !t.HasDeadline() {
		return "Due: -"
	}
	return "Due: " + t.Deadline.Local().Format(layout)
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  a            Open the form and start typing\n")
	b.WriteString("  1 / 2 / 3    Toggle form / tasks / completed section\n")
	b.WriteString("  d            Sort by date (again to reverse)\n")
	b.WriteString("  p            Sort by priority (again to reverse)\n")
	b.WriteString("  j, k         Move selection\n")
	b.WriteString("  c, enter     Complete selected task\n")
	b.WriteString("  x, delete    Delete selected task\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  q, ctrl+c    Quit\n\n")
	b.WriteString("In the form: tab/shift+tab move between fields, ←/→ change priority,\n")
	b.WriteString("enter adds the task, esc returns to the list.\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("Press h for help | a to add | q to quit\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
