package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/priotasks/internal/config"
	"github.com/nibzard/priotasks/internal/session"
	"github.com/nibzard/priotasks/internal/task"
)

func testConfig() *config.Config {
	return &config.Config{
		DefaultPriority: "Low",
		SortBy:          "date",
		SortOrder:       "asc",
		DeadlineLayout:  "2006-01-02 15:04",
		Colors:          config.ColorsConfig{High: "1", Medium: "3", Low: "2"},
	}
}

func newTestModel() *tuiModel {
	return newTUIModel(testConfig(), session.New(session.DefaultOptions(), nil))
}

// key builds the message bubbletea sends for a key press.
func key(s string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"esc":       tea.KeyEsc,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"left":      tea.KeyLeft,
		"right":     tea.KeyRight,
		"delete":    tea.KeyDelete,
		"ctrl+c":    tea.KeyCtrlC,
	}
	if kt, ok := special[s]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *tuiModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

// addTask fills and submits the form, then returns to the list.
func addTask(t *testing.T, m *tuiModel, title, deadline string, priority task.Priority) {
	t.Helper()
	before := m.session.Len()
	press(m, "a", title, "tab")
	for m.priority != priority {
		press(m, "right")
	}
	press(m, "tab", deadline, "enter", "esc")
	if m.session.Len() != before+1 {
		t.Fatalf("task %q was not added", title)
	}
}

func activeTitles(m *tuiModel) string {
	var names []string
	for _, t := range m.session.ActiveTasks() {
		names = append(names, t.Title)
	}
	return strings.Join(names, ",")
}

func TestInitialView(t *testing.T) {
	m := newTestModel()
	view := m.View()

	for _, want := range []string{
		"Tasks List with Priority",
		"▸", // form collapsed
		"New Task",
		"Tasks (0)",
		"Completed Tasks (0)",
		"[d] By Date ↑",
		"[p] By Priority",
		"No active tasks.",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Title:") {
		t.Error("form should start collapsed")
	}
}

func TestAddTaskThroughForm(t *testing.T) {
	m := newTestModel()

	press(m, "a")
	if m.focus != focusForm || !m.session.Sections().Form {
		t.Fatal("a should open and focus the form")
	}
	if m.priority != task.PriorityLow {
		t.Errorf("default priority: got %s, want Low", m.priority)
	}

	press(m, "Buy milk", "tab", "left", "left", "tab", "2025-01-01T10:00", "enter")

	active := m.session.ActiveTasks()
	if len(active) != 1 {
		t.Fatalf("active count: got %d, want 1", len(active))
	}
	if active[0].Title != "Buy milk" || active[0].Priority != task.PriorityHigh || active[0].Completed {
		t.Errorf("task: got %+v", active[0])
	}
	if m.title.Value() != "" || m.deadline.Value() != "" {
		t.Error("form should be cleared after a successful submit")
	}
	if m.priority != task.PriorityLow {
		t.Errorf("priority should reset to Low, got %s", m.priority)
	}
	if m.field != fieldTitle || m.focus != focusForm {
		t.Error("focus should return to the title field")
	}

	view := m.View()
	for _, want := range []string{"Buy milk", "High", "Due: 2025-01-01 10:00", "[c]omplete"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFormRejectsEmptyTitle(t *testing.T) {
	m := newTestModel()
	press(m, "a", "   ", "tab", "tab", "2025-01-01T10:00", "enter")

	if m.session.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", m.session.Len())
	}
	if m.deadline.Value() != "2025-01-01T10:00" {
		t.Error("rejected form should keep its inputs")
	}
}

func TestFormRejectsMissingDeadline(t *testing.T) {
	m := newTestModel()
	press(m, "a", "Buy milk", "enter")
	if m.session.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", m.session.Len())
	}
	if m.title.Value() != "Buy milk" {
		t.Errorf("title: got %q", m.title.Value())
	}
}

func TestFormKeysDoNotTriggerListActions(t *testing.T) {
	m := newTestModel()
	press(m, "a", "q")
	if m.focus != focusForm || m.title.Value() != "q" {
		t.Fatalf("q inside the form should be typed, got focus=%d title=%q", m.focus, m.title.Value())
	}
	press(m, "dp12")
	if m.title.Value() != "qdp12" {
		t.Errorf("title: got %q, want qdp12", m.title.Value())
	}
	if m.session.Sort() != task.DefaultSortState() {
		t.Error("sort changed while typing")
	}
}

func TestShiftTabCyclesBackwards(t *testing.T) {
	m := newTestModel()
	press(m, "a", "shift+tab")
	if m.field != fieldDeadline {
		t.Errorf("field: got %d, want deadline", m.field)
	}
	press(m, "shift+tab")
	if m.field != fieldPriority {
		t.Errorf("field: got %d, want priority", m.field)
	}
	press(m, " ")
	if m.priority != task.PriorityHigh {
		t.Errorf("space should cycle Low -> High, got %s", m.priority)
	}
}

func TestCompleteAndDelete(t *testing.T) {
	m := newTestModel()
	addTask(t, m, "first", "2025-01-01T10:00", task.PriorityLow)
	addTask(t, m, "second", "2025-01-02T10:00", task.PriorityLow)

	// Cursor on "first"; complete it.
	press(m, "c")
	if got := activeTitles(m); got != "second" {
		t.Fatalf("active after complete: got %s", got)
	}
	if len(m.session.CompletedTasks()) != 1 {
		t.Fatalf("completed count: got %d", len(m.session.CompletedTasks()))
	}

	// Move to the completed row; completing again does nothing.
	press(m, "j")
	sel, ok := m.selected()
	if !ok || !sel.Completed {
		t.Fatalf("selected: got %+v, %v", sel, ok)
	}
	press(m, "enter")
	if len(m.session.CompletedTasks()) != 1 || len(m.session.ActiveTasks()) != 1 {
		t.Error("complete on a completed task changed the lists")
	}
	if strings.Count(m.View(), "[c]omplete") != 1 {
		t.Error("completed rows must not offer complete")
	}

	press(m, "x")
	if len(m.session.CompletedTasks()) != 0 {
		t.Errorf("completed after delete: got %d", len(m.session.CompletedTasks()))
	}
	if m.cursor != 0 {
		t.Errorf("cursor should clamp to 0, got %d", m.cursor)
	}

	press(m, "delete")
	if m.session.Len() != 0 {
		t.Errorf("Len: got %d, want 0", m.session.Len())
	}
	press(m, "x", "c", "j", "k")
	if m.cursor != 0 {
		t.Errorf("cursor on empty list: got %d", m.cursor)
	}
}

func TestSortKeys(t *testing.T) {
	m := newTestModel()
	addTask(t, m, "low", "2025-01-01T10:00", task.PriorityLow)
	addTask(t, m, "high", "2025-01-03T10:00", task.PriorityHigh)
	addTask(t, m, "medium", "2025-01-02T10:00", task.PriorityMedium)

	press(m, "p")
	if got := activeTitles(m); got != "high,medium,low" {
		t.Errorf("priority asc: got %s", got)
	}
	if !strings.Contains(m.View(), "[p] By Priority ↑") {
		t.Errorf("priority indicator missing:\n%s", m.View())
	}

	press(m, "p")
	if got := activeTitles(m); got != "low,medium,high" {
		t.Errorf("priority desc: got %s", got)
	}
	if !strings.Contains(m.View(), "[p] By Priority ↓") {
		t.Error("desc indicator missing")
	}

	press(m, "d")
	if m.session.Sort() != (task.SortState{By: task.SortByDate, Order: task.SortAsc}) {
		t.Errorf("switching to date: got %+v", m.session.Sort())
	}
	press(m, "d")
	if got := activeTitles(m); got != "high,medium,low" {
		t.Errorf("date desc: got %s", got)
	}
}

func TestSectionToggles(t *testing.T) {
	m := newTestModel()
	addTask(t, m, "keep me", "2025-01-01T10:00", task.PriorityLow)

	press(m, "1")
	if m.session.Sections().Form {
		t.Error("1 should close the form opened by a")
	}

	press(m, "2")
	view := m.View()
	if strings.Contains(view, "keep me") {
		t.Error("collapsed active section still shows tasks")
	}
	if !strings.Contains(view, "Tasks (1)") {
		t.Error("collapsed section should keep its header and count")
	}
	if _, ok := m.selected(); ok {
		t.Error("no row should be selectable with the list collapsed")
	}

	press(m, "2")
	if !strings.Contains(m.View(), "keep me") {
		t.Error("reopened section should show the task again")
	}

	press(m, "3")
	if m.session.Sections().Completed {
		t.Error("3 should close the completed section")
	}
}

func TestHelpAndQuit(t *testing.T) {
	m := newTestModel()
	press(m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help screen not shown")
	}
	press(m, "h")
	if strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("help screen not hidden")
	}

	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}

	m = newTestModel()
	press(m, "a")
	cmd = press(m, "ctrl+c")
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit from the form")
	}
}

func TestRunTUIWithIO(t *testing.T) {
	var out bytes.Buffer
	sess := session.New(session.DefaultOptions(), nil)
	sess.Submit(session.Form{Title: "Buy milk", Priority: task.PriorityHigh, Deadline: "2025-01-01T10:00"})

	err := RunTUI(context.Background(), testConfig(), sess,
		WithAltScreen(false),
		WithIO(strings.NewReader("q"), &out))
	if err != nil {
		t.Fatalf("RunTUI: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("nothing rendered")
	}
	if !strings.Contains(out.String(), "Tasks List with Priority") {
		t.Errorf("header missing from output:\n%q", out.String())
	}
	if sess.Len() != 1 {
		t.Errorf("Len after quit: got %d, want 1", sess.Len())
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer reported as TTY")
	}
	if IsTTY(nil) {
		t.Error("nil writer reported as TTY")
	}
}
