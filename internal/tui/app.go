package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rsoler/chores-tui/internal/store"
	"github.com/rsoler/chores-tui/internal/task"
)

// tickMsg drives the periodic expiry sweep.
type tickMsg time.Time

// Model represents the main application state
type Model struct {
	store    store.Store
	tasks    []task.Task
	view     task.State // which list is shown: pending or up to date
	selected int
	width    int
	height   int
	now      time.Time
	interval time.Duration
	err      error

	// Form mode (add or edit)
	formMode      bool
	formEditID    int64 // 0 means adding a new task
	formField     int
	formInputs    []textinput.Model
	formImportIdx int
	formErr       error

	// Delete confirmation mode
	deleteConfirmMode bool
	deleteTaskID      int64
}

// Form field indices
const (
	FormFieldDescription = iota
	FormFieldDuration
	FormFieldPeriod
	FormFieldImportance
	FormFieldCount // Total number of fields
)

// Styles
var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	dueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	importanceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// New creates a new application model
func New(s store.Store, checkInterval time.Duration) (*Model, error) {
	// Load initial tasks
	tasks, err := s.List()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	// Setup form inputs
	formInputs := make([]textinput.Model, FormFieldCount)
	for i := range formInputs {
		formInputs[i] = textinput.New()
		formInputs[i].Width = 40
		formInputs[i].CharLimit = 100

		switch i {
		case FormFieldDescription:
			formInputs[i].Placeholder = "Description"
		case FormFieldDuration:
			formInputs[i].Placeholder = "Duration (e.g. 30m, 2h)"
		case FormFieldPeriod:
			formInputs[i].Placeholder = "Period (e.g. 2h, 1d, 1w)"
		}
	}

	return &Model{
		store:      s,
		tasks:      tasks,
		view:       task.StatePending,
		now:        time.Now(),
		interval:   checkInterval,
		formInputs: formInputs,
	}, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// The core owns no timers; the UI sweeps expired tasks on its own
		// clock and persists any transitions.
		m.now = time.Time(msg)
		changed := false
		for _, t := range m.tasks {
			expired, ok := t.CheckExpiry(m.now)
			if !ok {
				continue
			}
			if err := m.store.Update(expired); err != nil {
				m.err = err
				return m, m.tick()
			}
			changed = true
		}
		if changed {
			m.reload()
		}
		return m, m.tick()

	case tea.KeyMsg:
		// Delete confirmation mode handling
		if m.deleteConfirmMode {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.Delete(m.deleteTaskID); err != nil && !errors.Is(err, store.ErrNotFound) {
					m.err = err
				} else {
					m.reload()
				}
				m.deleteConfirmMode = false
				m.deleteTaskID = 0
				return m, nil
			default:
				// Any other key cancels
				m.deleteConfirmMode = false
				m.deleteTaskID = 0
				return m, nil
			}
		}

		// Form mode handling
		if m.formMode {
			return m.updateForm(msg)
		}

		// Normal mode handling
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < len(m.visibleTasks())-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "tab":
			// Switch between the pending and up-to-date lists
			if m.view == task.StatePending {
				m.view = task.StateUpToDate
			} else {
				m.view = task.StatePending
			}
			m.selected = m.ensureValidSelection()
			return m, nil

		case "a":
			// Add a new task
			m.openForm(nil)
			return m, textinput.Blink

		case "e":
			// Edit the selected task
			tasks := m.visibleTasks()
			if len(tasks) > 0 && m.selected < len(tasks) {
				t := tasks[m.selected]
				m.openForm(&t)
				return m, textinput.Blink
			}

		case "d":
			// Mark the selected task done
			tasks := m.visibleTasks()
			if len(tasks) > 0 && m.selected < len(tasks) {
				t := tasks[m.selected].MarkDone(time.Now())
				if err := m.store.Update(t); err != nil {
					m.err = err
				} else {
					m.reload()
				}
			}

		case "u":
			// Revert the selected task to pending
			tasks := m.visibleTasks()
			if len(tasks) > 0 && m.selected < len(tasks) {
				t := tasks[m.selected].MarkPending()
				if err := m.store.Update(t); err != nil {
					m.err = err
				} else {
					m.reload()
				}
			}

		case "x":
			// Delete task - enter confirmation mode
			tasks := m.visibleTasks()
			if len(tasks) > 0 && m.selected < len(tasks) {
				m.deleteConfirmMode = true
				m.deleteTaskID = tasks[m.selected].ID
			}
			return m, nil
		}
	}

	return m, nil
}

// updateForm handles key messages while the add/edit form is open.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "enter":
		in := task.Input{
			Description: m.formInputs[FormFieldDescription].Value(),
			Duration:    m.formInputs[FormFieldDuration].Value(),
			Period:      m.formInputs[FormFieldPeriod].Value(),
			Importance:  task.Importances[m.formImportIdx],
		}

		if m.formEditID == 0 {
			t, err := task.New(in)
			if err != nil {
				m.formErr = err
				return m, nil
			}
			if _, err := m.store.Add(t); err != nil {
				m.err = err
				m.closeForm()
				return m, nil
			}
		} else {
			cur, err := m.store.Get(m.formEditID)
			if err != nil {
				m.err = err
				m.closeForm()
				return m, nil
			}
			edited, err := cur.ApplyEdit(in)
			if err != nil {
				m.formErr = err
				return m, nil
			}
			if err := m.store.Update(edited); err != nil {
				m.err = err
				m.closeForm()
				return m, nil
			}
		}

		m.reload()
		m.closeForm()
		return m, nil

	case "tab", "down":
		// Move to next field
		if m.formField < FormFieldCount-1 {
			if m.formField != FormFieldImportance {
				m.formInputs[m.formField].Blur()
			}
			m.formField++
			if m.formField != FormFieldImportance {
				m.formInputs[m.formField].Focus()
			}
		}
		return m, textinput.Blink

	case "shift+tab", "up":
		// Move to previous field
		if m.formField > 0 {
			if m.formField != FormFieldImportance {
				m.formInputs[m.formField].Blur()
			}
			m.formField--
			m.formInputs[m.formField].Focus()
		}
		return m, textinput.Blink

	case "left", "right":
		// Importance selector navigation
		if m.formField == FormFieldImportance {
			if msg.String() == "left" && m.formImportIdx > 0 {
				m.formImportIdx--
			} else if msg.String() == "right" && m.formImportIdx < len(task.Importances)-1 {
				m.formImportIdx++
			}
			return m, nil
		}
	}

	// Update the active text input
	if m.formField != FormFieldImportance {
		var cmd tea.Cmd
		m.formInputs[m.formField], cmd = m.formInputs[m.formField].Update(msg)
		return m, cmd
	}
	return m, nil
}

// openForm prepares the form for adding (t == nil) or editing a task.
func (m *Model) openForm(t *task.Task) {
	m.formMode = true
	m.formField = 0
	m.formErr = nil
	m.formImportIdx = 0

	if t == nil {
		m.formEditID = 0
		for i := range m.formInputs {
			m.formInputs[i].SetValue("")
		}
	} else {
		m.formEditID = t.ID
		m.formInputs[FormFieldDescription].SetValue(t.Description)
		m.formInputs[FormFieldDuration].SetValue(task.FormatDuration(t.DurationMinutes))
		m.formInputs[FormFieldPeriod].SetValue(task.FormatDuration(t.PeriodMinutes))
		for i, imp := range task.Importances {
			if imp == t.Importance {
				m.formImportIdx = i
				break
			}
		}
	}

	m.formInputs[0].Focus()
}

func (m *Model) closeForm() {
	m.formMode = false
	m.formEditID = 0
	m.formField = 0
	m.formErr = nil
	for i := range m.formInputs {
		m.formInputs[i].Blur()
	}
}

// reload re-reads tasks from the store and keeps the selection in bounds.
func (m *Model) reload() {
	tasks, err := m.store.List()
	if err != nil {
		m.err = err
		return
	}
	m.tasks = tasks
	m.selected = m.ensureValidSelection()
}

// visibleTasks returns the sorted tasks for the active view.
func (m Model) visibleTasks() []task.Task {
	return task.Sort(m.tasks, m.view, m.now)
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return 0
	}
	if m.selected >= len(tasks) {
		return len(tasks) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlays replace the whole screen, so skip the layout work
	if m.formMode {
		return m.renderForm()
	}
	if m.deleteConfirmMode {
		return m.renderDeleteConfirmation()
	}

	// Calculate pane widths
	listWidth := m.width / 2
	detailWidth := m.width - listWidth - 3 // account for borders

	listView := m.renderList(listWidth, m.height-3)
	detailView := m.renderDetail(detailWidth)

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(listWidth).Height(m.height-3).Render(listView),
		borderStyle.Width(detailWidth).Height(m.height-3).Render(detailView),
	)

	help := m.renderHelp()

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}

// renderList renders the task list for the active view
func (m Model) renderList(width, height int) string {
	var lines []string

	tasks := m.visibleTasks()

	// Calculate visible range
	visibleHeight := height - 2 // account for header
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	// Header
	var header string
	if m.view == task.StatePending {
		header = fmt.Sprintf("Pending (%d)", len(tasks))
	} else {
		header = fmt.Sprintf("Up to date (%d)", len(tasks))
	}
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("─", width-2))

	// Task list
	for i := startIdx; i < len(tasks) && i < startIdx+visibleHeight; i++ {
		t := tasks[i]

		var line string
		if t.Importance == task.ImportanceHigh {
			line = importanceStyle.Render("!") + " "
		} else {
			line = "  "
		}

		line += t.Description

		if m.view == task.StateUpToDate {
			left := task.TimeUntilDue(t, m.now)
			line += " " + mutedStyle.Render("["+task.HumanizeTimeLeft(left)+"]")
		}

		if i == m.selected {
			line = selectedStyle.Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// renderDetail renders the task detail view
func (m Model) renderDetail(width int) string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 || m.selected >= len(tasks) {
		return "No task selected"
	}

	t := tasks[m.selected]
	var lines []string

	lines = append(lines, t.Description)
	lines = append(lines, strings.Repeat("─", width-2))
	lines = append(lines, "")

	lines = append(lines, fmt.Sprintf("Importance: %s", t.Importance))
	lines = append(lines, fmt.Sprintf("Duration:   %s", task.FormatDuration(t.DurationMinutes)))
	lines = append(lines, fmt.Sprintf("Period:     %s", task.FormatDuration(t.PeriodMinutes)))
	lines = append(lines, "")

	if t.State == task.StateUpToDate && t.LastCompletedAt != nil {
		lines = append(lines, fmt.Sprintf("Last done:  %s", t.LastCompletedAt.Format("2006-01-02 15:04")))
		left := task.TimeUntilDue(t, m.now)
		if left <= 0 {
			lines = append(lines, "Due:        "+dueStyle.Render(task.HumanizeTimeLeft(left)))
		} else {
			lines = append(lines, fmt.Sprintf("Due in:     %s", task.HumanizeTimeLeft(left)))
		}
	} else {
		lines = append(lines, "Last done:  Never (pending)")
	}

	if !t.CreatedAt.IsZero() {
		lines = append(lines, "")
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("Created %s", t.CreatedAt.Format("2006-01-02"))))
	}

	return strings.Join(lines, "\n")
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.deleteConfirmMode {
		return " y: confirm delete • any other key: cancel"
	}

	if m.formMode {
		return " Tab/↓: next field • Shift+Tab/↑: prev • Enter: save • Esc: cancel"
	}

	help := " j/k: navigate • tab: switch list • a: add • e: edit"
	if m.view == task.StatePending {
		help += " • d: done"
	} else {
		help += " • u: pending"
	}
	help += " • x: delete • q: quit"

	return help
}

// renderForm renders the add/edit overlay
func (m Model) renderForm() string {
	var lines []string

	if m.formEditID == 0 {
		lines = append(lines, "Add Task")
	} else {
		lines = append(lines, "Edit Task")
	}
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	fieldLabels := []string{
		"Description: ",
		"Duration:    ",
		"Period:      ",
		"Importance:  ",
	}

	for i, label := range fieldLabels {
		var fieldView string

		if i == FormFieldImportance {
			imp := task.Importances[m.formImportIdx]
			if i == m.formField {
				fieldView = label + selectedStyle.Render(fmt.Sprintf("< %s >", imp))
			} else {
				fieldView = label + fmt.Sprintf("  %s  ", imp)
			}
		} else {
			if i == m.formField {
				fieldView = label + m.formInputs[i].View()
			} else {
				value := m.formInputs[i].Value()
				if value == "" {
					value = m.formInputs[i].Placeholder
				}
				fieldView = label + value
			}
		}

		lines = append(lines, fieldView)
		lines = append(lines, "")
	}

	lines = append(lines, mutedStyle.Render("Time formats: 30m, 2h, 1d, 1w, or plain minutes"))

	if m.formErr != nil {
		lines = append(lines, "")
		lines = append(lines, errorStyle.Render(m.formErr.Error()))
	}

	lines = append(lines, "")
	lines = append(lines, "Tab/↓: next field • Shift+Tab/↑: previous • Enter: save • Esc: cancel")

	content := strings.Join(lines, "\n")
	box := borderStyle.
		Padding(1).
		Width(60).
		Background(lipgloss.Color("235")).
		Render(content)

	// Center the box on the screen
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// renderDeleteConfirmation renders the delete confirmation prompt
func (m Model) renderDeleteConfirmation() string {
	var description string
	for _, t := range m.tasks {
		if t.ID == m.deleteTaskID {
			description = t.Description
			break
		}
	}

	width := 60
	height := 7

	prompt := fmt.Sprintf("Delete task '%s'? (y/n)", description)

	content := lipgloss.NewStyle().
		Width(width - 4).
		Height(height - 4).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(width).
		Height(height).
		Render(content)

	// Center on screen
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
