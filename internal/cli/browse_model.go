package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emmavds/softseason/internal/cli/formatter"
	"github.com/emmavds/softseason/internal/service"
)

// browseKeyMap defines key bindings for the plan browser.
type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

var browseKeys = browseKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

type planLoadedMsg struct {
	plan *service.Plan
	err  error
}

type taskToggledMsg struct {
	taskID string
	state  bool
	err    error
}

// browseModel is the bubbletea Model for the interactive plan browser:
// a cursor over the 25 days, space toggles completion, a detail pane
// shows the selected day.
type browseModel struct {
	app       *App
	sessionID string

	loading bool
	spin    spinner.Model
	plan    *service.Plan
	cursor  int
	err     error
	now     time.Time
}

func newBrowseModel(app *App, sessionID string) browseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StyleRose
	return browseModel{
		app:       app,
		sessionID: sessionID,
		loading:   true,
		spin:      sp,
		now:       time.Now(),
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadPlan())
}

func (m browseModel) loadPlan() tea.Cmd {
	return func() tea.Msg {
		plan, err := m.app.Plans.GetOrCreate(context.Background(), m.sessionID)
		return planLoadedMsg{plan: plan, err: err}
	}
}

func (m browseModel) toggleSelected() tea.Cmd {
	task := m.plan.Tasks[m.cursor]
	target := !task.IsCompleted
	return func() tea.Msg {
		state, err := m.app.Plans.ToggleTask(context.Background(), task.ID, target)
		return taskToggledMsg{taskID: task.ID, state: state, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case planLoadedMsg:
		m.loading = false
		m.plan = msg.plan
		m.err = msg.err
		if m.err != nil {
			return m, tea.Quit
		}
		return m, nil

	case taskToggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		for _, task := range m.plan.Tasks {
			if task.ID == msg.taskID {
				task.IsCompleted = msg.state
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browseKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Up):
			if m.plan != nil && m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, browseKeys.Down):
			if m.plan != nil && m.cursor < len(m.plan.Tasks)-1 {
				m.cursor++
			}
		case key.Matches(msg, browseKeys.Toggle):
			if m.plan != nil && len(m.plan.Tasks) > 0 {
				return m, m.toggleSelected()
			}
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("fetching your plan..."))
	}
	if m.err != nil || m.plan == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Your Soft Season"))
	b.WriteString("\n")
	if m.plan.SummarySentence != "" {
		b.WriteString(formatter.StyleItalic.Render(m.plan.SummarySentence))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, task := range m.plan.Tasks {
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleHeader.Render("> ")
		}
		b.WriteString(prefix + formatter.FormatTaskLine(task, m.now))
		b.WriteString("\n")
	}

	if len(m.plan.Tasks) > 0 {
		b.WriteString("\n")
		b.WriteString(formatter.FormatTaskDetail(m.plan.Tasks[m.cursor]))
	}
	b.WriteString("\n")
	b.WriteString(formatter.Dim("  ↑/↓ move · space toggle · q quit"))
	b.WriteString("\n")
	return b.String()
}

func runBrowse(app *App, sessionID string) error {
	model := newBrowseModel(app, sessionID)
	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(browseModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
