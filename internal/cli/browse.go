package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/skillpilot/internal/cli/formatter"
	"github.com/alexanderramin/skillpilot/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <goal>",
		Short: "Browse a roadmap interactively and tick off days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("browse needs an interactive terminal; use: skillpilot plan show " + args[0])
			}
			// Resolve up front so a bad reference fails before the screen switches.
			if _, err := app.Plans.Get(cmd.Context(), args[0]); err != nil {
				return err
			}
			p := tea.NewProgram(newBrowseModel(app, args[0]),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}

// browseKeyMap implements help.KeyMap.
type browseKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Details key.Binding
	Filter  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle done")),
		Details: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Filter:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Details, k.Filter, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Details, k.Filter, k.Refresh},
		{k.Help, k.Quit},
	}
}

// browseLoadedMsg carries a freshly loaded roadmap.
type browseLoadedMsg struct {
	goal  *domain.Goal
	tasks []*domain.Task
	err   error
}

// taskToggledMsg reports the result of a completion toggle.
type taskToggledMsg struct {
	task *domain.Task
	err  error
}

const (
	browseChromeHeight = 7
	browseMinRows      = 5
)

// browseModel lists the days of one roadmap.
type browseModel struct {
	app  *App
	ref  string
	keys browseKeyMap
	help help.Model

	goal    *domain.Goal
	tasks   []*domain.Task
	cursor  int
	offset  int
	loading bool
	err     error
	status  string

	filter    textinput.Model
	filtering bool

	detail     viewport.Model
	showDetail bool

	width, height int
}

func newBrowseModel(app *App, ref string) *browseModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter topics"
	ti.CharLimit = 64

	return &browseModel{
		app:     app,
		ref:     ref,
		keys:    defaultBrowseKeys(),
		help:    help.New(),
		filter:  ti,
		detail:  viewport.New(0, 0),
		loading: true,
		height:  browseChromeHeight + 20,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	app, ref := m.app, m.ref
	return func() tea.Msg {
		detail, err := app.Plans.Get(context.Background(), ref)
		if err != nil {
			return browseLoadedMsg{err: err}
		}
		return browseLoadedMsg{goal: detail.Goal, tasks: detail.Tasks}
	}
}

func (m *browseModel) toggle(t *domain.Task) tea.Cmd {
	app, goalID, day, done := m.app, m.goal.ID, t.Day, t.IsCompleted()
	return func() tea.Msg {
		ctx := context.Background()
		var (
			updated *domain.Task
			err     error
		)
		if done {
			updated, err = app.Tasks.Reopen(ctx, goalID, day)
		} else {
			updated, err = app.Tasks.Complete(ctx, goalID, day)
		}
		return taskToggledMsg{task: updated, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-browseChromeHeight, browseMinRows)
		m.clampCursor()
		return m, nil

	case browseLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.goal, m.tasks = msg.goal, msg.tasks
		}
		m.clampCursor()
		return m, nil

	case taskToggledMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		for i, t := range m.tasks {
			if t.Day == msg.task.Day {
				m.tasks[i] = msg.task
			}
		}
		verb := "reopened"
		if msg.task.IsCompleted() {
			verb = "completed"
		}
		m.status = formatter.StyleGreen.Render(fmt.Sprintf("Day %d %s", msg.task.Day, verb))
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		if m.showDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.clampCursor()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.cursor, m.offset = 0, 0
	return m, cmd
}

func (m *browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Details), msg.Type == tea.KeyEsc:
		m.showDetail = false
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(visible) {
			if m.goal.IsArchived() {
				m.status = formatter.StyleYellow.Render(m.goal.DisplayID() + " is archived")
				return m, nil
			}
			return m, m.toggle(visible[m.cursor])
		}
	case key.Matches(msg, m.keys.Details):
		if m.cursor < len(visible) {
			m.detail.SetContent(formatter.FormatTaskCard(m.goal, visible[m.cursor]))
			m.detail.GotoTop()
			m.showDetail = true
		}
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.load()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.scrollToCursor()
	return m, nil
}

// visibleTasks returns the tasks matching the topic filter.
func (m *browseModel) visibleTasks() []*domain.Task {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		return m.tasks
	}
	var out []*domain.Task
	for _, t := range m.tasks {
		if strings.Contains(strings.ToLower(t.Topic), q) || strings.Contains(strings.ToLower(t.Category), q) {
			out = append(out, t)
		}
	}
	return out
}

func (m *browseModel) listHeight() int {
	return max(m.height-browseChromeHeight, browseMinRows)
}

func (m *browseModel) clampCursor() {
	n := len(m.visibleTasks())
	if m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	m.scrollToCursor()
}

func (m *browseModel) scrollToCursor() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m *browseModel) View() string {
	if m.loading {
		return "\n  " + formatter.Dim("Loading roadmap...")
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}

	var b strings.Builder
	b.WriteString(m.header() + "\n\n")

	if m.showDetail {
		b.WriteString(m.detail.View() + "\n")
	} else {
		b.WriteString(m.renderRows())
	}

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("\n" + m.filter.View())
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *browseModel) header() string {
	done := 0
	for _, t := range m.tasks {
		if t.IsCompleted() {
			done++
		}
	}
	pct := 0.0
	if len(m.tasks) > 0 {
		pct = float64(done) / float64(len(m.tasks)) * 100
	}
	return fmt.Sprintf("%s %s  %s  %s",
		formatter.StyleHeader.Render(m.goal.DisplayID()),
		formatter.Bold(m.goal.Title),
		formatter.RenderProgress(pct, 16),
		formatter.Dim(fmt.Sprintf("%d/%d", done, len(m.tasks))))
}

func (m *browseModel) renderRows() string {
	visible := m.visibleTasks()
	if len(visible) == 0 {
		return "  " + formatter.Dim("No matching days.") + "\n"
	}

	topicWidth := 60
	if m.width > 0 {
		topicWidth = max(m.width-28, 10)
	}

	var b strings.Builder
	end := min(m.offset+m.listHeight(), len(visible))
	for i := m.offset; i < end; i++ {
		t := visible[i]
		pointer := "  "
		if i == m.cursor {
			pointer = formatter.StyleHeader.Render("▸ ")
		}
		date := t.ExpectedDate(m.goal.StartDate).Format("Jan 02")
		topic := formatter.Truncate(t.Topic, topicWidth)
		if i == m.cursor {
			topic = formatter.Bold(topic)
		}
		b.WriteString(fmt.Sprintf("%s%s %3d  %s  %s\n", pointer, formatter.TaskCheck(t.Status), t.Day, formatter.Dim(date), topic))
	}
	if end < len(visible) {
		b.WriteString(formatter.Dim(fmt.Sprintf("  … %d more", len(visible)-end)) + "\n")
	}
	return b.String()
}
