package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// VertexState represents the current state of a render vertex in the TUI.
type VertexState struct {
	ID     string
	Name   string
	Status string // statusRunning, statusCompleted, statusCached, statusFailed
	// Progress is the last line the vertex logged, e.g. "column 12/256".
	Progress string
	Err      string
}

type styles struct {
	completed lipgloss.Style
	failed    lipgloss.Style
	progress  lipgloss.Style
}

// Model is the Bubble Tea model for the TUI, tracking one line per recorded vertex.
type Model struct {
	source   UpdateSource
	vertices []VertexState
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a new TUI model reading updates from source.
func NewModel(source UpdateSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		source:  source,
		spinner: s,
		styles: styles{
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			progress:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading updates.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		NextUpdate(m.source),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgProgress:
		m.apply(msg.Update)
		return m, NextUpdate(m.source)
	case MsgFeedClosed:
		return m, tea.Quit
	}
	return m, nil
}

// apply folds one status update into the vertex list.
func (m *Model) apply(update *progrock.StatusUpdate) {
	for _, v := range update.Vertexes {
		i := m.index(v.Id)
		if i < 0 {
			m.vertices = append(m.vertices, VertexState{ID: v.Id, Name: v.Name, Status: statusRunning})
			i = len(m.vertices) - 1
		}
		switch {
		case v.Completed == nil:
		case v.Error != nil:
			m.vertices[i].Status = statusFailed
			m.vertices[i].Err = *v.Error
		case v.Cached:
			m.vertices[i].Status = statusCached
		default:
			m.vertices[i].Status = statusCompleted
		}
	}

	for _, l := range update.Logs {
		i := m.index(l.Vertex)
		if i < 0 {
			continue
		}
		if line := lastLine(l.Data); line != "" {
			m.vertices[i].Progress = line
		}
	}
}

func (m *Model) index(id string) int {
	for i, v := range m.vertices {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func lastLine(data []byte) string {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var s strings.Builder

	// Determine start index to handle overflow
	start := 0
	if len(m.vertices) > m.height && m.height > 0 {
		start = len(m.vertices) - m.height
	}

	for _, v := range m.vertices[start:] {
		var icon, detail string
		switch v.Status {
		case statusRunning:
			icon = m.spinner.View()
			detail = m.styles.progress.Render(v.Progress)
		case statusCompleted:
			icon = m.styles.completed.Render("✓")
		case statusCached:
			icon = m.styles.completed.Render("✓")
			detail = m.styles.progress.Render("cached")
		case statusFailed:
			icon = m.styles.failed.Render("✗")
			detail = m.styles.failed.Render(v.Err)
		}

		line := fmt.Sprintf("%s %s", icon, v.Name)
		if detail != "" {
			line += "  " + detail
		}
		s.WriteString(line + "\n")
	}

	return s.String()
}
