package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgressUpdate reports the state of the transfer phase to the
// interactive progress view. Index and Total are scoped to the volume
// currently being processed; Done marks the end of the whole run.
type ProgressUpdate struct {
	Index int    // 1-based file index within the current volume
	Total int    // Pending files in the current volume
	Path  string // Volume-qualified relative path of the current file
	Done  bool   // Run finished (Err carries a fatal error, if any)
	Err   error
}

// ProgressModel is the Bubble Tea model behind the inline progress line
// shown during copy runs on a terminal. It renders one status line and
// quits when the run completes.
type ProgressModel struct {
	index int
	total int
	path  string
	done  bool
	err   error
}

// NewProgressModel returns a fresh progress view.
func NewProgressModel() ProgressModel {
	return ProgressModel{}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressUpdate:
		if msg.Done {
			m.done = true
			m.err = msg.Err
			return m, tea.Quit
		}
		m.index = msg.Index
		m.total = msg.Total
		m.path = msg.Path
		return m, nil

	case tea.KeyMsg:
		// The signal handler owns cancellation; ctrl+c just reaches it
		// through the terminal as usual. Ignore other keys.
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	if m.done || m.total == 0 {
		return ""
	}
	percent := float64(m.index) / float64(m.total) * 100
	return fmt.Sprintf("%s %s\n",
		headerStyle.Render(fmt.Sprintf("[%d/%d %3.0f%%]", m.index, m.total, percent)),
		dimStyle.Render(m.path))
}
