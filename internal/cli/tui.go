package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canvasflow/designer/pkg/canvas"
	"github.com/canvasflow/designer/pkg/layers"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LayerListModel - Interactive layer reordering
// =============================================================================

// LayerListModel is the bubbletea model for browsing and restacking layers.
// Rows are front to back. Moving a row only changes the model; the caller
// applies [LayerListModel.Order] once the user commits.
type LayerListModel struct {
	Entries   []layers.Entry
	Cursor    int
	Height    int
	Offset    int
	Committed bool
	Moved     bool
}

// NewLayerListModel creates a layer list for store.
func NewLayerListModel(store *canvas.Store) LayerListModel {
	return LayerListModel{
		Entries: layers.Entries(store, layers.List(store.Elements())),
		Height:  15,
	}
}

// Order returns the element ids front to back as currently arranged.
func (m LayerListModel) Order() []string {
	ids := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		ids[i] = e.ID
	}
	return ids
}

func (m LayerListModel) Init() tea.Cmd {
	return nil
}

func (m LayerListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.moveCursor(-1)
		case "down", "j":
			m.moveCursor(1)
		case "K", "shift+up":
			m.moveLayer(-1)
		case "J", "shift+down":
			m.moveLayer(1)
		case "enter":
			m.Committed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m *LayerListModel) moveCursor(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= len(m.Entries) {
		return
	}
	m.Cursor = next
	m.scroll()
}

// moveLayer swaps the row under the cursor with its neighbour and keeps
// the cursor on the moved row.
func (m *LayerListModel) moveLayer(delta int) {
	to := m.Cursor + delta
	if to < 0 || to >= len(m.Entries) {
		return
	}
	m.Entries[m.Cursor], m.Entries[to] = m.Entries[to], m.Entries[m.Cursor]
	m.Cursor = to
	m.Moved = true
	m.scroll()
}

func (m *LayerListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m LayerListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layers"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  J/K move layer  ⏎ save  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	b.WriteString(renderLayerTable(m.Entries[m.Offset:end], m.Cursor-m.Offset))
	b.WriteString("\n\n")

	status := fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))
	if m.Moved {
		status += "  modified"
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}
