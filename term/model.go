package term

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/phanxgames/thicket"
)

// Model is a bubbletea model hosting an overlay. Run it with mouse motion
// reporting enabled:
//
//	p := tea.NewProgram(term.NewModel(ov), tea.WithAltScreen(), tea.WithMouseAllMotion())
type Model struct {
	ov   *thicket.Overlay
	grid *Grid

	down   bool
	button thicket.MouseButton
	lastX  float64
	lastY  float64
}

// NewModel creates a model for ov with an 80x24 grid until the first
// window size message arrives.
func NewModel(ov *thicket.Overlay) *Model {
	return &Model{ov: ov, grid: NewGrid(80, 24)}
}

// Grid returns the surface the model renders into.
func (m *Model) Grid() *Grid { return m.grid }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.grid.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.MouseMsg:
		m.handleMouse(tea.MouseEvent(msg))
	}
	return m, nil
}

// handleMouse maps a terminal mouse event onto the overlay. Cells are
// addressed by their center point.
func (m *Model) handleMouse(e tea.MouseEvent) {
	x, y := m.grid.CellCenter(e.X, e.Y)
	m.ov.SetPointerPosition(x, y)

	switch e.Button {
	case tea.MouseButtonWheelUp:
		m.ov.Scroll(x, y, 1)
		return
	case tea.MouseButtonWheelDown:
		m.ov.Scroll(x, y, -1)
		return
	}

	switch e.Action {
	case tea.MouseActionPress:
		b, ok := toButton(e.Button)
		if !ok || m.down {
			return
		}
		m.down, m.button = true, b
		m.lastX, m.lastY = x, y
		m.ov.Click(x, y, b)
	case tea.MouseActionMotion:
		if !m.down || (x == m.lastX && y == m.lastY) {
			return
		}
		m.ov.Drag(x, y, m.button, x-m.lastX, y-m.lastY)
		m.lastX, m.lastY = x, y
	case tea.MouseActionRelease:
		if !m.down {
			return
		}
		m.down = false
		m.ov.Release()
	}
}

func toButton(b tea.MouseButton) (thicket.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return thicket.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return thicket.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return thicket.MouseButtonMiddle, true
	}
	return 0, false
}

// View implements tea.Model.
func (m *Model) View() string {
	m.grid.Clear()
	m.ov.Render(m.grid)
	return m.grid.String()
}

var _ tea.Model = (*Model)(nil)
