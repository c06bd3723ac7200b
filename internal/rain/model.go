package rain

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Station-Manager/lograin/internal/logging"
)

// lineMsg carries one input line, newline removed.
type lineMsg string

// inputClosedMsg reports the end of input; err is nil on a clean EOF.
type inputClosedMsg struct{ err error }

// tickMsg advances the animation by one frame.
type tickMsg time.Time

// Model is the Bubble Tea model driving a Matrix.
type Model struct {
	matrix    *Matrix
	frequency time.Duration
	logger    logging.Logger

	frames   int
	quitting bool
	inputErr error
}

// NewModel animates matrix at one frame per frequency.
func NewModel(matrix *Matrix, frequency time.Duration, logger logging.Logger) Model {
	if logger == nil {
		logger = logging.Nop()
	}
	return Model{matrix: matrix, frequency: frequency, logger: logger}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.frequency, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.logger.DebugWith().Int("width", msg.Width).Int("height", msg.Height).Msg("resize")
		m.matrix.Resize(msg.Width, msg.Height)
		return m, tea.ClearScreen

	case lineMsg:
		m.matrix.AddLine(string(msg))
		return m, nil

	case inputClosedMsg:
		if msg.err != nil {
			m.logger.ErrorWith().Err(msg.err).Msg("reading input")
		}
		m.inputErr = msg.err
		m.quitting = true
		return m, tea.Quit

	case tickMsg:
		m.matrix.Tick()
		m.frames++
		return m, m.tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.matrix.Render()
}

// Frames is the number of frames ticked so far.
func (m Model) Frames() int { return m.frames }

// InputErr is the error that ended input, if any.
func (m Model) InputErr() error { return m.inputErr }
