// Package rain renders lines read from an input stream as falling (or
// rising, or spiralling) characters in the terminal.
package rain

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/atomic"

	smerrors "github.com/Station-Manager/errors"
	"github.com/Station-Manager/lograin/internal/logging"
	"github.com/Station-Manager/lograin/internal/types"
)

// Viewer runs the rain display until input ends or the user quits.
type Viewer struct {
	cfg    types.RainConfig
	logger logging.Logger
	in     io.Reader
	out    io.Writer

	// ProgramOptions are appended to the defaults (alt screen, tty input).
	ProgramOptions []tea.ProgramOption

	lines atomic.Int64
}

func NewViewer(cfg types.RainConfig, in io.Reader, out io.Writer, logger logging.Logger) *Viewer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Viewer{cfg: cfg, in: in, out: out, logger: logger}
}

// Lines is the number of input lines read so far.
func (v *Viewer) Lines() int64 { return v.lines.Load() }

// Run blocks until input reaches EOF, the user quits, or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	const op smerrors.Op = "rain.Viewer.Run"

	opts, err := OptionsFromConfig(v.cfg)
	if err != nil {
		return smerrors.New(op).Err(err).Msg("invalid rain configuration")
	}

	model := NewModel(NewMatrix(opts, nil), v.cfg.Frequency, v.logger)
	programOpts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithOutput(v.out),
		tea.WithInputTTY(),
	}, v.ProgramOptions...)
	p := tea.NewProgram(model, programOpts...)

	go v.feed(ctx, p)

	v.logger.InfoWith().
		Str("direction", opts.Direction.String()).
		Dur("frequency", v.cfg.Frequency).
		Msg("rain started")

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return smerrors.New(op).Err(err).Msg("rain viewer failed")
	}

	var frames int
	if fm, ok := final.(Model); ok {
		frames = fm.Frames()
		if fm.InputErr() != nil {
			return smerrors.New(op).Err(fm.InputErr()).Msg("reading input failed")
		}
	}
	v.logger.InfoWith().Int64("lines", v.Lines()).Int("frames", frames).Msg("rain stopped")
	return nil
}

// feed forwards input lines to the program, then reports the end of input.
func (v *Viewer) feed(ctx context.Context, p *tea.Program) {
	br := bufio.NewReader(v.in)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if ctx.Err() != nil {
				return
			}
			v.lines.Inc()
			p.Send(lineMsg(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			p.Send(inputClosedMsg{err: err})
			return
		}
	}
}
