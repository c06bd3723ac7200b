package rain

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/Station-Manager/lograin/internal/types"
)

// spiralCoef scales the spiral radius: r = spiralCoef / theta.
const spiralCoef = 1500.0

// Options are the parsed viewer settings.
type Options struct {
	Color              Color
	HighlightColor     Color
	HighlightThreshold int
	Direction          Direction
	Spaces             int
}

// OptionsFromConfig parses cfg.
func OptionsFromConfig(cfg types.RainConfig) (Options, error) {
	var (
		opts Options
		err  error
	)
	if opts.Color, err = ParseColor(cfg.Color); err != nil {
		return opts, err
	}
	if opts.HighlightColor, err = ParseColor(cfg.HighlightColor); err != nil {
		return opts, err
	}
	if opts.Direction, err = ParseDirection(cfg.Direction); err != nil {
		return opts, err
	}
	opts.HighlightThreshold = max(cfg.HighlightThreshold, 0)
	opts.Spaces = max(cfg.Spaces, 0)
	return opts, nil
}

// Matrix is the screen model: one column per screen column (top/bottom),
// or a single spiral column.
type Matrix struct {
	opts    Options
	width   int
	height  int
	columns []*column
	backlog []string // lines received before the first size is known
	rng     *rand.Rand
}

// NewMatrix returns a Matrix with no size; lines are held until Resize.
func NewMatrix(opts Options, rng *rand.Rand) *Matrix {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Matrix{opts: opts, rng: rng}
}

func (m *Matrix) Size() (width, height int) { return m.width, m.height }

// Resize rebuilds the columns for a new screen size. Lines not yet written
// are carried over; what is already on screen is dropped.
func (m *Matrix) Resize(width, height int) {
	if width == m.width && height == m.height {
		return
	}
	carried := m.backlog
	m.backlog = nil
	for _, c := range m.columns {
		carried = append(carried, c.unwritten()...)
	}

	m.width, m.height = width, height
	m.columns = nil
	if width > 0 && height > 0 {
		m.columns = m.newColumns()
	}
	for _, line := range carried {
		m.AddLine(line)
	}
}

func (m *Matrix) newColumns() []*column {
	if m.opts.Direction == SpiralRight {
		return []*column{newColumn(m.spiralLength(), m.opts)}
	}
	cols := make([]*column, m.width)
	for i := range cols {
		cols[i] = newColumn(m.height, m.opts)
	}
	return cols
}

func (m *Matrix) spiralLength() int { return 2 * (m.width + m.height) }

// AddLine queues line on a random column.
func (m *Matrix) AddLine(line string) {
	if len(m.columns) == 0 {
		m.backlog = append(m.backlog, line)
		return
	}
	m.columns[m.rng.IntN(len(m.columns))].addLine(line)
}

// Pending is the number of lines queued and not fully written.
func (m *Matrix) Pending() int {
	n := len(m.backlog)
	for _, c := range m.columns {
		n += len(c.pending)
	}
	return n
}

// Tick advances every column by one cell.
func (m *Matrix) Tick() {
	for _, c := range m.columns {
		c.tick(m.opts.Spaces)
	}
}

// grid lays the columns out on a height x width screen.
func (m *Matrix) grid() [][]cell {
	g := make([][]cell, m.height)
	for y := range g {
		g[y] = make([]cell, m.width)
		for x := range g[y] {
			g[y][x] = blank
		}
	}
	if len(m.columns) == 0 {
		return g
	}

	switch m.opts.Direction {
	case SpiralRight:
		m.spiral(g)
	default:
		for x, c := range m.columns {
			for y := 0; y < m.height; y++ {
				age := y
				if m.opts.Direction == Top {
					age = m.height - 1 - y
				}
				g[y][x] = c.visible.at(age)
			}
		}
	}
	return g
}

// spiral walks theta = 1..L-1 inward; later points overwrite earlier ones,
// so the newest cells (largest theta, nearest the center) stay on top.
func (m *Matrix) spiral(g [][]cell) {
	col := m.columns[0]
	length := col.visible.size()
	cx, cy := m.width/2, m.height/2
	for i := 1; i < length; i++ {
		theta := float64(i)
		r := spiralCoef / theta
		x := cx + int(math.Floor(r*math.Cos(theta)))
		y := cy + int(math.Floor(r*math.Sin(theta)))
		if x < 0 || y < 0 || x >= m.width || y >= m.height {
			continue
		}
		g[y][x] = col.visible.at(length - 1 - i)
	}
}

// Render draws the current frame, one line per screen row.
func (m *Matrix) Render() string {
	g := m.grid()
	var b strings.Builder
	for y, row := range g {
		if y > 0 {
			b.WriteByte('\n')
		}
		renderRow(&b, row)
	}
	return b.String()
}

// renderRow styles runs of same-colored cells together.
func renderRow(b *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && row[i].color == row[start].color {
			continue
		}
		run := make([]rune, 0, i-start)
		for _, c := range row[start:i] {
			run = append(run, c.r)
		}
		b.WriteString(row[start].color.render(string(run)))
		start = i
	}
}
