package rain

type cell struct {
	r     rune
	color Color
}

var blank = cell{r: ' ', color: ColorDefault}

// ring is a fixed-size buffer of cells; pushing overwrites the oldest.
type ring struct {
	cells []cell
	head  int // newest
}

func newRing(size int) *ring {
	if size < 1 {
		size = 1
	}
	r := &ring{cells: make([]cell, size)}
	for i := range r.cells {
		r.cells[i] = blank
	}
	return r
}

func (r *ring) push(c cell) {
	r.head = (r.head + 1) % len(r.cells)
	r.cells[r.head] = c
}

// at returns the cell pushed age pushes ago; age 0 is the newest.
func (r *ring) at(age int) cell {
	n := len(r.cells)
	return r.cells[((r.head-age)%n+n)%n]
}

func (r *ring) size() int { return len(r.cells) }

// column writes queued lines into its ring one rune per tick.
type column struct {
	pending   [][]rune
	index     int // next rune of pending[0]
	visible   *ring
	color     Color
	highlight Color
	threshold int
}

func newColumn(size int, opts Options) *column {
	return &column{
		visible:   newRing(size),
		color:     opts.Color,
		highlight: opts.HighlightColor,
		threshold: opts.HighlightThreshold,
	}
}

func (c *column) addLine(line string) {
	c.pending = append(c.pending, []rune(line))
}

// tick pushes exactly one cell, or spaces blank cells once a line is done.
func (c *column) tick(spaces int) {
	switch {
	case len(c.pending) == 0:
		c.visible.push(blank)
	case c.index >= len(c.pending[0]):
		c.pending = c.pending[1:]
		c.index = 0
		for i := 0; i < spaces; i++ {
			c.visible.push(blank)
		}
	default:
		color := c.color
		if c.index < c.threshold {
			color = c.highlight
		}
		c.visible.push(cell{r: c.pending[0][c.index], color: color})
		c.index++
	}
}

// unwritten returns the lines not yet fully written; a partly written line
// is returned from its next rune.
func (c *column) unwritten() []string {
	var out []string
	for i, p := range c.pending {
		if i == 0 {
			p = p[min(c.index, len(p)):]
		}
		out = append(out, string(p))
	}
	return out
}
