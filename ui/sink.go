package ui

// Justify selects the text alignment of a table column.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyRight
)

// TabularSink is what the presentation core writes cells into. The core
// depends only on this interface; the TUI, the watch-mode printer and
// the tests each provide an implementation. Row/column addressing is
// zero-based.
type TabularSink interface {
	// Freeze suspends visual updates until the matching Thaw; sinks
	// without incremental redraw may treat both as no-ops.
	Freeze()
	Thaw()
	SetCell(row, col int, text string)
	AppendRow(labels []string)
	SetColumnJustification(col int, j Justify)
}

// Grid is an in-memory TabularSink. It backs the TUI renderer and the
// headless watch printer.
type Grid struct {
	cells   [][]string
	justify map[int]Justify
	frozen  int
}

// NewGrid returns an empty grid.
func NewGrid() *Grid {
	return &Grid{justify: make(map[int]Justify)}
}

func (g *Grid) Freeze() { g.frozen++ }

func (g *Grid) Thaw() {
	if g.frozen > 0 {
		g.frozen--
	}
}

func (g *Grid) AppendRow(labels []string) {
	row := make([]string, len(labels))
	copy(row, labels)
	g.cells = append(g.cells, row)
}

func (g *Grid) SetCell(row, col int, text string) {
	if row < 0 || row >= len(g.cells) {
		return
	}
	r := g.cells[row]
	for len(r) <= col {
		r = append(r, "")
	}
	r[col] = text
	g.cells[row] = r
}

func (g *Grid) SetColumnJustification(col int, j Justify) {
	g.justify[col] = j
}

// Cell returns the text at (row, col), empty when out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.cells) {
		return ""
	}
	r := g.cells[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Rows returns the number of rows appended so far.
func (g *Grid) Rows() int { return len(g.cells) }

// Justification returns the alignment configured for col.
func (g *Grid) Justification(col int) Justify { return g.justify[col] }
