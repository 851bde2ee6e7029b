package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gnutop/gnet"
	"gnutop/hsep"
	"gnutop/model"
	"gnutop/props"
)

type tickMsg time.Time

// horizonMsg re-enters the dispatch loop when the horizon table changed
// on another goroutine.
type horizonMsg struct{}

// Model is the bubbletea model. All handlers run on the dispatch
// goroutine; the driver below is never touched from anywhere else.
type Model struct {
	driver   *Driver
	store    *props.Store
	grids    [TableCount]*Grid
	interval time.Duration

	page   TableID
	width  int
	height int

	paused   bool
	showHelp bool

	// visible is shared with the driver's visibility gate; overlays
	// flip it off so consumed ticks do not project.
	visible *bool

	horizonCh chan struct{}
}

// NewModel wires the presentation core to a fresh TUI.
func NewModel(store *props.Store, provider gnet.Provider, horizon *hsep.Table, interval time.Duration) Model {
	var grids [TableCount]*Grid
	var sinks [TableCount]TabularSink
	for id := TableID(0); id < TableCount; id++ {
		g := NewGrid()
		grids[id] = g
		sinks[id] = g
	}

	visible := true
	visPtr := &visible
	horizonCh := make(chan struct{}, 1)

	driver := NewDriver(DriverConfig{
		Store:    store,
		Provider: provider,
		Horizon:  horizon,
		Sinks:    sinks,
		Visible:  func() bool { return *visPtr },
		Notify: func() {
			select {
			case horizonCh <- struct{}{}:
			default:
			}
		},
	})

	return Model{
		driver:    driver,
		store:     store,
		grids:     grids,
		interval:  interval,
		visible:   visPtr,
		horizonCh: horizonCh,
	}
}

// Driver exposes the update driver, mainly so the caller can shut it
// down after the program exits.
func (m Model) Driver() *Driver { return m.driver }

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), waitHorizon(m.horizonCh))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func waitHorizon(ch chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return horizonMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			*m.visible = true
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			*m.visible = false
		case "a":
			m.paused = !m.paused
			if !m.paused {
				return m, tick(m.interval)
			}
		case "1", "2", "3", "4", "5", "6":
			m.page = TableID(msg.String()[0] - '1')
		case "tab":
			m.page = (m.page + 1) % TableCount
		case "shift+tab":
			m.page = (m.page - 1 + TableCount) % TableCount
		case "left":
			m.selectType(prevType(m.driver.Selected()))
		case "right":
			m.selectType(nextType(m.driver.Selected()))
		case "p":
			m.store.SetBool(props.StatsPerc, !m.store.GetBool(props.StatsPerc))
		case "b":
			m.store.SetBool(props.StatsBytes, !m.store.GetBool(props.StatsBytes))
		case "h":
			m.store.SetBool(props.StatsWithHeaders, !m.store.GetBool(props.StatsWithHeaders))
		case "d":
			m.store.SetBool(props.StatsDropPerc, !m.store.GetBool(props.StatsDropPerc))
		case "s":
			src := gnet.Source(m.store.GetUint32(props.StatsSource))
			m.store.SetUint32(props.StatsSource, uint32(src.Next()))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.paused {
			return m, nil
		}
		m.driver.Tick(time.Time(msg).Unix())
		m.fitColumns()
		return m, tick(m.interval)

	case horizonMsg:
		m.driver.Tick(time.Now().Unix())
		return m, waitHorizon(m.horizonCh)
	}

	return m, nil
}

func (m Model) selectType(t model.MsgType) {
	m.driver.SelectType(t, time.Now().Unix())
}

func nextType(t model.MsgType) model.MsgType {
	return (t + 1) % model.MsgTypeCount
}

func prevType(t model.MsgType) model.MsgType {
	return (t - 1 + model.MsgTypeCount) % model.MsgTypeCount
}

// fitColumns recomputes the focused table's column widths from its
// content and raises a resize notification for every column that
// changed, which persists the widths through the preference handlers.
func (m Model) fitColumns() {
	id := m.page
	ts := &tableSpecs[id]
	g := m.grids[id]
	for col := 0; col < ts.columnCount(); col++ {
		w := len(ts.titles[col])
		for row := 0; row < g.Rows(); row++ {
			if n := len(g.Cell(row, col)); n > w {
				w = n
			}
		}
		if uint32(w) != m.driver.ColumnWidth(id, col) {
			m.driver.OnResizeColumn(id, col, uint32(w))
		}
	}
}

func (m Model) View() string {
	if m.width == 0 {
		return "starting gnutop...\n"
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var sb strings.Builder
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n")
	sb.WriteString(m.renderStatus())
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTable(m.page))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(
		"1-6/tab: table  ←/→: type  p: %  b: bytes  h: headers  d: drop %  s: source  a: pause  ?: help  q: quit"))
	return sb.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for id := TableID(0); id < TableCount; id++ {
		name := fmt.Sprintf("%d:%s", id+1, tableSpecs[id].name)
		if id == m.page {
			tabs = append(tabs, activeTab.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderStatus() string {
	view := viewFromProps(m.store, m.driver.Selected())

	onOff := func(b bool, label string) string {
		if b {
			return titleStyle.Render(label)
		}
		return dimStyle.Render(label)
	}

	parts := []string{
		dimStyle.Render("type: ") + valueStyle.Render(view.Type.String()),
		dimStyle.Render("source: ") + valueStyle.Render(view.Source.String()),
		onOff(view.Percent, "percent"),
		onOff(view.Bytes, "bytes"),
		onOff(view.WithHeaders, "headers"),
		onOff(view.DropPercent, "drop %"),
	}
	if m.paused {
		parts = append(parts, totalStyle.Render("PAUSED"))
	}
	return " " + strings.Join(parts, dimStyle.Render("  |  "))
}

// renderTable draws one grid with its persisted column widths, label
// column left-aligned and numeric columns right-aligned.
func (m Model) renderTable(id TableID) string {
	ts := &tableSpecs[id]
	g := m.grids[id]
	cols := ts.columnCount()

	widths := make([]int, cols)
	for col := 0; col < cols; col++ {
		widths[col] = int(m.driver.ColumnWidth(id, col))
		if n := len(ts.titles[col]); n > widths[col] {
			widths[col] = n
		}
	}

	var sb strings.Builder

	var header []string
	for col := 0; col < cols; col++ {
		header = append(header, padCell(ts.titles[col], widths[col], g.Justification(col)))
	}
	sb.WriteString(" " + headerStyle.Render(strings.Join(header, "  ")) + "\n")

	selected := m.driver.Selected()
	for row := 0; row < g.Rows(); row++ {
		var cells []string
		for col := 0; col < cols; col++ {
			cells = append(cells, padCell(g.Cell(row, col), widths[col], g.Justification(col)))
		}
		line := strings.Join(cells, "  ")
		switch {
		case rowIsTotal(id, row):
			line = totalStyle.Render(line)
		case rowIsSelected(id, row, selected):
			line = selectedStyle.Render(line)
		default:
			line = valueStyle.Render(line)
		}
		sb.WriteString(" " + line + "\n")
	}

	return sb.String()
}

// rowIsTotal reports whether the row is the synthetic Total bucket of a
// message-typed table.
func rowIsTotal(id TableID, row int) bool {
	switch id {
	case TableMessages, TableFcTTL, TableFcHops:
		return model.MsgType(row) == model.MsgTotal
	}
	return false
}

// rowIsSelected highlights the selected type on message-typed tables.
func rowIsSelected(id TableID, row int, selected model.MsgType) bool {
	switch id {
	case TableMessages, TableFcTTL, TableFcHops:
		return model.MsgType(row) == selected
	}
	return false
}

func (m Model) renderHelp() string {
	lines := []string{
		titleStyle.Render("gnutop — Gnutella traffic statistics"),
		"",
		"  1-6, tab     switch between the six stats tables",
		"  ← / →        cycle the selected message type (drop-reason slice)",
		"  p            toggle percent vs absolute values",
		"  b            toggle bytes vs packet counts",
		"  h            toggle counting protocol headers in byte views",
		"  d            toggle percentages on the drop-reasons table",
		"  s            cycle stats source: full / tcp / udp",
		"  a            pause / resume updates",
		"  q            quit",
		"",
		helpStyle.Render("  press any key to close"),
	}
	return strings.Join(lines, "\n")
}
