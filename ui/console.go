package ui

import (
	"strings"

	"gnutop/gnet"
	"gnutop/hsep"
	"gnutop/props"
)

// Console runs the presentation core without a TUI: the same driver and
// grids, rendered as plain text for the -watch mode.
type Console struct {
	driver *Driver
	grids  [TableCount]*Grid
}

// NewConsole wires a headless console.
func NewConsole(store *props.Store, provider gnet.Provider, horizon *hsep.Table) *Console {
	var grids [TableCount]*Grid
	var sinks [TableCount]TabularSink
	for id := TableID(0); id < TableCount; id++ {
		g := NewGrid()
		grids[id] = g
		sinks[id] = g
	}
	c := &Console{grids: grids}
	c.driver = NewDriver(DriverConfig{
		Store:    store,
		Provider: provider,
		Horizon:  horizon,
		Sinks:    sinks,
	})
	return c
}

// Tick drives one update round through the gates.
func (c *Console) Tick(now int64) { c.driver.Tick(now) }

// Shutdown releases the horizon listener.
func (c *Console) Shutdown() { c.driver.Shutdown() }

// Render prints all six tables, columns fitted to their content.
func (c *Console) Render() string {
	var sb strings.Builder
	for id := TableID(0); id < TableCount; id++ {
		ts := &tableSpecs[id]
		g := c.grids[id]
		cols := ts.columnCount()

		widths := make([]int, cols)
		for col := 0; col < cols; col++ {
			widths[col] = len(ts.titles[col])
			for row := 0; row < g.Rows(); row++ {
				if n := len(g.Cell(row, col)); n > widths[col] {
					widths[col] = n
				}
			}
		}

		sb.WriteString("== " + ts.name + " ==\n")
		var header []string
		for col := 0; col < cols; col++ {
			header = append(header, padCell(ts.titles[col], widths[col], g.Justification(col)))
		}
		sb.WriteString(strings.Join(header, "  ") + "\n")
		for row := 0; row < g.Rows(); row++ {
			var cells []string
			for col := 0; col < cols; col++ {
				cells = append(cells, padCell(g.Cell(row, col), widths[col], g.Justification(col)))
			}
			sb.WriteString(strings.Join(cells, "  ") + "\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
