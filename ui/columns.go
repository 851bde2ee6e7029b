package ui

import "gnutop/model"

// OnResizeColumn records a new column width for one table in the
// property store so it survives restarts. Uniform-width tables (both
// flow-control tables) propagate the width to every data column; the
// rest store it per column.
//
// The store write happens inside a suspended-notifications scope: the
// write itself may fire a programmatic resize event, and without the
// guard that event would re-enter this handler.
func (d *Driver) OnResizeColumn(id TableID, col int, width uint32) {
	ts := &tableSpecs[id]
	if col < 0 || col >= ts.columnCount() {
		return
	}

	d.store.Suspend(func() {
		if ts.uniform {
			var buf [model.FlowcDepth]uint32
			for n := range buf {
				buf[n] = width
			}
			d.store.SetUint32s(ts.widthsKey, buf[:], 1, len(buf))
			return
		}
		d.store.SetUint32s(ts.widthsKey, []uint32{width}, col, 1)
	})
}

// ColumnWidth returns the persisted width of one column, zero when none
// was stored yet.
func (d *Driver) ColumnWidth(id TableID, col int) uint32 {
	widths := d.store.GetUint32s(tableSpecs[id].widthsKey)
	if col < 0 || col >= len(widths) {
		return 0
	}
	return widths[col]
}
