package ui

import (
	"gnutop/hsep"
	"gnutop/model"
	"gnutop/props"
)

// TableID names the six logical stats tables.
type TableID int

const (
	TableMessages TableID = iota
	TableFcTTL
	TableFcHops
	TableDropReasons
	TableGeneral
	TableHorizon
	TableCount
)

// frame is one projection's worth of input: the sampled snapshots plus
// the view in effect. The source selector applies to the messages table
// only; flow-control, drop-reason and general cells always read the
// full snapshot.
type frame struct {
	msg     *model.Snapshot
	full    *model.Snapshot
	view    View
	horizon *hsep.Table
}

// tableSpec describes one table: its shape, its row labels, the
// property key holding its column widths and the producer mapping a
// (row, column) coordinate to cell text. All six tables are driven
// through the same projection loop.
type tableSpec struct {
	id        TableID
	name      string
	titles    []string
	widthsKey string
	// uniform tables propagate any column resize to all data columns
	uniform bool
	// numericFrom is the first right-justified column
	numericFrom int
	rows        func(f *frame) int
	labels      func() []string
	cell        func(f *frame, row, col int) string
}

// flowTables returns the byte and packet tables of the messages-table
// column col (1-based, after the label column).
func flowTables(s *model.Snapshot, col int) (byt, pkg *model.FlowTable) {
	switch col {
	case 1:
		return &s.Byte.Received, &s.Pkg.Received
	case 2:
		return &s.Byte.GenQueued, &s.Pkg.GenQueued
	case 3:
		return &s.Byte.Generated, &s.Pkg.Generated
	case 4:
		return &s.Byte.Dropped, &s.Pkg.Dropped
	case 5:
		return &s.Byte.Expired, &s.Pkg.Expired
	case 6:
		return &s.Byte.Queued, &s.Pkg.Queued
	case 7:
		return &s.Byte.Relayed, &s.Pkg.Relayed
	}
	return nil, nil
}

func msgTypeLabels() []string {
	out := make([]string, model.MsgTypeCount)
	for n := model.MsgType(0); n < model.MsgTypeCount; n++ {
		out[n] = n.String()
	}
	return out
}

func dropReasonLabels() []string {
	out := make([]string, model.DropReasonCount)
	for n := model.DropReason(0); n < model.DropReasonCount; n++ {
		out[n] = n.String()
	}
	return out
}

func generalKindLabels() []string {
	out := make([]string, model.GeneralKindCount)
	for n := model.GeneralKind(0); n < model.GeneralKindCount; n++ {
		out[n] = n.String()
	}
	return out
}

func horizonLabels() []string {
	out := make([]string, hsep.MaxDepth)
	for n := 0; n < hsep.MaxDepth; n++ {
		out[n] = hsep.HopLabel(n + 1)
	}
	return out
}

var tableSpecs = [TableCount]tableSpec{
	TableMessages: {
		id:   TableMessages,
		name: "Messages",
		titles: []string{"Type", "Received", "Gen. queued", "Generated",
			"Dropped", "Expired", "Queued", "Relayed"},
		widthsKey:   props.MsgColWidths,
		numericFrom: 1,
		rows:        func(*frame) int { return int(model.MsgTypeCount) },
		labels:      msgTypeLabels,
		cell: func(f *frame, row, col int) string {
			byt, pkg := flowTables(f.msg, col)
			if f.view.Bytes {
				return f.view.byteStat(byt, pkg, model.MsgType(row))
			}
			return f.view.pktStat(pkg, model.MsgType(row))
		},
	},
	TableFcTTL: {
		id:          TableFcTTL,
		name:        "Flow control (TTL)",
		titles:      []string{"Type", "0", "1", "2", "3", "4", "5", "6", "7", "8"},
		widthsKey:   props.FcTTLColWidths,
		uniform:     true,
		numericFrom: 1,
		rows:        func(*frame) int { return int(model.MsgTypeCount) },
		labels:      msgTypeLabels,
		cell: func(f *frame, row, col int) string {
			ttl := col - 1
			if f.view.Bytes {
				return f.view.flowcStatByte(&f.full.Byte.FlowcTTL[ttl], model.MsgType(row))
			}
			return f.view.flowcStatPkg(&f.full.Pkg.FlowcTTL[ttl], model.MsgType(row))
		},
	},
	TableFcHops: {
		id:          TableFcHops,
		name:        "Flow control (hops)",
		titles:      []string{"Type", "0", "1", "2", "3", "4", "5", "6", "7", "8"},
		widthsKey:   props.FcHopsColWidths,
		uniform:     true,
		numericFrom: 1,
		rows:        func(*frame) int { return int(model.MsgTypeCount) },
		labels:      msgTypeLabels,
		cell: func(f *frame, row, col int) string {
			hops := col - 1
			if f.view.Bytes {
				return f.view.flowcStatByte(&f.full.Byte.FlowcHops[hops], model.MsgType(row))
			}
			return f.view.flowcStatPkg(&f.full.Pkg.FlowcHops[hops], model.MsgType(row))
		},
	},
	TableDropReasons: {
		id:          TableDropReasons,
		name:        "Drop reasons",
		titles:      []string{"Reason", "Count"},
		widthsKey:   props.DropReasonsColWidths,
		numericFrom: 1,
		rows:        func(*frame) int { return int(model.DropReasonCount) },
		labels:      dropReasonLabels,
		cell: func(f *frame, row, col int) string {
			return f.view.dropStat(f.full, model.DropReason(row))
		},
	},
	TableGeneral: {
		id:          TableGeneral,
		name:        "General",
		titles:      []string{"Statistic", "Value"},
		widthsKey:   props.GeneralColWidths,
		numericFrom: 1,
		rows:        func(*frame) int { return int(model.GeneralKindCount) },
		labels:      generalKindLabels,
		cell: func(f *frame, row, col int) string {
			return generalStat(f.full, model.GeneralKind(row))
		},
	},
	TableHorizon: {
		id:          TableHorizon,
		name:        "Horizon",
		titles:      []string{"Hops", "Nodes", "Files", "Size"},
		widthsKey:   props.HorizonColWidths,
		numericFrom: 0,
		rows:        func(f *frame) int { return f.horizon.TableSize() },
		labels:      horizonLabels,
		cell: func(f *frame, row, col int) string {
			return f.horizon.CellStr(row+1, col)
		},
	},
}

// columnCount returns the total column count of the table, label column
// included.
func (ts *tableSpec) columnCount() int { return len(ts.titles) }

// project writes every data cell of the table into sink, bracketed by a
// freeze/thaw pair.
func (ts *tableSpec) project(f *frame, sink TabularSink) {
	sink.Freeze()
	defer sink.Thaw()

	rows := ts.rows(f)
	cols := ts.columnCount()
	for row := 0; row < rows; row++ {
		for col := 1; col < cols; col++ {
			sink.SetCell(row, col, ts.cell(f, row, col))
		}
	}
}

// initSink seeds the sink with one labelled row per table entry and the
// column justifications. Cells start at the zero sentinel.
func (ts *tableSpec) initSink(sink TabularSink) {
	cols := ts.columnCount()
	for _, label := range ts.labels() {
		row := make([]string, cols)
		row[0] = label
		for i := 1; i < cols; i++ {
			row[i] = "-"
		}
		sink.AppendRow(row)
	}
	for col := ts.numericFrom; col < cols; col++ {
		sink.SetColumnJustification(col, JustifyRight)
	}
}
