package ui

import (
	"gnutop/gnet"
	"gnutop/hsep"
	"gnutop/model"
	"gnutop/props"
)

// Driver owns the mutable state of the presentation core: the selected
// message type, the tick-dedup timestamps and the six sinks. Everything
// here runs on the event-dispatch goroutine; the horizon listener is
// routed back onto it by the caller-supplied notify callback.
type Driver struct {
	store    *props.Store
	provider gnet.Provider
	horizon  *hsep.Table
	sinks    [TableCount]TabularSink
	visible  func() bool

	selected          model.MsgType
	lastUpdate        int64
	lastHorizonUpdate int64

	listener hsep.ListenerID
}

// DriverConfig wires a Driver to its collaborators. Notify is invoked
// from the horizon table's goroutine whenever it changes; the caller is
// expected to turn it into a Tick on the dispatch goroutine.
type DriverConfig struct {
	Store    *props.Store
	Provider gnet.Provider
	Horizon  *hsep.Table
	Sinks    [TableCount]TabularSink
	Visible  func() bool
	Notify   func()
}

// NewDriver seeds the sinks with their labelled rows and registers the
// horizon-table listener. The caller must invoke Shutdown to
// deregister it.
func NewDriver(cfg DriverConfig) *Driver {
	d := &Driver{
		store:    cfg.Store,
		provider: cfg.Provider,
		horizon:  cfg.Horizon,
		sinks:    cfg.Sinks,
		visible:  cfg.Visible,
		selected: model.MsgTotal,
	}
	if d.visible == nil {
		d.visible = func() bool { return true }
	}

	for id := TableID(0); id < TableCount; id++ {
		tableSpecs[id].initSink(d.sinks[id])
	}

	notify := cfg.Notify
	if notify == nil {
		notify = func() {}
	}
	d.listener = d.horizon.AddListener(notify)

	return d
}

// Shutdown removes the horizon listener. Skipping this leaks the
// callback inside the horizon table.
func (d *Driver) Shutdown() {
	d.horizon.RemoveListener(d.listener)
}

// Selected returns the message type the drop-reasons slice is keyed on.
func (d *Driver) Selected() model.MsgType { return d.selected }

// Tick drives one update for the given wall-clock second. Redundant
// ticks within the same second are consumed without projecting, as are
// ticks arriving while the stats view is hidden.
func (d *Driver) Tick(now int64) {
	if d.lastUpdate == now {
		return
	}
	d.lastUpdate = now
	d.render(now)
}

// SelectType records a new selected message type and re-renders
// immediately, bypassing the tick dedup for its own render.
func (d *Driver) SelectType(t model.MsgType, now int64) {
	d.selected = t
	d.render(now)
	d.lastUpdate = now
}

func (d *Driver) render(now int64) {
	if !d.visible() {
		return
	}

	view := viewFromProps(d.store, d.selected)

	full := d.provider.Full()
	f := frame{
		full:    &full,
		view:    view,
		horizon: d.horizon,
	}

	// The source selector narrows the messages table only; the other
	// tables always show the full traffic.
	switch view.Source {
	case gnet.SourceFull:
		f.msg = &full
	default:
		msg := gnet.Snap(d.provider, view.Source)
		f.msg = &msg
	}

	for id := TableID(0); id < TableCount; id++ {
		if id == TableHorizon {
			if now-d.lastHorizonUpdate < 2 {
				continue
			}
			d.lastHorizonUpdate = now
		}
		tableSpecs[id].project(&f, d.sinks[id])
	}
}
