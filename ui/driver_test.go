package ui

import (
	"strconv"
	"testing"

	"gnutop/gnet"
	"gnutop/hsep"
	"gnutop/model"
	"gnutop/props"
)

// countingSink wraps a Grid and tallies cell writes and freeze/thaw
// balance.
type countingSink struct {
	*Grid
	setCalls int
	frozen   int
	maxDepth int
}

func (c *countingSink) Freeze() {
	c.frozen++
	if c.frozen > c.maxDepth {
		c.maxDepth = c.frozen
	}
	c.Grid.Freeze()
}

func (c *countingSink) Thaw() {
	c.frozen--
	c.Grid.Thaw()
}

func (c *countingSink) SetCell(row, col int, text string) {
	c.setCalls++
	c.Grid.SetCell(row, col, text)
}

// fixedProvider returns pre-built snapshots, one per source.
type fixedProvider struct {
	full, tcp, udp model.Snapshot
}

func (p *fixedProvider) Full() model.Snapshot { return p.full }
func (p *fixedProvider) TCP() model.Snapshot  { return p.tcp }
func (p *fixedProvider) UDP() model.Snapshot  { return p.udp }

type harness struct {
	driver  *Driver
	store   *props.Store
	sinks   [TableCount]*countingSink
	horizon *hsep.Table
	visible bool
}

func newHarness(t *testing.T, p gnet.Provider) *harness {
	t.Helper()
	h := &harness{
		store:   props.NewStore(""),
		horizon: hsep.NewTable(),
		visible: true,
	}
	var sinks [TableCount]TabularSink
	for id := TableID(0); id < TableCount; id++ {
		s := &countingSink{Grid: NewGrid()}
		h.sinks[id] = s
		sinks[id] = s
	}
	h.driver = NewDriver(DriverConfig{
		Store:    h.store,
		Provider: p,
		Horizon:  h.horizon,
		Sinks:    sinks,
		Visible:  func() bool { return h.visible },
	})
	t.Cleanup(h.driver.Shutdown)
	return h
}

func (h *harness) totalSetCalls() int {
	n := 0
	for _, s := range h.sinks {
		n += s.setCalls
	}
	return n
}

func (h *harness) resetCounts() {
	for _, s := range h.sinks {
		s.setCalls = 0
	}
}

func TestDriverSeedsSinks(t *testing.T) {
	h := newHarness(t, &fixedProvider{})

	wantRows := map[TableID]int{
		TableMessages:    int(model.MsgTypeCount),
		TableFcTTL:       int(model.MsgTypeCount),
		TableFcHops:      int(model.MsgTypeCount),
		TableDropReasons: int(model.DropReasonCount),
		TableGeneral:     int(model.GeneralKindCount),
		TableHorizon:     hsep.MaxDepth,
	}
	for id, want := range wantRows {
		if got := h.sinks[id].Rows(); got != want {
			t.Errorf("table %d seeded with %d rows, want %d", id, got, want)
		}
	}

	if got := h.sinks[TableMessages].Cell(int(model.MsgTotal), 0); got != "Total" {
		t.Errorf("total row label = %q, want %q", got, "Total")
	}
	if got := h.sinks[TableDropReasons].Cell(0, 1); got != "-" {
		t.Errorf("initial drop cell = %q, want sentinel", got)
	}

	if h.sinks[TableMessages].Justification(1) != JustifyRight {
		t.Error("messages data columns should be right-justified")
	}
	if h.sinks[TableMessages].Justification(0) != JustifyLeft {
		t.Error("messages label column should be left-justified")
	}
	if h.sinks[TableHorizon].Justification(0) != JustifyRight {
		t.Error("horizon columns should all be right-justified")
	}
}

func TestDriverDedupsTicks(t *testing.T) {
	h := newHarness(t, &fixedProvider{})

	h.driver.Tick(100)
	first := h.totalSetCalls()
	if first == 0 {
		t.Fatal("first tick projected nothing")
	}

	h.resetCounts()
	h.driver.Tick(100)
	if n := h.totalSetCalls(); n != 0 {
		t.Errorf("second tick in the same second wrote %d cells, want 0", n)
	}

	h.resetCounts()
	h.driver.Tick(101)
	if h.totalSetCalls() == 0 {
		t.Error("tick in a fresh second projected nothing")
	}
}

func TestDriverHorizonSubGate(t *testing.T) {
	h := newHarness(t, &fixedProvider{})
	h.horizon.Add(1, 5, 10, 100)

	h.driver.Tick(100)
	if h.sinks[TableHorizon].setCalls == 0 {
		t.Fatal("first tick skipped the horizon table")
	}

	// one second later: main tables project again, horizon holds
	h.resetCounts()
	h.driver.Tick(101)
	if h.sinks[TableMessages].setCalls == 0 {
		t.Error("main tables should project on a fresh second")
	}
	if n := h.sinks[TableHorizon].setCalls; n != 0 {
		t.Errorf("horizon projected %d cells within 2s, want 0", n)
	}

	h.resetCounts()
	h.driver.Tick(102)
	if h.sinks[TableHorizon].setCalls == 0 {
		t.Error("horizon should refresh after 2s")
	}
}

func TestDriverVisibilityGateConsumesTick(t *testing.T) {
	h := newHarness(t, &fixedProvider{})
	h.visible = false

	h.driver.Tick(100)
	if n := h.totalSetCalls(); n != 0 {
		t.Fatalf("hidden view wrote %d cells, want 0", n)
	}

	// the tick was consumed, not queued: becoming visible within the
	// same second does not replay it
	h.visible = true
	h.driver.Tick(100)
	if n := h.totalSetCalls(); n != 0 {
		t.Errorf("consumed tick was replayed: %d cell writes", n)
	}

	h.driver.Tick(101)
	if h.totalSetCalls() == 0 {
		t.Error("fresh tick after unhiding projected nothing")
	}
}

func TestDriverSelectTypeBypassesDedup(t *testing.T) {
	var full model.Snapshot
	full.DropReason[model.DropFlowControl][model.MsgQuery] = 7
	full.Pkg.Dropped[model.MsgTotal] = 70
	h := newHarness(t, &fixedProvider{full: full})
	h.store.SetBool(props.StatsDropPerc, true)

	h.driver.Tick(100)
	h.resetCounts()

	h.driver.SelectType(model.MsgQuery, 100)
	if h.totalSetCalls() == 0 {
		t.Fatal("selection render was swallowed by the dedup gate")
	}
	got := h.sinks[TableDropReasons].Cell(int(model.DropFlowControl), 1)
	if got != "10.00%" {
		t.Errorf("drop cell after selection = %q, want %q", got, "10.00%")
	}

	// the selection render counts as this second's update
	h.resetCounts()
	h.driver.Tick(100)
	if n := h.totalSetCalls(); n != 0 {
		t.Errorf("tick after selection render wrote %d cells, want 0", n)
	}
}

func TestDriverSelectionChangesDropSlice(t *testing.T) {
	var full model.Snapshot
	for r := model.DropReason(0); r < model.DropReasonCount; r++ {
		full.DropReason[r][model.MsgQuery] = uint64(r) + 1
		full.DropReason[r][model.MsgPing] = 1000 + uint64(r)
	}
	full.Pkg.Dropped[model.MsgTotal] = 5000
	h := newHarness(t, &fixedProvider{full: full})

	h.driver.SelectType(model.MsgQuery, 100)
	for r := model.DropReason(0); r < model.DropReasonCount; r++ {
		want := strconv.FormatUint(uint64(r)+1, 10)
		if got := h.sinks[TableDropReasons].Cell(int(r), 1); got != want {
			t.Fatalf("reason %v cell = %q, want %q", r, got, want)
		}
	}

	h.driver.SelectType(model.MsgPing, 101)
	for r := model.DropReason(0); r < model.DropReasonCount; r++ {
		want := strconv.FormatUint(1000+uint64(r), 10)
		if got := h.sinks[TableDropReasons].Cell(int(r), 1); got != want {
			t.Fatalf("reason %v cell = %q, want %q", r, got, want)
		}
	}
}

func TestDriverSourceSwitch(t *testing.T) {
	var full, tcp model.Snapshot
	full.Pkg.Received[model.MsgQuery] = 444
	full.Pkg.Received[model.MsgTotal] = 444
	full.Pkg.FlowcTTL[3][model.MsgQuery] = 99
	tcp.Pkg.Received[model.MsgQuery] = 123
	tcp.Pkg.Received[model.MsgTotal] = 123

	h := newHarness(t, &fixedProvider{full: full, tcp: tcp})
	h.store.SetUint32(props.StatsSource, uint32(gnet.SourceTCPOnly))

	h.driver.Tick(100)

	if got := h.sinks[TableMessages].Cell(int(model.MsgQuery), 1); got != "123" {
		t.Errorf("messages cell under tcp source = %q, want %q", got, "123")
	}
	// flow-control tables always show the full traffic
	if got := h.sinks[TableFcTTL].Cell(int(model.MsgQuery), 4); got != "99" {
		t.Errorf("fc-ttl cell under tcp source = %q, want %q", got, "99")
	}
}

func TestDriverFreezeThawBalanced(t *testing.T) {
	h := newHarness(t, &fixedProvider{})
	h.driver.Tick(100)
	for id, s := range h.sinks {
		if s.frozen != 0 {
			t.Errorf("table %d left frozen (depth %d)", id, s.frozen)
		}
		if s.maxDepth == 0 {
			t.Errorf("table %d was never frozen during projection", id)
		}
	}
}
