package ui

import (
	"testing"

	"gnutop/props"
)

func TestResizeUniformTablePropagatesWidth(t *testing.T) {
	h := newHarness(t, &fixedProvider{})

	h.driver.OnResizeColumn(TableFcTTL, 3, 80)

	got := h.store.GetUint32s(props.FcTTLColWidths)
	want := []uint32{0, 80, 80, 80, 80, 80, 80, 80, 80, 80}
	if len(got) != len(want) {
		t.Fatalf("stored vector length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("width[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestResizeSingleColumnTable(t *testing.T) {
	h := newHarness(t, &fixedProvider{})

	h.driver.OnResizeColumn(TableMessages, 2, 14)
	h.driver.OnResizeColumn(TableHorizon, 0, 9)
	h.driver.OnResizeColumn(TableDropReasons, 1, 11)
	h.driver.OnResizeColumn(TableGeneral, 1, 12)

	if got := h.driver.ColumnWidth(TableMessages, 2); got != 14 {
		t.Errorf("messages col 2 width = %d, want 14", got)
	}
	if got := h.driver.ColumnWidth(TableMessages, 1); got != 0 {
		t.Errorf("untouched messages col 1 width = %d, want 0", got)
	}
	if got := h.driver.ColumnWidth(TableHorizon, 0); got != 9 {
		t.Errorf("horizon col 0 width = %d, want 9", got)
	}
	if got := h.driver.ColumnWidth(TableDropReasons, 1); got != 11 {
		t.Errorf("drop-reasons col 1 width = %d, want 11", got)
	}
	if got := h.driver.ColumnWidth(TableGeneral, 1); got != 12 {
		t.Errorf("general col 1 width = %d, want 12", got)
	}
}

// Every table's handler must be guarded: the store write may itself
// trigger a programmatic resize notification, and that echo must not
// re-enter the handler.
func TestResizeHandlersAreReentrancyGuarded(t *testing.T) {
	h := newHarness(t, &fixedProvider{})

	echoes := 0
	h.store.Subscribe(func(key string) {
		echoes++
		// simulate the sink echoing the programmatic resize
		h.driver.OnResizeColumn(TableGeneral, 1, 55)
	})

	for id := TableID(0); id < TableCount; id++ {
		h.driver.OnResizeColumn(id, 1, 42)
	}

	if echoes != 0 {
		t.Errorf("store writes escaped the suspended scope %d times", echoes)
	}
}

func TestResizeIgnoresOutOfRangeColumn(t *testing.T) {
	h := newHarness(t, &fixedProvider{})

	h.driver.OnResizeColumn(TableGeneral, 7, 50)
	h.driver.OnResizeColumn(TableGeneral, -1, 50)

	if got := h.store.GetUint32s(props.GeneralColWidths); len(got) != 0 {
		t.Errorf("out-of-range resize stored %v", got)
	}
}
