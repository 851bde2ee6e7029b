package props

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBoolAndScalarRoundtrip(t *testing.T) {
	s := NewStore("")

	if s.GetBool(StatsPerc) {
		t.Error("unset flag should read false")
	}
	s.SetBool(StatsPerc, true)
	if !s.GetBool(StatsPerc) {
		t.Error("flag write lost")
	}

	s.SetUint32(StatsSource, 2)
	if got := s.GetUint32(StatsSource); got != 2 {
		t.Errorf("scalar = %d, want 2", got)
	}
}

func TestVectorWriteAtOffset(t *testing.T) {
	s := NewStore("")

	s.SetUint32s(FcTTLColWidths, []uint32{80, 80, 80}, 1, 3)
	got := s.GetUint32s(FcTTLColWidths)
	want := []uint32{0, 80, 80, 80}
	if len(got) != len(want) {
		t.Fatalf("vector length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vec[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// partial overwrite leaves the rest intact
	s.SetUint32s(FcTTLColWidths, []uint32{7}, 2, 1)
	got = s.GetUint32s(FcTTLColWidths)
	if got[1] != 80 || got[2] != 7 || got[3] != 80 {
		t.Errorf("after partial overwrite: %v", got)
	}
}

func TestGetUint32sReturnsCopy(t *testing.T) {
	s := NewStore("")
	s.SetUint32s(MsgColWidths, []uint32{10, 20}, 0, 2)

	v := s.GetUint32s(MsgColWidths)
	v[0] = 999
	if got := s.GetUint32s(MsgColWidths)[0]; got != 10 {
		t.Errorf("stored vector mutated through the returned slice: %d", got)
	}
}

func TestSubscribeAndSuspend(t *testing.T) {
	s := NewStore("")

	var keys []string
	s.Subscribe(func(key string) { keys = append(keys, key) })

	s.SetBool(StatsBytes, true)
	if len(keys) != 1 || keys[0] != StatsBytes {
		t.Fatalf("notification keys = %v", keys)
	}

	s.Suspend(func() {
		s.SetUint32s(MsgColWidths, []uint32{12}, 0, 1)
		s.SetBool(StatsPerc, true)
	})
	if len(keys) != 1 {
		t.Errorf("suspended writes notified: %v", keys)
	}

	// writes inside the scope still took effect
	if !s.GetBool(StatsPerc) {
		t.Error("suspended write lost")
	}

	// notifications resume after the scope
	s.SetBool(StatsPerc, false)
	if len(keys) != 2 {
		t.Errorf("notification after suspend missing: %v", keys)
	}
}

func TestNestedSuspend(t *testing.T) {
	s := NewStore("")
	fired := 0
	s.Subscribe(func(string) { fired++ })

	s.Suspend(func() {
		s.Suspend(func() {
			s.SetBool(StatsPerc, true)
		})
		// still inside the outer scope
		s.SetBool(StatsBytes, true)
	})
	if fired != 0 {
		t.Errorf("nested suspend leaked %d notifications", fired)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gnutop", "props.json")

	s := NewStore(path)
	s.SetBool(StatsPerc, true)
	s.SetUint32(StatsSource, 1)
	s.SetUint32s(FcHopsColWidths, []uint32{0, 9, 9, 9}, 0, 4)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2 := NewStore(path)
	s2.Load()
	if !s2.GetBool(StatsPerc) {
		t.Error("flag lost across save/load")
	}
	if got := s2.GetUint32(StatsSource); got != 1 {
		t.Errorf("scalar lost across save/load: %d", got)
	}
	if got := s2.GetUint32s(FcHopsColWidths); len(got) != 4 || got[1] != 9 {
		t.Errorf("vector lost across save/load: %v", got)
	}
}

func TestLoadMalformedFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "props.json")
	if err := os.WriteFile(path, []byte("{nope"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	s.Load()
	if s.GetBool(StatsPerc) {
		t.Error("malformed file changed a default")
	}
}
