// Package props is the keyed property store backing user preferences:
// display toggles, the stats source selector and per-table column widths.
// Values persist across runs as a JSON file.
//
// The store is not goroutine-safe on purpose: every access happens on
// the event-dispatch goroutine, matching the rest of the presentation
// core.
package props

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Property keys.
const (
	StatsPerc        = "gnet_stats_perc"
	StatsDropPerc    = "gnet_stats_drop_perc"
	StatsBytes       = "gnet_stats_bytes"
	StatsWithHeaders = "gnet_stats_with_headers"
	StatsSource      = "gnet_stats_source"

	MsgColWidths         = "gnet_stats_msg_col_widths"
	FcTTLColWidths       = "gnet_stats_fc_ttl_col_widths"
	FcHopsColWidths      = "gnet_stats_fc_hops_col_widths"
	HorizonColWidths     = "gnet_stats_horizon_col_widths"
	DropReasonsColWidths = "gnet_stats_drop_reasons_col_widths"
	GeneralColWidths     = "gnet_stats_general_col_widths"
)

type fileFormat struct {
	Flags   map[string]bool     `json:"flags"`
	Ints    map[string]uint32   `json:"ints"`
	Vectors map[string][]uint32 `json:"vectors"`
}

// Store holds the property values plus change subscribers.
type Store struct {
	path string

	flags   map[string]bool
	ints    map[string]uint32
	vectors map[string][]uint32

	subs      []func(key string)
	suspended int
}

// NewStore returns an empty store persisting to path. An empty path
// disables persistence.
func NewStore(path string) *Store {
	return &Store{
		path:    path,
		flags:   make(map[string]bool),
		ints:    make(map[string]uint32),
		vectors: make(map[string][]uint32),
	}
}

// DefaultPath returns the property file under $XDG_CONFIG_HOME/gnutop
// (or ~/.config/gnutop). Returns empty string if no home directory can
// be determined.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gnutop", "props.json")
}

// Load reads the property file; missing or malformed files leave the
// store at its defaults.
func (s *Store) Load() {
	if s.path == "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		log.Printf("gnutop: warning: property file parse error: %v", err)
		return
	}
	for k, v := range f.Flags {
		s.flags[k] = v
	}
	for k, v := range f.Ints {
		s.ints[k] = v
	}
	for k, v := range f.Vectors {
		s.vectors[k] = v
	}
}

// Save writes the property file.
func (s *Store) Save() error {
	if s.path == "" {
		return fmt.Errorf("no property file path configured")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(fileFormat{
		Flags:   s.flags,
		Ints:    s.ints,
		Vectors: s.vectors,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Subscribe registers cb to run after every property change, with the
// changed key. Subscriptions cannot be removed; the store lives as long
// as the process.
func (s *Store) Subscribe(cb func(key string)) {
	s.subs = append(s.subs, cb)
}

// Suspend runs fn with change notifications suppressed. Writes made
// inside fn still take effect but do not invoke subscribers. This is
// the reentrancy guard for handlers whose own store writes would
// otherwise re-trigger them.
func (s *Store) Suspend(fn func()) {
	s.suspended++
	defer func() { s.suspended-- }()
	fn()
}

func (s *Store) notify(key string) {
	if s.suspended > 0 {
		return
	}
	for _, cb := range s.subs {
		cb(key)
	}
}

// GetBool returns the flag stored at key, false when unset.
func (s *Store) GetBool(key string) bool {
	return s.flags[key]
}

// SetBool stores a flag.
func (s *Store) SetBool(key string, v bool) {
	s.flags[key] = v
	s.notify(key)
}

// GetUint32 returns the scalar stored at key, zero when unset.
func (s *Store) GetUint32(key string) uint32 {
	return s.ints[key]
}

// SetUint32 stores a scalar.
func (s *Store) SetUint32(key string, v uint32) {
	s.ints[key] = v
	s.notify(key)
}

// GetUint32s returns a copy of the vector stored at key.
func (s *Store) GetUint32s(key string) []uint32 {
	v := s.vectors[key]
	out := make([]uint32, len(v))
	copy(out, v)
	return out
}

// SetUint32s writes count values into the vector at key starting at
// offset, growing the vector as needed.
func (s *Store) SetUint32s(key string, values []uint32, offset, count int) {
	if offset < 0 || count < 0 || count > len(values) {
		panic(fmt.Sprintf("props: bad vector write %s offset=%d count=%d len=%d",
			key, offset, count, len(values)))
	}
	vec := s.vectors[key]
	for len(vec) < offset+count {
		vec = append(vec, 0)
	}
	copy(vec[offset:offset+count], values[:count])
	s.vectors[key] = vec
	s.notify(key)
}
