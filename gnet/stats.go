package gnet

import (
	"sync"

	"gnutop/model"
)

// Transport tags a counted event with the carrying protocol.
type Transport int

const (
	TransportTCP Transport = iota
	TransportUDP
)

// Stats accumulates the message-traffic counter cube. Count operations
// keep the MsgTotal slot of every table equal to the sum of the other
// slots, which the percentage formatters depend on. One instance tracks
// three cubes at once: the combined one plus per-transport slices.
//
// All methods are safe for concurrent use; the snapshot getters copy the
// whole cube under the lock so readers never observe a torn state.
type Stats struct {
	mu   sync.Mutex
	full model.Snapshot
	tcp  model.Snapshot
	udp  model.Snapshot
}

// NewStats returns an empty accumulator.
func NewStats() *Stats {
	return &Stats{}
}

// Full returns a copy of the combined counter cube.
func (s *Stats) Full() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.full
}

// TCP returns a copy of the TCP-only counter cube.
func (s *Stats) TCP() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tcp
}

// UDP returns a copy of the UDP-only counter cube.
func (s *Stats) UDP() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.udp
}

// cubes returns the combined cube plus the slice for via.
func (s *Stats) cubes(via Transport) [2]*model.Snapshot {
	if via == TransportUDP {
		return [2]*model.Snapshot{&s.full, &s.udp}
	}
	return [2]*model.Snapshot{&s.full, &s.tcp}
}

func count(pkg, byt *model.FlowTable, t model.MsgType, size uint64) {
	pkg[t]++
	pkg[model.MsgTotal]++
	byt[t] += size
	byt[model.MsgTotal] += size
}

// Received counts one inbound message of wire size bytes (header
// included).
func (s *Stats) Received(via Transport, t model.MsgType, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.Received, &c.Byte.Received, t, size)
	}
}

// Generated counts one locally created message.
func (s *Stats) Generated(via Transport, t model.MsgType, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.Generated, &c.Byte.Generated, t, size)
	}
}

// GenQueued counts one locally created message parked in the send queue.
func (s *Stats) GenQueued(via Transport, t model.MsgType, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.GenQueued, &c.Byte.GenQueued, t, size)
	}
}

// Queued counts one relayed message parked in the send queue.
func (s *Stats) Queued(via Transport, t model.MsgType, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.Queued, &c.Byte.Queued, t, size)
	}
}

// Relayed counts one message forwarded to another node.
func (s *Stats) Relayed(via Transport, t model.MsgType, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.Relayed, &c.Byte.Relayed, t, size)
	}
}

// Expired counts one message whose TTL ran out in the queue.
func (s *Stats) Expired(via Transport, t model.MsgType, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.Expired, &c.Byte.Expired, t, size)
	}
}

// Dropped counts one discarded message together with the discard reason.
func (s *Stats) Dropped(via Transport, t model.MsgType, reason model.DropReason, size uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.Dropped, &c.Byte.Dropped, t, size)
		c.DropReason[reason][t]++
		c.DropReason[reason][model.MsgTotal]++
	}
}

// FlowControlled records a throttling event for a message seen at the
// given TTL and hop count. Values beyond the tracked depth land in the
// last bucket.
func (s *Stats) FlowControlled(via Transport, t model.MsgType, ttl, hops int, size uint64) {
	ttl = clampBucket(ttl)
	hops = clampBucket(hops)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.cubes(via) {
		count(&c.Pkg.FlowcTTL[ttl], &c.Byte.FlowcTTL[ttl], t, size)
		count(&c.Pkg.FlowcHops[hops], &c.Byte.FlowcHops[hops], t, size)
	}
}

// AddGeneral bumps one of the scalar gauges. General gauges are not
// split per transport.
func (s *Stats) AddGeneral(kind model.GeneralKind, n uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.full.General[kind] += n
	s.tcp.General[kind] += n
	s.udp.General[kind] += n
}

func clampBucket(n int) int {
	if n < 0 {
		return 0
	}
	if n >= model.FlowcDepth {
		return model.FlowcDepth - 1
	}
	return n
}
